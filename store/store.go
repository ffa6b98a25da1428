// Package store persists chat history. The tenant and chat identifiers are
// taken from the chat context carried in ctx.
package store

import (
	"context"
	"time"

	"github.com/effective-security/xlog"

	"github.com/promptops/agentic/pkg/llms"
)

var logger = xlog.NewPackageLogger("github.com/promptops/agentic", "store")

//go:generate mockgen -source=store.go -destination=../mocks/mockstore/store_mock.gen.go -package mockstore

// MessageStore persists the conversation history of a chat.
type MessageStore interface {
	// Messages returns the stored messages for the chat in ctx.
	Messages(ctx context.Context) []llms.Message
	// Add appends messages to the chat in ctx.
	Add(ctx context.Context, msgs ...llms.Message) error
	// Reset removes the chat in ctx.
	Reset(ctx context.Context) error
}

// ChatInfo describes a stored chat.
type ChatInfo struct {
	TenantID  string         `json:"tenant_id"`
	ChatID    string         `json:"chat_id"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Messages  []llms.Message `json:"messages,omitempty"`
}

// MessageStoreManager extends MessageStore with chat management.
type MessageStoreManager interface {
	MessageStore

	// UpdateChat creates or updates the chat in ctx with a title and metadata.
	UpdateChat(ctx context.Context, title string, metadata map[string]any) error
	// GetChatInfo returns the chat info with messages. An empty id means the chat in ctx.
	GetChatInfo(ctx context.Context, id string) (*ChatInfo, error)
	// GetChatTitle returns the chat title, or empty when the chat is not persisted.
	GetChatTitle(ctx context.Context, id string) (string, error)
	// ListChats returns the chat IDs of the tenant in ctx.
	ListChats(ctx context.Context) ([]string, error)
	// ListTenants returns the tenants that have stored chats.
	ListTenants(ctx context.Context) ([]string, error)
	// Cleanup removes chats not updated within olderThan and returns the count removed.
	Cleanup(ctx context.Context, tenantID string, olderThan time.Duration) (uint32, error)
}
