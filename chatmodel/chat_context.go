package chatmodel

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/values"
	"github.com/google/uuid"
)

// ErrInvalidChatContext is returned when the context does not carry a
// ChatContext value.
var ErrInvalidChatContext = errors.New("invalid chat context")

// ChatContext identifies a conversation: the tenant it belongs to, the chat
// ID, and a run ID unique to the process handling it. It also carries
// immutable app data and mutable metadata.
type ChatContext interface {
	GetTenantID() string
	GetChatID() string
	SetChatID(chatID string)
	// RunID returns the unique ID of this run.
	RunID() string
	// AppData returns immutable app data.
	AppData() any
	// GetMetadata retrieves metadata by key.
	GetMetadata(key string) (value any, ok bool)
	// SetMetadata sets metadata by key.
	SetMetadata(key string, value any)
}

type chatContext struct {
	tenantID string
	chatID   string
	runID    string
	metadata sync.Map
	appData  any
}

// NewChatContext creates a ChatContext. Empty tenant or chat IDs are
// replaced with generated ones.
func NewChatContext(tenantID, chatID string, appData any) ChatContext {
	return &chatContext{
		tenantID: values.StringsCoalesce(tenantID, NewChatID()),
		chatID:   values.StringsCoalesce(chatID, NewChatID()),
		runID:    NewChatID(),
		appData:  appData,
	}
}

func (c *chatContext) GetTenantID() string {
	return c.tenantID
}

func (c *chatContext) GetChatID() string {
	return c.chatID
}

func (c *chatContext) SetChatID(chatID string) {
	c.chatID = chatID
}

func (c *chatContext) RunID() string {
	return c.runID
}

func (c *chatContext) AppData() any {
	return c.appData
}

func (c *chatContext) GetMetadata(key string) (value any, ok bool) {
	return c.metadata.Load(key)
}

func (c *chatContext) SetMetadata(key string, value any) {
	c.metadata.Store(key, value)
}

type contextKey int

const (
	keyContext contextKey = iota
)

// WithChatContext returns a new context carrying the ChatContext value.
func WithChatContext(ctx context.Context, chatCtx ChatContext) context.Context {
	return context.WithValue(ctx, keyContext, chatCtx)
}

// GetChatContext retrieves the ChatContext from the context, or nil.
func GetChatContext(ctx context.Context) ChatContext {
	if v, ok := ctx.Value(keyContext).(ChatContext); ok {
		return v
	}
	return nil
}

// NewFromContext returns a background context preserving the ChatContext
// value, to detach long-running work from a request-scoped deadline.
func NewFromContext(ctx context.Context) context.Context {
	chatCtx := GetChatContext(ctx)
	if chatCtx == nil {
		return context.Background()
	}
	return WithChatContext(context.Background(), chatCtx)
}

// SetChatID updates the chat ID on the context's ChatContext.
func SetChatID(ctx context.Context, chatID string) (context.Context, error) {
	chatCtx := GetChatContext(ctx)
	if chatCtx == nil {
		return nil, errors.WithStack(ErrInvalidChatContext)
	}
	if chatID != "" {
		chatCtx.SetChatID(chatID)
	}
	return ctx, nil
}

// GetTenantAndChatID retrieves the tenant and chat IDs from the context.
func GetTenantAndChatID(ctx context.Context) (tenantID, chatID string, err error) {
	chatCtx := GetChatContext(ctx)
	if chatCtx == nil {
		return "", "", errors.WithStack(ErrInvalidChatContext)
	}
	return chatCtx.GetTenantID(), chatCtx.GetChatID(), nil
}

// NewChatID generates a new random chat ID.
func NewChatID() string {
	return uuid.NewString()
}
