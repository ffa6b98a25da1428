package store

import (
	"context"
	"sync"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/pkg/llms"
)

type inMemory struct {
	mu      sync.RWMutex
	storage map[string][]llms.Message
}

// NewMemoryStore returns a process-local MessageStore.
func NewMemoryStore() MessageStore {
	return &inMemory{}
}

func (m *inMemory) key(ctx context.Context) (string, error) {
	tenantID, chatID, err := chatmodel.GetTenantAndChatID(ctx)
	if err != nil {
		return "", err
	}
	return tenantID + "/" + chatID, nil
}

func (m *inMemory) Messages(ctx context.Context) []llms.Message {
	key, err := m.key(ctx)
	if err != nil {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.storage == nil {
		return nil
	}
	return m.storage[key]
}

func (m *inMemory) Add(ctx context.Context, msgs ...llms.Message) error {
	key, err := m.key(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storage == nil {
		// create on first use
		m.storage = make(map[string][]llms.Message)
	}
	m.storage[key] = append(m.storage[key], msgs...)
	return nil
}

func (m *inMemory) Reset(ctx context.Context) error {
	key, err := m.key(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storage != nil {
		delete(m.storage, key)
	}
	return nil
}
