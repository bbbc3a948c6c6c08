package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/netresearcher/chatmodel"
	"github.com/effective-security/netresearcher/pkg/llms"
)

type inMemory struct {
	mu      sync.RWMutex
	storage map[string]*ChatInfo
}

func NewMemoryStore() MessageStore {
	return &inMemory{}
}

func (m *inMemory) Messages(ctx context.Context) []llms.Message {
	chatID := chatmodel.GetChatID(ctx)
	if chatID == "" {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if chat, ok := m.storage[chatID]; ok {
		return chat.Messages
	}
	return nil
}

func (m *inMemory) Add(ctx context.Context, msgs ...llms.Message) error {
	chatID := chatmodel.GetChatID(ctx)
	if chatID == "" {
		return errors.WithStack(chatmodel.ErrInvalidChatContext)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	chat := m.getOrCreate(chatID)
	chat.Messages = append(chat.Messages, msgs...)
	chat.UpdatedAt = time.Now()
	return nil
}

func (m *inMemory) Reset(ctx context.Context) error {
	chatID := chatmodel.GetChatID(ctx)
	if chatID == "" {
		return errors.WithStack(chatmodel.ErrInvalidChatContext)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storage != nil {
		delete(m.storage, chatID)
	}
	return nil
}

func (m *inMemory) UpdateChat(ctx context.Context, title string, metadata map[string]any) (*ChatInfo, error) {
	chatID := chatmodel.GetChatID(ctx)
	if chatID == "" {
		return nil, errors.WithStack(chatmodel.ErrInvalidChatContext)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	chat := m.getOrCreate(chatID)
	if title != "" {
		chat.Title = title
	}
	for k, v := range metadata {
		chat.Metadata[k] = v
	}
	chat.UpdatedAt = time.Now()

	info := *chat
	info.Messages = nil
	return &info, nil
}

func (m *inMemory) ListChats(ctx context.Context) ([]string, error) {
	if chatmodel.GetChatID(ctx) == "" {
		return nil, errors.WithStack(chatmodel.ErrInvalidChatContext)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	chats := make([]string, 0, len(m.storage))
	for id := range m.storage {
		chats = append(chats, id)
	}
	sort.Strings(chats)
	return chats, nil
}

func (m *inMemory) GetChatInfo(ctx context.Context, id string) (*ChatInfo, error) {
	chatID := chatmodel.GetChatID(ctx)
	if chatID == "" {
		return nil, errors.WithStack(chatmodel.ErrInvalidChatContext)
	}
	if id == "" {
		id = chatID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	chat := m.getOrCreate(id)
	info := *chat
	return &info, nil
}

// getOrCreate must be called with the lock held.
func (m *inMemory) getOrCreate(chatID string) *ChatInfo {
	if m.storage == nil {
		// create on first use
		m.storage = make(map[string]*ChatInfo)
	}
	chat, ok := m.storage[chatID]
	if !ok {
		now := time.Now()
		chat = &ChatInfo{
			ChatID:    chatID,
			Title:     DefaultTitle,
			CreatedAt: now,
			UpdatedAt: now,
			Metadata:  make(map[string]any),
		}
		m.storage[chatID] = chat
	}
	return chat
}
