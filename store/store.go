package store

import (
	"context"
	"time"

	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/netresearcher", "store")

// DefaultTitle is assigned to a chat before a real title is set.
const DefaultTitle = "New Chat"

// ChatInfo describes a chat session.
type ChatInfo struct {
	ChatID    string         `json:"chat_id"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Messages  []llms.Message `json:"messages,omitempty"`
}

// MessageStore keeps per-session chat history.
// The chat ID is taken from the chat context.
type MessageStore interface {
	// Messages returns the history of the chat in context,
	// or empty if the chat is not found.
	Messages(ctx context.Context) []llms.Message
	// Add appends messages to the history of the chat in context.
	Add(ctx context.Context, msgs ...llms.Message) error
	// Reset removes the history and metadata of the chat in context.
	Reset(ctx context.Context) error

	// UpdateChat creates or updates the chat in context with the title and metadata,
	// and returns the chat info without messages.
	UpdateChat(ctx context.Context, title string, metadata map[string]any) (*ChatInfo, error)
	// ListChats returns the IDs of the known chats.
	ListChats(ctx context.Context) ([]string, error)
	// GetChatInfo returns the chat info with messages.
	// If id is empty, the chat ID is taken from the context.
	GetChatInfo(ctx context.Context, id string) (*ChatInfo, error)
}

// MessageStoreManager provides maintenance operations over a store backend.
type MessageStoreManager interface {
	// Cleanup removes chats that have not been updated for the given duration,
	// and returns the number of removed chats.
	Cleanup(ctx context.Context, olderThan time.Duration) (uint32, error)
}
