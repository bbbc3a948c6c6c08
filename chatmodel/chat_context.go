package chatmodel

import (
	"context"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/values"
	"github.com/effective-security/xdb/pkg/flake"
)

// ErrInvalidChatContext is returned by operations that require a chat session
// when the provided context does not carry one.
var ErrInvalidChatContext = errors.New("invalid chat context")

// ChatContext identifies a single chat session. The interactive console and
// the A2A server each bind incoming requests to a session before running the
// agent, so message history and traces are scoped per conversation.
type ChatContext interface {
	GetChatID() string
	// SetChatID rebinds the context to another chat session.
	SetChatID(chatID string)
	// RunID returns the unique ID of this context instance,
	// used to correlate traces within a single run.
	RunID() string
	// AppData returns immutable app data
	AppData() any
	// GetMetadata retrieves metadata by key
	GetMetadata(key string) (value any, ok bool)
	// SetMetadata sets metadata by key
	SetMetadata(key string, value any)
}

type chatContext struct {
	chatID   string
	runID    string
	metadata sync.Map
	appData  any
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

func NewChatContext(chatID string, appData any) ChatContext {
	return &chatContext{
		chatID:   values.StringsCoalesce(chatID, NewChatID()),
		runID:    NewChatID(),
		appData:  appData,
		metadata: sync.Map{},
	}
}

type contextKey int

const (
	keyContext contextKey = iota
)

// WithChatContext returns a new context with ChatContext value
func WithChatContext(ctx context.Context, chatCtx ChatContext) context.Context {
	return context.WithValue(ctx, keyContext, chatCtx)
}

// GetChatContext retrieves the ChatContext from the context
func GetChatContext(ctx context.Context) ChatContext {
	if v, ok := ctx.Value(keyContext).(ChatContext); ok {
		return v
	}
	return nil
}

// GetChatID retrieves the chat ID from the provided context.
// If the context does not contain a ChatContext, it returns an empty string.
func GetChatID(ctx context.Context) string {
	if v, ok := ctx.Value(keyContext).(ChatContext); ok {
		return v.GetChatID()
	}
	return ""
}

// SetChatID rebinds the chat session on the ChatContext carried by ctx.
// It fails with ErrInvalidChatContext if the context has no ChatContext.
func SetChatID(ctx context.Context, chatID string) (context.Context, error) {
	chatCtx := GetChatContext(ctx)
	if chatCtx == nil {
		return ctx, errors.WithStack(ErrInvalidChatContext)
	}
	chatCtx.SetChatID(values.StringsCoalesce(chatID, NewChatID()))
	return ctx, nil
}

// NewFromContext returns a fresh background context carrying over the
// ChatContext from ctx, detached from its deadline and cancellation.
// Useful for work that outlives the request, like chat title updates.
func NewFromContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	if chatCtx := GetChatContext(ctx); chatCtx != nil {
		newCtx = WithChatContext(newCtx, chatCtx)
	}
	return newCtx
}

// NewChatID generates a new chat ID using the flake ID generator.
func NewChatID() string {
	return strconv.FormatUint(flake.DefaultIDGenerator.NextID(), 10)
}
