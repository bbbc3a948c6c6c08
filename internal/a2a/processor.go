package a2a

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/netresearcher/chatmodel"
	"github.com/effective-security/netresearcher/internal/researcher"
	"github.com/effective-security/netresearcher/pkg/metricskey"
	"github.com/effective-security/x/slices"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-a2a-go/protocol"
	"trpc.group/trpc-go/trpc-a2a-go/taskmanager"
)

// maxTitleLength caps session titles derived from the first question.
const maxTitleLength = 64

// Processor runs one research turn per inbound A2A message.
type Processor struct {
	res *researcher.Researcher
}

var _ taskmanager.MessageProcessor = (*Processor)(nil)

// NewProcessor returns a processor backed by the researcher.
func NewProcessor(res *researcher.Researcher) *Processor {
	return &Processor{res: res}
}

// ProcessMessage implements taskmanager.MessageProcessor. The A2A context ID
// scopes the conversation: messages sharing it continue the same session, a
// message without one starts a fresh session.
func (p *Processor) ProcessMessage(
	ctx context.Context,
	message protocol.Message,
	options taskmanager.ProcessOptions,
	handler taskmanager.TaskHandler,
) (*taskmanager.MessageProcessingResult, error) {
	question := extractText(message)
	if question == "" {
		return nil, errors.New("message has no text parts")
	}

	contextID := ""
	if message.ContextID != nil {
		contextID = *message.ContextID
	}
	if contextID == "" && handler != nil {
		contextID = handler.GetContextID()
	}
	if contextID == "" {
		contextID = uuid.New().String()
	}

	ctx = chatmodel.WithChatContext(ctx, chatmodel.NewChatContext(contextID, nil))
	logger.ContextKV(ctx, xlog.DEBUG,
		"context_id", contextID,
		"question", slices.StringUpto(question, 64),
	)

	// title fresh sessions with their first question
	if len(p.res.Store().Messages(ctx)) == 0 {
		if _, err := p.res.Store().UpdateChat(ctx, slices.StringUpto(question, maxTitleLength), nil); err != nil {
			logger.ContextKV(ctx, xlog.WARNING, "reason", "update_chat", "err", err.Error())
		}
	}

	answer, err := p.res.Run(ctx, question)
	if err != nil {
		logger.ContextKV(ctx, xlog.ERROR,
			"context_id", contextID,
			"err", err.Error(),
		)
		return nil, errors.WithMessage(err, "failed to research the question")
	}
	metricskey.StatsA2ATurns.IncrCounter(1, researcher.Name)

	reply := protocol.NewMessage(protocol.MessageRoleAgent, []protocol.Part{protocol.NewTextPart(answer)})
	reply.ContextID = &contextID
	return &taskmanager.MessageProcessingResult{
		Result: &reply,
	}, nil
}

func extractText(message protocol.Message) string {
	var parts []string
	for _, part := range message.Parts {
		switch tp := part.(type) {
		case protocol.TextPart:
			parts = append(parts, tp.Text)
		case *protocol.TextPart:
			parts = append(parts, tp.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
