package a2a_test

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/netresearcher/chatmodel"
	"github.com/effective-security/netresearcher/internal/a2a"
	"github.com/effective-security/netresearcher/internal/researcher"
	"github.com/effective-security/netresearcher/mocks/mockllms"
	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/effective-security/netresearcher/pkg/llmutils"
	"github.com/effective-security/netresearcher/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"trpc.group/trpc-go/trpc-a2a-go/protocol"
	"trpc.group/trpc-go/trpc-a2a-go/taskmanager"
)

func newEchoLLM(ctrl *gomock.Controller) *mockllms.MockModel {
	mockLLM := mockllms.NewMockModel(ctrl)
	mockLLM.EXPECT().GetProviderType().Return(llms.ProviderOpenAI).AnyTimes()
	mockLLM.EXPECT().GetName().Return("default").AnyTimes()
	mockLLM.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, messages []llms.Message, options ...llms.CallOption) (*llms.ContentResponse, error) {
			input := llmutils.FindLastUserQuestion(messages)
			if strings.Contains(input, "error") {
				return nil, errors.New("model unavailable")
			}
			return &llms.ContentResponse{
				Choices: []*llms.ContentChoice{
					{
						Content: "answer to: " + input,
					},
				},
			}, nil
		}).AnyTimes()
	return mockLLM
}

func newTestProcessor(t *testing.T) (*a2a.Processor, store.MessageStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	memstore := store.NewMemoryStore()
	res := researcher.New(newEchoLLM(ctrl), memstore, nil)
	return a2a.NewProcessor(res), memstore
}

func userMessage(text, contextID string) protocol.Message {
	msg := protocol.NewMessage(protocol.MessageRoleUser, []protocol.Part{protocol.NewTextPart(text)})
	if contextID != "" {
		msg.ContextID = &contextID
	}
	return msg
}

func replyText(t *testing.T, result *taskmanager.MessageProcessingResult) (string, string) {
	t.Helper()
	require.NotNil(t, result)
	reply, ok := result.Result.(*protocol.Message)
	require.True(t, ok, "expected a message result")
	assert.Equal(t, protocol.MessageRoleAgent, reply.Role)
	require.NotNil(t, reply.ContextID)

	var parts []string
	for _, part := range reply.Parts {
		switch tp := part.(type) {
		case protocol.TextPart:
			parts = append(parts, tp.Text)
		case *protocol.TextPart:
			parts = append(parts, tp.Text)
		}
	}
	return strings.Join(parts, "\n"), *reply.ContextID
}

func TestNewAgentCard(t *testing.T) {
	t.Parallel()
	card := a2a.NewAgentCard("0.0.0.0", 8085)

	assert.Equal(t, "Network Researcher", card.Name)
	assert.Equal(t, "I can gather information about Open Virtual Networking and Open vSwitch to answer questions about the network.", card.Description)
	assert.Equal(t, "http://0.0.0.0:8085/", card.URL)
	require.NotNil(t, card.Capabilities.Streaming)
	assert.True(t, *card.Capabilities.Streaming)
	require.NotNil(t, card.Capabilities.StateTransitionHistory)
	assert.True(t, *card.Capabilities.StateTransitionHistory)

	require.Len(t, card.Skills, 1)
	skill := card.Skills[0]
	assert.Equal(t, "Research Network Information", skill.Name)
	require.NotNil(t, skill.Description)
	assert.Equal(t, "Uses tools to gather information about the network.", *skill.Description)
	require.Len(t, skill.Examples, 5)
	assert.Equal(t, "What is the OVN network topology?", skill.Examples[0])
}

func TestProcessMessage(t *testing.T) {
	t.Parallel()
	processor, memstore := newTestProcessor(t)
	ctx := context.Background()

	result, err := processor.ProcessMessage(ctx, userMessage("How many logical switches are there?", "session-a"), taskmanager.ProcessOptions{}, nil)
	require.NoError(t, err)
	answer, contextID := replyText(t, result)
	assert.Equal(t, "answer to: How many logical switches are there?", answer)
	assert.Equal(t, "session-a", contextID)

	// same context ID continues the same session
	result, err = processor.ProcessMessage(ctx, userMessage("And how many routers?", "session-a"), taskmanager.ProcessOptions{}, nil)
	require.NoError(t, err)
	_, contextID = replyText(t, result)
	assert.Equal(t, "session-a", contextID)

	chatCtx := chatmodel.WithChatContext(ctx, chatmodel.NewChatContext("session-a", nil))
	history := memstore.Messages(chatCtx)
	assert.Len(t, history, 4)

	// the session is titled with the first question
	info, err := memstore.GetChatInfo(chatCtx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, "How many logical switches are there?", info.Title)
}

func TestProcessMessageFreshSession(t *testing.T) {
	t.Parallel()
	processor, _ := newTestProcessor(t)
	ctx := context.Background()

	result, err := processor.ProcessMessage(ctx, userMessage("What bridges are there?", ""), taskmanager.ProcessOptions{}, nil)
	require.NoError(t, err)
	_, first := replyText(t, result)
	assert.NotEmpty(t, first)

	result, err = processor.ProcessMessage(ctx, userMessage("What bridges are there?", ""), taskmanager.ProcessOptions{}, nil)
	require.NoError(t, err)
	_, second := replyText(t, result)
	assert.NotEmpty(t, second)

	// messages without a context ID get separate sessions
	assert.NotEqual(t, first, second)
}

func TestProcessMessageErrors(t *testing.T) {
	t.Parallel()
	processor, _ := newTestProcessor(t)
	ctx := context.Background()

	// no text parts
	msg := protocol.NewMessage(protocol.MessageRoleUser, nil)
	_, err := processor.ProcessMessage(ctx, msg, taskmanager.ProcessOptions{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text parts")

	// model failure surfaces as a processing error
	_, err = processor.ProcessMessage(ctx, userMessage("error", "session-b"), taskmanager.ProcessOptions{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to research the question")
}

func TestNewServer(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	res := researcher.New(newEchoLLM(ctrl), store.NewMemoryStore(), nil)
	srv, err := a2a.NewServer(&a2a.Config{Host: "127.0.0.1", Port: 0}, res)
	require.NoError(t, err)
	require.NotNil(t, srv)
}
