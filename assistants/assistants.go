package assistants

import (
	"context"
	"strings"

	"github.com/effective-security/netresearcher/chatmodel"
	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/effective-security/netresearcher/pkg/llmutils"
	"github.com/effective-security/netresearcher/tools"
	"github.com/effective-security/xlog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/netresearcher", "assistants")

//go:generate mockgen -destination=../mocks/mockllms/llm_mock.gen.go -package mockllms github.com/effective-security/netresearcher/pkg/llms Model
//go:generate mockgen -source=assistants.go -destination=../mocks/mockassitants/assistants_mock.gen.go -package mockassitants

// CallInput is the input for the Run and Call methods.
type CallInput struct {
	// Input is the user request sent to the assistant.
	Input string
	// PromptInputs provides values for the system prompt template.
	PromptInputs map[string]any
	// Messages are additional messages to append to the request,
	// after the chat history and before the user input.
	Messages []llms.Message
	// Options are per-call options.
	Options []Option
}

type McpServerRegistrator interface {
	RegisterPrompt(name string, description string, handler any) error
}

type IAssistant interface {
	// Name returns the name of the Assistant.
	Name() string
	// Description returns the description of the Assistant, to be used in the prompt of other Assistants or LLMs.
	// Should not exceed LLM model limit.
	Description() string
	// FormatPrompt returns the system prompt formatted with the given values.
	FormatPrompt(values map[string]any) (llms.PromptValue, error)
	GetPromptInputVariables() []string
	// GetTools returns the tools available to the Assistant.
	GetTools() []tools.ITool
	// LastRunMessages returns all messages from the last run,
	// including the tool calls and their results.
	LastRunMessages() []llms.Message

	Call(ctx context.Context, input *CallInput) (*llms.ContentResponse, error)
}

type HasCallback interface {
	GetCallback() Callback
}

type TypeableAssistant[O chatmodel.ContentProvider] interface {
	IAssistant
	HasCallback
	// Run executes the assistant with the given input and parses the response
	// into optionalOutputType, when provided.
	// Do not use this method directly, use the Run function instead.
	Run(ctx context.Context, input *CallInput, optionalOutputType *O) (*llms.ContentResponse, error)
}

type Callback interface {
	tools.Callback
	OnAssistantStart(ctx context.Context, agent IAssistant, input string)
	OnAssistantEnd(ctx context.Context, agent IAssistant, input string, resp *llms.ContentResponse, messages []llms.Message)
	OnAssistantError(ctx context.Context, agent IAssistant, input string, err error, messages []llms.Message)
	OnAssistantLLMParseError(ctx context.Context, agent IAssistant, input string, response string, err error)
	OnAssistantLLMCallStart(ctx context.Context, agent IAssistant, llm llms.Model, payload []llms.Message)
	OnAssistantLLMCallEnd(ctx context.Context, agent IAssistant, llm llms.Model, resp *llms.ContentResponse)
	OnToolNotFound(ctx context.Context, agent IAssistant, tool string)
}

// IMCPAssistant is an interface that extends IAssistant to include functionality for
// registering the assistant with an MCP server.
// The RegisterMCP method allows the assistant to be registered with a given
// MCP Server.
type IMCPAssistant interface {
	IAssistant
	RegisterMCP(registrator McpServerRegistrator) error
	CallMCP(context.Context, chatmodel.MCPInputRequest) (*mcp.GetPromptResult, error)
}

// IAssistantTool is a tool backed by an assistant,
// allowing one assistant to delegate work to another.
type IAssistantTool interface {
	tools.ITool
	CallAssistant(ctx context.Context, input string, options ...Option) (string, error)
}

type toolDescription struct {
	Name        string
	Description string
}

type assistantDescription struct {
	Name        string
	Description string
	Tools       []toolDescription `json:",omitempty"`
}

type assistantsDescription struct {
	Assistants []assistantDescription
}

// oneLine collapses whitespace runs, including newlines, to a single space.
func oneLine(val string) string {
	return strings.Join(strings.Fields(val), " ")
}

// GetDescriptions returns a JSON block describing the assistants,
// suitable for embedding in a supervisor prompt.
func GetDescriptions(list ...IAssistant) string {
	var desc assistantsDescription
	for _, item := range list {
		desc.Assistants = append(desc.Assistants, assistantDescription{
			Name:        item.Name(),
			Description: oneLine(item.Description()),
		})
	}
	return llmutils.BackticksJSON(llmutils.ToJSONIndent(desc))
}

// GetDescriptionsWithTools returns a JSON block describing the assistants and their tools.
func GetDescriptionsWithTools(list ...IAssistant) string {
	var desc assistantsDescription
	for _, item := range list {
		ad := assistantDescription{
			Name:        item.Name(),
			Description: oneLine(item.Description()),
		}
		for _, tool := range item.GetTools() {
			ad.Tools = append(ad.Tools, toolDescription{
				Name:        tool.Name(),
				Description: oneLine(tool.Description()),
			})
		}
		desc.Assistants = append(desc.Assistants, ad)
	}
	return llmutils.BackticksJSON(llmutils.ToJSONIndent(desc))
}

func MapAssistants(list ...IAssistant) map[string]IAssistant {
	if len(list) == 0 {
		return nil
	}
	m := make(map[string]IAssistant, len(list))
	for _, a := range list {
		m[a.Name()] = a
	}
	return m
}

// Run executes the assistant with the given input,
// firing the assistant's callbacks around the run.
func Run[O chatmodel.ContentProvider](
	ctx context.Context,
	assistant TypeableAssistant[O],
	input *CallInput,
	optionalOutputType *O,
) (*llms.ContentResponse, error) {
	callback := assistant.GetCallback()

	if callback != nil {
		callback.OnAssistantStart(ctx, assistant, input.Input)
	}

	apiResp, err := assistant.Run(ctx, input, optionalOutputType)
	if err != nil {
		if callback != nil {
			callback.OnAssistantError(ctx, assistant, input.Input, err, assistant.LastRunMessages())
		}
		return nil, err
	}

	if callback != nil {
		callback.OnAssistantEnd(ctx, assistant, input.Input, apiResp, assistant.LastRunMessages())
	}
	return apiResp, nil
}

// Call executes a generic assistant without typed output.
func Call(
	ctx context.Context,
	assistant IAssistant,
	input *CallInput,
) (*llms.ContentResponse, error) {
	var callback Callback
	if cb, ok := assistant.(HasCallback); ok {
		callback = cb.GetCallback()
	}

	if callback != nil {
		callback.OnAssistantStart(ctx, assistant, input.Input)
	}

	apiResp, err := assistant.Call(ctx, input)
	if err != nil {
		if callback != nil {
			callback.OnAssistantError(ctx, assistant, input.Input, err, assistant.LastRunMessages())
		}
		return nil, err
	}

	if callback != nil {
		callback.OnAssistantEnd(ctx, assistant, input.Input, apiResp, assistant.LastRunMessages())
	}
	return apiResp, nil
}
