package openai

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/effective-security/netresearcher/pkg/llms/openai/internal/openaiclient"
	"github.com/effective-security/x/values"
	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/responses"
)

type ChatMessage = openaiclient.ChatMessage

var (
	// ErrEmptyResponse is returned when the API returns no choices.
	ErrEmptyResponse = errors.New("no response")
	// ErrMissingToken is returned when the API token is not configured.
	ErrMissingToken = errors.New("missing the OpenAI API key, set it in the OPENAI_API_KEY environment variable")
	// ErrUnexpectedResponseLength is returned when the embeddings response does not match the input.
	ErrUnexpectedResponseLength = errors.New("unexpected length of response")
)

// LLM is an OpenAI-compatible chat model. It talks to api.openai.com by
// default and to any compatible server (Azure OpenAI, Perplexity, ollama,
// vllm) via WithBaseURL and WithProvider.
type LLM struct {
	client *openaiclient.Client
}

const (
	RoleSystem    = "system"
	RoleAssistant = "assistant"
	RoleUser      = "user"
	RoleTool      = "tool"
)

var _ llms.Model = (*LLM)(nil)

// New returns a new OpenAI-compatible LLM.
func New(opts ...Option) (*LLM, error) {
	_, c, err := newClient(opts...)
	if err != nil {
		return nil, err
	}
	return &LLM{
		client: c,
	}, err
}

func newClient(opts ...Option) (*options, *openaiclient.Client, error) {
	options := &options{
		token:        os.Getenv(tokenEnvVarName),
		model:        os.Getenv(modelEnvVarName),
		baseURL:      values.StringsCoalesce(os.Getenv(baseURLEnvVarName), os.Getenv(baseAPIBaseEnvVarName)),
		organization: os.Getenv(organizationEnvVarName),
		apiVersion:   DefaultAPIVersion,
		provider:     ProviderOpenAI,
		httpClient:   http.DefaultClient,
	}

	for _, opt := range opts {
		opt(options)
	}

	if len(options.token) == 0 {
		return options, nil, ErrMissingToken
	}

	cli, err := openaiclient.New(
		openaiclient.ProviderType(options.provider),
		options.model,
		options.token,
		options.baseURL,
		options.organization,
		options.apiVersion,
		options.httpClient,
		options.embeddingModel,
		options.responseFormat,
		openaiclient.WithResponsesAPI(options.useResponsesAPI),
	)
	return options, cli, err
}

// GetName implements the Model interface.
func (o *LLM) GetName() string {
	return values.StringsCoalesce(o.client.Model, openaiclient.DefaultChatModel)
}

// GetProviderType implements the Model interface.
func (o *LLM) GetProviderType() llms.ProviderType {
	return llms.ProviderType(o.client.Provider)
}

// GenerateContent implements the Model interface.
func (o *LLM) GenerateContent(ctx context.Context, messages []llms.Message, options ...llms.CallOption) (*llms.ContentResponse, error) { //nolint:cyclop
	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	if o.client.SupportsResponsesAPI() {
		return o.generateResponsesContent(ctx, messages, &opts)
	}

	chatMsgs, err := chatMessagesFromMessages(messages)
	if err != nil {
		return nil, err
	}

	req := &openaiclient.ChatRequest{
		Model:                  opts.Model,
		StopWords:              opts.StopWords,
		Messages:               chatMsgs,
		StreamingFunc:          opts.StreamingFunc,
		StreamingReasoningFunc: opts.StreamingReasoningFunc,
		Temperature:            opts.Temperature,
		N:                      opts.N,
		FrequencyPenalty:       opts.FrequencyPenalty,
		PresencePenalty:        opts.PresencePenalty,

		MaxCompletionTokens: opts.MaxTokens,

		ToolChoice:     opts.ToolChoice,
		Seed:           opts.Seed,
		Metadata:       opts.Metadata,
		ResponseFormat: opts.ResponseFormat,
	}

	for _, tool := range opts.Tools {
		t, err := toolFromTool(tool)
		if err != nil {
			return nil, errors.WithMessage(err, "failed to convert llms tool to openai tool")
		}
		req.Tools = append(req.Tools, t)
	}

	// the client-level response format wins over the per-call one
	if o.client.ResponseFormat != nil {
		req.ResponseFormat = o.client.ResponseFormat
	}

	applyPromptCacheToChatRequest(req, o.client.Provider, &opts)

	result, err := o.client.CreateChat(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(result.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	choices := make([]*llms.ContentChoice, len(result.Choices))
	for i, c := range result.Choices {
		choices[i] = &llms.ContentChoice{
			Content:          c.Message.Content,
			ReasoningContent: c.Message.ReasoningContent,
			StopReason:       string(c.FinishReason),
			GenerationInfo: map[string]any{
				"InputTokens":     result.Usage.PromptTokens,
				"OutputTokens":    result.Usage.CompletionTokens,
				"TotalTokens":     result.Usage.TotalTokens,
				"CacheReadTokens": result.Usage.PromptTokensDetails.CachedTokens,
				"ReasoningTokens": result.Usage.CompletionTokensDetails.ReasoningTokens,
			},
		}

		for _, tool := range c.Message.ToolCalls {
			choices[i].ToolCalls = append(choices[i].ToolCalls, llms.ToolCall{
				ID:   tool.ID,
				Type: string(tool.Type),
				FunctionCall: &llms.FunctionCall{
					Name:      tool.Function.Name,
					Arguments: tool.Function.Arguments,
				},
			})
		}
		// populate legacy single-function call field for backwards compatibility
		if len(choices[i].ToolCalls) > 0 {
			choices[i].FuncCall = choices[i].ToolCalls[0].FunctionCall
		}
	}
	response := &llms.ContentResponse{Choices: choices}
	return response, nil
}

// generateResponsesContent serves the call through the /responses endpoint.
// Only text conversations are supported there; tool calling stays on the chat
// completions path.
func (o *LLM) generateResponsesContent(ctx context.Context, messages []llms.Message, opts *llms.CallOptions) (*llms.ContentResponse, error) {
	if len(opts.Tools) > 0 {
		return nil, errors.New("tool calls are not supported over the responses API")
	}

	var system []string
	var turns []string
	var lastUser string
	for _, mc := range messages {
		var parts []string
		for _, part := range mc.Parts {
			tp, ok := part.(llms.TextContent)
			if !ok {
				return nil, errors.Errorf("content part %T not supported over the responses API", part)
			}
			parts = append(parts, tp.Text)
		}
		text := strings.Join(parts, "\n")
		switch mc.Role {
		case llms.RoleSystem:
			system = append(system, text)
		case llms.RoleAI:
			turns = append(turns, "Assistant: "+text)
		case llms.RoleHuman, llms.RoleGeneric:
			turns = append(turns, "User: "+text)
			lastUser = text
		default:
			return nil, errors.Errorf("role %v not supported over the responses API", mc.Role)
		}
	}

	input := strings.Join(turns, "\n\n")
	if len(turns) == 1 && lastUser != "" {
		input = lastUser
	}

	req := &responses.ResponseNewParams{
		Model: opts.Model,
		Input: responses.ResponseNewParamsInputUnion{OfString: param.NewOpt(input)},
	}
	if len(system) > 0 {
		req.Instructions = param.NewOpt(strings.Join(system, "\n\n"))
	}
	if opts.MaxTokens > 0 {
		req.MaxOutputTokens = param.NewOpt(int64(opts.MaxTokens))
	}
	if opts.Temperature > 0 {
		req.Temperature = param.NewOpt(opts.Temperature)
	}

	applyPromptCacheToResponsesRequest(req, o.client.Provider, opts)

	var resp *responses.Response
	var err error
	if opts.StreamingFunc != nil {
		resp, err = o.client.CreateStreamingResponse(ctx, req, opts.StreamingFunc)
	} else {
		resp, err = o.client.CreateResponse(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	choice := &llms.ContentChoice{
		Content:    resp.OutputText(),
		StopReason: string(resp.Status),
		GenerationInfo: map[string]any{
			"InputTokens":     resp.Usage.InputTokens,
			"OutputTokens":    resp.Usage.OutputTokens,
			"TotalTokens":     resp.Usage.TotalTokens,
			"CacheReadTokens": resp.Usage.InputTokensDetails.CachedTokens,
			"ReasoningTokens": resp.Usage.OutputTokensDetails.ReasoningTokens,
		},
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{choice}}, nil
}

func chatMessagesFromMessages(messages []llms.Message) ([]*ChatMessage, error) {
	chatMsgs := make([]*ChatMessage, 0, len(messages))
	for _, mc := range messages {
		msg := &ChatMessage{MultiContent: mc.Parts}
		switch mc.Role {
		case llms.RoleSystem:
			msg.Role = RoleSystem
		case llms.RoleAI:
			msg.Role = RoleAssistant
		case llms.RoleHuman, llms.RoleGeneric:
			msg.Role = RoleUser
		case llms.RoleTool:
			msg.Role = RoleTool
			// a tool message carries exactly one ToolCallResponse part; it
			// becomes content plus the tool_call_id it answers.
			if len(mc.Parts) != 1 {
				return nil, errors.Errorf("expected exactly one part for role %v, got %v", mc.Role, len(mc.Parts))
			}
			switch p := mc.Parts[0].(type) {
			case llms.ToolCallResponse:
				msg.ToolCallID = p.ToolCallID
				msg.Content = p.Content
			default:
				return nil, errors.Errorf("expected part of type ToolCallResponse for role %v, got %T", mc.Role, mc.Parts[0])
			}
		default:
			return nil, errors.Errorf("role %v not supported", mc.Role)
		}

		// Here we extract tool calls from the message and populate the ToolCalls field.
		newParts, toolCalls := ExtractToolParts(msg)
		msg.MultiContent = newParts
		msg.ToolCalls = toolCallsFromToolCalls(toolCalls)

		chatMsgs = append(chatMsgs, msg)
	}
	return chatMsgs, nil
}

// CreateEmbedding creates embeddings for the given input texts.
func (o *LLM) CreateEmbedding(ctx context.Context, inputTexts []string) ([][]float32, error) {
	embeddings, err := o.client.CreateEmbedding(ctx, &openaiclient.EmbeddingRequest{
		Input: inputTexts,
		Model: o.client.EmbeddingModel,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create openai embeddings")
	}
	if len(embeddings) == 0 {
		return nil, ErrEmptyResponse
	}
	if len(inputTexts) != len(embeddings) {
		return embeddings, ErrUnexpectedResponseLength
	}
	return embeddings, nil
}

// ExtractToolParts extracts the tool parts from a message.
func ExtractToolParts(msg *ChatMessage) ([]llms.ContentPart, []llms.ToolCall) {
	var content []llms.ContentPart
	var toolCalls []llms.ToolCall
	for _, part := range msg.MultiContent {
		switch p := part.(type) {
		case llms.TextContent:
			content = append(content, p)
		case llms.ImageURLContent:
			content = append(content, p)
		case llms.BinaryContent:
			content = append(content, p)
		case llms.ToolCall:
			toolCalls = append(toolCalls, p)
		}
	}
	return content, toolCalls
}

// toolFromTool converts an llms.Tool to a Tool.
func toolFromTool(t llms.Tool) (openaiclient.Tool, error) {
	tool := openaiclient.Tool{
		Type: openaiclient.ToolType(t.Type),
	}
	switch t.Type {
	case string(openaiclient.ToolTypeFunction):
		if t.Function == nil {
			return openaiclient.Tool{}, errors.New("function tool is missing its definition")
		}
		tool.Function = openaiclient.FunctionDefinition{
			Name:        t.Function.Name,
			Description: t.Function.Description,
			Parameters:  t.Function.Parameters,
			Strict:      t.Function.Strict,
		}
	default:
		return openaiclient.Tool{}, errors.Errorf("tool type %v not supported", t.Type)
	}
	return tool, nil
}

// toolCallsFromToolCalls converts a slice of llms.ToolCall to a slice of ToolCall.
func toolCallsFromToolCalls(tcs []llms.ToolCall) []openaiclient.ToolCall {
	toolCalls := make([]openaiclient.ToolCall, len(tcs))
	for i, tc := range tcs {
		toolCalls[i] = toolCallFromToolCall(tc)
	}
	return toolCalls
}

// toolCallFromToolCall converts an llms.ToolCall to a ToolCall.
func toolCallFromToolCall(tc llms.ToolCall) openaiclient.ToolCall {
	return openaiclient.ToolCall{
		ID:   tc.ID,
		Type: openaiclient.ToolType(tc.Type),
		Function: openaiclient.ToolFunction{
			Name:      tc.FunctionCall.Name,
			Arguments: tc.FunctionCall.Arguments,
		},
	}
}
