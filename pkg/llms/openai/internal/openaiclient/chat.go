package openaiclient

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/effective-security/netresearcher/pkg/schema"
	"github.com/effective-security/xlog"
)

const (
	defaultChatModel = DefaultChatModel
)

// ChatRequest is a request to the chat completions endpoint.
type ChatRequest struct {
	Model       string          `json:"model"`
	Messages    []*ChatMessage  `json:"messages"`
	Temperature float64         `json:"temperature"`
	TopP        float64         `json:"top_p,omitempty"`
	N           int             `json:"n,omitempty"`
	StopWords   []string        `json:"stop,omitempty"`
	Stream      bool            `json:"stream,omitempty"`
	// StreamOptions asks the API to report token usage on the final streamed chunk.
	StreamOptions       *StreamOptions `json:"stream_options,omitempty"`
	MaxCompletionTokens int            `json:"max_completion_tokens,omitempty"`
	FrequencyPenalty    float64        `json:"frequency_penalty,omitempty"`
	PresencePenalty     float64        `json:"presence_penalty,omitempty"`
	Seed                int            `json:"seed,omitempty"`

	// ResponseFormat is the format of the response, used for structured output.
	ResponseFormat *schema.ResponseFormat `json:"response_format,omitempty"`

	Tools []Tool `json:"tools,omitempty"`
	// ToolChoice is "none", "auto" (the default when Tools are present), or a
	// json object naming a specific tool.
	ToolChoice any `json:"tool_choice,omitempty"`

	// FunctionCallBehavior drives the legacy single-function API.
	FunctionCallBehavior FunctionCallBehavior `json:"function_call,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`

	// PromptCacheKey scopes server-side prompt caching, e.g. per chat session.
	PromptCacheKey string `json:"prompt_cache_key,omitempty"`
	// PromptCacheRetention is the requested cache lifetime: "in_memory" or "24h".
	PromptCacheRetention string `json:"prompt_cache_retention,omitempty"`

	// StreamingFunc is a function to be called for each chunk of a streaming response.
	// Return an error to stop streaming early.
	StreamingFunc          func(ctx context.Context, chunk []byte) error                 `json:"-"`
	StreamingReasoningFunc func(ctx context.Context, reasoningChunk, chunk []byte) error `json:"-"`
}

// StreamOptions for streamed chat completions.
type StreamOptions struct {
	// IncludeUsage requests an extra final chunk carrying token usage stats.
	IncludeUsage bool `json:"include_usage"`
}

// ToolCall is a call to a tool.
type ToolCall struct {
	ID       string       `json:"id,omitempty"`
	Type     ToolType     `json:"type"`
	Function ToolFunction `json:"function,omitempty"`
	// Index is only present in streamed deltas, it identifies which tool call
	// a fragment belongs to.
	Index *int `json:"index,omitempty"`
}

// ToolFunction is a function in a tool call.
type ToolFunction struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// ChatMessage is a message in a chat request.
type ChatMessage struct {
	// Role is one of system, user, assistant, or tool.
	Role string
	// Content is the plain-text content of the message.
	Content string
	// MultiContent takes precedence over Content when set.
	MultiContent []llms.ContentPart

	// Name of the author of this message.
	Name string

	// ToolCalls are the tool invocations requested by an assistant message.
	ToolCalls []ToolCall

	// FunctionCall is the legacy single-function call field.
	FunctionCall *FunctionCall

	// ToolCallID ties a tool response message to the call it answers.
	ToolCallID string

	// ReasoningContent carries the model's reasoning trace when the backend
	// exposes one (e.g. deepseek-style reasoners).
	ReasoningContent string
}

func (m ChatMessage) MarshalJSON() ([]byte, error) {
	msg := struct {
		Role         string        `json:"role"`
		Content      any           `json:"content"`
		Name         string        `json:"name,omitempty"`
		ToolCalls    []ToolCall    `json:"tool_calls,omitempty"`
		FunctionCall *FunctionCall `json:"function_call,omitempty"`
		ToolCallID   string        `json:"tool_call_id,omitempty"`
	}{
		Role:         m.Role,
		Content:      m.Content,
		Name:         m.Name,
		ToolCalls:    m.ToolCalls,
		FunctionCall: m.FunctionCall,
		ToolCallID:   m.ToolCallID,
	}
	if len(m.MultiContent) > 0 {
		parts, err := chatMessageParts(m.MultiContent)
		if err != nil {
			return nil, err
		}
		msg.Content = parts
	}
	return json.Marshal(msg)
}

func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	msg := struct {
		Role             string        `json:"role"`
		Content          string        `json:"content"`
		Name             string        `json:"name,omitempty"`
		ToolCalls        []ToolCall    `json:"tool_calls,omitempty"`
		FunctionCall     *FunctionCall `json:"function_call,omitempty"`
		ToolCallID       string        `json:"tool_call_id,omitempty"`
		ReasoningContent string        `json:"reasoning_content,omitempty"`
	}{}
	if err := json.Unmarshal(data, &msg); err != nil {
		return errors.WithStack(err)
	}
	m.Role = msg.Role
	m.Content = msg.Content
	m.Name = msg.Name
	m.ToolCalls = msg.ToolCalls
	m.FunctionCall = msg.FunctionCall
	m.ToolCallID = msg.ToolCallID
	m.ReasoningContent = msg.ReasoningContent
	return nil
}

type chatMessagePart struct {
	Type     string               `json:"type"`
	Text     string               `json:"text,omitempty"`
	ImageURL *chatMessageImageURL `json:"image_url,omitempty"`
}

type chatMessageImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

func chatMessageParts(content []llms.ContentPart) ([]chatMessagePart, error) {
	parts := make([]chatMessagePart, 0, len(content))
	for _, part := range content {
		switch p := part.(type) {
		case llms.TextContent:
			parts = append(parts, chatMessagePart{Type: "text", Text: p.Text})
		case llms.ImageURLContent:
			parts = append(parts, chatMessagePart{
				Type:     "image_url",
				ImageURL: &chatMessageImageURL{URL: p.URL, Detail: p.Detail},
			})
		case llms.BinaryContent:
			// binary data goes over the wire as a data URL
			parts = append(parts, chatMessagePart{
				Type:     "image_url",
				ImageURL: &chatMessageImageURL{URL: p.String()},
			})
		default:
			return nil, errors.Errorf("content part %T not supported by the chat completions API", part)
		}
	}
	return parts, nil
}

// ChatCompletionChoice is a choice in a chat response.
type ChatCompletionChoice struct {
	Index        int          `json:"index"`
	Message      ChatMessage  `json:"message"`
	FinishReason FinishReason `json:"finish_reason"`
}

// FinishReason is the reason a chat response finished.
type FinishReason string

const (
	FinishReasonStop          FinishReason = "stop"
	FinishReasonLength        FinishReason = "length"
	FinishReasonFunctionCall  FinishReason = "function_call"
	FinishReasonToolCalls     FinishReason = "tool_calls"
	FinishReasonContentFilter FinishReason = "content_filter"
	FinishReasonNull          FinishReason = "null"
)

// ChatUsage is the token accounting returned with a chat response.
// Token counts are int64 so they can flow into generation info unchanged.
type ChatUsage struct {
	PromptTokens        int64 `json:"prompt_tokens"`
	CompletionTokens    int64 `json:"completion_tokens"`
	TotalTokens         int64 `json:"total_tokens"`
	PromptTokensDetails struct {
		AudioTokens  int64 `json:"audio_tokens"`
		CachedTokens int64 `json:"cached_tokens"`
	} `json:"prompt_tokens_details"`
	CompletionTokensDetails struct {
		AudioTokens     int64 `json:"audio_tokens"`
		ReasoningTokens int64 `json:"reasoning_tokens"`
	} `json:"completion_tokens_details"`
}

// ChatCompletionResponse is a response to a chat request.
type ChatCompletionResponse struct {
	ID      string                  `json:"id,omitempty"`
	Created int64                   `json:"created,omitempty"`
	Choices []*ChatCompletionChoice `json:"choices,omitempty"`
	Model   string                  `json:"model,omitempty"`
	Object  string                  `json:"object,omitempty"`
	Usage   ChatUsage               `json:"usage,omitempty"`
}

// StreamedChatResponsePayload is one SSE chunk of a streamed chat response.
type StreamedChatResponsePayload struct {
	ID      string  `json:"id,omitempty"`
	Created float64 `json:"created,omitempty"`
	Model   string  `json:"model,omitempty"`
	Object  string  `json:"object,omitempty"`
	Choices []struct {
		Index int `json:"index"`
		Delta struct {
			Role             string        `json:"role,omitempty"`
			Content          string        `json:"content,omitempty"`
			ReasoningContent string        `json:"reasoning_content,omitempty"`
			FunctionCall     *FunctionCall `json:"function_call,omitempty"`
			ToolCalls        []*ToolCall   `json:"tool_calls,omitempty"`
		} `json:"delta"`
		FinishReason FinishReason `json:"finish_reason"`
	} `json:"choices"`
	// Usage arrives on the final chunk when stream_options.include_usage is set.
	Usage *ChatUsage `json:"usage,omitempty"`
	Error error      `json:"-"`
}

// FunctionDefinition is a definition of a function that can be called by the model.
type FunctionDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  any    `json:"parameters"`
	Strict      bool   `json:"strict,omitempty"`
}

// Tool is a tool the model may call.
type Tool struct {
	Type     ToolType           `json:"type"`
	Function FunctionDefinition `json:"function,omitempty"`
}

// FunctionCallBehavior is the behavior to use when calling functions.
type FunctionCallBehavior string

const (
	// FunctionCallBehaviorUnspecified is the empty string.
	FunctionCallBehaviorUnspecified FunctionCallBehavior = ""
	// FunctionCallBehaviorNone will not call any functions.
	FunctionCallBehaviorNone FunctionCallBehavior = "none"
	// FunctionCallBehaviorAuto will call functions automatically.
	FunctionCallBehaviorAuto FunctionCallBehavior = "auto"
)

// FunctionCall is a call to a function.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

func (c *Client) createChat(ctx context.Context, payload *ChatRequest) (*ChatCompletionResponse, error) {
	if payload.StreamingFunc != nil || payload.StreamingReasoningFunc != nil {
		payload.Stream = true
		payload.StreamOptions = &StreamOptions{IncludeUsage: true}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}

	u := c.buildURL("/chat/completions", payload.Model)
	logger.ContextKV(ctx, xlog.DEBUG, "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	c.setHeaders(req)

	r, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer func() { _ = r.Body.Close() }()

	if r.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("API returned unexpected status code: %d", r.StatusCode)
		if r.StatusCode == http.StatusNotFound {
			msg += ": url: " + u
		}
		var errResp errorMessage
		if err := json.NewDecoder(r.Body).Decode(&errResp); err != nil {
			return nil, errors.New(msg)
		}
		return nil, errors.Errorf("%s: %s", msg, errResp.Error.Message)
	}

	if payload.Stream {
		return parseStreamingChatResponse(ctx, r, payload)
	}

	var response ChatCompletionResponse
	if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	return &response, nil
}

func parseStreamingChatResponse(ctx context.Context, r *http.Response, payload *ChatRequest) (*ChatCompletionResponse, error) { //nolint:cyclop
	scanner := bufio.NewScanner(r.Body)
	responseChan := make(chan StreamedChatResponsePayload)
	go func() {
		defer close(responseChan)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "[DONE]" {
				return
			}
			var streamPayload StreamedChatResponsePayload
			if err := json.Unmarshal([]byte(data), &streamPayload); err != nil {
				streamPayload.Error = errors.Wrap(err, "decode stream payload")
				responseChan <- streamPayload
				return
			}
			responseChan <- streamPayload
		}
		if err := scanner.Err(); err != nil {
			logger.ContextKV(ctx, xlog.ERROR, "reason", "stream_scan", "err", err.Error())
		}
	}()

	response := ChatCompletionResponse{
		Choices: []*ChatCompletionChoice{{}},
	}
	for streamResponse := range responseChan {
		if streamResponse.Error != nil {
			return nil, streamResponse.Error
		}
		if streamResponse.Usage != nil {
			response.Usage = *streamResponse.Usage
		}
		if len(streamResponse.Choices) == 0 {
			continue
		}
		choice := response.Choices[0]
		delta := streamResponse.Choices[0].Delta

		chunk := []byte(delta.Content)
		reasoningChunk := []byte(delta.ReasoningContent)
		choice.Message.Content += delta.Content
		choice.Message.ReasoningContent += delta.ReasoningContent
		if streamResponse.Choices[0].FinishReason != "" {
			choice.FinishReason = streamResponse.Choices[0].FinishReason
		}

		if delta.FunctionCall != nil {
			if choice.Message.FunctionCall == nil {
				choice.Message.FunctionCall = &FunctionCall{}
			}
			choice.Message.FunctionCall.Name += delta.FunctionCall.Name
			choice.Message.FunctionCall.Arguments += delta.FunctionCall.Arguments
		}
		choice.Message.ToolCalls = updateToolCalls(choice.Message.ToolCalls, delta.ToolCalls)

		if payload.StreamingFunc != nil && len(chunk) > 0 {
			if err := payload.StreamingFunc(ctx, chunk); err != nil {
				return nil, errors.WithMessage(err, "streaming func returned an error")
			}
		}
		if payload.StreamingReasoningFunc != nil && (len(chunk) > 0 || len(reasoningChunk) > 0) {
			if err := payload.StreamingReasoningFunc(ctx, reasoningChunk, chunk); err != nil {
				return nil, errors.WithMessage(err, "streaming reasoning func returned an error")
			}
		}
	}
	return &response, nil
}

// updateToolCalls merges streamed tool call fragments. The first fragment of a
// call carries the ID and function name, later fragments append argument text
// under the same index.
func updateToolCalls(calls []ToolCall, deltas []*ToolCall) []ToolCall {
	for _, d := range deltas {
		if d == nil {
			continue
		}
		if d.Index != nil && *d.Index < len(calls) {
			tc := &calls[*d.Index]
			tc.Function.Arguments += d.Function.Arguments
			if d.Function.Name != "" {
				tc.Function.Name = d.Function.Name
			}
			if d.ID != "" {
				tc.ID = d.ID
			}
			continue
		}
		calls = append(calls, *d)
	}
	return calls
}

// CompletionRequest is a request for a one-shot text completion. It is served
// through the chat completions endpoint with a single user message.
type CompletionRequest struct {
	Model            string   `json:"model"`
	Prompt           string   `json:"prompt"`
	Temperature      float64  `json:"temperature"`
	MaxTokens        int      `json:"max_tokens,omitempty"`
	N                int      `json:"n,omitempty"`
	StopWords        []string `json:"stop,omitempty"`
	TopP             float64  `json:"top_p,omitempty"`
	FrequencyPenalty float64  `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64  `json:"presence_penalty,omitempty"`
	Seed             int      `json:"seed,omitempty"`

	StreamingFunc func(ctx context.Context, chunk []byte) error `json:"-"`
}

func (c *Client) createCompletion(ctx context.Context, payload *CompletionRequest) (*ChatCompletionResponse, error) {
	return c.createChat(ctx, &ChatRequest{
		Model: payload.Model,
		Messages: []*ChatMessage{
			{Role: "user", Content: payload.Prompt},
		},
		Temperature:         payload.Temperature,
		MaxCompletionTokens: payload.MaxTokens,
		N:                   payload.N,
		StopWords:           payload.StopWords,
		TopP:                payload.TopP,
		FrequencyPenalty:    payload.FrequencyPenalty,
		PresencePenalty:     payload.PresencePenalty,
		Seed:                payload.Seed,
		StreamingFunc:       payload.StreamingFunc,
	})
}
