package assistants

import (
	"context"

	"github.com/effective-security/netresearcher/chatmodel"
	"github.com/effective-security/netresearcher/encoding"
	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/effective-security/netresearcher/pkg/schema"
	"github.com/effective-security/netresearcher/store"
)

const (
	// DefaultMaxRetries is the number of retries when the model returns an empty response.
	DefaultMaxRetries = 3
	// DefaultMaxContentSize is the limit on the total content size sent to the model,
	// when MaxLength is not set.
	DefaultMaxContentSize = 256 * 1024
	// DefaultMaxToolCalls is the limit on tool executions in a single run,
	// when MaxToolCalls is not set.
	DefaultMaxToolCalls = 32
	// DefaultMaxMessages is the limit on messages in a single run.
	DefaultMaxMessages = 100
)

// Option is a function that can be used to modify the behavior of the Agent Config.
type Option func(*Config)

type Config struct {
	// Model is the model to use in an LLM call.
	Model    string
	modelSet bool

	// MaxTokens is the maximum number of tokens to generate to use in an LLM call.
	MaxTokens    int
	maxTokensSet bool

	// Temperature is the temperature for sampling to use in an LLM call, between 0 and 1.
	Temperature    float64
	temperatureSet bool

	// StopWords is a list of words to stop on to use in an LLM call.
	StopWords    []string
	stopWordsSet bool

	// TopK is the number of tokens to consider for top-k sampling in an LLM call.
	TopK    int
	topkSet bool

	// TopP is the cumulative probability for top-p sampling in an LLM call.
	TopP    float64
	toppSet bool

	// Seed is a seed for deterministic sampling in an LLM call.
	Seed    int
	seedSet bool

	// MinLength is the minimum length of the generated text in an LLM call.
	MinLength    int
	minLengthSet bool

	// MaxLength is the maximum length of the generated text in an LLM call.
	MaxLength    int
	maxLengthSet bool

	// RepetitionPenalty is the repetition penalty for sampling in an LLM call.
	RepetitionPenalty    float64
	repetitionPenaltySet bool

	// CallbackHandler is the callback handler for Chain
	CallbackHandler Callback

	// Tools is a list of tools to use. Each tool can be a specific tool or a function.
	Tools    []llms.Tool
	toolsSet bool

	// ToolChoice is the choice of tool to use, it can either be "none", "auto" (the default behavior), or a specific tool as described in the ToolChoice type.
	ToolChoice    any
	toolChoiceSet bool

	JSONMode bool

	// ResponseFormat overrides the response format for the model call.
	ResponseFormat *schema.ResponseFormat

	// ReasoningEffort hints how much reasoning the model should spend on the call.
	ReasoningEffort llms.ReasoningEffort

	// PromptCachePolicy controls provider-side prompt caching for the call.
	PromptCachePolicy *llms.PromptCachePolicy

	//
	// Below are the options for the Agent, not related to LLM call
	//

	// StreamingFunc is a function to be called for each chunk of a streaming response.
	// Return an error to stop streaming early.
	StreamingFunc func(ctx context.Context, chunk []byte) error

	// Store is the message store for the chat history.
	// By default no store is used, and the history is not persisted.
	Store store.MessageStore

	// MaxMessages limits the number of messages in a single run.
	MaxMessages int
	// MaxToolCalls limits the number of tool executions in a single run.
	MaxToolCalls int

	// EnableFunctionCalls sends the tool definitions to the model,
	// even when the provider does not advertise the function calling capability.
	EnableFunctionCalls bool

	// IsGeneric adds the assistant messages to the run with the Generic role
	// and annotated content, when the assistant runs as a sub-agent.
	IsGeneric bool

	PromptInput        map[string]any
	Examples           chatmodel.FewShotExamples
	Mode               encoding.Mode
	SkipMessageHistory bool
	// SkipToolHistory skips adding the tool calls and their results to the history,
	// keeping only the final response.
	SkipToolHistory bool
}

func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		Mode:        encoding.ModeDefault,
		MaxMessages: DefaultMaxMessages,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Apply returns a copy of the config with the given options applied.
func (c *Config) Apply(opts ...Option) *Config {
	cfg := *c
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithMode is an option that allows to specify the encoding mode.
func WithMode(mode encoding.Mode) Option {
	return func(o *Config) {
		o.Mode = mode
		if mode == encoding.ModeJSON || mode == encoding.ModeJSONSchema || mode == encoding.ModeJSONSchemaStrict {
			o.JSONMode = true
		} else {
			o.JSONMode = false
		}
	}
}

// WithExamples is an option that allows to specify the few-shot examples for the system prompt.
func WithExamples(examples chatmodel.FewShotExamples) Option {
	return func(o *Config) {
		o.Examples = examples
	}
}

// WithSkipMessageHistory is an option that allows to skip adding Assistant messages to History.
func WithSkipMessageHistory(skip bool) Option {
	return func(o *Config) {
		o.SkipMessageHistory = skip
	}
}

// WithSkipToolHistory is an option that allows to skip adding tool calls and their results to History.
func WithSkipToolHistory(skip bool) Option {
	return func(o *Config) {
		o.SkipToolHistory = skip
	}
}

// WithMessageStore is an option that allows to specify the message store for the chat history.
func WithMessageStore(store store.MessageStore) Option {
	return func(o *Config) {
		o.Store = store
	}
}

// WithPromptInput is an option that allows the user to specify the system prompt input.
func WithPromptInput(input map[string]any) Option {
	return func(o *Config) {
		o.PromptInput = input
	}
}

// WithJSONMode is an option for LLM.Call that allows the user to specify whether to use JSON mode.
func WithJSONMode(jsonMode bool) Option {
	return func(o *Config) {
		o.JSONMode = jsonMode
	}
}

// WithResponseFormat is an option that allows to specify the response format for the model call.
func WithResponseFormat(rf *schema.ResponseFormat) Option {
	return func(o *Config) {
		o.ResponseFormat = rf
	}
}

// WithReasoningEffort is an option that allows to specify the reasoning effort for the model call.
func WithReasoningEffort(effort llms.ReasoningEffort) Option {
	return func(o *Config) {
		o.ReasoningEffort = effort
	}
}

// WithPromptCachePolicy is an option that allows to specify the prompt cache policy for the model call.
func WithPromptCachePolicy(policy *llms.PromptCachePolicy) Option {
	return func(o *Config) {
		o.PromptCachePolicy = policy
	}
}

// WithMaxMessages is an option that limits the number of messages in a single run.
func WithMaxMessages(max int) Option {
	return func(o *Config) {
		o.MaxMessages = max
	}
}

// WithMaxToolCalls is an option that limits the number of tool executions in a single run.
func WithMaxToolCalls(max int) Option {
	return func(o *Config) {
		o.MaxToolCalls = max
	}
}

// WithEnableFunctionCalls is an option that sends the tool definitions to the model,
// even when the provider does not advertise the function calling capability.
func WithEnableFunctionCalls(enable bool) Option {
	return func(o *Config) {
		o.EnableFunctionCalls = enable
	}
}

// WithGeneric is an option that marks the assistant as a generic sub-agent.
func WithGeneric(generic bool) Option {
	return func(o *Config) {
		o.IsGeneric = generic
	}
}

// WithModel is an option for LLM.Call.
func WithModel(model string) Option {
	return func(o *Config) {
		o.Model = model
		o.modelSet = true
	}
}

// WithMaxTokens is an option for LLM.Call.
func WithMaxTokens(maxTokens int) Option {
	return func(o *Config) {
		o.MaxTokens = maxTokens
		o.maxTokensSet = true
	}
}

// WithTemperature is an option for LLM.Call.
func WithTemperature(temperature float64) Option {
	return func(o *Config) {
		o.Temperature = temperature
		o.temperatureSet = true
	}
}

// WithStreamingFunc is an option for LLM.Call that allows streaming responses.
func WithStreamingFunc(streamingFunc func(ctx context.Context, chunk []byte) error) Option {
	return func(o *Config) {
		o.StreamingFunc = streamingFunc
	}
}

// WithTopK will add an option to use top-k sampling for LLM.Call.
func WithTopK(topK int) Option {
	return func(o *Config) {
		o.TopK = topK
		o.topkSet = true
	}
}

// WithTopP	will add an option to use top-p sampling for LLM.Call.
func WithTopP(topP float64) Option {
	return func(o *Config) {
		o.TopP = topP
		o.toppSet = true
	}
}

// WithSeed will add an option to use deterministic sampling for LLM.Call.
func WithSeed(seed int) Option {
	return func(o *Config) {
		o.Seed = seed
		o.seedSet = true
	}
}

// WithMinLength will add an option to set the minimum length of the generated text for LLM.Call.
func WithMinLength(minLength int) Option {
	return func(o *Config) {
		o.MinLength = minLength
		o.minLengthSet = true
	}
}

// WithMaxLength will add an option to set the maximum length of the generated text for LLM.Call.
func WithMaxLength(maxLength int) Option {
	return func(o *Config) {
		o.MaxLength = maxLength
		o.maxLengthSet = true
	}
}

// WithRepetitionPenalty will add an option to set the repetition penalty for sampling.
func WithRepetitionPenalty(repetitionPenalty float64) Option {
	return func(o *Config) {
		o.RepetitionPenalty = repetitionPenalty
		o.repetitionPenaltySet = true
	}
}

// WithStopWords is an option for setting the stop words for LLM.Call.
func WithStopWords(stopWords []string) Option {
	return func(o *Config) {
		o.StopWords = stopWords
		o.stopWordsSet = true
	}
}

// WithCallback allows setting a custom Callback Handler.
func WithCallback(callbackHandler Callback) Option {
	return func(o *Config) {
		o.CallbackHandler = callbackHandler
	}
}

// WithTools is an option for LLM.Call.
func WithTools(tools []llms.Tool) Option {
	return func(o *Config) {
		o.Tools = tools
		o.toolsSet = true
	}
}

// WithTool is an option for LLM.Call.
func WithTool(tool llms.Tool) Option {
	return func(o *Config) {
		o.Tools = append(o.Tools, tool)
		o.toolsSet = true
	}
}

// WithToolChoice is an option for LLM.Call.
func WithToolChoice(choice any) Option {
	return func(o *Config) {
		o.ToolChoice = choice
		o.toolChoiceSet = true
	}
}

// GetCallOptions returns the LLM call options for the config,
// with the given per-call options applied on a copy.
func (c *Config) GetCallOptions(options ...Option) []llms.CallOption {
	cfg := c.Apply(options...)

	var chainCallOption []llms.CallOption
	if cfg.modelSet {
		chainCallOption = append(chainCallOption, llms.WithModel(cfg.Model))
	}
	if cfg.maxTokensSet {
		chainCallOption = append(chainCallOption, llms.WithMaxTokens(cfg.MaxTokens))
	}
	if cfg.temperatureSet {
		chainCallOption = append(chainCallOption, llms.WithTemperature(cfg.Temperature))
	}
	if cfg.stopWordsSet {
		chainCallOption = append(chainCallOption, llms.WithStopWords(cfg.StopWords))
	}
	if cfg.topkSet {
		chainCallOption = append(chainCallOption, llms.WithTopK(cfg.TopK))
	}
	if cfg.toppSet {
		chainCallOption = append(chainCallOption, llms.WithTopP(cfg.TopP))
	}
	if cfg.seedSet {
		chainCallOption = append(chainCallOption, llms.WithSeed(cfg.Seed))
	}
	if cfg.minLengthSet {
		chainCallOption = append(chainCallOption, llms.WithMinLength(cfg.MinLength))
	}
	if cfg.maxLengthSet {
		chainCallOption = append(chainCallOption, llms.WithMaxLength(cfg.MaxLength))
	}
	if cfg.repetitionPenaltySet {
		chainCallOption = append(chainCallOption, llms.WithRepetitionPenalty(cfg.RepetitionPenalty))
	}
	if cfg.toolsSet {
		chainCallOption = append(chainCallOption, llms.WithTools(cfg.Tools))
	}
	if cfg.toolChoiceSet {
		chainCallOption = append(chainCallOption, llms.WithToolChoice(cfg.ToolChoice))
	}
	if cfg.StreamingFunc != nil {
		chainCallOption = append(chainCallOption, llms.WithStreamingFunc(cfg.StreamingFunc))
	}
	if cfg.ResponseFormat != nil {
		chainCallOption = append(chainCallOption, llms.WithResponseFormat(cfg.ResponseFormat))
	} else if cfg.JSONMode {
		chainCallOption = append(chainCallOption, llms.WithResponseFormat(&schema.ResponseFormat{Type: "json_object"}))
	}
	if cfg.ReasoningEffort != "" {
		chainCallOption = append(chainCallOption, llms.WithReasoningEffort(cfg.ReasoningEffort))
	}
	if cfg.PromptCachePolicy != nil {
		chainCallOption = append(chainCallOption, llms.WithPromptCachePolicy(cfg.PromptCachePolicy))
	}

	return chainCallOption
}
