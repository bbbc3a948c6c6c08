package researcher

import (
	"os"

	"github.com/effective-security/netresearcher/pkg/llmfactory"
	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/effective-security/netresearcher/pkg/llms/openai"
	"github.com/effective-security/netresearcher/store"
	"github.com/effective-security/x/values"
	"github.com/effective-security/xlog"
	"github.com/redis/go-redis/v9"
)

// Config describes where the researcher's model and conversation state live.
type Config struct {
	// LLMConfigFile optionally points at a provider configuration file,
	// see pkg/llmfactory. When set it takes precedence over EndpointURL/Model.
	LLMConfigFile string

	// EndpointURL is the OpenAI-compatible endpoint serving the model,
	// typically a self-hosted inference server.
	EndpointURL string

	// Model is the name of the model to request from the endpoint.
	Model string

	// RedisAddr enables the Redis-backed conversation store when set,
	// otherwise history is kept in memory for the process lifetime.
	RedisAddr string
}

// ConfigFromEnv reads the model configuration from the environment.
func ConfigFromEnv() *Config {
	return &Config{
		EndpointURL: values.StringsCoalesce(os.Getenv("RESEARCHER_MODEL_ENDPOINT_URL"), "http://localhost:11434"),
		Model:       values.StringsCoalesce(os.Getenv("RESEARCHER_MODEL_NAME"), "default"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}
}

// NewModel builds the chat model. With a provider configuration file the
// default model of the default provider is used; otherwise a single client is
// constructed for the configured endpoint. Self-hosted endpoints ignore the
// API key, but the client requires one.
func NewModel(cfg *Config) (llms.Model, error) {
	if cfg.LLMConfigFile != "" {
		f, err := llmfactory.Load(cfg.LLMConfigFile)
		if err != nil {
			return nil, err
		}
		return f.DefaultModel()
	}

	logger.KV(xlog.DEBUG, "endpoint", cfg.EndpointURL, "model", cfg.Model)
	return openai.New(
		openai.WithProvider(openai.ProviderOpenAI),
		openai.WithBaseURL(cfg.EndpointURL),
		openai.WithModel(cfg.Model),
		openai.WithToken("dummy"),
	)
}

// NewStore builds the conversation store: Redis when configured, in-memory
// otherwise.
func NewStore(cfg *Config) store.MessageStore {
	if cfg.RedisAddr != "" {
		logger.KV(xlog.INFO, "status", "using_redis_store", "addr", cfg.RedisAddr)
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return store.NewRedisStore(client, "netresearcher")
	}
	return store.NewMemoryStore()
}
