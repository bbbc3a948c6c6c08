package llmfactory_test

import (
	"context"
	"testing"

	"github.com/effective-security/netresearcher/pkg/llmfactory"
	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Factory(t *testing.T) {
	t.Setenv("SELF_HOSTED_API_KEY", "fakekey")
	t.Setenv("OPENAI_API_KEY", "fakekey")
	t.Setenv("PERPLEXITY_TOKEN", "fakekey")

	cfg, err := llmfactory.LoadConfig("testdata/llm.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Providers)

	llmfactory.NewLLM = func(cfg *llmfactory.ProviderConfig, preferredModels ...string) (llms.Model, error) {
		return &fakeLLM{provider: cfg.Name, model: cfg.FindModel(preferredModels...)}, nil
	}
	defer func() {
		llmfactory.NewLLM = llmfactory.CreateLLM
	}()

	f := llmfactory.New(cfg)
	model, err := f.DefaultModel()
	require.NoError(t, err)
	require.NotNil(t, model)
	fm := model.(*fakeLLM)
	assert.Equal(t, "qwen3-32b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)

	// Test ModelByName with single model
	model, err = f.ModelByName("llama-3.3-70b")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)

	// Test ModelByName with multiple preferred models
	model, err = f.ModelByName("qwen3-unknown", "gpt-41-mini")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "gpt-41-mini", fm.model)
	assert.Equal(t, "AZURE", fm.provider)

	// Test ModelByName with non-existent models (should fallback to default)
	model, err = f.ModelByName("non-existent-model")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "qwen3-32b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)

	model, err = f.ModelByType("OPEN_AI")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "qwen3-32b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)

	model, err = f.ModelByType("PERPLEXITY")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "sonar", fm.model)
	assert.Equal(t, "PERPLEXITY", fm.provider)

	// Test ToolModel with specific tool
	model, err = f.ToolModel("list_logical_switches")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)

	// Test ToolModel with preferred models; the tool mapping still wins
	model, err = f.ToolModel("list_logical_switches", "gpt-41-mini")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)

	// Test ToolModel with non-existent tool (should use default mapping)
	model, err = f.ToolModel("non-existent-tool")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)

	// Test AssistantModel with specific assistant
	model, err = f.AssistantModel("Network Researcher")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "gpt-41-mini", fm.model)
	assert.Equal(t, "AZURE", fm.provider)

	// Test AssistantModel with preferred models; the assistant mapping still wins
	model, err = f.AssistantModel("Network Researcher", "llama-3.3-70b")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "gpt-41-mini", fm.model)
	assert.Equal(t, "AZURE", fm.provider)

	// Test AssistantModel with non-existent assistant (should use default mapping)
	model, err = f.AssistantModel("non-existent-assistant")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "qwen3-32b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)

	model, err = f.ModelByType("AZURE")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "gpt-41", fm.model)
	assert.Equal(t, "AZURE", fm.provider)

	// Test error cases
	// Test with unsupported provider type
	_, err = f.ModelByType("UNSUPPORTED")
	assert.EqualError(t, err, "provider not found for type: UNSUPPORTED")

	// Test with empty providers list
	emptyCfg := &llmfactory.Config{}
	emptyFactory := llmfactory.New(emptyCfg)
	_, err = emptyFactory.DefaultModel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no providers configured")

	// Test with invalid default provider
	invalidCfg := &llmfactory.Config{
		DefaultProvider: "non-existent",
		Providers:       cfg.Providers,
	}
	invalidFactory := llmfactory.New(invalidCfg)
	model, err = invalidFactory.DefaultModel()
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "qwen3-32b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)
}

func Test_Load(t *testing.T) {
	t.Setenv("SELF_HOSTED_API_KEY", "fakekey")
	t.Setenv("OPENAI_API_KEY", "fakekey")
	t.Setenv("PERPLEXITY_TOKEN", "fakekey")

	// Test successful load
	f, err := llmfactory.Load("testdata/llm.yaml")
	require.NoError(t, err)
	require.NotNil(t, f)

	// Test load with non-existent file
	_, err = llmfactory.Load("testdata/non-existent.yaml")
	require.Error(t, err)
}

func Test_CreateLLM(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "fakekey")
	t.Setenv("PERPLEXITY_TOKEN", "fakekey")

	cfg := &llmfactory.ProviderConfig{
		Name:  "test-provider",
		Token: "fakekey",
		OpenAI: llmfactory.OpenAIConfig{
			APIType:    "OPEN_AI",
			APIVersion: "2024-02-15-preview",
		},
		AvailableModels: []string{"qwen3-32b"},
		DefaultModel:    "qwen3-32b",
	}

	// Test OpenAI provider
	model, err := llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)

	// Test Azure provider
	cfg.OpenAI.APIType = "AZURE"
	model, err = llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)

	// Test Azure AD provider
	cfg.OpenAI.APIType = "AZURE_AD"
	model, err = llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)

	// Test Perplexity provider
	cfg.OpenAI.APIType = "PERPLEXITY"
	model, err = llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)

	// Test responses API flag
	cfg.OpenAI.APIType = "OPEN_AI"
	cfg.OpenAI.UseResponsesAPI = true
	model, err = llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)
	cfg.OpenAI.UseResponsesAPI = false

	// Test unsupported provider
	cfg.OpenAI.APIType = "UNSUPPORTED"
	_, err = llmfactory.CreateLLM(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider type")
}

func Test_LoadConfig(t *testing.T) {
	// Test loading non-existent file
	_, err := llmfactory.LoadConfig("testdata/non-existent.yaml")
	require.Error(t, err)

	// Test loading invalid YAML
	_, err = llmfactory.LoadConfig("testdata/invalid.yaml")
	require.Error(t, err)
}

// Test_ProviderConfigEdgeCases tests edge cases in provider configuration
func Test_ProviderConfigEdgeCases(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "fakekey")

	// Test provider with empty available models
	cfg := &llmfactory.ProviderConfig{
		Name: "empty-models",
		OpenAI: llmfactory.OpenAIConfig{
			APIType: "OPEN_AI",
		},
		AvailableModels: []string{},
		DefaultModel:    "qwen3-32b",
	}

	model, err := llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)

	// Test provider with nil available models
	cfg.AvailableModels = nil
	model, err = llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)

	// Test provider with empty default model
	cfg.DefaultModel = ""
	model, err = llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)
}

// Test_ModelCaching tests that models are properly cached
func Test_ModelCaching(t *testing.T) {
	t.Setenv("SELF_HOSTED_API_KEY", "fakekey")

	// Create a config manually instead of loading from YAML to avoid env var dependencies
	cfg := &llmfactory.Config{
		Providers: []*llmfactory.ProviderConfig{
			{
				Name: "SELF_HOSTED",
				OpenAI: llmfactory.OpenAIConfig{
					APIType: "OPEN_AI",
				},
				AvailableModels: []string{"qwen3-32b", "llama-3.3-70b"},
				DefaultModel:    "qwen3-32b",
			},
		},
	}

	llmfactory.NewLLM = func(cfg *llmfactory.ProviderConfig, preferredModels ...string) (llms.Model, error) {
		return &fakeLLM{provider: cfg.Name, model: cfg.FindModel(preferredModels...)}, nil
	}
	defer func() {
		llmfactory.NewLLM = llmfactory.CreateLLM
	}()

	f := llmfactory.New(cfg)

	// First call should create the model
	model1, err := f.ModelByType("OPEN_AI")
	require.NoError(t, err)
	require.NotNil(t, model1)

	// Second call should return cached model
	model2, err := f.ModelByType("OPEN_AI")
	require.NoError(t, err)
	require.NotNil(t, model2)

	// Should be the same instance
	assert.Equal(t, model1, model2)

	// Test name caching
	model3, err := f.ModelByName("llama-3.3-70b")
	require.NoError(t, err)
	require.NotNil(t, model3)

	model4, err := f.ModelByName("llama-3.3-70b")
	require.NoError(t, err)
	require.NotNil(t, model4)

	assert.Equal(t, model3, model4)
}

// Test_ToolModelFallback tests tool model fallback scenarios
func Test_ToolModelFallback(t *testing.T) {
	t.Setenv("SELF_HOSTED_API_KEY", "fakekey")

	cfg := &llmfactory.Config{
		Providers: []*llmfactory.ProviderConfig{
			{
				Name: "SELF_HOSTED",
				OpenAI: llmfactory.OpenAIConfig{
					APIType: "OPEN_AI",
				},
				AvailableModels: []string{"qwen3-32b", "llama-3.3-70b"},
				DefaultModel:    "qwen3-32b",
			},
		},
		ToolModels: map[string][]string{
			"default":               {"llama-3.3-70b"},
			"list_logical_switches": {"llama-3.3-70b"},
		},
	}

	llmfactory.NewLLM = func(cfg *llmfactory.ProviderConfig, preferredModels ...string) (llms.Model, error) {
		return &fakeLLM{provider: cfg.Name, model: cfg.FindModel(preferredModels...)}, nil
	}
	defer func() {
		llmfactory.NewLLM = llmfactory.CreateLLM
	}()

	f := llmfactory.New(cfg)

	// Test tool with specific mapping
	model, err := f.ToolModel("list_logical_switches")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm := model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model)

	// Test tool with default mapping
	model, err = f.ToolModel("unknown_tool")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model)

	// Test tool with preferred models
	model, err = f.ToolModel("unknown_tool", "qwen3-32b")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model) // Should still use default mapping
}

// Test_AssistantModelFallback tests assistant model fallback scenarios
func Test_AssistantModelFallback(t *testing.T) {
	t.Setenv("SELF_HOSTED_API_KEY", "fakekey")

	cfg := &llmfactory.Config{
		Providers: []*llmfactory.ProviderConfig{
			{
				Name: "SELF_HOSTED",
				OpenAI: llmfactory.OpenAIConfig{
					APIType: "OPEN_AI",
				},
				AvailableModels: []string{"qwen3-32b", "llama-3.3-70b"},
				DefaultModel:    "qwen3-32b",
			},
		},
		AssistantModels: map[string][]string{
			"default":            {"llama-3.3-70b"},
			"Network Researcher": {"llama-3.3-70b"},
		},
	}

	llmfactory.NewLLM = func(cfg *llmfactory.ProviderConfig, preferredModels ...string) (llms.Model, error) {
		return &fakeLLM{provider: cfg.Name, model: cfg.FindModel(preferredModels...)}, nil
	}
	defer func() {
		llmfactory.NewLLM = llmfactory.CreateLLM
	}()

	f := llmfactory.New(cfg)

	// Test assistant with specific mapping
	model, err := f.AssistantModel("Network Researcher")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm := model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model)

	// Test assistant with default mapping
	model, err = f.AssistantModel("unknown_assistant")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model)

	// Test assistant with preferred models
	model, err = f.AssistantModel("unknown_assistant", "qwen3-32b")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "llama-3.3-70b", fm.model) // Should still use default mapping
}

// Test_ConcurrentAccess tests concurrent access to factory methods
func Test_ConcurrentAccess(t *testing.T) {
	t.Setenv("SELF_HOSTED_API_KEY", "fakekey")

	// Create a config manually instead of loading from YAML to avoid env var dependencies
	cfg := &llmfactory.Config{
		Providers: []*llmfactory.ProviderConfig{
			{
				Name: "SELF_HOSTED",
				OpenAI: llmfactory.OpenAIConfig{
					APIType: "OPEN_AI",
				},
				AvailableModels: []string{"qwen3-32b", "llama-3.3-70b"},
				DefaultModel:    "qwen3-32b",
			},
		},
	}

	llmfactory.NewLLM = func(cfg *llmfactory.ProviderConfig, preferredModels ...string) (llms.Model, error) {
		return &fakeLLM{provider: cfg.Name, model: cfg.FindModel(preferredModels...)}, nil
	}
	defer func() {
		llmfactory.NewLLM = llmfactory.CreateLLM
	}()

	f := llmfactory.New(cfg)

	// Test concurrent access to ModelByType
	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func() {
			model, err := f.ModelByType("OPEN_AI")
			assert.NoError(t, err)
			assert.NotNil(t, model)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	// Test concurrent access to ModelByName
	for i := 0; i < 10; i++ {
		go func() {
			model, err := f.ModelByName("llama-3.3-70b")
			assert.NoError(t, err)
			assert.NotNil(t, model)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

// Test_ProviderConfigFindModel tests the FindModel method
func Test_ProviderConfigFindModel(t *testing.T) {
	cfg := &llmfactory.ProviderConfig{
		AvailableModels: []string{"qwen3-32b", "llama-3.3-70b", "mistral-small"},
		DefaultModel:    "qwen3-32b",
	}

	// Test finding existing model
	model := cfg.FindModel("llama-3.3-70b")
	assert.Equal(t, "llama-3.3-70b", model)

	// Test finding first model in preferred list
	model = cfg.FindModel("llama-3.3-70b", "mistral-small")
	assert.Equal(t, "llama-3.3-70b", model)

	// Test fallback to default when model not found
	model = cfg.FindModel("non-existent-model")
	assert.Equal(t, "qwen3-32b", model)

	// Test with empty preferred models
	model = cfg.FindModel()
	assert.Equal(t, "qwen3-32b", model)

	// Test with nil available models
	cfg.AvailableModels = nil
	model = cfg.FindModel("llama-3.3-70b")
	assert.Equal(t, "qwen3-32b", model)

	// Test with empty available models
	cfg.AvailableModels = []string{}
	model = cfg.FindModel("llama-3.3-70b")
	assert.Equal(t, "qwen3-32b", model)
}

// Test_EmptyConfig tests factory behavior with empty configuration
func Test_EmptyConfig(t *testing.T) {
	// Test with completely empty config
	emptyCfg := &llmfactory.Config{}
	f := llmfactory.New(emptyCfg)

	_, err := f.DefaultModel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no providers configured")

	_, err = f.ModelByType("OPEN_AI")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider not found for type: OPEN_AI")

	_, err = f.ModelByName("qwen3-32b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no providers configured")

	_, err = f.ToolModel("list_logical_switches")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no providers configured")

	_, err = f.AssistantModel("Network Researcher")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no providers configured")
}

// Test_ProviderConfigWithBaseURL tests providers with custom base URLs
func Test_ProviderConfigWithBaseURL(t *testing.T) {
	t.Setenv("SELF_HOSTED_API_KEY", "fakekey")

	cfg := &llmfactory.ProviderConfig{
		Name:  "self-hosted",
		Token: "fakekey",
		OpenAI: llmfactory.OpenAIConfig{
			APIType: "OPEN_AI",
			BaseURL: "http://localhost:11434/v1",
		},
		AvailableModels: []string{"qwen3-32b"},
		DefaultModel:    "qwen3-32b",
	}

	model, err := llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)

	// Test Azure with base URL
	cfg.OpenAI.APIType = "AZURE"
	cfg.OpenAI.BaseURL = "https://azure-test.openai.azure.com"
	cfg.OpenAI.APIVersion = "2024-02-15-preview"

	model, err = llmfactory.CreateLLM(cfg)
	require.NoError(t, err)
	require.NotNil(t, model)
}

// Test_ModelByNameWithFallback tests ModelByName fallback behavior
func Test_ModelByNameWithFallback(t *testing.T) {
	t.Setenv("SELF_HOSTED_API_KEY", "fakekey")

	cfg := &llmfactory.Config{
		Providers: []*llmfactory.ProviderConfig{
			{
				Name: "SELF_HOSTED",
				OpenAI: llmfactory.OpenAIConfig{
					APIType: "OPEN_AI",
				},
				AvailableModels: []string{"qwen3-32b"},
				DefaultModel:    "qwen3-32b",
			},
			{
				Name: "AZURE",
				OpenAI: llmfactory.OpenAIConfig{
					APIType: "AZURE",
				},
				AvailableModels: []string{"gpt-41-mini"},
				DefaultModel:    "gpt-41-mini",
			},
		},
	}

	llmfactory.NewLLM = func(cfg *llmfactory.ProviderConfig, preferredModels ...string) (llms.Model, error) {
		return &fakeLLM{provider: cfg.Name, model: cfg.FindModel(preferredModels...)}, nil
	}
	defer func() {
		llmfactory.NewLLM = llmfactory.CreateLLM
	}()

	f := llmfactory.New(cfg)

	// Test fallback when first model not found but second is
	model, err := f.ModelByName("non-existent", "gpt-41-mini")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm := model.(*fakeLLM)
	assert.Equal(t, "gpt-41-mini", fm.model)
	assert.Equal(t, "AZURE", fm.provider)

	// Test fallback to default when no models found
	model, err = f.ModelByName("non-existent-1", "non-existent-2")
	require.NoError(t, err)
	require.NotNil(t, model)
	fm = model.(*fakeLLM)
	assert.Equal(t, "qwen3-32b", fm.model)
	assert.Equal(t, "SELF_HOSTED", fm.provider)
}

type fakeLLM struct {
	provider string
	model    string
}

func (f *fakeLLM) GetName() string {
	return f.model
}

func (f *fakeLLM) GetProviderType() llms.ProviderType {
	return llms.ProviderType(f.provider)
}

func (f *fakeLLM) GenerateContent(_ context.Context, _ []llms.Message, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	return nil, nil
}
