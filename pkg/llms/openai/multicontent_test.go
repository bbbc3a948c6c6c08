package openai

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, opts ...Option) llms.Model {
	t.Helper()
	if openaiKey := os.Getenv("OPENAI_API_KEY"); openaiKey == "" || openaiKey == "fakekey" {
		t.Skip("OPENAI_API_KEY not set")
		return nil
	}

	llm, err := New(opts...)
	require.NoError(t, err)
	return llm
}

func TestMultiContentText(t *testing.T) {
	t.Parallel()
	llm := newTestClient(t)

	content := []llms.Message{
		llms.MessageFromTextParts(llms.RoleHuman, "OVN encapsulates east-west traffic between chassis.", "Which tunnel protocol does it use by default?"),
	}

	rsp, err := llm.GenerateContent(context.Background(), content)
	require.NoError(t, err)

	assert.NotEmpty(t, rsp.Choices)
	c1 := rsp.Choices[0]
	assert.Regexp(t, "geneve", strings.ToLower(c1.Content))
}

func TestMultiContentTextChatSequence(t *testing.T) {
	t.Parallel()
	llm := newTestClient(t)

	content := []llms.Message{
		llms.MessageFromTextParts(llms.RoleHuman, "Name the two central OVN databases"),
		llms.MessageFromTextParts(llms.RoleAI, "The northbound database and the southbound database"),
		llms.MessageFromTextParts(llms.RoleHuman, "Which of these does ovn-controller watch?"),
	}

	rsp, err := llm.GenerateContent(context.Background(), content)
	require.NoError(t, err)

	assert.NotEmpty(t, rsp.Choices)
	c1 := rsp.Choices[0]
	assert.Regexp(t, "southbound", strings.ToLower(c1.Content))
}

func TestMultiContentImage(t *testing.T) {
	t.Parallel()

	llm := newTestClient(t, WithModel("gpt-4-vision-preview"))

	parts := []llms.ContentPart{
		llms.ImageURLPart("https://upload.wikimedia.org/wikipedia/commons/a/a0/Ara_ararauna_Luc_Viatour.jpg"),
		llms.TextPart("name the animal shown in one word"),
	}
	content := []llms.Message{
		{
			Role:  llms.RoleHuman,
			Parts: parts,
		},
	}

	rsp, err := llm.GenerateContent(context.Background(), content, llms.WithMaxTokens(300))
	require.NoError(t, err)

	assert.NotEmpty(t, rsp.Choices)
	c1 := rsp.Choices[0]
	assert.Regexp(t, "parrot", strings.ToLower(c1.Content))
}

func TestCreateEmbedding(t *testing.T) {
	t.Parallel()
	llm := newTestClient(t, WithEmbeddingModel("text-embedding-3-small"))

	embeddings, err := llm.(*LLM).CreateEmbedding(context.Background(),
		[]string{"east-west traffic", "north-south traffic"})
	require.NoError(t, err)
	require.Len(t, embeddings, 2)
	assert.NotEmpty(t, embeddings[0])
}

func TestWithStreaming(t *testing.T) {
	t.Parallel()
	llm := newTestClient(t)

	parts := []llms.ContentPart{
		llms.TextPart("OVN encapsulates east-west traffic between chassis."),
		llms.TextPart("Which tunnel protocol does it use by default? Answer in one sentence."),
	}
	content := []llms.Message{
		{
			Role:  llms.RoleHuman,
			Parts: parts,
		},
	}

	var sb strings.Builder
	rsp, err := llm.GenerateContent(context.Background(), content,
		llms.WithStreamingFunc(func(_ context.Context, chunk []byte) error {
			sb.Write(chunk)
			return nil
		}))

	require.NoError(t, err)

	assert.NotEmpty(t, rsp.Choices)
	c1 := rsp.Choices[0]
	assert.Regexp(t, "geneve", strings.ToLower(c1.Content))
	assert.Regexp(t, "geneve", strings.ToLower(sb.String()))
}
