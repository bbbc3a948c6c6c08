package openaiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const finalResponseJSON = `{
	"id": "resp_1",
	"object": "response",
	"status": "completed",
	"output": [{
		"type": "message",
		"id": "msg_1",
		"role": "assistant",
		"status": "completed",
		"content": [{"type": "output_text", "text": "two bridges", "annotations": []}]
	}],
	"usage": {
		"input_tokens": 10,
		"input_tokens_details": {"cached_tokens": 4},
		"output_tokens": 3,
		"output_tokens_details": {"reasoning_tokens": 1},
		"total_tokens": 13
	}
}`

func TestCreateResponse(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(finalResponseJSON))
	})

	resp, err := client.CreateResponse(context.Background(), &responses.ResponseNewParams{
		Input: responses.ResponseNewParamsInputUnion{OfString: param.NewOpt("how many bridges?")},
	})
	require.NoError(t, err)

	assert.Equal(t, "/responses", gotPath)
	// the client model and the default output token bound fill in when unset
	assert.Equal(t, "test-model", gotBody["model"])
	assert.Equal(t, float64(DefaultMaxTokens), gotBody["max_output_tokens"])
	assert.Equal(t, "how many bridges?", gotBody["input"])

	assert.Equal(t, "two bridges", resp.OutputText())
	assert.Equal(t, "completed", string(resp.Status))
	assert.Equal(t, int64(10), resp.Usage.InputTokens)
	assert.Equal(t, int64(4), resp.Usage.InputTokensDetails.CachedTokens)
	assert.Equal(t, int64(1), resp.Usage.OutputTokensDetails.ReasoningTokens)
}

func TestCreateStreamingResponse(t *testing.T) {
	t.Parallel()

	var completed bytes.Buffer
	require.NoError(t, json.Compact(&completed,
		[]byte(`{"type":"response.completed","response":`+finalResponseJSON+`}`)))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &req)
		assert.Equal(t, true, req["stream"])

		w.Header().Set("Content-Type", "text/event-stream")
		lines := []string{
			`data: {"type":"response.output_text.delta","delta":"two "}`,
			`data: {"type":"response.output_text.delta","delta":"bridges"}`,
			`data: ` + completed.String(),
			`data: [DONE]`,
		}
		for _, line := range lines {
			_, _ = io.WriteString(w, line+"\n\n")
		}
	})

	var streamed strings.Builder
	resp, err := client.CreateStreamingResponse(context.Background(),
		&responses.ResponseNewParams{
			Input: responses.ResponseNewParamsInputUnion{OfString: param.NewOpt("how many bridges?")},
		},
		func(_ context.Context, chunk []byte) error {
			streamed.Write(chunk)
			return nil
		})
	require.NoError(t, err)

	assert.Equal(t, "two bridges", streamed.String())
	assert.Equal(t, "two bridges", resp.OutputText())
	assert.Equal(t, int64(13), resp.Usage.TotalTokens)
}

func TestCreateStreamingResponseFailed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, `data: {"type":"error","message":"model overloaded"}`+"\n\n")
	})

	_, err := client.CreateStreamingResponse(context.Background(),
		&responses.ResponseNewParams{
			Input: responses.ResponseNewParamsInputUnion{OfString: param.NewOpt("hi")},
		}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestCreateStreamingResponseMissingCompleted(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		lines := []string{
			`data: {"type":"response.output_text.delta","delta":"partial"}`,
			`data: [DONE]`,
		}
		for _, line := range lines {
			_, _ = io.WriteString(w, line+"\n\n")
		}
	})

	_, err := client.CreateStreamingResponse(context.Background(),
		&responses.ResponseNewParams{
			Input: responses.ResponseNewParamsInputUnion{OfString: param.NewOpt("hi")},
		}, nil)
	require.ErrorIs(t, err, ErrEmptyResponse)
}
