package chatmodel

import (
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPInputRequest_ParseInput(t *testing.T) {
	t.Parallel()
	m := &MCPInputRequest{}
	raw := `{"chatID":"chat-42","input":"What ACLs are applied?"}`
	err := m.ParseInput(raw)
	require.NoError(t, err)
	assert.Equal(t, "chat-42", m.ChatID)
	assert.Equal(t, "What ACLs are applied?", m.Input)

	// Bad input
	err = m.ParseInput("{invalid json}")
	require.Error(t, err)
}

func TestMCPInputRequest_JSONSchemaExtend(t *testing.T) {
	t.Parallel()
	m := MCPInputRequest{}
	schema := &jsonschema.Schema{}
	m.JSONSchemaExtend(schema)
	assert.Equal(t, "MCP Input Request", schema.Title)
}

func TestInputRequest(t *testing.T) {
	t.Parallel()
	r := &InputRequest{}
	raw := `{"input":"How many logical switches are there?"}`
	err := r.ParseInput(raw)
	require.NoError(t, err)
	assert.Equal(t, "How many logical switches are there?", r.Input)

	// GetContent returns input
	assert.Equal(t, "How many logical switches are there?", r.GetContent())

	// Bad input
	err = r.ParseInput("{broken}")
	require.Error(t, err)

	// NewInputRequest
	ri := NewInputRequest("Which chassis host tunnels?")
	assert.Equal(t, "Which chassis host tunnels?", ri.Input)
}

func TestInputRequest_JSONSchemaExtend(t *testing.T) {
	t.Parallel()
	r := InputRequest{}
	schema := &jsonschema.Schema{}
	r.JSONSchemaExtend(schema)
	assert.Equal(t, "Input Request", schema.Title)
}

func TestOutputResult(t *testing.T) {
	t.Parallel()
	r := OutputResult{Content: "There are 4 logical switches."}
	assert.Equal(t, "There are 4 logical switches.", r.GetContent())

	nr := NewOutputResult("br-int and br-ex are configured.")
	assert.Equal(t, "br-int and br-ex are configured.", nr.Content)
}

func TestBaseClarificationResultSetters(t *testing.T) {
	t.Parallel()
	var res BaseClarificationResult
	res.SetConfidence("Medium")
	assert.Equal(t, "Medium", res.Confidence)
	res.SetClarification("Which OVN database should I query?")
	assert.Equal(t, "Which OVN database should I query?", res.Clarification)
	res.SetReasoning("The question does not name a database.")
	assert.Equal(t, "The question does not name a database.", res.Reasoning)
}
