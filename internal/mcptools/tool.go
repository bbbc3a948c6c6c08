package mcptools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/netresearcher/chatmodel"
	"github.com/effective-security/netresearcher/pkg/schema"
	"github.com/effective-security/netresearcher/tools"
	"github.com/invopop/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mcpTool adapts one remote MCP tool to the tools.ITool interface.
// The session is owned by the Loader.
type mcpTool struct {
	name        string
	description string
	params      *jsonschema.Schema
	session     *mcp.ClientSession
}

var _ tools.ITool = (*mcpTool)(nil)

func newTool(session *mcp.ClientSession, tool *mcp.Tool) (*mcpTool, error) {
	t := &mcpTool{
		name:        tool.Name,
		description: tool.Description,
		session:     session,
	}
	if tool.InputSchema != nil {
		params, err := schema.FromAny(tool.InputSchema)
		if err != nil {
			return nil, errors.WithMessage(err, "failed to convert input schema")
		}
		t.params = params
	}
	return t, nil
}

func (t *mcpTool) Name() string {
	return t.name
}

func (t *mcpTool) Description() string {
	return t.description
}

func (t *mcpTool) Parameters() *jsonschema.Schema {
	return t.params
}

// Call invokes the remote tool with the JSON arguments produced by the model
// and concatenates the text content parts of the result.
func (t *mcpTool) Call(ctx context.Context, input string) (string, error) {
	args := map[string]any{}
	if s := strings.TrimSpace(input); s != "" {
		if err := json.Unmarshal([]byte(s), &args); err != nil {
			return "", errors.WithStack(chatmodel.ErrFailedUnmarshalInput)
		}
	}

	res, err := t.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      t.name,
		Arguments: args,
	})
	if err != nil {
		return "", errors.WithMessagef(err, "failed to call MCP tool %s", t.name)
	}

	var sb strings.Builder
	for _, content := range res.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(tc.Text)
		}
	}

	if res.IsError {
		return "", errors.Newf("MCP tool %s failed: %s", t.name, sb.String())
	}
	return sb.String(), nil
}
