// Package mcptools discovers tools from MCP servers over the streamable HTTP
// transport and adapts them to the tools.ITool interface, so the assistant
// runtime can schedule them like any other tool.
package mcptools

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/netresearcher/internal/registry"
	"github.com/effective-security/netresearcher/pkg/metricskey"
	"github.com/effective-security/netresearcher/tools"
	"github.com/effective-security/xlog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/netresearcher", "mcptools")

// Loader owns the MCP client sessions and the tools discovered from them.
// The tool list is immutable after Load; Close releases all sessions.
type Loader struct {
	sessions []*mcp.ClientSession
	tools    []tools.ITool
}

// Load connects to every configured server, lists its tools, and returns the
// combined list de-duplicated by name (first registration wins). Discovery is
// all-or-nothing: a failure on any server closes the sessions opened so far
// and returns the error wrapped with the server key.
func Load(ctx context.Context, servers []registry.ServerConfig) (*Loader, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "netresearcher",
		Title:   "Network Researcher",
		Version: "1.0.0",
	}, nil)

	l := &Loader{}
	seen := make(map[string]bool)

	for _, server := range servers {
		transport := mcp.NewStreamableClientTransport(server.URL, nil)
		session, err := client.Connect(ctx, transport)
		if err != nil {
			_ = l.Close()
			return nil, errors.WithMessagef(err, "failed to connect to MCP server %s at %s", server.Key, server.URL)
		}
		l.sessions = append(l.sessions, session)

		res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
		if err != nil {
			_ = l.Close()
			return nil, errors.WithMessagef(err, "failed to list tools on MCP server %s", server.Key)
		}

		count := 0
		for _, tool := range res.Tools {
			if seen[tool.Name] {
				logger.ContextKV(ctx, xlog.WARNING,
					"status", "duplicate_tool_skipped",
					"server", server.Key,
					"tool", tool.Name)
				continue
			}
			adapted, err := newTool(session, tool)
			if err != nil {
				_ = l.Close()
				return nil, errors.WithMessagef(err, "failed to adapt tool %s from MCP server %s", tool.Name, server.Key)
			}
			seen[tool.Name] = true
			l.tools = append(l.tools, adapted)
			count++
		}

		metricskey.StatsMCPToolsLoaded.IncrCounter(float64(count), server.Key)
		logger.ContextKV(ctx, xlog.INFO,
			"status", "loaded_tools",
			"server", server.Key,
			"url", server.URL,
			"tools", count)
	}

	return l, nil
}

// Tools returns the discovered tools.
func (l *Loader) Tools() []tools.ITool {
	return l.tools
}

// Close closes all client sessions. Tools must not be called after Close.
func (l *Loader) Close() error {
	var firstErr error
	for _, session := range l.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.sessions = nil
	return firstErr
}
