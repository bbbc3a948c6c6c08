// Package tools defines the tool abstraction the researcher exposes to
// its models: a name, a description shown in the prompt, a JSON schema
// for parameters, and a Call method. Tools discovered from MCP servers
// are adapted onto this interface by internal/mcptools, and IMCPTool
// lets a local tool register itself on an MCP server as well.
package tools
