// Package researcher assembles the network research agent: an
// OpenAI-compatible chat model, the research system prompt, and the tool set
// discovered from the MCP servers.
package researcher

import (
	"context"
	"time"

	"github.com/effective-security/netresearcher/assistants"
	"github.com/effective-security/netresearcher/chatmodel"
	"github.com/effective-security/netresearcher/encoding"
	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/effective-security/netresearcher/pkg/metricskey"
	"github.com/effective-security/netresearcher/pkg/prompts"
	"github.com/effective-security/netresearcher/store"
	"github.com/effective-security/netresearcher/tools"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/netresearcher", "researcher")

// Name and Description identify the agent to users and to other agents.
const (
	Name        = "Network Researcher"
	Description = "I can gather information about Open Virtual Networking and Open vSwitch to answer questions about the network."
)

const systemPrompt = `You are a network researcher that MUST use tools to gather information from OVS/OVN databases.
You are running in a Kubernetes cluster where OVN-Kubernetes is installed and providing the networking for the cluster.

IMPORTANT: You MUST use the available tools to gather information. Do not make assumptions or provide generic answers.

When users ask questions:
1. ALWAYS identify which tools are needed to gather the requested information
2. USE those tools to collect data from the databases
3. Return the raw information gathered from the tools

For example:
- If asked about bridges, use the list_bridges tool
- If asked about logical switches, use the list_logical_switches tool
- If asked about ACLs, use the list_acls tool
- If asked about network topology, use multiple tools to gather comprehensive information

You are NOT responsible for:
- Making configuration changes
- Performing debugging or troubleshooting
- Executing commands to fix issues
- Providing expert analysis or recommendations

Your job is to gather and return the requested information using the available tools.`

const (
	defaultTemperature = 0.1
	defaultMaxTokens   = 4096
)

// Researcher answers questions about the OVN/OVS network. It is stateful:
// conversation history is kept in the message store, keyed by the chat ID
// carried in the request context.
type Researcher struct {
	assistant *assistants.Assistant[chatmodel.String]
	store     store.MessageStore
}

// New assembles the researcher from a chat model, the message store, and the
// discovered tool list. Additional assistant options, such as callbacks, are
// appended after the defaults.
func New(model llms.Model, msgStore store.MessageStore, toolList []tools.ITool, ops ...assistants.Option) *Researcher {
	acfg := []assistants.Option{
		assistants.WithMode(encoding.ModePlainText),
		assistants.WithTemperature(defaultTemperature),
		assistants.WithMaxTokens(defaultMaxTokens),
		assistants.WithMessageStore(msgStore),
		// keep tool exchanges out of the persisted history, only the
		// question and the final answer feed later turns
		assistants.WithSkipToolHistory(true),
	}
	acfg = append(acfg, ops...)

	agent := assistants.NewAssistant[chatmodel.String](model, prompts.NewPromptTemplate(systemPrompt, []string{}), acfg...).
		WithName(Name).
		WithDescription(Description).
		WithTools(toolList...)

	logger.KV(xlog.INFO, "status", "researcher_created",
		"model", model.GetName(),
		"provider", model.GetProviderType(),
		"tools", len(toolList),
	)
	return &Researcher{
		assistant: agent,
		store:     msgStore,
	}
}

// Assistant returns the underlying assistant.
func (r *Researcher) Assistant() *assistants.Assistant[chatmodel.String] {
	return r.assistant
}

// Store returns the conversation store shared by all sessions.
func (r *Researcher) Store() store.MessageStore {
	return r.store
}

// Run executes one conversational turn and returns the final answer.
// ctx must carry a chat context, see chatmodel.WithChatContext.
func (r *Researcher) Run(ctx context.Context, question string) (string, error) {
	started := time.Now()
	defer metricskey.PerfChatRun.MeasureSince(started, Name)

	var output chatmodel.String
	_, err := r.assistant.Run(ctx, &assistants.CallInput{Input: question}, &output)
	if err != nil {
		return "", err
	}
	return output.GetContent(), nil
}
