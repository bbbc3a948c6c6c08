package a2a

import (
	"fmt"

	"github.com/effective-security/netresearcher/internal/researcher"
	"trpc.group/trpc-go/trpc-a2a-go/server"
)

// skillExamples are shown to callers discovering the agent.
var skillExamples = []string{
	"What is the OVN network topology?",
	"How many logical switches are there?",
	"Are there any ACLs configured?",
	"What Open vSwitch bridges are there?",
	"What are the current flows in Open vSwitch?",
}

// NewAgentCard describes the researcher to other agents.
func NewAgentCard(host string, port int) server.AgentCard {
	enabled := true
	skillDesc := "Uses tools to gather information about the network."
	return server.AgentCard{
		Name:        researcher.Name,
		Description: researcher.Description,
		URL:         fmt.Sprintf("http://%s:%d/", host, port),
		Version:     "1.0.0",
		Capabilities: server.AgentCapabilities{
			Streaming:              &enabled,
			StateTransitionHistory: &enabled,
		},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []server.AgentSkill{
			{
				ID:          "research_network_information",
				Name:        "Research Network Information",
				Description: &skillDesc,
				Tags:        []string{"network", "ovn", "ovs"},
				Examples:    skillExamples,
				InputModes:  []string{"text"},
				OutputModes: []string{"text"},
			},
		},
	}
}
