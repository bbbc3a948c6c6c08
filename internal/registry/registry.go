// Package registry describes the MCP servers the researcher can query.
// Server URLs default to localhost and are overridable by environment
// variables; registries are plain values built once at startup.
package registry

import (
	"os"

	"github.com/effective-security/x/values"
)

// ServerConfig describes one MCP server endpoint.
type ServerConfig struct {
	// Key is the stable identifier of the server.
	Key string
	// Name is the human-readable name used in logs and prompts.
	Name string
	// URL is the base URL of the streamable HTTP endpoint.
	URL string
	// Description summarizes the data the server exposes.
	Description string
}

// Default returns the OVS and OVN database servers that are always queried.
func Default() []ServerConfig {
	return []ServerConfig{
		{
			Key:         "ovs-vswitchd",
			Name:        "Open vSwitch Database",
			URL:         values.StringsCoalesce(os.Getenv("MCP_OVS_VSWITCHD_URL"), "http://localhost:8080"),
			Description: "Manages Open vSwitch bridges, ports, interfaces, flow tables, and controllers",
		},
		{
			Key:         "ovn-nb",
			Name:        "OVN Northbound Database",
			URL:         values.StringsCoalesce(os.Getenv("MCP_OVN_NB_URL"), "http://localhost:8081"),
			Description: "Manages logical switches, routers, load balancers, ACLs, and DHCP options",
		},
		{
			Key:         "ovn-sb",
			Name:        "OVN Southbound Database",
			URL:         values.StringsCoalesce(os.Getenv("MCP_OVN_SB_URL"), "http://localhost:8082"),
			Description: "Manages chassis, datapaths, logical flows, port bindings, and MAC bindings",
		},
	}
}

// Interconnect returns the OVN interconnection servers, queried only when
// interconnect support is enabled.
func Interconnect() []ServerConfig {
	return []ServerConfig{
		{
			Key:         "ovn-ic-nb",
			Name:        "OVN IC Northbound Database",
			URL:         values.StringsCoalesce(os.Getenv("MCP_OVN_IC_NB_URL"), "http://localhost:8083"),
			Description: "Manages interconnection global config, transit switches, and SSL configs",
		},
		{
			Key:         "ovn-ic-sb",
			Name:        "OVN IC Southbound Database",
			URL:         values.StringsCoalesce(os.Getenv("MCP_OVN_IC_SB_URL"), "http://localhost:8084"),
			Description: "Manages availability zones, gateways, and interconnection routing",
		},
	}
}
