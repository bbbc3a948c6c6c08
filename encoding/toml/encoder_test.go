package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToml(t *testing.T) {
	type Iface struct {
		Name string `yaml:"name" jsonschema:"description=interface name" fake:"eth0"`
		Type string `yaml:"type" jsonschema:"description=interface type" fake:"internal"`
	}

	type Bridge struct {
		Name   string  `yaml:"name" comment:"Bridge Name" jsonschema:"description=bridge name" fake:"br-int"`
		Vlan   *int    `yaml:"vlan" jsonschema:"description=VLAN tag of the bridge" fake:"24"`
		Uplink *Iface  `yaml:"uplink" jsonschema:"description=Uplink interface of the bridge"`
		Ifaces []Iface `yaml:"ifaces" jsonschema:"description=Interfaces attached to the bridge" fakesize:"1"`
	}
	var b Bridge
	enc := NewEncoder(b)
	exp := `
Respond with TOML in the following TOML schema:
` + "```toml" + `
Name = "br-int"
Vlan = 24

[Uplink]
  Name = "eth0"
  Type = "internal"

[[Ifaces]]
  Name = "eth0"
  Type = "internal"
` + "```" + `
Make sure to return an instance of the TOML, not the schema itself.
`

	assert.Equal(t, exp, enc.GetFormatInstructions())

	var parsed Bridge
	err := enc.Unmarshal([]byte("```toml\nName = \"br-ex\"\n```"), &parsed)
	require.NoError(t, err)
	assert.Equal(t, "br-ex", parsed.Name)
}
