package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYaml(t *testing.T) {
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
	enc := NewEncoder(b).WithCommentStyle(LineComment)
	exp := `
Respond with YAML in the following YAML schema without comments:
` + "```yaml" + `
name: br-int # Bridge Name
vlan: 24 # VLAN tag of the bridge
uplink: # Uplink interface of the bridge
    name: eth0 # interface name
    type: internal # interface type
ifaces: # Interfaces attached to the bridge
    - name: eth0 # interface name
      type: internal # interface type
` + "```" + `
Make sure to return an instance of the YAML, not the schema itself.
`

	assert.Equal(t, exp, enc.GetFormatInstructions())

	var parsed Bridge
	err := enc.Unmarshal([]byte("```yaml\nname: br-ex\n```"), &parsed)
	require.NoError(t, err)
	assert.Equal(t, "br-ex", parsed.Name)
}
