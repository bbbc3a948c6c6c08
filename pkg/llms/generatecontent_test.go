package llms_test

import (
	"testing"

	"github.com/effective-security/netresearcher/pkg/llms"
	"github.com/effective-security/netresearcher/pkg/llmutils"
	"github.com/stretchr/testify/assert"
)

func TestTextParts(t *testing.T) {
	t.Parallel()
	type args struct {
		role  llms.Role
		parts []string
	}
	tests := []struct {
		name string
		args args
		want llms.Message
	}{
		{
			"basics",
			args{
				llms.RoleHuman,
				[]string{"List the bridges.", "Include datapath types.", "Keep it brief."},
			},
			llms.MessageFromTextParts(llms.RoleHuman, "List the bridges.", "Include datapath types.", "Keep it brief."),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mc := llms.MessageFromTextParts(tt.args.role, tt.args.parts...)
			assert.Equal(t, tt.want, mc)
		})
	}
}

func Test_MessageContent_JSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		msg     llms.Message
		js      string
		content string
	}{
		{
			"text",
			llms.MessageFromTextParts(llms.RoleHuman, "List the bridges.", "Include datapath types.", "Keep it brief."),
			`{"role":"human","parts":[{"text":"List the bridges.","type":"text"},{"text":"Include datapath types.","type":"text"},{"text":"Keep it brief.","type":"text"}]}`,
			`List the bridges.
Include datapath types.
Keep it brief.
`,
		},
		{
			"binary",
			llms.MessageFromParts(llms.RoleHuman, llms.BinaryPart("application/vnd.tcpdump.pcap", []byte("geneve capture"))),
			`{"role":"human","parts":[{"type":"binary","binary":{"data":"Z2VuZXZlIGNhcHR1cmU=","mime_type":"application/vnd.tcpdump.pcap"}}]}`,
			`Binary: application/vnd.tcpdump.pcap
Z2VuZXZlIGNhcHR1cmU=
`,
		},
		{
			"image",
			llms.MessageFromParts(llms.RoleHuman, llms.ImageURLPart("http://wiki.internal/ovn-topology.png")),
			`{"role":"human","parts":[{"type":"image_url","image_url":{"url":"http://wiki.internal/ovn-topology.png"}}]}`,
			`URL: http://wiki.internal/ovn-topology.png
`,
		},
		{
			"image_with_detail",
			llms.MessageFromParts(llms.RoleHuman, llms.ImageURLWithDetailPart("http://wiki.internal/ovn-topology.png", "low")),
			`{"role":"human","parts":[{"type":"image_url","image_url":{"url":"http://wiki.internal/ovn-topology.png","detail":"low"}}]}`,
			`URL: http://wiki.internal/ovn-topology.png
`,
		},
		{
			"tool_call",
			llms.MessageFromParts(llms.RoleAI, llms.ToolCall{ID: "tc_1", Type: "function", FunctionCall: &llms.FunctionCall{Name: "list_logical_switches", Arguments: `{"name_filter":"tenant"}`}}),
			`{"role":"ai","parts":[{"type":"tool_call","tool_call":{"function":{"name":"list_logical_switches","arguments":"{\"name_filter\":\"tenant\"}"},"id":"tc_1","type":"function"}}]}`,
			`Tool Call: {"type":"tool_call","tool_call":{"function":{"name":"list_logical_switches","arguments":"{\"name_filter\":\"tenant\"}"},"id":"tc_1","type":"function"}}
`,
		},
		{
			"tool_response",
			llms.MessageFromParts(llms.RoleAI, llms.ToolCallResponse{ToolCallID: "tc_1", Name: "list_logical_switches", Content: "ls-tenant-a, ls-tenant-b"}),
			`{"role":"ai","parts":[{"type":"tool_response","tool_response":{"tool_call_id":"tc_1","name":"list_logical_switches","content":"ls-tenant-a, ls-tenant-b"}}]}`,
			`Response: {"type":"tool_response","tool_response":{"tool_call_id":"tc_1","name":"list_logical_switches","content":"ls-tenant-a, ls-tenant-b"}}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			js := llmutils.ToJSON(tt.msg)
			assert.Equal(t, tt.js, js)
			content := tt.msg.GetContent()
			assert.Equal(t, tt.content, content)
		})
	}
}
