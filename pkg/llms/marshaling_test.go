package llms

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

type unknownContent struct{}

func (unknownContent) isPart() {}

func TestUnmarshalYAML(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Message
		wantErr bool
	}{
		{
			name: "single text part",
			input: `role: user
text: How many logical switches are there?
`,
			want: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "How many logical switches are there?"},
				},
			},
			wantErr: false,
		},
		{
			name: "multiple parts",
			input: `role: user
parts:
- type: text
  text: What ACLs are applied?
- type: image_url
  image_url:
    url: http://wiki.internal/ovn-topology.png
- type: image_url
  image_url:
    url: http://wiki.internal/ovn-topology.png
    detail: high
- type: binary
  binary:
    mime_type: application/vnd.tcpdump.pcap
    data: Z2VuZXZlIGNhcHR1cmU=
- tool_response:
    tool_call_id: tc_1
    name: list_acls
    content: allow-related to-lport
  type: tool_response
`,
			want: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "What ACLs are applied?"},
					ImageURLContent{URL: "http://wiki.internal/ovn-topology.png"},
					ImageURLContent{URL: "http://wiki.internal/ovn-topology.png", Detail: "high"},
					BinaryContent{
						MIMEType: "application/vnd.tcpdump.pcap",
						Data:     []byte("geneve capture"),
					},
					ToolCallResponse{ToolCallID: "tc_1", Name: "list_acls", Content: "allow-related to-lport"},
				},
			},
			wantErr: false,
		},
		{
			name: "Unknown content type",
			input: `
role: user
parts:
  - type: unknown
    data: some data
`,
			want: Message{
				Role: "user",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var mc Message
			err := yaml.Unmarshal([]byte(tt.input), &mc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mc)
		})
	}
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   Message
		want    string
		wantErr bool
	}{
		{
			name: "single text part",
			input: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "How many logical switches are there?"},
				},
			},
			want: `role: user
text: How many logical switches are there?
`,
			wantErr: false,
		},
		{
			name: "multiple parts",
			input: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "What ACLs are applied?"},
					ImageURLContent{URL: "http://wiki.internal/ovn-topology.png"},
					BinaryContent{
						MIMEType: "application/vnd.tcpdump.pcap",
						Data:     []byte("geneve capture"),
					},
					ToolCallResponse{
						ToolCallID: "tc_1",
						Name:       "list_acls",
						Content:    "allow-related to-lport",
					},
				},
			},
			want: `parts:
- text: What ACLs are applied?
  type: text
- image_url:
    url: http://wiki.internal/ovn-topology.png
  type: image_url
- binary:
    data: Z2VuZXZlIGNhcHR1cmU=
    mime_type: application/vnd.tcpdump.pcap
  type: binary
- tool_response:
    content: allow-related to-lport
    name: list_acls
    tool_call_id: tc_1
  type: tool_response
role: user
`,
			wantErr: false,
		},
		{
			name: "unknown content type",
			input: Message{
				Role: "user",
				Parts: []ContentPart{
					unknownContent{},
				},
			},
			want: "parts:\n- {}\nrole: user\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := yaml.Marshal(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestUnmarshalJSONMessageContent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Message
		wantErr bool
	}{
		{
			name:  "single text part",
			input: `{"role":"user","text":"How many logical switches are there?"}`,
			want: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "How many logical switches are there?"},
				},
			},

			wantErr: false,
		},
		{
			name:  "multiple parts",
			input: `{"role":"user","parts":[{"text":"What ACLs are applied?","type":"text"},{"type":"image_url","image_url":{"url":"http://wiki.internal/ovn-topology.png"}},{"type":"binary","binary":{"data":"Z2VuZXZlIGNhcHR1cmU=","mime_type":"application/vnd.tcpdump.pcap"}}]}`,
			want: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "What ACLs are applied?"},
					ImageURLContent{URL: "http://wiki.internal/ovn-topology.png"},
					BinaryContent{
						MIMEType: "application/vnd.tcpdump.pcap",
						Data:     []byte("geneve capture"),
					},
				},
			},
			wantErr: false,
		},
		{
			name:  "Unknown content type",
			input: `{"role":"user","parts":[{"type":"unknown","data":"some data"}]}`,
			want: Message{
				Role: "user",
			},
			wantErr: true,
		},
		{
			name:  "tool use",
			input: `{"role":"assistant","parts":[{"type":"text","text":"Checking the northbound database."},{"type":"tool_call","tool_call":{"id":"tc_42","type":"function","function":{"name":"list_logical_switches","arguments":"{ \"name_filter\": \"tenant\" }"}}}]}`,
			want: Message{
				Role: "assistant",
				Parts: []ContentPart{
					TextContent{Text: "Checking the northbound database."},
					ToolCall{
						ID:           "tc_42",
						Type:         "function",
						FunctionCall: &FunctionCall{Name: "list_logical_switches", Arguments: `{ "name_filter": "tenant" }`},
					},
				},
			},
			wantErr: false,
		},
		{
			name:  "tool response",
			input: `{"role":"user","parts":[{"type":"tool_response","tool_response":{"tool_call_id":"tc_1","name":"list_acls","content":"allow-related to-lport"}}]}`,
			want: Message{
				Role: "user",
				Parts: []ContentPart{
					ToolCallResponse{ToolCallID: "tc_1", Name: "list_acls", Content: "allow-related to-lport"},
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var mc Message
			err := mc.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mc)
		})
	}
}

func TestMarshalJSONMessageContent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   Message
		want    string
		wantErr bool
	}{
		{
			name: "single text part",
			input: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "How many logical switches are there?"},
				},
			},
			want:    `{"role":"user","text":"How many logical switches are there?"}`,
			wantErr: false,
		},
		{
			name: "multiple parts",
			input: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "What ACLs are applied?"},
					ImageURLContent{URL: "http://wiki.internal/ovn-topology.png"},
					BinaryContent{
						MIMEType: "application/vnd.tcpdump.pcap",
						Data:     []byte("geneve capture"),
					},
				},
			},
			want:    `{"role":"user","parts":[{"text":"What ACLs are applied?","type":"text"},{"type":"image_url","image_url":{"url":"http://wiki.internal/ovn-topology.png"}},{"type":"binary","binary":{"data":"Z2VuZXZlIGNhcHR1cmU=","mime_type":"application/vnd.tcpdump.pcap"}}]}`,
			wantErr: false,
		},
		{
			name: "Unknown content type",
			input: Message{
				Role: "user",
				Parts: []ContentPart{
					unknownContent{},
				},
			},
			want:    `{"role":"user","parts":[{}]}`,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := json.Marshal(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			gotStr := string(got)
			assert.Equal(t, tt.want, gotStr)
		})
	}
}

// Conversation history survives the trip through the store in both JSON and
// YAML representations.
func TestRoundtripping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		in           Message
		assertedJSON string
		assertedYAML string
	}{
		{
			name: "single text part",
			in: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "How many logical switches are there?"},
				},
			},
			assertedJSON: `{"role":"user","text":"How many logical switches are there?"}`,
			assertedYAML: "role: user\ntext: How many logical switches are there?\n",
		},
		{
			name: "multiple parts",
			in: Message{
				Role: "user",
				Parts: []ContentPart{
					TextContent{Text: "Which chassis host tunnels?"},
					ImageURLContent{URL: "http://wiki.internal/ovn-topology.png", Detail: "low"},
					BinaryContent{
						MIMEType: "application/vnd.tcpdump.pcap",
						Data:     []byte("flow table dump"),
					},
				},
			},
			assertedYAML: `parts:
- text: Which chassis host tunnels?
  type: text
- image_url:
    detail: low
    url: http://wiki.internal/ovn-topology.png
  type: image_url
- binary:
    data: ZmxvdyB0YWJsZSBkdW1w
    mime_type: application/vnd.tcpdump.pcap
  type: binary
role: user
`,
		},
		{
			name: "tool use",
			in: Message{
				Role: "assistant",
				Parts: []ContentPart{
					ToolCall{Type: "function", ID: "tc01", FunctionCall: &FunctionCall{Name: "list_logical_switches", Arguments: `{ "name_filter": "tenant" }`}},
				},
			},
		},
		{
			name: "multiple tool uses",
			in: Message{
				Role: "assistant",
				Parts: []ContentPart{
					ToolCall{Type: "function", ID: "tc01", FunctionCall: &FunctionCall{Name: "list_logical_switches", Arguments: `{ "name_filter": "tenant" }`}},
					ToolCall{Type: "function", ID: "tc02", FunctionCall: &FunctionCall{Name: "list_acls", Arguments: `{ "direction": "to-lport" }`}},
				},
			},
			assertedJSON: `{"role":"assistant","parts":[{"type":"tool_call","tool_call":{"function":{"name":"list_logical_switches","arguments":"{ \"name_filter\": \"tenant\" }"},"id":"tc01","type":"function"}},{"type":"tool_call","tool_call":{"function":{"name":"list_acls","arguments":"{ \"direction\": \"to-lport\" }"},"id":"tc02","type":"function"}}]}`,
			assertedYAML: `parts:
- tool_call:
    function:
      arguments: '{ "name_filter": "tenant" }'
      name: list_logical_switches
    id: tc01
    type: function
  type: tool_call
- tool_call:
    function:
      arguments: '{ "direction": "to-lport" }'
      name: list_acls
    id: tc02
    type: function
  type: tool_call
role: assistant
`,
		},
		{
			name: "tool response",
			in: Message{
				Role: "user",
				Parts: []ContentPart{
					ToolCallResponse{ToolCallID: "tc01", Name: "list_logical_switches", Content: "ls-tenant-a, ls-tenant-b"},
				},
			},
		},
		{
			name: "multi-tool response",
			in: Message{
				Role: "user",
				Parts: []ContentPart{
					ToolCallResponse{ToolCallID: "tc01", Name: "list_logical_switches", Content: "ls-tenant-a, ls-tenant-b"},
					ToolCallResponse{ToolCallID: "tc02", Name: "list_acls", Content: "allow-related to-lport"},
				},
			},
		},
	}

	// Round-trip both JSON and YAML:
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// JSON
			jsonBytes, err := json.Marshal(tt.in)
			require.NoError(t, err)
			if tt.assertedJSON != "" {
				assert.Equal(t, tt.assertedJSON, string(jsonBytes))
			}
			var mc Message
			err = mc.UnmarshalJSON(jsonBytes)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.in, mc); diff != "" {
				t.Errorf("JSON roundtrip mismatch (-want +got):\n%s", diff)
			}

			// YAML
			yamlBytes, err := yaml.Marshal(tt.in)
			require.NoError(t, err)
			if tt.assertedYAML != "" {
				assert.Equal(t, tt.assertedYAML, string(yamlBytes))
			}
			mc = Message{}
			err = yaml.Unmarshal(yamlBytes, &mc)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.in, mc); diff != "" {
				t.Errorf("YAML roundtrip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshalJSONTextContent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    TextContent
		wantErr bool
	}{
		{
			name:    "valid text content",
			input:   `{"type":"text","text":"What bridges are configured?"}`,
			want:    TextContent{Text: "What bridges are configured?"},
			wantErr: false,
		},
		{
			name:    "invalid type",
			input:   `{"type":"image_url","text":"What bridges are configured?"}`,
			want:    TextContent{},
			wantErr: true,
		},
		{
			name:    "missing type field",
			input:   `{"text":"What bridges are configured?"}`,
			want:    TextContent{},
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			input:   `{"type":"text","text":"What bridges are configured?"`,
			want:    TextContent{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var tc TextContent
			err := tc.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tc)
		})
	}
}

func TestUnmarshalJSONImageURLContent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    ImageURLContent
		wantErr bool
	}{
		{
			name:    "valid image URL content",
			input:   `{"type":"image_url","image_url":{"url":"http://wiki.internal/ovn-topology.png"}}`,
			want:    ImageURLContent{URL: "http://wiki.internal/ovn-topology.png"},
			wantErr: false,
		},
		{
			name:    "image URL with detail",
			input:   `{"type":"image_url","image_url":{"url":"http://wiki.internal/ovn-topology.png","detail":"high"}}`,
			want:    ImageURLContent{URL: "http://wiki.internal/ovn-topology.png", Detail: "high"},
			wantErr: false,
		},
		{
			name:    "missing type field",
			input:   `{"image_url":{"url":"http://wiki.internal/ovn-topology.png"}}`,
			want:    ImageURLContent{},
			wantErr: true,
		},
		{
			name:    "invalid image_url field type",
			input:   `{"type":"image_url","image_url":"not an object"}`,
			want:    ImageURLContent{},
			wantErr: true,
		},
		{
			name:    "missing url field",
			input:   `{"type":"image_url","image_url":{"detail":"high"}}`,
			want:    ImageURLContent{},
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			input:   `{"type":"image_url","image_url":{"url":"http://wiki.internal/ovn-topology.png"}`,
			want:    ImageURLContent{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var iuc ImageURLContent
			err := iuc.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, iuc)
		})
	}
}

func TestUnmarshalJSONBinaryContent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    BinaryContent
		wantErr bool
	}{
		{
			name:    "valid binary content",
			input:   `{"type":"binary","binary":{"mime_type":"application/vnd.tcpdump.pcap","data":"Z2VuZXZlIGNhcHR1cmU="}}`,
			want:    BinaryContent{MIMEType: "application/vnd.tcpdump.pcap", Data: []byte("geneve capture")},
			wantErr: false,
		},
		{
			name:    "invalid type",
			input:   `{"type":"text","binary":{"mime_type":"application/vnd.tcpdump.pcap","data":"Z2VuZXZlIGNhcHR1cmU="}}`,
			want:    BinaryContent{},
			wantErr: true,
		},
		{
			name:    "missing binary field",
			input:   `{"type":"binary"}`,
			want:    BinaryContent{},
			wantErr: true,
		},
		{
			name:    "missing mime_type field",
			input:   `{"type":"binary","binary":{"data":"Z2VuZXZlIGNhcHR1cmU="}}`,
			want:    BinaryContent{},
			wantErr: true,
		},
		{
			name:    "invalid base64 data",
			input:   `{"type":"binary","binary":{"mime_type":"application/vnd.tcpdump.pcap","data":"invalid-base64!"}}`,
			want:    BinaryContent{},
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			input:   `{"type":"binary","binary":{"mime_type":"application/vnd.tcpdump.pcap","data":"Z2VuZXZlIGNhcHR1cmU="}`,
			want:    BinaryContent{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var bc BinaryContent
			err := bc.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bc)
		})
	}
}

func TestUnmarshalJSONToolCall(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    ToolCall
		wantErr bool
	}{
		{
			name:    "valid tool call with function",
			input:   `{"type":"tool_call","tool_call":{"id":"tc_42","type":"function","function":{"name":"list_logical_switches","arguments":"{ \"name_filter\": \"tenant\" }"}}}`,
			want:    ToolCall{ID: "tc_42", Type: "function", FunctionCall: &FunctionCall{Name: "list_logical_switches", Arguments: `{ "name_filter": "tenant" }`}},
			wantErr: false,
		},
		{
			name:    "tool call without function",
			input:   `{"type":"tool_call","tool_call":{"id":"tc_42","type":"function"}}`,
			want:    ToolCall{ID: "tc_42", Type: "function", FunctionCall: &FunctionCall{}},
			wantErr: false,
		},
		{
			name:    "missing type field",
			input:   `{"tool_call":{"id":"tc_42","type":"function","function":{"name":"list_logical_switches","arguments":"{}"}}}`,
			want:    ToolCall{},
			wantErr: true,
		},
		{
			name:    "missing id field",
			input:   `{"type":"tool_call","tool_call":{"type":"function","function":{"name":"list_logical_switches","arguments":"{}"}}}`,
			want:    ToolCall{},
			wantErr: true,
		},
		{
			name:    "missing type field in tool_call",
			input:   `{"type":"tool_call","tool_call":{"id":"tc_42","function":{"name":"list_logical_switches","arguments":"{}"}}}`,
			want:    ToolCall{},
			wantErr: true,
		},
		{
			name:    "invalid function field - not json raw message",
			input:   `{"type":"tool_call","tool_call":{"id":"tc_42","type":"function","function":"invalid function"}}`,
			want:    ToolCall{ID: "tc_42", Type: "function", FunctionCall: &FunctionCall{}},
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			input:   `{"type":"tool_call","tool_call":{"id":"tc_42","type":"function","function":{"name":"list_logical_switches","arguments":"{}"}}`,
			want:    ToolCall{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var tc ToolCall
			err := tc.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tc)
		})
	}
}

func TestUnmarshalJSONToolCallResponse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    ToolCallResponse
		wantErr bool
	}{
		{
			name:    "valid tool call response",
			input:   `{"type":"tool_response","tool_response":{"tool_call_id":"tc_1","name":"list_acls","content":"allow-related to-lport"}}`,
			want:    ToolCallResponse{ToolCallID: "tc_1", Name: "list_acls", Content: "allow-related to-lport"},
			wantErr: false,
		},
		{
			name:    "invalid type",
			input:   `{"type":"tool_call","tool_response":{"tool_call_id":"tc_1","name":"list_acls","content":"allow-related to-lport"}}`,
			want:    ToolCallResponse{},
			wantErr: true,
		},
		{
			name:    "missing tool_response field",
			input:   `{"type":"tool_response"}`,
			want:    ToolCallResponse{},
			wantErr: true,
		},
		{
			name:    "missing tool_call_id field",
			input:   `{"type":"tool_response","tool_response":{"name":"list_acls","content":"allow-related to-lport"}}`,
			want:    ToolCallResponse{},
			wantErr: true,
		},
		{
			name:    "missing content field",
			input:   `{"type":"tool_response","tool_response":{"tool_call_id":"tc_1","name":"list_acls"}}`,
			want:    ToolCallResponse{},
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			input:   `{"type":"tool_response","tool_response":{"tool_call_id":"tc_1","name":"list_acls","content":"allow-related to-lport"}`,
			want:    ToolCallResponse{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var tcr ToolCallResponse
			err := tcr.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tcr)
		})
	}
}
