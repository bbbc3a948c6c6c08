package chatmodel

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewStringAndStringMethods(t *testing.T) {
	t.Parallel()
	s := NewString("What bridges are configured?")
	require.NotNil(t, s)
	assert.Equal(t, "What bridges are configured?", s.value)
	assert.Equal(t, "What bridges are configured?", s.String())
	assert.Equal(t, "What bridges are configured?", s.GetContent())
	assert.Equal(t, []byte("What bridges are configured?"), s.Bytes())
}

func TestParseInput(t *testing.T) {
	t.Parallel()
	s := NewString("")
	err := s.ParseInput("How many logical switches are there?")
	require.NoError(t, err)
	assert.Equal(t, "How many logical switches are there?", s.String())
	// parse empty
	err = s.ParseInput("")
	require.NoError(t, err)
	assert.Equal(t, "", s.String())
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"basic", []byte("list the ACLs"), "list the ACLs"},
		{"quoted", []byte("\"br-int\""), "br-int"},
		{"both ends", []byte("\"to-lport\""), "to-lport"},
		{"empty", []byte{}, ""},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &String{}
			err := s.Unmarshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.String())
		})
	}
}
