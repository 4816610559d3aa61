package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"up", "down", "version", "force"}, names)
}

func TestRootCommand_ArgumentValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"down with text", []string{"down", "abc"}, "invalid number of steps"},
		{"down with zero", []string{"down", "0"}, "invalid number of steps"},
		{"down with two args", []string{"down", "1", "2"}, "accepts at most 1 arg"},
		{"force without version", []string{"force"}, "accepts 1 arg"},
		{"force with text", []string{"force", "latest"}, "invalid version"},
		{"up with args", []string{"up", "now"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCommand()
			cmd.SetArgs(tt.args)
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))

			err := cmd.Execute()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
