package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtodo/pkg/persona"
	"moodtodo/pkg/todo"
)

func TestParseArgs(t *testing.T) {
	args, flags, err := ParseArgs([]string{
		"--config", "/tmp/c.json",
		"-a", "Buy milk",
		"--add", "Call mom",
		"--persona", "zen-otter",
		"--print", "--type", "json", "-v",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/c.json", args.ConfigPath)
	assert.Equal(t, []string{"Buy milk", "Call mom"}, args.AddTasks)
	assert.Equal(t, "zen-otter", args.Persona)
	assert.True(t, args.Print)
	assert.True(t, args.Verbose)
	assert.Equal(t, "json", args.Format)
	assert.True(t, flags.Changed("persona"))
	assert.Equal(t, "zen-otter", flags.Lookup("persona").Value.String())
}

func TestParseArgs_Defaults(t *testing.T) {
	args, flags, err := ParseArgs(nil)
	require.NoError(t, err)

	assert.Empty(t, args.AddTasks)
	assert.False(t, args.Print)
	assert.Equal(t, "txt", args.Format)
	assert.False(t, flags.Changed("persona"))
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, _, err := ParseArgs([]string{"--nope"})
	assert.Error(t, err)
}

func TestHandleCommands(t *testing.T) {
	store := todo.NewStore()
	store.Add("Buy milk")
	catalog := persona.Default()

	tests := []struct {
		name    string
		args    Args
		handled bool
		output  string
	}{
		{name: "no command", args: Args{}, handled: false},
		{name: "print", args: Args{Print: true, Format: "txt"}, handled: true, output: "- [ ] Buy milk"},
		{name: "list personas", args: Args{ListPersonas: true}, handled: true, output: "sleepy-sloth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handled, err := HandleCommands(&buf, store, catalog, &tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.handled, handled)
			assert.Contains(t, buf.String(), tt.output)
		})
	}
}
