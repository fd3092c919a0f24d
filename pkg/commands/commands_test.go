package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtodo/pkg/persona"
	"moodtodo/pkg/todo"
)

func TestHandleAddTasks(t *testing.T) {
	store := todo.NewStore()

	added := HandleAddTasks(store, []string{"Buy milk", "  ", " Call mom "})

	assert.Equal(t, 2, added)
	tasks := store.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Call mom", tasks[1].Text)
}

func TestHandleInitialPersona(t *testing.T) {
	store := todo.NewStore()
	catalog := persona.Default()

	require.NoError(t, HandleInitialPersona(store, catalog, ""))
	assert.Equal(t, 0, store.Len())

	require.NoError(t, HandleInitialPersona(store, catalog, "zen-otter"))
	assert.Equal(t, 3, store.Len())
	active, ok := store.ActivePersona()
	assert.True(t, ok)
	assert.Equal(t, "zen-otter", active)

	err := HandleInitialPersona(store, catalog, "grumpy-cat")
	assert.ErrorContains(t, err, "unknown persona")
}

func TestHandlePrintCommand_Text(t *testing.T) {
	store := todo.NewStore()
	store.Add("Buy milk")
	store.Add("Call mom")
	store.Toggle(store.Tasks()[1].ID)

	var buf bytes.Buffer
	require.NoError(t, HandlePrintCommand(&buf, store.Tasks(), "txt"))

	assert.Equal(t, "- [ ] Buy milk\n- [x] Call mom\n", buf.String())
}

func TestHandlePrintCommand_EmptyText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HandlePrintCommand(&buf, nil, "txt"))
	assert.Empty(t, buf.String())
}

func TestHandlePrintCommand_JSON(t *testing.T) {
	store := todo.NewStore()
	store.Add("Buy milk")

	var buf bytes.Buffer
	require.NoError(t, HandlePrintCommand(&buf, store.Tasks(), "json"))

	var got []todo.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, store.Tasks(), got)
}

func TestHandlePrintCommand_UnknownType(t *testing.T) {
	var buf bytes.Buffer
	err := HandlePrintCommand(&buf, nil, "csv")
	assert.ErrorContains(t, err, "unknown print type")
}

func TestHandleListPersonas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HandleListPersonas(&buf, persona.Default()))

	out := buf.String()
	assert.Contains(t, out, "coffee-goblin")
	assert.Contains(t, out, "Coffee Goblin")
	assert.Contains(t, out, "- Take a 20 minute nap")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("coffee-goblin")), bytes.Index(buf.Bytes(), []byte("zen-otter")))
}
