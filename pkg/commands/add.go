package commands

import (
	"fmt"

	"moodtodo/pkg/persona"
	"moodtodo/pkg/todo"
	"moodtodo/pkg/utils"
)

// HandleAddTasks adds the --add texts in order and returns how many were
// added; blank texts are skipped like in the UI
func HandleAddTasks(store *todo.Store, texts []string) int {
	added := 0
	for _, text := range texts {
		if store.Add(text) {
			added++
		}
	}
	return added
}

// HandleInitialPersona selects the persona and seeds its starter todos
func HandleInitialPersona(store *todo.Store, catalog *persona.Catalog, id string) error {
	if id == "" {
		return nil
	}

	p, ok := catalog.Get(id)
	if !ok {
		return fmt.Errorf("unknown persona %q", id)
	}

	added := store.SelectAndSeed(p)
	utils.Log("Initial persona %s added %d task(s)", p.ID, added)
	return nil
}
