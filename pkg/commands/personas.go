package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"moodtodo/pkg/persona"
)

// HandleListPersonas prints the persona catalog in declared order
func HandleListPersonas(w io.Writer, catalog *persona.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range catalog.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.Mood)
		for _, label := range p.StarterTodos {
			fmt.Fprintf(tw, "\t- %s\t\n", label)
		}
	}
	return tw.Flush()
}
