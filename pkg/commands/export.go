package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"moodtodo/pkg/todo"
)

// HandlePrintCommand writes the tasks to w as a checklist or as JSON
func HandlePrintCommand(w io.Writer, tasks []todo.Task, format string) error {
	var content []byte

	switch format {
	case "json":
		if tasks == nil {
			tasks = []todo.Task{}
		}
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal tasks: %w", err)
		}
		content = data
	case "txt", "":
		lines := make([]string, 0, len(tasks))
		for _, task := range tasks {
			status := " "
			if task.Done {
				status = "x"
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s", status, task.Text))
		}
		content = []byte(strings.Join(lines, "\n"))
	default:
		return fmt.Errorf("unknown print type: %s", format)
	}

	if len(content) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s\n", content)
	return err
}
