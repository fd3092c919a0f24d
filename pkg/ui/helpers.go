package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"moodtodo/pkg/config"
	"moodtodo/pkg/todo"
)

// chromeHeight is the number of lines around the task table: title,
// persona strip, form, footer and help bar.
const chromeHeight = 18

// refreshTasks re-reads the store and rebuilds the table rows
func (m *Model) refreshTasks() {
	m.tasks = m.store.Tasks()

	rows := make([]table.Row, 0, len(m.tasks))
	for _, task := range m.tasks {
		rows = append(rows, table.Row{renderTask(task, m.styles)})
	}
	m.table.SetRows(rows)

	// Keep the cursor on a real row after removals
	cursor := m.table.Cursor()
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.table.SetCursor(cursor)
}

// selectedTask returns the task under the table cursor
func (m Model) selectedTask() (todo.Task, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tasks) {
		return todo.Task{}, false
	}
	return m.tasks[idx], true
}

// activePersonaIndex returns the catalog position of the active persona,
// or 0 when none is active
func (m Model) activePersonaIndex() int {
	id, ok := m.store.ActivePersona()
	if !ok {
		return 0
	}
	for i, p := range m.catalog.All() {
		if p.ID == id {
			return i
		}
	}
	return 0
}

// renderTask formats a task row, striking through finished ones
func renderTask(task todo.Task, styles config.Styles) string {
	text := task.Text
	if task.Done {
		text = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(styles.MutedTextColor)).
			Render(text)
	}
	return task.Status() + " " + text
}

func columnsFor(width int) []table.Column {
	return []table.Column{{Title: "", Width: max(width-6, 20)}}
}
