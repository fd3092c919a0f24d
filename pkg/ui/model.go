package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moodtodo/pkg/config"
	"moodtodo/pkg/keymaps"
	"moodtodo/pkg/persona"
	"moodtodo/pkg/todo"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode   InputMode = iota
	AddMode                // Typing a new task
	PersonaMode            // Moving through the persona strip
	HelpViewMode           // Mode for displaying help
)

// Model represents the application state. The store is shared by
// pointer, so copies of Model made by Bubble Tea all see the same list.
type Model struct {
	table         table.Model
	tasks         []todo.Task // snapshot matching the table rows
	store         *todo.Store
	catalog       *persona.Catalog
	width, height int

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	mode          InputMode
	taskInput     textinput.Model
	personaCursor int
	status        string
}

// NewModel creates a new UI model over the given store and persona catalog
func NewModel(store *todo.Store, catalog *persona.Catalog, cfg config.Config) Model {
	columns := []table.Column{
		{Title: "", Width: 60},
	}

	// Space and d are ours, keep the table to arrows and paging keys
	km := table.DefaultKeyMap()
	km.PageUp = key.NewBinding(key.WithKeys("pgup"))
	km.PageDown = key.NewBinding(key.WithKeys("pgdown"))
	km.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"))
	km.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"))

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithKeyMap(km),
	)

	styles := cfg.Styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(false).
		Bold(false).
		Foreground(lipgloss.NoColor{})
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	taskInput := textinput.New()
	taskInput.Placeholder = "Add a task..."
	taskInput.Width = 40

	m := Model{
		table:     t,
		store:     store,
		catalog:   catalog,
		config:    cfg,
		styles:    styles,
		keyMap:    keymaps.BuildKeyMap(cfg.KeyMap),
		mode:      NormalMode,
		taskInput: taskInput,
	}

	m.refreshTasks()
	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current input mode
func (m Model) Mode() InputMode {
	return m.mode
}

// Store returns the task store backing the model
func (m Model) Store() *todo.Store {
	return m.store
}
