package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"moodtodo/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd
	handled := false

	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled = true

		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.ToggleStatus):
				if task, ok := m.selectedTask(); ok {
					m.store.Toggle(task.ID)
					m.refreshTasks()
				}

			case key.Matches(msg, m.keyMap.RemoveTask):
				if task, ok := m.selectedTask(); ok {
					m.store.Remove(task.ID)
					m.status = fmt.Sprintf("Removed %q", task.Text)
					m.refreshTasks()
				}

			case key.Matches(msg, m.keyMap.AddTask):
				m.mode = AddMode
				m.taskInput.SetValue(m.store.Pending())
				m.taskInput.CursorEnd()
				cmds = append(cmds, m.taskInput.Focus())

			case key.Matches(msg, m.keyMap.FocusPersonas):
				if m.catalog.Len() > 0 {
					m.mode = PersonaMode
					m.personaCursor = m.activePersonaIndex()
				}

			default:
				handled = false
			}

		case AddMode:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit

			case "esc":
				// Leave the form; the typed text stays pending
				m.store.SetPending(m.taskInput.Value())
				m.taskInput.Blur()
				m.mode = NormalMode

			case "enter":
				m.store.SetPending(m.taskInput.Value())
				if m.store.Submit() {
					m.taskInput.Reset()
					m.status = ""
					m.refreshTasks()
					m.table.GotoBottom()
				}

			default:
				m.taskInput, cmd = m.taskInput.Update(msg)
				cmds = append(cmds, cmd)
				m.store.SetPending(m.taskInput.Value())
			}

		case PersonaMode:
			switch {
			case msg.String() == "esc", key.Matches(msg, m.keyMap.FocusPersonas):
				m.mode = NormalMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.PersonaLeft):
				if m.personaCursor > 0 {
					m.personaCursor--
				}

			case key.Matches(msg, m.keyMap.PersonaRight):
				if m.personaCursor < m.catalog.Len()-1 {
					m.personaCursor++
				}

			case key.Matches(msg, m.keyMap.SelectPersona):
				m.selectPersona()
			}

		case HelpViewMode:
			switch {
			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case msg.String() == "esc", key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(max(msg.Width-4, 20))
		m.table.SetColumns(columnsFor(msg.Width))
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
	}

	// Only update table in normal mode, and only with keys we didn't use
	if m.mode == NormalMode && !handled {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// selectPersona highlights the persona under the cursor and seeds its todos
func (m *Model) selectPersona() {
	p, ok := m.catalog.At(m.personaCursor)
	if !ok {
		return
	}

	added := m.store.SelectAndSeed(p)
	utils.Log("Persona %s selected, %d new task(s)", p.ID, added)

	switch added {
	case 0:
		m.status = fmt.Sprintf("%s: nothing new to add", p.Name)
	case 1:
		m.status = fmt.Sprintf("%s added 1 task", p.Name)
	default:
		m.status = fmt.Sprintf("%s added %d tasks", p.Name, added)
	}
	m.refreshTasks()
}
