package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const emptyListText = "Nothing here yet. Add your first task."

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	if m.mode == HelpViewMode {
		sb.WriteString(m.renderHelp())
		sb.WriteString("\n")
		sb.WriteString(m.helpBar())
		return sb.String()
	}

	// App Title Bar
	sb.WriteString(m.bannerStyle().Render(" Todo "))
	sb.WriteString(" ")
	sb.WriteString(m.mutedStyle().Render("Simple, clean, responsive."))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderPersonas())
	sb.WriteString("\n")

	if m.mode == AddMode {
		sb.WriteString(m.taskInput.View())
		sb.WriteString("\n\n")
	}

	if len(m.tasks) == 0 {
		sb.WriteString(m.mutedStyle().Render(emptyListText))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.table.View())
		sb.WriteString("\n")
	}

	// Footer with progress and the last action
	done, total := m.store.Counts()
	footer := fmt.Sprintf("%d of %d done", done, total)
	if m.status != "" {
		footer += " | " + m.status
	}
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(footer))
	sb.WriteString("\n")

	sb.WriteString(m.helpBar())
	return sb.String()
}

// renderPersonas renders the persona strip. The active persona gets a
// highlighted border, the one under the cursor shows its avatar link.
func (m Model) renderPersonas() string {
	personas := m.catalog.All()
	if len(personas) == 0 {
		return ""
	}

	activeID, _ := m.store.ActivePersona()
	cards := make([]string, 0, len(personas))
	for i, p := range personas {
		border := lipgloss.Color(m.styles.BorderColor)
		if p.ID == activeID {
			border = lipgloss.Color(m.styles.ActiveCardColor)
		}

		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(28)

		name := lipgloss.NewStyle().Bold(true)
		if m.mode == PersonaMode && i == m.personaCursor {
			name = name.
				Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
				Background(lipgloss.Color(m.styles.AccentColor))
		}

		title := p.Name
		if p.ID == activeID {
			title = "* " + title
		}
		cards = append(cards, card.Render(name.Render(title)+"\n"+m.mutedStyle().Render(p.Mood)))
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	sb.WriteString("\n")

	if m.mode == PersonaMode {
		if p, ok := m.catalog.At(m.personaCursor); ok {
			sb.WriteString(m.mutedStyle().Render("avatar: " + p.ImageURL))
			sb.WriteString("\n")
			sb.WriteString(m.mutedStyle().Render("starts with: " + strings.Join(p.StarterTodos, ", ")))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// renderHelp renders the fullscreen list of key bindings
func (m Model) renderHelp() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(binding.Help().Key)))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.AddTask)
	addCommand(m.keyMap.ToggleStatus)
	addCommand(m.keyMap.RemoveTask)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Persona Commands"))
	sb.WriteString("\n\n")
	addCommand(m.keyMap.FocusPersonas)
	addCommand(m.keyMap.PersonaLeft)
	addCommand(m.keyMap.PersonaRight)
	addCommand(m.keyMap.SelectPersona)

	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor)).
		Render(" • ")

	addAction := func(binding key.Binding, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(binding.Help().Key), descStyle.Render(desc)))
	}
	addLiteral := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction(m.keyMap.AddTask, "add")
		addAction(m.keyMap.ToggleStatus, "toggle")
		addAction(m.keyMap.RemoveTask, "remove")
		addAction(m.keyMap.FocusPersonas, "personas")
		addAction(m.keyMap.ShowHelp, "help")
		addAction(m.keyMap.QuitApp, "quit")

	case AddMode:
		addLiteral("enter", "add")
		addLiteral("esc", "done")

	case PersonaMode:
		addLiteral("←/→", "move")
		addAction(m.keyMap.SelectPersona, "select")
		addLiteral("esc", "back")

	case HelpViewMode:
		addLiteral("esc", "back")
		addAction(m.keyMap.QuitApp, "quit")
	}

	return strings.Join(actions, separator)
}

func (m Model) bannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1)
}

func (m Model) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.MutedTextColor))
}
