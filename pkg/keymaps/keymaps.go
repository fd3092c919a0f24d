package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":      {"?", "show/hide commands"},
	"QuitApp":       {"q, ctrl+c", "quit"},
	"ToggleStatus":  {"space, x", "toggle done"},
	"AddTask":       {"a", "add task"},
	"RemoveTask":    {"d, delete", "remove task"},
	"FocusPersonas": {"p, tab", "pick a persona"},
	"PersonaLeft":   {"left, h", "previous persona"},
	"PersonaRight":  {"right, l", "next persona"},
	"SelectPersona": {"enter", "select persona and add its todos"},
}

type KeyMap struct {
	ShowHelp      key.Binding
	QuitApp       key.Binding
	ToggleStatus  key.Binding
	AddTask       key.Binding
	RemoveTask    key.Binding
	FocusPersonas key.Binding
	PersonaLeft   key.Binding
	PersonaRight  key.Binding
	SelectPersona key.Binding
}

// BuildKeyMap applies config overrides on top of the defaults. Action names
// match case-insensitively since viper lowercases config keys.
func BuildKeyMap(configOverrides map[string]string) KeyMap {
	overrides := make(map[string]string, len(configOverrides))
	for action, keys := range configOverrides {
		overrides[strings.ToLower(action)] = keys
	}

	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := overrides[strings.ToLower(action)]; exists && strings.TrimSpace(override) != "" {
			keyStr = override
		}

		binding := parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		switch action {
		case "ShowHelp":
			km.ShowHelp = binding
		case "QuitApp":
			km.QuitApp = binding
		case "ToggleStatus":
			km.ToggleStatus = binding
		case "AddTask":
			km.AddTask = binding
		case "RemoveTask":
			km.RemoveTask = binding
		case "FocusPersonas":
			km.FocusPersonas = binding
		case "PersonaLeft":
			km.PersonaLeft = binding
		case "PersonaRight":
			km.PersonaRight = binding
		case "SelectPersona":
			km.SelectPersona = binding
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if strings.TrimSpace(keyStr) == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	var keys []string
	for _, k := range strings.Split(keyStr, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		keys = append(keys, k)
		// the space bar reports itself as " "
		if k == "space" {
			keys = append(keys, " ")
		}
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
