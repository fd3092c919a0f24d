package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"moodtodo/pkg/keymaps"
	"moodtodo/pkg/persona"
)

// Config holds the application configuration
type Config struct {
	KeyMap         map[string]string `mapstructure:"keymap"`
	Styles         Styles            `mapstructure:"styles"`
	Personas       []persona.Persona `mapstructure:"personas"`
	InitialPersona string            `mapstructure:"initial_persona"`
	LogFile        string            `mapstructure:"log_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `mapstructure:"border_color"`
	AccentColor string `mapstructure:"accent_color"`

	// Text colors
	NormalTextColor   string `mapstructure:"normal_text_color"`
	MutedTextColor    string `mapstructure:"muted_text_color"`
	SelectedTextColor string `mapstructure:"selected_text_color"`
	SelectedBgColor   string `mapstructure:"selected_bg_color"`

	// Persona cards
	ActiveCardColor string `mapstructure:"active_card_color"`
}

// DefaultStyles returns the built-in color scheme
func DefaultStyles() Styles {
	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		MutedTextColor:    "244",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ActiveCardColor:   "212",
	}
}

// Default returns the configuration used when no file overrides anything
func Default() Config {
	return Config{
		KeyMap: keymaps.GetDefaultKeyMappings(),
		Styles: DefaultStyles(),
	}
}

// DefaultPath returns ~/.config/moodtodo/config.json
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "moodtodo", "config.json"), nil
}

// Load reads the configuration from configPath, creating it with default
// values if it doesn't exist. Flags that were set on the command line take
// precedence over file values.
func Load(configPath string, flags *pflag.FlagSet) (Config, error) {
	if configPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), err
		}
		configPath = p
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	v.SetEnvPrefix("MOODTODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		for key, name := range map[string]string{
			"initial_persona": "persona",
			"log_file":        "log-file",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Default(), fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Default(), fmt.Errorf("read config %s: %w", configPath, err)
		}

		if err := writeDefaults(configPath); err != nil {
			return Default(), err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", configPath, err)
	}
	return cfg, nil
}

// writeDefaults creates the config file from defaults only, so one-off
// flags and environment values are not saved into it
func writeDefaults(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	d := viper.New()
	d.SetConfigType("json")
	setDefaults(d)
	if err := d.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	for action, keys := range keymaps.GetDefaultKeyMappings() {
		v.SetDefault("keymap."+strings.ToLower(action), keys)
	}

	s := DefaultStyles()
	v.SetDefault("styles.border_color", s.BorderColor)
	v.SetDefault("styles.accent_color", s.AccentColor)
	v.SetDefault("styles.normal_text_color", s.NormalTextColor)
	v.SetDefault("styles.muted_text_color", s.MutedTextColor)
	v.SetDefault("styles.selected_text_color", s.SelectedTextColor)
	v.SetDefault("styles.selected_bg_color", s.SelectedBgColor)
	v.SetDefault("styles.active_card_color", s.ActiveCardColor)

	v.SetDefault("initial_persona", "")
	v.SetDefault("log_file", "")
}

// Catalog builds the persona catalog: the configured personas if any,
// otherwise the built-in ones
func (c Config) Catalog() (*persona.Catalog, error) {
	if len(c.Personas) == 0 {
		return persona.Default(), nil
	}
	catalog, err := persona.New(c.Personas)
	if err != nil {
		return nil, fmt.Errorf("invalid personas in config: %w", err)
	}
	return catalog, nil
}
