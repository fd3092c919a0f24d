package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"moodtodo/pkg/cli"
	"moodtodo/pkg/commands"
	"moodtodo/pkg/config"
	"moodtodo/pkg/todo"
	"moodtodo/pkg/ui"
	"moodtodo/pkg/utils"
)

func main() {
	args, flags, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := config.Load(args.ConfigPath, flags)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := utils.InitLogger(args.Verbose, cfg.LogFile); err != nil {
		fmt.Printf("Error creating log file: %v\n", err)
	}
	defer utils.CloseLogger()

	catalog, err := cfg.Catalog()
	if err != nil {
		fmt.Printf("Error loading personas: %v\n", err)
		os.Exit(1)
	}

	store := todo.NewStore()
	commands.HandleAddTasks(store, args.AddTasks)
	if err := commands.HandleInitialPersona(store, catalog, cfg.InitialPersona); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	handled, err := cli.HandleCommands(os.Stdout, store, catalog, args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if handled {
		return
	}

	p := tea.NewProgram(ui.NewModel(store, catalog, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
