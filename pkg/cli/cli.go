package cli

import (
	"io"

	"github.com/spf13/pflag"

	"moodtodo/pkg/commands"
	"moodtodo/pkg/persona"
	"moodtodo/pkg/todo"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// LogFile and Persona are read through the config layer, which binds
	// the flags so they override config file values
	LogFile string
	Persona string

	// Task operations
	AddTasks []string

	// One-shot commands
	ListPersonas bool
	Print        bool
	Format       string
}

// ParseArgs parses command line arguments. The returned flag set is bound
// into the configuration so flags override file values.
func ParseArgs(argv []string) (*Args, *pflag.FlagSet, error) {
	args := &Args{}
	flags := pflag.NewFlagSet("moodtodo", pflag.ContinueOnError)

	flags.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flags.BoolVarP(&args.Verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&args.LogFile, "log-file", "", "Debug log file (with --verbose)")

	// Task operations
	flags.StringArrayVarP(&args.AddTasks, "add", "a", nil, "Add a task before starting (repeatable)")
	flags.StringVarP(&args.Persona, "persona", "p", "", "Select a persona and add its starter todos")

	// One-shot commands
	flags.BoolVar(&args.ListPersonas, "list-personas", false, "List the available personas and exit")
	flags.BoolVar(&args.Print, "print", false, "Print the resulting list instead of starting the UI")
	flags.StringVar(&args.Format, "type", "txt", "Print format (txt, json)")

	if err := flags.Parse(argv); err != nil {
		return nil, nil, err
	}
	return args, flags, nil
}

// HandleCommands processes one-shot commands and returns true if one was handled
func HandleCommands(w io.Writer, store *todo.Store, catalog *persona.Catalog, args *Args) (bool, error) {
	if args.ListPersonas {
		return true, commands.HandleListPersonas(w, catalog)
	}

	if args.Print {
		return true, commands.HandlePrintCommand(w, store.Tasks(), args.Format)
	}

	// No CLI command was handled
	return false, nil
}
