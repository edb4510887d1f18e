package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"duke/internal/config"
	"duke/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	loader   *config.Loader
	config   *config.Config
	registry *CommandRegistry
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader) *RootCommand {
	root := &RootCommand{
		loader: loader,
	}

	root.cmd = &cobra.Command{
		Use:   "duke",
		Short: "A personal task-tracking assistant",
		Long: `Duke keeps a list of to-dos, deadlines and events and saves it between sessions.

COMMANDS (typed into the console, the chat API or duke exec):
  todo <description>                        Add a to-do
  deadline <description> /by <when>        Add a deadline
  event <description> /at <start>-<end>    Add an event
  list                                      Show every task
  done <n> / delete <n>                     Complete or remove task number n
  find <text>                               Show tasks whose description contains text
  save                                      Write the list out now
  help                                      Show the command summary
  bye                                       End the session

DATES:
  yyyy-MM-dd or yyyy-MM-dd HHmm, e.g. 2019-12-01 or 2019-12-01 1800.
  An event may end with a bare HHmm on the same day: 2019-12-01 1800-2200

EXAMPLES:
  duke                                      # Interactive console
  duke exec todo read book                  # Run one command
  duke exec -- delete 2                     # Use -- when the command has dashes
  duke chat --chat-addr 127.0.0.1:9000      # Chat-style HTTP front end

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    DUKE_STORAGE_BACKEND                    file or sqlite (default: file)
    DUKE_DATA_DIR                           Data directory (default: data)
    DUKE_DATA_FILE                          Data filename (default: savedTasks.txt, duke.db for sqlite)
    DUKE_DATA_DIR_PERMISSIONS               Octal permissions for a new data directory (default: 755)
    DUKE_ON_CORRUPT                         skip or reset unreadable saved tasks (default: skip)
    DUKE_VALIDATION_DESCRIPTION_MAX         Maximum description length (default: 255)
    DUKE_SEARCH_CASE_SENSITIVE              Case-sensitive find (default: false)
    DUKE_CHAT_ADDR                          Chat listen address (default: 127.0.0.1:8080)
    DUKE_CHAT_SHUTDOWN_TIMEOUT              Chat graceful shutdown timeout (default: 10s)
    DUKE_APP_VERBOSE                        Enable verbose output (default: false)
    DUKE_DEBUG                              Print debug output to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.registry.Execute(cmd.Context(), "console", args)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx passed to every subcommand
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command exposes the cobra command, mainly for tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the configuration resolved for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("backend", "", "Storage backend, file or sqlite (overrides DUKE_STORAGE_BACKEND)")
	flags.String("data-dir", "", "Data directory (overrides DUKE_DATA_DIR)")
	flags.String("data-file", "", "Data filename (overrides DUKE_DATA_FILE)")
	flags.String("on-corrupt", "", "skip or reset unreadable saved tasks (overrides DUKE_ON_CORRUPT)")

	// Validation configuration
	flags.Int("description-max-length", 0, "Maximum description length (overrides DUKE_VALIDATION_DESCRIPTION_MAX)")

	// Search configuration
	flags.Bool("case-sensitive", false, "Case-sensitive find (overrides DUKE_SEARCH_CASE_SENSITIVE)")

	// Chat configuration
	flags.String("chat-addr", "", "Chat listen address (overrides DUKE_CHAT_ADDR)")
	flags.Duration("shutdown-timeout", 0, "Chat graceful shutdown timeout (overrides DUKE_CHAT_SHUTDOWN_TIMEOUT)")

	// Application configuration
	flags.Bool("verbose", false, "Enable verbose output (overrides DUKE_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Start the interactive console",
		Long:  "Read commands from standard input, one per line, until bye or end of input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.registry.Execute(cmd.Context(), "console", args)
		},
	}

	execCmd := &cobra.Command{
		Use:   "exec [command words]",
		Short: "Run a single command",
		Long: `Run one command line and print the reply. Changes are saved like in the console.

Examples:
  duke exec todo read book
  duke exec deadline submit essay /by 2019-12-01
  duke exec -- find -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.registry.Execute(cmd.Context(), "exec", args)
		},
	}

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Start the chat-style HTTP front end",
		Long: `Serve the session over HTTP until bye is sent or the process is interrupted.

Endpoints:
  POST /api/v1/messages   {"input": "todo read book"} -> {"response": "...", "exit": false}
  GET  /ws                websocket, one JSON message per frame in the same shape
  GET  /health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.registry.Execute(cmd.Context(), "chat", args)
		},
	}

	r.cmd.AddCommand(
		consoleCmd,
		execCmd,
		chatCmd,
	)
}

// loadConfig resolves configuration from the environment and the flags that
// were set, then wires the command registry to it.
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	if r.loader == nil {
		return fmt.Errorf("configuration loader not initialized")
	}

	overrides := r.overridesFromFlags(cmd)
	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg

	if cfg.Application.Verbose {
		logging.SetDebug(true)
	}

	app := NewApp(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	r.registry = NewCommandRegistry(app)
	return nil
}

// overridesFromFlags collects only the flags given on the command line
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		overrides.DataDir = &v
	}
	if flags.Changed("data-file") {
		v, _ := flags.GetString("data-file")
		overrides.DataFile = &v
	}
	if flags.Changed("on-corrupt") {
		v, _ := flags.GetString("on-corrupt")
		overrides.OnCorrupt = &v
	}
	if flags.Changed("description-max-length") {
		v, _ := flags.GetInt("description-max-length")
		overrides.DescriptionMaxLength = &v
	}
	if flags.Changed("case-sensitive") {
		v, _ := flags.GetBool("case-sensitive")
		overrides.CaseSensitive = &v
	}
	if flags.Changed("chat-addr") {
		v, _ := flags.GetString("chat-addr")
		overrides.ChatAddr = &v
	}
	if flags.Changed("shutdown-timeout") {
		v, _ := flags.GetDuration("shutdown-timeout")
		overrides.ShutdownTimeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}
