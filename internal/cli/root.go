package cli

import (
	"fmt"
	"strings"

	"tripboard/internal/config"
	"tripboard/internal/format"
	"tripboard/internal/logging"
	"tripboard/internal/store"
	"tripboard/internal/tui"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Dir        string
	Format     string
	LogLevel   string
	Pretty     bool
	NoColor    bool

	cfg      *config.Config
	logger   *log.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tripboard",
		Short:        "Trip itinerary board (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  tripboard

  # Fill the board with demo events
  tripboard events seed --count 6

  # Scriptable commands
  tripboard events list --sort price --format text

  # Direct event lookup (shortcut for: tripboard events show <event-id>)
  tripboard 6f1c2a4e-8a9b-4b55-9a51-0c1d2e3f4a5b
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog == nil {
			return nil
		}
		return app.closeLog()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to a YAML config file (default: $"+config.EnvConfigPath+")")
	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Data dir holding the event database (default: ~/.tripboard)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "json", "Output format (json|text)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colours in the TUI")

	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newPublishCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// setup resolves config (file, env, then flags set on the command line) and
// opens the log file.
func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Context(), app.ConfigPath)
	if err != nil {
		return writeErr(cmd, err)
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = app.Dir
	}
	if flags.Changed("format") {
		cfg.Format = app.Format
	}
	if flags.Changed("pretty") {
		cfg.Pretty = app.Pretty
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = app.LogLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = app.NoColor
	}
	if err := cfg.Validate(); err != nil {
		return writeErr(cmd, err)
	}

	logger, closeLog, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return writeErr(cmd, fmt.Errorf("open log: %w", err))
	}
	app.cfg = cfg
	app.logger = logger
	app.closeLog = closeLog

	logger.WithFields(log.Fields{
		"command": cmd.CommandPath(),
		"dir":     cfg.Dir,
	}).Debug("start")
	return nil
}

func (app *App) store() store.Store {
	return store.Store{Dir: app.cfg.Dir}
}

func runTUI(cmd *cobra.Command, app *App) error {
	s := app.store()
	em, err := s.LoadModel(cmd.Context())
	if err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(cmd.Context(), tui.Options{
		Events:  em,
		Saver:   s,
		Logger:  app.logger,
		NoColor: app.cfg.NoColor,
	})
}

// writeOut wraps JSON output in a {"data": ...} envelope. Text output renders
// the value itself.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	if app.cfg.Format == "text" {
		return format.Write(cmd.OutOrStdout(), v, app.cfg.Format, app.cfg.Pretty)
	}
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": v}, app.cfg.Format, app.cfg.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
