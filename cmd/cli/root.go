package cli

import (
	"fmt"
	"log/slog"

	"github.com/kcaldas/lineedit/internal/di"
	"github.com/kcaldas/lineedit/pkg/config"
	"github.com/kcaldas/lineedit/pkg/logging"
	"github.com/kcaldas/lineedit/pkg/version"
	"github.com/spf13/cobra"
)

const debugLogFile = "lineedit-debug.log"

// options holds the flag values of one command tree
type options struct {
	configPath  string
	prompt      string
	backend     string
	historySize int
	verbose     bool
	quiet       bool

	settings config.Settings
	logger   logging.Logger
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCommand()

// NewRootCommand builds the lineedit command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lineedit",
		Short: "Interactive line editor",
		Long: `lineedit reads lines from the terminal with in-place editing and history
recall, and echoes each submitted line back.`,
		Version:      version.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	// Global flags available to all commands
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath+")")
	flags.StringVar(&opts.prompt, "prompt", config.DefaultPrompt, "prompt shown before each line")
	flags.StringVar(&opts.backend, "backend", config.DefaultBackend, "terminal backend (ansi or tcell)")
	flags.IntVar(&opts.historySize, "history-size", config.DefaultHistorySize, "number of lines kept for recall")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug level)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "quiet output (errors only)")

	cmd.AddCommand(newKeysCommand(opts))
	return cmd
}

// setup configures the logger and resolves settings. Flags given on the
// command line win over every other source.
func (o *options) setup(cmd *cobra.Command) error {
	// The editor owns the terminal, so logs go to a file
	o.logger = logging.NewFileLoggerFromEnv(debugLogFile)
	if o.quiet {
		o.logger.SetLevel(slog.LevelError)
	} else if o.verbose {
		o.logger.SetLevel(slog.LevelDebug)
	}
	logging.SetGlobalLogger(o.logger)

	settings, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("prompt") {
		settings.Prompt = o.prompt
	}
	if flags.Changed("backend") {
		settings.Backend = o.backend
	}
	if flags.Changed("history-size") {
		settings.HistorySize = o.historySize
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	o.settings = settings
	o.logger.Debug("settings resolved",
		"prompt", settings.Prompt,
		"backend", settings.Backend,
		"history_size", settings.HistorySize,
		"bindings", len(settings.Bindings),
	)
	return nil
}

// run edits lines on the terminal until end of input. Piped input is
// echoed without editing.
func (o *options) run(cmd *cobra.Command) error {
	if !isTerminal(cmd.InOrStdin()) {
		o.logger.Debug("input is not a terminal, echoing without editing")
		return echoInput(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	ed, cleanup, err := di.InitializeEditor(o.settings, o.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize editor: %w", err)
	}
	defer cleanup()

	return echoLines(ed.Engine, ed.Terminal, o.settings.Prompt)
}
