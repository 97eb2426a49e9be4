package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avadakedavra-wp/fazrepo/internal/branding"
	"github.com/avadakedavra-wp/fazrepo/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	noColor bool
)

// Shared state prepared by the root pre-run.
var (
	appConfig *config.AppConfig
	logger    *slog.Logger
)

// errReported is returned by commands that already printed their failure.
// Execute does not print it again.
var errReported = errors.New("failure already reported")

// workDir is where the config file is read and projects are created.
const workDir = "."

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` checks which JavaScript package managers (npm, yarn, pnpm, bun)
are installed and scaffolds new projects from built-in templates.

Running ` + branding.CLIName() + ` without a command checks all package managers.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	RunE:              runCheck,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	addCheckFlags(rootCmd)
}

// prepare loads the config and builds the logger for every command.
func prepare(cmd *cobra.Command, args []string) error {
	logger = newLogger(cmd.ErrOrStderr(), verboseEnabled())

	cfg, err := config.Load(workDir)
	if err != nil {
		// The config commands must still work so a broken file can be fixed.
		if cmd.Parent() != configCmd {
			return fmt.Errorf("loading %s: %w", config.FilePath(workDir), err)
		}
		logger.Warn("ignoring unreadable config", "error", err)
		cfg = config.Default()
	}
	appConfig = cfg
	return nil
}

func verboseEnabled() bool {
	if verbose {
		return true
	}
	v, err := strconv.ParseBool(os.Getenv(branding.EnvVar("verbose")))
	return err == nil && v
}

// newLogger returns a debug-level text logger on w, or a discarding logger.
func newLogger(w io.Writer, enabled bool) *slog.Logger {
	if !enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		newPrinter(rootCmd.ErrOrStderr(), colorEnabled(rootCmd.ErrOrStderr())).errorLine(err.Error())
	}
	return err
}
