package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/sysview/internal/config"
	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/logger"
	"github.com/rileyhilliard/sysview/internal/probe"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// Global flags
var (
	cfgFile string
	logFile string
)

// rootCmd opens the dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sysview",
	Short: "Split-pane view of this machine's hardware and OS state",
	Long: `sysview shows CPU, GPU, storage, memory, OS, network and sensor
information side by side in up to two panes.

Run without arguments for the interactive dashboard, or use
'sysview snapshot' for a one-shot capture printed to stdout.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context())
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sysview.

Examples:
  # Bash
  sysview completion bash > /etc/bash_completion.d/sysview

  # Zsh
  sysview completion zsh > "${fpath[1]}/_sysview"

  # Fish
  sysview completion fish > ~/.config/fish/completions/sysview.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		default:
			return rootCmd.GenPowerShellCompletion(out)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.sysview.yaml, then ~/.config/sysview/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "machine-readable JSON output")

	rootCmd.AddCommand(completionCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(os.Stdout, os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportError prints err as a JSON envelope in machine mode, or as the
// formatted error otherwise.
func reportError(stdout, stderr io.Writer, err error) {
	if machineMode {
		_ = WriteJSONFromError(stdout, err)
		return
	}
	fmt.Fprintln(stderr, err)
}

// loadConfig finds, loads and validates the config, then applies its
// color preference.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	applyColor(cfg.Output.Color)
	return cfg, nil
}

// applyColor forces the lipgloss color profile for "always" and "never".
// "auto" leaves terminal detection alone.
func applyColor(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// isInteractive reports whether both stdin and stdout are terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// newProbes builds the probe set for the local machine.
var newProbes = func(cfg *config.Config, l logger.Logger) (snapshot.Probes, error) {
	host, err := probe.NewHost(probe.Options{
		CPUSample:        cfg.Probes.CPUSample,
		GraphicsBackends: cfg.Probes.GraphicsBackends,
		IncludePseudoFS:  cfg.Probes.IncludePseudoFS,
		Log:              l,
	})
	if err != nil {
		return snapshot.Probes{}, err
	}
	return host.Probes(), nil
}

// newAggregator wires the probes for cfg into an Aggregator.
func newAggregator(cfg *config.Config, l logger.Logger) (*snapshot.Aggregator, error) {
	probes, err := newProbes(cfg, l)
	if err != nil {
		return nil, err
	}
	return snapshot.NewAggregator(probes, l), nil
}

// setupLogging routes the standard logger. With --log-file, logs are
// appended to that file. Otherwise the dashboard discards them because it
// owns the terminal, and one-shot commands leave them on stderr.
func setupLogging(tui bool) (func(), error) {
	restore := func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	}

	if logFile != "" {
		path := config.ExpandTilde(logFile)
		f, err := tea.LogToFile(path, "sysview")
		if err != nil {
			return func() {}, errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't open log file: "+path,
				"Check the path exists and is writable")
		}
		return func() {
			restore()
			f.Close()
		}, nil
	}

	if tui {
		log.SetOutput(io.Discard)
		return restore, nil
	}
	return func() {}, nil
}
