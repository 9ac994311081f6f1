package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysview/internal/config"
	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/ui"
)

// config subcommand flags
var (
	configInitForce  bool
	configInitGlobal bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create and inspect the sysview config",
}

// configInitCmd writes a default config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Write a config file with every setting at its default value.

By default the file is created as .sysview.yaml in the current directory.
Use --global for ~/.config/sysview/config.yaml.

Examples:
  sysview config init
  sysview config init --global
  sysview config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configInitCommand(cmd.OutOrStdout(), ConfigInitOptions{
			Global:    configInitGlobal,
			Overwrite: configInitForce,
		})
	},
}

// configShowCmd prints the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	Long: `Print the config sysview would use right now: the file found by the
usual search order, with defaults and SYSVIEW_* environment overrides applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCommand(cmd.OutOrStdout())
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite existing config")
	configInitCmd.Flags().BoolVar(&configInitGlobal, "global", false, "write ~/.config/sysview/config.yaml")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// ConfigInitOptions holds options for config init.
type ConfigInitOptions struct {
	Global    bool // Write the global config instead of ./.sysview.yaml
	Overwrite bool // Overwrite existing config without asking
}

// confirmOverwrite asks whether an existing config file may be replaced.
var confirmOverwrite = func(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to overwrite")
	}
	return overwrite, nil
}

// configInitCommand writes the default config, asking before replacing an
// existing file when a terminal is attached.
func configInitCommand(w io.Writer, opts ConfigInitOptions) error {
	path := filepath.Join(".", config.ConfigFileName)
	if opts.Global {
		path = config.GlobalPath()
		if path == "" {
			return errors.New(errors.ErrConfig,
				"Can't find your home directory",
				"Set $HOME, or run without --global to write ./.sysview.yaml")
		}
	}

	overwrite := opts.Overwrite
	if _, err := os.Stat(path); err == nil && !overwrite && !machineMode && isInteractive() {
		ok, err := confirmOverwrite(path)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
		overwrite = true
	}

	if err := config.WriteDefault(path, overwrite); err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, map[string]string{"path": path})
	}
	fmt.Fprintf(w, "%s Created %s\n\n", ui.SymbolSuccess, path)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  sysview            - Open the dashboard")
	fmt.Fprintln(w, "  sysview snapshot   - Print a one-shot capture")
	return nil
}

// configShowCommand prints the effective config as YAML, or JSON in machine mode.
func configShowCommand(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, cfg)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
