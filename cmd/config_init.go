package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"codeinv/pkg/config"
	codeinverrors "codeinv/pkg/errors"
)

var configInitForce bool

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage codeinv configuration",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the built-in defaults to $HOME/.config/codeinv/config.toml
(or the path given with --config) as a starting point for customization.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInitCommand()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

func runConfigInitCommand() error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return codeinverrors.Wrap(err, "failed to get home directory")
		}
		path = filepath.Join(home, ".config", "codeinv", "config.toml")
	}

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return codeinverrors.Newf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	data, err := toml.Marshal(config.Default())
	if err != nil {
		return codeinverrors.Wrap(err, "failed to marshal default config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return codeinverrors.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return codeinverrors.Wrap(err, "failed to write config file")
	}

	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}
