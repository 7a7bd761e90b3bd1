package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeinv/pkg/config"
	codeinverrors "codeinv/pkg/errors"
)

// Process exit codes. Input validation failures are distinguished from
// unexpected errors so callers can script around them.
const (
	exitSuccess    = 0
	exitUnexpected = 1
	exitInputError = 2
)

var (
	cfgFile   string
	verbose   bool
	appConfig *config.Config
	logger    *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "codeinv",
	Short: "Codeinv - code inventory scanner",
	Long: `Codeinv scans a directory tree for git repositories and nested projects,
classifies each project by its marker files, and exports one inventory
record per detected project.

Repository roots are found by their .git marker (directory or plain file).
Inside each repository, nested projects are classified by an ordered chain
of detectors (Python, Node, then a generic marker table), and the result is
written as CSV, JSON, YAML, or a SQLite database.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if codeinverrors.IsPreconditionError(err) {
		os.Exit(exitInputError)
	}
	os.Exit(exitUnexpected)
}

func init() {
	cobra.OnInitialize(func() {
		initLogger()
		_ = initConfig()
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.config/codeinv/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SilenceUsage = true
}

// initLogger wires a charmbracelet handler behind the slog loggers the
// scan pipeline expects.
func initLogger() {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	logger = slog.New(handler)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	viper.Reset()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "codeinv"))
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("CODEINV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	var err error
	appConfig, err = config.Load()
	return err
}

// loadConfig returns the already loaded configuration or loads it fresh.
func loadConfig() (*config.Config, error) {
	if appConfig != nil {
		return appConfig, nil
	}
	return config.Load()
}
