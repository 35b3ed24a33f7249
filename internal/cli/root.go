// Package cli implements the glaze command line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagProject  string
	flagJSON     bool
	flagLogLevel string
	flagConfig   string
)

var rootCmd = &cobra.Command{
	Use:           "glaze",
	Short:         "Compile theme seed configs into resolved style trees",
	Long:          "Glaze resolves author-supplied theme configs (seed colors + appearance) into complete, serializable style trees for a rendering toolkit.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}
	rootCmd.PersistentFlags().StringVar(&flagProject, "project", "", "project directory for theme lookup (default: working directory)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "tool config file")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "glaze: %v\n", err)
		var preflight *PreflightError
		if errors.As(err, &preflight) && preflight.Hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", preflight.Hint)
		}
		return err
	}
	return nil
}

func initConfig() error {
	viper.SetEnvPrefix("GLAZE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", flagConfig, err)
		}
	}

	if flagProject == "" {
		flagProject = viper.GetString("project")
	}
	if !flagJSON {
		flagJSON = viper.GetBool("json")
	}
	if level := viper.GetString("log-level"); level != "" && !rootCmd.PersistentFlags().Changed("log-level") {
		flagLogLevel = level
	}
	return nil
}

// IsJSONOutput reports whether machine output was requested.
func IsJSONOutput() bool {
	return flagJSON
}

// projectDir returns the directory theme lookups are rooted at.
func projectDir() string {
	if flagProject != "" {
		return flagProject
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(flagLogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// WriteOutput emits a value as indented JSON.
func WriteOutput(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// PreflightError is a user-facing failure with a recovery hint.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}
