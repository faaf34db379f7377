// Package cli implements the osversion command tree.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pwithnall/libosversion/internal/config"
	"github.com/pwithnall/libosversion/internal/logging"
	"github.com/pwithnall/libosversion/pkg/osversion"
	"github.com/pwithnall/libosversion/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "osversion",
	Short: "Print a diagnostic line describing the host OS and hardware",
	Long: `Print a single diagnostic line describing the host operating system
and hardware, for inclusion in bug reports or telemetry.

The line is a comma-separated sequence of double-quoted, escaped fields whose
order is fixed per platform. By default the build-time version tag is appended
as the trailing field; use --raw for the bare library output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var (
	flagRaw      bool
	flagLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the library output without the trailing version tag")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newHostCmd())
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	line := osversion.GetOSVersion()
	if !flagRaw && cfg.AppendVersionTag {
		line = appendVersionTag(line, version.Version)
	}

	logger.Debug().Str("line", line).Msg("Generated OS version line")
	cmd.Println(line)
	return nil
}

// appendVersionTag appends the build-time tag as one more quoted field,
// matching the convention consumers of the line expect. The tag goes
// through the same escaping as library fields, so a build-injected value
// containing quotes or backslashes stays parseable.
func appendVersionTag(line, tag string) string {
	if line == "" {
		return osversion.QuoteField(tag)
	}
	return line + ", " + osversion.QuoteField(tag)
}

// newLogger builds the CLI logger from config, with the --log-level flag
// taking precedence.
func newLogger(cfg config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	return logging.New(logging.Config{
		Level:  level,
		Pretty: cfg.PrettyLogs,
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
