// Package app owns the CLI surface: flags, the single resolution pass, and
// exit behavior.
package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/portkit/whoport/internal/output"
	"github.com/portkit/whoport/internal/resolve"
	"github.com/portkit/whoport/internal/tui"
	"github.com/portkit/whoport/pkg/model"
)

var versionString = "dev"

// SetVersionBuildCommitString records build metadata injected via ldflags.
func SetVersionBuildCommitString(version, commit, buildDate string) {
	if version == "" {
		return
	}
	versionString = version
	if commit != "" {
		versionString += " (" + commit
		if buildDate != "" {
			versionString += ", " + buildDate
		}
		versionString += ")"
	}
}

var (
	flagPort        int
	flagJSON        bool
	flagInteractive bool
	flagDebug       bool
)

var rootCmd = &cobra.Command{
	Use:   "whoport",
	Short: "Show which process owns each open TCP/UDP endpoint",
	Long: `whoport lists the machine's open TCP and UDP sockets together with the
process that owns each one. Identity fields that cannot be resolved at the
current privilege level show as "unknown"; running elevated resolves more.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "only show endpoints using this port, as detail blocks")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit records as JSON")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "browse endpoints in an interactive table")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging on stderr")
}

func run(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if flagDebug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	records, err := resolve.Run(resolve.SystemConfig())
	if err != nil {
		return err
	}

	if flagInteractive {
		return tui.Run(records, func() ([]model.Record, error) {
			return resolve.Run(resolve.SystemConfig())
		})
	}

	if cmd.Flags().Changed("port") {
		if flagPort <= 0 || flagPort > 65535 {
			return fmt.Errorf("invalid port %d", flagPort)
		}
		matched := resolve.FilterPort(records, flagPort)
		if flagJSON {
			return printJSON(matched)
		}
		if len(matched) == 0 {
			output.RenderNoMatch(os.Stdout, flagPort)
			return nil
		}
		output.RenderDetails(os.Stdout, matched)
		return nil
	}

	if flagJSON {
		return printJSON(records)
	}
	return output.RenderTable(os.Stdout, records)
}

func printJSON(records []model.Record) error {
	s, err := output.ToJSON(records)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// Execute runs the root command; any error has already been printed by
// cobra, so the process just exits non-zero.
func Execute() {
	rootCmd.Version = versionString
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
