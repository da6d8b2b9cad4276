package cli

import (
	"os"
	"strings"

	"github.com/osvaldoandrade/srmock/internal/platform"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	JSONOutput bool
	LogLevel   string
	LogFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &RootOptions{
		LogLevel:  envDefault("SRMOCK_LOG_LEVEL", "info"),
		LogFormat: envDefault("SRMOCK_LOG_FORMAT", "text"),
	}
	cmd := &cobra.Command{
		Use:           "srmock",
		Short:         "In-memory Confluent-compatible schema registry",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := platform.ConfigureLogger(opts.LogLevel, opts.LogFormat, cmd.ErrOrStderr())
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.JSONOutput, "json", false, "Emit JSON output")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format (text, json)")

	cmd.AddCommand(
		newServeCmd(opts),
		newTypesCmd(opts),
		newCheckCmd(opts),
	)

	return cmd
}

func envDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
