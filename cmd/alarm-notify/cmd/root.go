package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-notify/internal/config"
	"github.com/oshokin/alarm-notify/internal/logger"
	"github.com/oshokin/alarm-notify/internal/service/function"
	"github.com/oshokin/alarm-notify/internal/version"
)

var (
	// configPath to the optional configuration YAML file.
	configPath string
	// envFile is an optional dotenv file loaded before the configuration.
	envFile string
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd starts the Lambda handler.
	rootCmd = &cobra.Command{
		Use:   "alarm-notify",
		Short: "Forward CloudWatch alarm notifications from SNS to Slack.",
		Long: `Runs the AWS Lambda handler that receives SNS notifications, renders
CloudWatch alarm state changes as Slack messages and posts them to the
incoming webhook configured in ` + config.EnvWebhookURL + `.

Messages that are not CloudWatch alarms are forwarded as plain text.
Subcommands run the same pipeline locally.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: prepareEnvironment,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return function.Run(cmd.Context(), &function.Options{ConfigPath: configPath})
		},
	}
)

// Execute runs the alarm-notify CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	defer logger.Sync()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// prepareEnvironment loads the dotenv file and applies the log level flag
// so that config.Load sees them as ordinary environment variables.
func prepareEnvironment(_ *cobra.Command, _ []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	if logLevel != "" {
		if err := os.Setenv(config.EnvLogLevel, logLevel); err != nil {
			return fmt.Errorf("set log level: %w", err)
		}
	}

	return nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to optional configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to optional .env file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(formatCmd, invokeCmd, serveCmd)
}
