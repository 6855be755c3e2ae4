package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-notify/internal/service/local"
)

var (
	// formatCmd prints the chat message for an event without sending it.
	formatCmd = &cobra.Command{
		Use:   "format <event.json|->",
		Short: "Print the Slack message rendered for an SNS event.",
		Long: `Reads an SNS event (the JSON Lambda receives) from a file, or from stdin when
the argument is "-", and prints the webhook request body. Nothing is sent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return local.Format(cmd.Context(), localOptions(cmd, args[0]))
		},
	}

	// invokeCmd runs one full delivery for an event.
	invokeCmd = &cobra.Command{
		Use:   "invoke <event.json|->",
		Short: "Deliver an SNS event to the webhook once.",
		Long: `Reads an SNS event from a file, or from stdin when the argument is "-",
runs the same handler Lambda runs and prints the webhook status and response.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return local.Invoke(cmd.Context(), localOptions(cmd, args[0]))
		},
	}
)

// localOptions builds the options shared by format and invoke.
func localOptions(cmd *cobra.Command, eventPath string) *local.Options {
	return &local.Options{
		ConfigPath: configPath,
		EventPath:  eventPath,
		Stdin:      cmd.InOrStdin(),
		Stdout:     cmd.OutOrStdout(),
	}
}
