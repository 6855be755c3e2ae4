package function

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/oshokin/alarm-notify/internal/config"
	"github.com/oshokin/alarm-notify/internal/logger"
	"github.com/oshokin/alarm-notify/internal/service/notifier"
)

// Options controls the Lambda process.
type Options struct {
	// ConfigPath specifies the optional settings YAML file; usually empty in Lambda.
	ConfigPath string
}

// Run loads settings once and hands the handler to the Lambda runtime.
// It only returns on configuration errors; the runtime owns the process afterwards.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	cfg.ApplyLogging()

	ctx = logger.WithName(ctx, "alarm-notify")

	if cfg.WebhookURL == "" {
		logger.WarnKV(ctx, "Webhook URL is not set, deliveries will fail", "env", config.EnvWebhookURL)
	}

	handler := notifier.NewFromConfig(cfg)

	logger.InfoKV(ctx, "Starting Lambda handler", "timeout", cfg.Timeout.String())

	lambda.StartWithOptions(handler.Handle, lambda.WithContext(ctx))

	return nil
}
