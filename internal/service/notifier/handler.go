package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/oshokin/alarm-notify/internal/config"
	"github.com/oshokin/alarm-notify/internal/domain/chat"
	"github.com/oshokin/alarm-notify/internal/logger"
	"github.com/oshokin/alarm-notify/internal/service/common"
)

// Poster delivers an encoded chat message to the webhook.
type Poster interface {
	Post(ctx context.Context, body []byte) (*common.Response, error)
}

// Handler runs one notification per invocation. It holds no per-invocation
// state and can serve concurrent invocations.
type Handler struct {
	// poster sends the encoded chat message.
	poster Poster
}

// Result describes a delivered notification.
type Result struct {
	// Message is the chat message that was sent.
	Message *chat.Message
	// StatusCode is the HTTP status returned by the webhook.
	StatusCode int
	// Response is the raw webhook response body.
	Response string
}

// NewHandler creates a handler delivering through the provided poster.
func NewHandler(poster Poster) *Handler {
	return &Handler{
		poster: poster,
	}
}

// NewFromConfig builds a handler posting to the configured webhook.
func NewFromConfig(cfg *config.Config) *Handler {
	return NewHandler(common.NewClient(cfg.WebhookURL, common.WithCallTimeout(cfg.Timeout)))
}

// Handle is the Lambda entrypoint. Failures are returned to the runtime,
// which reports the invocation as failed.
func (h *Handler) Handle(ctx context.Context, event Envelope) error {
	_, err := h.Notify(ctx, event)

	return err
}

// Notify unwraps the envelope, formats the message and posts it to the webhook.
// A non-2xx webhook response is logged and returned in the Result, not treated as an error.
func (h *Handler) Notify(ctx context.Context, event Envelope) (*Result, error) {
	ctx = logger.WithName(ctx, "notifier")

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		ctx = logger.WithKV(ctx, "aws_request_id", lc.AwsRequestID)
	}

	logger.InfoKV(ctx, "Received event", "event", event)

	raw, err := Unwrap(event)
	if err != nil {
		return nil, fmt.Errorf("unwrap event: %w", err)
	}

	message, data, err := render(raw)
	if data != nil {
		logger.InfoKV(ctx, "Decoded message", "data", data)
	}

	if err != nil {
		return nil, fmt.Errorf("format message: %w", err)
	}

	body, err := message.Encode()
	if err != nil {
		return nil, err
	}

	resp, err := h.poster.Post(ctx, body)
	if err != nil {
		logger.ErrorKV(ctx, "Webhook call failed", "error", err)

		return nil, fmt.Errorf("deliver message: %w", err)
	}

	result := &Result{
		Message:    message,
		StatusCode: resp.StatusCode,
		Response:   string(resp.Body),
	}

	logger.InfoKV(
		ctx,
		"Message delivered",
		"chat_message", string(body),
		"status_code", result.StatusCode,
		"response", result.Response,
	)

	return result, nil
}
