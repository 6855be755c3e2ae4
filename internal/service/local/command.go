package local

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/alarm-notify/internal/config"
	"github.com/oshokin/alarm-notify/internal/logger"
	"github.com/oshokin/alarm-notify/internal/service/notifier"
)

// StdinPath is the event path meaning "read from standard input".
const StdinPath = "-"

// Options configures a local run.
type Options struct {
	// ConfigPath to YAML settings file, optional.
	ConfigPath string
	// EventPath is the envelope JSON file, or StdinPath.
	EventPath string
	// Stdin is read when EventPath is StdinPath.
	Stdin io.Reader
	// Stdout receives the rendered output.
	Stdout io.Writer
}

// invokeOutput is what the invoke command prints.
type invokeOutput struct {
	StatusCode  int             `json:"status_code"`
	Response    string          `json:"response"`
	ChatMessage json.RawMessage `json:"chat_message"`
}

// Format prints the chat message body for the envelope without sending it.
func Format(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-notify-format")

	event, err := readEvent(opts)
	if err != nil {
		return err
	}

	raw, err := notifier.Unwrap(event)
	if err != nil {
		return fmt.Errorf("unwrap event: %w", err)
	}

	message, err := notifier.Format(raw)
	if err != nil {
		return fmt.Errorf("format message: %w", err)
	}

	body, err := message.Encode()
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Formatted message", "blocks", message.IsBlocks())

	_, err = fmt.Fprintln(opts.Stdout, string(body))

	return err
}

// Invoke runs one full delivery for the envelope and prints the outcome.
func Invoke(ctx context.Context, opts *Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	cfg.ApplyLogging()

	ctx = logger.WithName(ctx, "alarm-notify-invoke")

	event, err := readEvent(opts)
	if err != nil {
		return err
	}

	result, err := notifier.NewFromConfig(cfg).Notify(ctx, event)
	if err != nil {
		return err
	}

	body, err := result.Message.Encode()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(opts.Stdout)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	return encoder.Encode(invokeOutput{
		StatusCode:  result.StatusCode,
		Response:    result.Response,
		ChatMessage: body,
	})
}

// readEvent decodes the envelope from the configured source.
func readEvent(opts *Options) (notifier.Envelope, error) {
	var event notifier.Envelope

	var (
		data []byte
		err  error
	)

	if opts.EventPath == StdinPath {
		data, err = io.ReadAll(opts.Stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(opts.EventPath))
	}

	if err != nil {
		return event, fmt.Errorf("read event: %w", err)
	}

	if err := json.Unmarshal(data, &event); err != nil {
		return event, fmt.Errorf("decode event: %w", err)
	}

	return event, nil
}
