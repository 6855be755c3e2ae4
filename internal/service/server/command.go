package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oshokin/alarm-notify/internal/api/http/invoke"
	"github.com/oshokin/alarm-notify/internal/config"
	"github.com/oshokin/alarm-notify/internal/logger"
	"github.com/oshokin/alarm-notify/internal/service/notifier"
)

// Options controls the serve process.
type Options struct {
	// ConfigPath specifies the optional settings YAML file.
	ConfigPath string
	// ListenAddress overrides DefaultListenAddress.
	ListenAddress string
}

const (
	// DefaultListenAddress is used when no address is given.
	DefaultListenAddress = ":8080"

	// readHeaderTimeout bounds slow clients sending headers.
	readHeaderTimeout = 10 * time.Second
	// shutdownTimeout bounds graceful shutdown.
	shutdownTimeout = 5 * time.Second
)

// Run starts the HTTP server and blocks until context is canceled or server stops.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-notify-serve")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	cfg.ApplyLogging()

	gin.SetMode(gin.ReleaseMode)

	listenAddress := resolveListenAddress(opts.ListenAddress)

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	return Serve(ctx, lis, notifier.NewFromConfig(cfg))
}

// Serve handles invoke requests on lis until ctx is canceled.
func Serve(ctx context.Context, lis net.Listener, service invoke.Service) error {
	httpServer := &http.Server{
		Handler:           invoke.NewServer(service).Router(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	logger.InfoKV(ctx, "Invoke server listening", "listen_address", lis.Addr().String())

	// Done channel is closed after Shutdown finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		defer close(done)

		<-ctx.Done()
		logger.Info(ctx, "Shutting down invoke server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.ErrorKV(ctx, "Invoke server shutdown failed", "error", err)
		}
	}()

	if err := httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve HTTP: %w", err)
	}

	<-done
	logger.Info(ctx, "Invoke server stopped")

	return nil
}

// resolveListenAddress returns override when set, otherwise DefaultListenAddress.
func resolveListenAddress(override string) string {
	if override != "" {
		return override
	}

	return DefaultListenAddress
}
