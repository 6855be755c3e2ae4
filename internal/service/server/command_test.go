package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-notify/internal/domain/chat"
	"github.com/oshokin/alarm-notify/internal/service/notifier"
)

// staticService answers every invocation with the same result.
type staticService struct{}

// Notify returns a fixed successful result.
func (staticService) Notify(context.Context, notifier.Envelope) (*notifier.Result, error) {
	return &notifier.Result{Message: chat.NewText("x"), StatusCode: http.StatusOK}, nil
}

// TestResolveListenAddress checks override and default handling.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	require.Equal(t, ":9090", resolveListenAddress(":9090"))
	require.Equal(t, DefaultListenAddress, resolveListenAddress(""))
}

// TestServe_StopsOnCancel verifies the server answers requests and returns after cancellation.
func TestServe_StopsOnCancel(t *testing.T) {
	t.Parallel()

	lc := net.ListenConfig{}

	lis, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		errCh <- Serve(ctx, lis, staticService{})
	}()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://"+lis.Addr().String()+"/healthz", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
