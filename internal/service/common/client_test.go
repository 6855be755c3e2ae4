//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-notify/internal/domain/alarm"
	"github.com/oshokin/alarm-notify/internal/version"
)

// TestPost_SendsJSON verifies method, content type and body reach the webhook.
func TestPost_SendsJSON(t *testing.T) {
	t.Parallel()

	var (
		gotMethod      string
		gotContentType string
		gotUserAgent   string
		gotBody        []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		gotBody, _ = io.ReadAll(r.Body)

		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.Equal(t, srv.URL, c.URL())

	resp, err := c.Post(context.Background(), []byte(`{"text":"hi"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(resp.Body))

	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, version.UserAgent(), gotUserAgent)
	require.JSONEq(t, `{"text":"hi"}`, string(gotBody))
}

// TestPost_NonSuccessStatusIsNotAnError asserts that webhook rejections are reported, not raised.
func TestPost_NonSuccessStatusIsNotAnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no_service"))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Post(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "no_service", string(resp.Body))
}

// TestPost_TransportFailure covers an empty URL and an unreachable server.
func TestPost_TransportFailure(t *testing.T) {
	t.Parallel()

	resp, err := NewClient("").Post(context.Background(), []byte(`{}`))
	require.ErrorIs(t, err, alarm.ErrTransportFailure)
	require.Nil(t, resp)

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	resp, err = NewClient(url).Post(context.Background(), []byte(`{}`))
	require.ErrorIs(t, err, alarm.ErrTransportFailure)
	require.Nil(t, resp)
}

// TestPost_Timeout checks that the call timeout aborts a slow webhook.
func TestPost_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, WithCallTimeout(20*time.Millisecond), WithHTTPClient(srv.Client()))

	_, err := c.Post(context.Background(), []byte(`{}`))
	require.ErrorIs(t, err, alarm.ErrTransportFailure)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := NewClient("http://example.invalid", WithCallTimeout(0))

	ctx, cancel := c.callContext(context.Background())
	cancel()

	_, ok := ctx.Deadline()
	require.False(t, ok)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}
