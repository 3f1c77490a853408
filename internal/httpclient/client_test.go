package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ierr "github.com/flexprice/mvola-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		assert.Equal(t, "a=b", string(body))
		w.Header().Set("X-Reply", "ok")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	resp, err := NewDefaultClient().Send(context.Background(), &Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Headers: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
			"X-Test":       "yes",
		},
		Body: []byte("a=b"),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, "ok", resp.Headers["X-Reply"])
}

func TestSend_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	}))
	defer srv.Close()

	_, err := NewDefaultClient().Send(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.Error(t, err)
	assert.True(t, ierr.IsAPI(err))

	httpErr, ok := IsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "down", string(httpErr.Response))
	assert.Contains(t, httpErr.Error(), "status 503")
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{Timeout: 20 * time.Millisecond})
	_, err := client.Send(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.Error(t, err)
	assert.True(t, ierr.IsTransport(err))
	_, ok := IsHTTPError(err)
	assert.False(t, ok)
}

func TestSend_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDefaultClient().Send(ctx, &Request{Method: http.MethodGet, URL: "http://127.0.0.1:1"})
	assert.True(t, ierr.IsTransport(err))
}

func TestSend_BadURL(t *testing.T) {
	_, err := NewDefaultClient().Send(context.Background(), &Request{Method: http.MethodGet, URL: "://nope"})
	assert.True(t, ierr.IsUsage(err))
}
