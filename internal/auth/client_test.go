package auth

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	ierr "github.com/flexprice/mvola-go/internal/errors"
	"github.com/flexprice/mvola-go/internal/httpclient"
	"github.com/flexprice/mvola-go/internal/logger"
	"github.com/flexprice/mvola-go/internal/testutil"
	"github.com/flexprice/mvola-go/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name           string
		responseStatus int
		responseBody   string
		expectError    bool
		expectDecode   bool
		expectedToken  *types.AccessToken
	}{
		{
			name:           "Success - 200 OK",
			responseStatus: http.StatusOK,
			responseBody:   `{"access_token":"access_token","expires_in":3600,"token_type":"Bearer","scope":"EXT_INT_MVOLA_SCOPE"}`,
			expectedToken: &types.AccessToken{
				AccessToken: "access_token",
				TokenType:   "Bearer",
				ExpiresIn:   3600,
				Scope:       "EXT_INT_MVOLA_SCOPE",
			},
		},
		{
			name:           "Error - 401 Unauthorized",
			responseStatus: http.StatusUnauthorized,
			responseBody:   `{"error":"invalid_client"}`,
			expectError:    true,
		},
		{
			name:           "Error - 500 Server Error",
			responseStatus: http.StatusInternalServerError,
			responseBody:   `{"error":"server_error"}`,
			expectError:    true,
		},
		{
			name:           "Error - 200 with HTML body",
			responseStatus: http.StatusOK,
			responseBody:   `<html>maintenance</html>`,
			expectError:    true,
			expectDecode:   true,
		},
		{
			name:           "Error - 200 with an error object",
			responseStatus: http.StatusOK,
			responseBody:   `{"error":"maintenance"}`,
			expectError:    true,
			expectDecode:   true,
		},
		{
			name:           "Error - 200 with null body",
			responseStatus: http.StatusOK,
			responseBody:   `null`,
			expectError:    true,
			expectDecode:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/token", r.URL.Path)
				assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))

				key, secret, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "consumer_key", key)
				assert.Equal(t, "consumer_secret", secret)

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				form, err := url.ParseQuery(string(body))
				assert.NoError(t, err)
				assert.Equal(t, url.Values{
					"grant_type": {"client_credentials"},
					"scope":      {"EXT_INT_MVOLA_SCOPE"},
				}, form)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.responseStatus)
				_, err = w.Write([]byte(tt.responseBody))
				assert.NoError(t, err)
			}))
			defer server.Close()

			client := NewClient(server.URL, httpclient.NewDefaultClient(), logger.NewNopLogger())
			token, err := client.GenerateToken(context.Background(), "consumer_key", "consumer_secret")

			assert.Equal(t, 1, calls, "token endpoint must be called exactly once")
			if !tt.expectError {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
				return
			}

			require.Error(t, err)
			assert.Nil(t, token)
			assert.True(t, ierr.IsAuth(err))
			assert.True(t, ierr.IsAPI(err))
			assert.Equal(t, tt.expectDecode, ierr.IsDecode(err))

			httpErr, ok := httpclient.IsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, tt.responseStatus, httpErr.StatusCode)
			assert.Equal(t, tt.responseBody, string(httpErr.Response))
		})
	}
}

func TestGenerateToken_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, httpclient.NewDefaultClient(), logger.NewNopLogger())
	_, err := client.GenerateToken(context.Background(), "consumer_key", "consumer_secret")

	require.Error(t, err)
	assert.True(t, ierr.IsAuth(err))
	assert.True(t, ierr.IsTransport(err))
	assert.False(t, ierr.IsAPI(err))
}

func TestGenerateToken_MissingCredentials(t *testing.T) {
	transport := new(testutil.MockHTTPClient)
	client := NewClient(types.SandboxURL, transport, logger.NewNopLogger())

	_, err := client.GenerateToken(context.Background(), "", "secret")
	assert.True(t, ierr.IsUsage(err))

	_, err = client.GenerateToken(context.Background(), "key", "")
	assert.True(t, ierr.IsUsage(err))

	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestGenerateToken_DoesNotLeakSecretInError(t *testing.T) {
	transport := new(testutil.MockHTTPClient)
	transport.On("Send", mock.Anything, mock.Anything).
		Return(nil, httpclient.NewError(http.StatusUnauthorized, []byte(`{"error":"invalid_client"}`)))

	client := NewClient(types.SandboxURL, transport, logger.NewNopLogger())
	_, err := client.GenerateToken(context.Background(), "consumer_key", "s3cr3t")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "s3cr3t")
	assert.NotContains(t, err.Error(), base64.StdEncoding.EncodeToString([]byte("consumer_key:s3cr3t")))
	transport.AssertNumberOfCalls(t, "Send", 1)
}

func TestBasicAuth(t *testing.T) {
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("key:secret")), basicAuth("key", "secret"))
}
