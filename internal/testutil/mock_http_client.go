package testutil

import (
	"context"

	"github.com/flexprice/mvola-go/internal/httpclient"
	"github.com/stretchr/testify/mock"
)

var _ httpclient.Client = (*MockHTTPClient)(nil)

// MockHTTPClient is a testify mock of httpclient.Client
type MockHTTPClient struct {
	mock.Mock
}

// Send implements httpclient.Client.
func (m *MockHTTPClient) Send(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*httpclient.Response), args.Error(1)
}

// JSONResponse is a 200 response carrying body
func JSONResponse(body string) *httpclient.Response {
	return &httpclient.Response{
		StatusCode: 200,
		Body:       []byte(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}
