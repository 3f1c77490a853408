package errors

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndClassify(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		code  string
	}{
		{name: "usage", err: NewError("missing").Mark(ErrUsage), check: IsUsage, code: ErrCodeUsage},
		{name: "transport", err: WithError(errors.New("dial tcp")).Mark(ErrTransport), check: IsTransport, code: ErrCodeTransport},
		{name: "api", err: NewErrorf("status %d", 500).Mark(ErrAPI), check: IsAPI, code: ErrCodeAPI},
		{name: "decode", err: NewError("bad json").Mark(ErrDecode), check: IsDecode, code: ErrCodeDecode},
		{name: "auth", err: NewError("denied").Mark(ErrAuth), check: IsAuth, code: ErrCodeAuth},
		{name: "unclassified", err: errors.New("boom"), check: func(error) bool { return true }, code: ErrCodeSystemError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestLayeredMarks(t *testing.T) {
	inner := NewError("unauthorized").Mark(ErrAPI)
	err := WithError(inner).WithHint("check credentials").Mark(ErrAuth)

	assert.True(t, IsAuth(err))
	assert.True(t, IsAPI(err))
	assert.False(t, IsTransport(err))
	assert.Contains(t, errors.GetAllHints(err), "check credentials")
}

func TestCode_AuthWinsOverCause(t *testing.T) {
	tests := []struct {
		name  string
		cause error
	}{
		{name: "api", cause: NewError("unauthorized").Mark(ErrAPI)},
		{name: "transport", cause: NewError("connection refused").Mark(ErrTransport)},
		{name: "decode", cause: WithError(NewError("bad body").Mark(ErrDecode)).Mark(ErrAPI)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WithError(tt.cause).Mark(ErrAuth)
			assert.Equal(t, ErrCodeAuth, Code(err))
			assert.Equal(t, ErrCodeAuth, NewErrorResponse(err).Error.Code)
		})
	}

	missing := NewError("missing consumer credentials").Mark(ErrUsage)
	assert.Equal(t, ErrCodeUsage, Code(missing))
}

func TestInternalErrorIs(t *testing.T) {
	embedded := NewInternal(ErrCodeAPI, "api error")
	assert.True(t, errors.Is(embedded, ErrAPI))
	assert.False(t, errors.Is(embedded, ErrDecode))
	assert.False(t, embedded.Is(nil))
}

func TestNewErrorResponse(t *testing.T) {
	err := NewError("transaction id is required").
		WithHint("Pass the transaction reference").
		WithReportableDetails(map[string]any{"endpoint": "get_transaction"}).
		Mark(ErrUsage)

	resp := NewErrorResponse(err)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeUsage, resp.Error.Code)
	assert.Equal(t, "Pass the transaction reference", resp.Error.Hint)
	assert.Contains(t, resp.Error.InternalError, "transaction id is required")

	raw, mErr := json.Marshal(resp)
	require.NoError(t, mErr)
	assert.Contains(t, string(raw), `"code":"usage_error"`)
}
