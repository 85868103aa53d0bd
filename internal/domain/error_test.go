package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Text(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  E(CodeInvalidArgument, "", "query is required", nil),
			want: "query is required",
		},
		{
			name: "op and message",
			err:  E(CodeInternal, "/enc", "provider returned status 500", nil),
			want: "/enc: provider returned status 500",
		},
		{
			name: "cause fills empty message",
			err:  E(CodeUnavailable, "", "", cause),
			want: "connection refused",
		},
		{
			name: "op with cause",
			err:  E(CodeUnavailable, "/cse", "", cause),
			want: "/cse: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := E(CodeInternal, "/enc", "decode response", cause)

	assert.ErrorIs(t, err, cause)

	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeInternal, domainErr.Code)
}

func TestCodeFrom(t *testing.T) {
	code, ok := CodeFrom(E(CodeUnavailable, "/enc", "", nil))
	require.True(t, ok)
	assert.Equal(t, CodeUnavailable, code)

	code, ok = CodeFrom(ErrUnknownTool)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, code)

	_, ok = CodeFrom(errors.New("plain"))
	assert.False(t, ok)

	_, ok = CodeFrom(nil)
	assert.False(t, ok)
}
