package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceErrorChain(t *testing.T) {
	cause := fmt.Errorf("aria2 rpc: %w", context.DeadlineExceeded)
	err := NewServiceErrorWithCause(ErrorCodeServiceUnavailable, "下载器不可用", cause)

	wrapped := fmt.Errorf("inspect download: %w", err)

	se, ok := AsServiceError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorCodeServiceUnavailable, se.Code)
	assert.True(t, stderrors.Is(wrapped, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "deadline exceeded")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrorCodeInvalidRequest, CodeOf(NewServiceError(ErrorCodeInvalidRequest, "title is required")))
	assert.Equal(t, ErrorCodeInternalError, CodeOf(stderrors.New("boom")))
	assert.Equal(t, ErrorCodeInternalError, CodeOf(nil))
}

func TestWithDetail(t *testing.T) {
	err := NewServiceError(ErrorCodeNotFound, "任务不存在").WithDetail("gid", "2089b05ecca3d829")
	assert.Equal(t, "2089b05ecca3d829", err.Details["gid"])
}
