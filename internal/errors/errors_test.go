package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := Validation("title is required")
		assert.Equal(t, "title is required", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrap(cause, ErrCodeTransport, "fetch documents")
		assert.Equal(t, "fetch documents: connection refused", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "wrapped")
	assert.ErrorIs(t, err, cause)
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeTransport, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeTransport, "ignored %d", 1))
}

func TestWrapf_FormatsMessage(t *testing.T) {
	cause := errors.New("timeout")
	err := Wrapf(cause, ErrCodeTransport, "query %q failed", "reports")
	assert.Equal(t, `query "reports" failed: timeout`, err.Error())
	assert.Equal(t, ErrCodeTransport, err.Code)
}

func TestValidationFields(t *testing.T) {
	err := ValidationFields(
		"Title is required, Category is required",
		"title", "categoryId",
	)
	assert.True(t, IsValidation(err))
	assert.Equal(t, []string{"title", "categoryId"}, GetFields(err))
	assert.Contains(t, err.Error(), "Title is required")
	assert.Contains(t, err.Error(), "Category is required")
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		code  ErrorCode
	}{
		{"validation", Validation("v"), IsValidation, ErrCodeValidation},
		{"transport", Transport("t"), IsTransport, ErrCodeTransport},
		{"unauthorized", Unauthorized("u"), IsUnauthorized, ErrCodeUnauthorized},
		{"partial failure", PartialFailure("p"), IsPartialFailure, ErrCodePartialFailure},
		{"not found", NotFound("n"), IsNotFound, ErrCodeNotFound},
		{"denied", Denied("d"), IsDenied, ErrCodeDenied},
		{"internal", Internal("i"), IsInternal, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.code, GetCode(tt.err))
		})
	}
}

func TestPredicates_MatchThroughWrapping(t *testing.T) {
	inner := Unauthorized("token rejected")
	outer := fmt.Errorf("gateway: %w", inner)

	assert.True(t, IsUnauthorized(outer))
	assert.False(t, IsTransport(outer))
}

func TestPredicates_PlainError(t *testing.T) {
	err := errors.New("plain")
	assert.False(t, IsValidation(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, ErrorCode(""), GetCode(err))
	assert.Nil(t, GetFields(err))
}

func TestTransportf(t *testing.T) {
	err := Transportf("status %d from backend", 503)
	require.NotNil(t, err)
	assert.Equal(t, "status 503 from backend", err.Message)
	assert.True(t, IsTransport(err))
}
