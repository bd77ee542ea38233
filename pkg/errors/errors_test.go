// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "palette_not_found",
			code:    errors.ErrPaletteNotFound,
			message: "no palette named ocean",
			wantStr: "[PALETTE_NOT_FOUND] no palette named ocean",
		},
		{
			name:    "mode_invalid",
			code:    errors.ErrModeInvalid,
			message: "unknown mode",
			wantStr: "[MODE_INVALID] unknown mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrColorInvalid, "palette %s: %s is not a color", "ocean", "#ZZZ")
	assert.Equal(t, "palette ocean: #ZZZ is not a color", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileRead, "cannot read input")

		assert.Equal(t, errors.ErrFileRead, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[FILE_READ] cannot read input: permission denied", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrColorInvalid, "bad color").
		WithDetail("palette", "ocean").
		WithDetails(map[string]interface{}{"code": "Y", "kind": "background"})

	assert.Equal(t, "ocean", err.Details["palette"])
	assert.Equal(t, "Y", err.Details["code"])
	assert.Equal(t, "background", errors.GetErrorDetails(err)["kind"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrConfigParse, "error 1")
	err2 := errors.New(errors.ErrConfigParse, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code")
	assert.False(t, err1.Is(err3), "different code")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNotFound, "not found"), errors.ErrNotFound, true},
		{"different_code", errors.New(errors.ErrNotFound, "not found"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileWrite, "denied"), errors.ErrFileWrite, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrPaletteInvalid, errors.GetErrorCode(errors.New(errors.ErrPaletteInvalid, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileRead, "cannot read palettes file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var middle *errors.HiliteError
	require.True(t, stderrors.As(configErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFileRead, middle.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
