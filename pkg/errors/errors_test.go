// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/tnoble/aliashdr/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "missing_guard_error",
			code:    errors.ErrMissingIncludeGuard,
			message: "no include guard found",
			wantStr: "[MISSING_INCLUDE_GUARD] no include guard found",
		},
		{
			name:    "missing_root_error",
			code:    errors.ErrMissingIncludeRoot,
			message: "no include directory found",
			wantStr: "[MISSING_INCLUDE_ROOT] no include directory found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := errors.Wrap(cause, errors.ErrFileWrite, "cannot write alias")

	if !stderrors.Is(err, cause) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	if got := err.Error(); got != "[FILE_WRITE] cannot write alias: underlying failure" {
		t.Errorf("Error() = %q", got)
	}

	if errors.Wrap(nil, errors.ErrFileWrite, "noop") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrMissingIncludeGuard, "no include guard in %s", "foo.hpp")

	if !errors.IsErrorCode(err, errors.ErrMissingIncludeGuard) {
		t.Error("IsErrorCode() should match the error's code")
	}
	if errors.IsErrorCode(err, errors.ErrMissingIncludeRoot) {
		t.Error("IsErrorCode() should not match a different code")
	}
	if errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrMissingIncludeGuard) {
		t.Error("IsErrorCode() should not match plain errors")
	}

	// Wrapped AliasErrors are still matchable through fmt wrapping
	wrapped := fmt.Errorf("context: %w", err)
	if !errors.IsErrorCode(wrapped, errors.ErrMissingIncludeGuard) {
		t.Error("IsErrorCode() should see through fmt.Errorf wrapping")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrScan, "walk failed")); got != errors.ErrScan {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrScan)
	}
	if got := errors.GetErrorCode(fmt.Errorf("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}
