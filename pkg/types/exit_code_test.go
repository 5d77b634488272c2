// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     ExitCode
		wantValid bool
	}{
		{name: "success is valid", value: ExitSuccess, wantValid: true},
		{name: "failure is valid", value: ExitFailure, wantValid: true},
		{name: "255 is valid", value: 255, wantValid: true},
		{name: "negative is invalid", value: -1, wantValid: false},
		{name: "256 is invalid", value: 256, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if tt.wantValid {
				if err != nil {
					t.Errorf("ExitCode(%d).Validate() returned error for valid value: %v", tt.value, err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidExitCode) {
				t.Errorf("ExitCode(%d).Validate() = %v, want ErrInvalidExitCode", tt.value, err)
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitSuccess.IsSuccess() {
		t.Error("ExitSuccess.IsSuccess() = false")
	}
	if ExitFailure.IsSuccess() {
		t.Error("ExitFailure.IsSuccess() = true")
	}
	if got := ExitFailure.String(); got != "1" {
		t.Errorf("ExitFailure.String() = %q, want %q", got, "1")
	}
}
