package errors

import (
	stderrors "errors"
	"testing"
)

func TestNewAndIs(t *testing.T) {
	err := New(ErrCodeInvalidGrid, "rows must be positive, got %d", -1)

	if !Is(err, ErrCodeInvalidGrid) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() = true for non-matching code")
	}
	if got := GetCode(err); got != ErrCodeInvalidGrid {
		t.Errorf("GetCode() = %s", got)
	}
	if got := UserMessage(err); got != "rows must be positive, got -1" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write cache entry")

	if !Is(err, ErrCodeInternal) {
		t.Error("Is() = false for wrapped error")
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost from chain")
	}
	if got := err.Error(); got != "INTERNAL_ERROR: write cache entry: disk full" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsPlainError(t *testing.T) {
	err := stderrors.New("plain")
	if Is(err, ErrCodeInternal) {
		t.Error("Is() = true for plain error")
	}
	if GetCode(err) != "" {
		t.Error("GetCode() non-empty for plain error")
	}
	if UserMessage(err) != "plain" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestValidateGridDimensions(t *testing.T) {
	tests := []struct {
		rows, cols int
		wantErr    bool
	}{
		{1, 1, false},
		{6, 8, false},
		{0, 8, true},
		{6, 0, true},
		{-1, -1, true},
	}
	for _, tt := range tests {
		err := ValidateGridDimensions(tt.rows, tt.cols)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateGridDimensions(%d,%d) error = %v, wantErr %v", tt.rows, tt.cols, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidGrid) {
			t.Errorf("ValidateGridDimensions(%d,%d) code = %s", tt.rows, tt.cols, GetCode(err))
		}
	}
}

func TestValidateImageDimensions(t *testing.T) {
	tests := []struct {
		w, h    float64
		wantErr bool
	}{
		{1200, 900, false},
		{0, 900, true},
		{1200, -1, true},
	}
	for _, tt := range tests {
		err := ValidateImageDimensions(tt.w, tt.h)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateImageDimensions(%g,%g) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidImage) {
			t.Errorf("ValidateImageDimensions(%g,%g) code = %s", tt.w, tt.h, GetCode(err))
		}
	}
}
