package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIntegrityErrorUnwrap(t *testing.T) {
	err := NewIntegrityError("time_range", "08:00")
	if !errors.Is(err, ErrDataIntegrity) {
		t.Error("IntegrityError does not unwrap to ErrDataIntegrity")
	}
	want := `data integrity fault on time_range: "08:00"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapNil(t *testing.T) {
	w := NewWrapper("schedule", "resolve_course")
	if w.Wrap(nil, "should be nil") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if w.Wrapf(nil, "should be %s", "nil") != nil {
		t.Error("Wrapf(nil) != nil")
	}
}

func TestWrappedError(t *testing.T) {
	w := NewWrapper("weather", "fetch")
	cause := fmt.Errorf("connection refused")
	err := w.Wrap(cause, "could not reach provider")

	if !errors.Is(err, cause) {
		t.Error("wrapped error does not unwrap to cause")
	}
	if got := GetUserMessage(err); got != "could not reach provider" {
		t.Errorf("GetUserMessage = %q", got)
	}
	if got := GetUserMessage(cause); got != "connection refused" {
		t.Errorf("GetUserMessage on plain error = %q", got)
	}
	if got := GetUserMessage(nil); got != "" {
		t.Errorf("GetUserMessage(nil) = %q", got)
	}
}
