package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "top-k must be positive, got %d", -1)
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidArgument)
	}
	if err.Message != "top-k must be positive, got -1" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_ARGUMENT: top-k must be positive, got -1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("file does not exist")
	err := Wrap(ErrCodeLoadFailed, cause, "load graph %s", "full.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return cause")
	}
	want := "LOAD_FAILED: load graph full.json: file does not exist"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeEmptyView, "view graph has no nodes")

	if !Is(err, ErrCodeEmptyView) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeLoadFailed) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeEmptyView) {
		t.Error("Is should not match plain errors")
	}

	// Code detection must survive fmt.Errorf wrapping.
	wrapped := fmt.Errorf("render: %w", err)
	if !Is(wrapped, ErrCodeEmptyView) {
		t.Error("Is should unwrap nested errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNoConvergence, "power iteration stalled")); got != ErrCodeNoConvergence {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeNoConvergence)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeDisconnectedGraph, "diameter is undefined for a disconnected graph")
	if got := UserMessage(err); got != "diameter is undefined for a disconnected graph" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("something broke")
	if got := UserMessage(plain); got != "something broke" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
