package errors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	InvalidConfig        Kind = "invalid_config"
	Unreachable          Kind = "unreachable"
	PartialFailure       Kind = "partial_failure"
	VerificationMismatch Kind = "verification_mismatch"
	AlreadyMounted       Kind = "already_mounted"
	ToolMissing          Kind = "tool_missing"
	IOFailure            Kind = "io_failure"
	Internal             Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

func New(kind Kind, op, path, msg string) error {
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  errors.New(msg),
	}
}

// Newf is New with formatting.
func Newf(kind Kind, op, path, format string, args ...any) error {
	return New(kind, op, path, fmt.Sprintf(format, args...))
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func UserMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case Unreachable:
		return fmt.Sprintf("Unreachable: %v\nCheck that the device is connected and the path exists.", appErr.Err)
	case PartialFailure:
		return fmt.Sprintf("Partially failed: %v", appErr.Err)
	case VerificationMismatch:
		return fmt.Sprintf("Verification failed for %s: the tool reported success but the state checks disagree.\nCheck storage permission grants on the device and the SSH credentials/port.", appErr.Path)
	case AlreadyMounted:
		return fmt.Sprintf("%s is already mounted. Unmount it first.", appErr.Path)
	case ToolMissing:
		return fmt.Sprintf("Required tool not found: %s. Install it and make sure it is on PATH.", appErr.Path)
	case IOFailure:
		return fmt.Sprintf("I/O error: %v", appErr.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
