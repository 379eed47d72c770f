// Package failure defines the expected failure kinds that command pipelines
// carry in the failure variant of an Outcome.
package failure

import (
	"errors"
	"strings"
)

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrNotImplemented     = errors.New("command not implemented")
	ErrUsage              = errors.New("invalid usage")
	ErrAlreadyInitialized = errors.New("repository already initialized")
	ErrCorruptMarker      = errors.New("repository marker is not a directory")
	ErrIO                 = errors.New("i/o failure")
)

// Error ties a failure kind to the command and path it happened on.
type Error struct {
	Kind    error
	Command string
	Path    string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	if e.Kind != nil {
		parts = append(parts, e.Kind.Error())
	}
	if e.Command != "" {
		parts = append(parts, e.Command)
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// New returns a failure of the given kind for command.
func New(kind error, command string) *Error {
	return &Error{Kind: kind, Command: command}
}

// Wrap returns a failure of the given kind with the path and cause attached.
func Wrap(kind error, command, path string, err error) *Error {
	return &Error{Kind: kind, Command: command, Path: path, Err: err}
}

// WithPath returns a copy of e carrying path.
func (e *Error) WithPath(path string) *Error {
	c := *e
	c.Path = path
	return &c
}

// IsInformational reports whether err is an expected condition that should
// be reported to the user without failing the process.
func IsInformational(err error) bool {
	return errors.Is(err, ErrAlreadyInitialized)
}
