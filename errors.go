package dotenv

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrConfigUnreadable is returned when the definition file exists but cannot be read.
	ErrConfigUnreadable = errors.New("dotenv: definition file is not readable")

	// ErrMalformedValue is returned when an unquoted value contains whitespace.
	ErrMalformedValue = errors.New("dotenv: values containing spaces must be surrounded by quotes")
)

// UnreadableError reports a definition file that exists but could not be read.
type UnreadableError struct {
	Path string // Path of the offending file
	Err  error  // Underlying cause (usually *fs.PathError)
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("dotenv: definition file is not readable: %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConfigUnreadable) succeed.
func (e *UnreadableError) Is(target error) bool { return target == ErrConfigUnreadable }

// MalformedValueError reports an unquoted value with embedded whitespace.
// The offending value is kept for callers but left out of the message.
type MalformedValueError struct {
	Path  string // Definition file path
	Line  int    // 1-based line number
	Name  string // Variable name
	Value string // Raw value that was rejected
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("dotenv: %s:%d: value of %s containing spaces must be surrounded by quotes", e.Path, e.Line, e.Name)
}

// Is makes errors.Is(err, ErrMalformedValue) succeed.
func (e *MalformedValueError) Is(target error) bool { return target == ErrMalformedValue }
