package taskcall

import (
	"errors"

	"github.com/taskcall/taskcall/invocation"
)

var (
	// Parse errors, re-exported from the invocation package so callers
	// have a single place to errors.Is against.
	ErrBadFormat    = invocation.ErrFormat
	ErrBadArguments = invocation.ErrDecode

	// Lookup errors.
	ErrTaskNotFound = errors.New("taskcall: task not found")

	// Registration errors.
	ErrNilHandler = errors.New("taskcall: descriptor has nil handler")
	ErrEmptyName  = errors.New("taskcall: descriptor has empty name")
)
