package analysis

import "errors"

// ErrUnsupportedOperation indicates an operation outside the closed enum.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ErrInvalidRequest indicates missing or malformed request fields.
var ErrInvalidRequest = errors.New("invalid request")

// ErrNotFound indicates an unknown record id.
var ErrNotFound = errors.New("record not found")
