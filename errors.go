package qresult

import "fmt"

// BackendError signals that a result record does not carry the data a
// caller asked for, or that an experiment reference cannot be resolved.
// It is the only error kind this package produces on the read path.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

func newBackendError(format string, args ...any) *BackendError {
	return &BackendError{Message: fmt.Sprintf(format, args...)}
}
