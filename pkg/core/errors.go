// Package core wires the learning space, memory store, recall engine, and
// curiosity estimator into the frame-driven processing pipeline.
package core

import (
	"errors"
	"fmt"
)

// Predefined errors for the pipeline's boundary conditions.
var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDimensionMismatch indicates that a supplied frame does not match
	// the configured space dimensions. This is a precondition violation:
	// frames are rejected before entering the core.
	ErrDimensionMismatch = errors.New("frame dimensions do not match space")

	// ErrSourceExhausted indicates that a frame source reached
	// end-of-stream. Fatal to the loop, not recoverable by the core.
	ErrSourceExhausted = errors.New("frame source exhausted")

	// ErrInvalidFrame indicates that a source produced a nil or malformed
	// frame.
	ErrInvalidFrame = errors.New("invalid frame")
)

// PipelineError wraps errors with operation context.
//
// Example:
//
//	err := &PipelineError{Op: "Step", Err: ErrDimensionMismatch}
//	// Error() returns: "learningspace: Step: frame dimensions do not match space"
type PipelineError struct {
	// Op is the name of the operation that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message.
//
// The format is: "learningspace: <Op>: <Err>"
func (e *PipelineError) Error() string {
	return fmt.Sprintf("learningspace: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
//
// This allows using errors.Is() and errors.As() with PipelineError.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError creates a new PipelineError wrapping the given error.
//
// If err is nil, returns nil. This allows safe error wrapping:
//
//	if err != nil {
//	    return NewPipelineError("Step", err)
//	}
func NewPipelineError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PipelineError{
		Op:  op,
		Err: err,
	}
}
