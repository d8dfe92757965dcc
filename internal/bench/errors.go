// Package bench drives one benchmark configuration end to end: buffer
// provisioning, data generation or loading, packing, the timed kernel loop,
// derived metrics, and optional validation against the scalar reference.
package bench

import (
	"errors"
	"fmt"
)

// Kind classifies the fatal failures a run can hit. Each terminates the run
// before any partial report is emitted; check mismatches are diagnostics,
// not errors, and never appear here.
type Kind int

const (
	// KindArgument marks invalid configuration values.
	KindArgument Kind = iota
	// KindAllocation marks buffer sizing failures.
	KindAllocation
	// KindWeightIO marks weight-file open, read, or size failures.
	KindWeightIO
	// KindCapability marks a SIMD kernel request the hardware cannot honor.
	KindCapability
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindAllocation:
		return "allocation"
	case KindWeightIO:
		return "weights"
	case KindCapability:
		return "capability"
	default:
		return "unknown"
	}
}

// Error carries the failure class and the run phase that hit it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("%s error in %s", e.Kind, e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func errorf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func isKind(err error, kind Kind) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == kind
}

// IsArgument reports whether err is a configuration error. Callers use it to
// decide whether printing usage help is appropriate.
func IsArgument(err error) bool { return isKind(err, KindArgument) }

// IsAllocation reports whether err is a buffer sizing error.
func IsAllocation(err error) bool { return isKind(err, KindAllocation) }

// IsWeightIO reports whether err came from loading the weights file.
func IsWeightIO(err error) bool { return isKind(err, KindWeightIO) }

// IsCapability reports whether err marks missing hardware support.
func IsCapability(err error) bool { return isKind(err, KindCapability) }
