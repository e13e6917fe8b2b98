// Package vendors normalizes errors returned by external AI service adapters.
package vendors

import "fmt"

// Error wraps a vendor-reported failure with the vendor and operation names so
// logs carry enough detail for operator diagnosis. Adapters return it for every
// failed call; they never retry or reinterpret the failure themselves.
type Error struct {
	Vendor string
	Op     string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Vendor, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err as a vendor error.
func New(vendor, op string, err error) *Error {
	return &Error{Vendor: vendor, Op: op, Err: err}
}

// Newf wraps a formatted message as a vendor error.
func Newf(vendor, op, format string, args ...any) *Error {
	return &Error{Vendor: vendor, Op: op, Err: fmt.Errorf(format, args...)}
}

// Summary returns a short client-safe description of a vendor failure. Raw
// vendor error bodies stay in logs; they are never echoed to end users.
func Summary(e *Error) string {
	return fmt.Sprintf("%s %s failed", e.Vendor, e.Op)
}
