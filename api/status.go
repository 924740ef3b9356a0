// SPDX-License-Identifier: MIT

package api

// Status is the closed result vocabulary of the boundary layer.
// Every internal failure maps onto exactly one of these values.
type Status int

const (
	// OK signals success.
	OK Status = iota
	// NullHandle signals a nil/unknown handle or a nil buffer where data
	// was required.
	NullHandle
	// BadSize signals an element-count or shape mismatch (including
	// multiply inner-dimension mismatch and overflowing result shapes).
	BadSize
	// AllocFailure signals that storage could not be allocated.
	AllocFailure
	// Internal signals any other converted failure.
	Internal
)

// statusNames backs Status.String; order must match the constant block.
var statusNames = [...]string{
	"ok", "null-handle", "bad-size", "allocation-failure", "internal-error",
}

// String returns the canonical status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return statusNames[Internal]
	}
	return statusNames[s]
}
