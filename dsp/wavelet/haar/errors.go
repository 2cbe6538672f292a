package haar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength reports a signal or block length the transform cannot split.
	ErrInvalidLength = errors.New("haar: invalid length")
	// ErrDepthExceeded reports a depth or iteration count outside [0, max].
	ErrDepthExceeded = errors.New("haar: depth exceeds maximum")
	// ErrDimensionMismatch reports paired buffers or grids of incompatible size.
	ErrDimensionMismatch = errors.New("haar: dimension mismatch")
	// ErrAliasedBuffers reports input and output views sharing memory.
	ErrAliasedBuffers = errors.New("haar: input and output buffers overlap")
)

// LengthError carries a rejected length.
type LengthError struct {
	Op     string
	Length int
	Reason string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("haar: %s: invalid length %d: %s", e.Op, e.Length, e.Reason)
}

// Is reports whether target is ErrInvalidLength.
func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// DepthError carries the requested depth, the maximum supported depth and
// the length that bounds it.
type DepthError struct {
	Op        string
	Requested int
	Max       int
	Length    int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("haar: %s: depth %d out of range [0, %d] for input with length %d",
		e.Op, e.Requested, e.Max, e.Length)
}

// Is reports whether target is ErrDepthExceeded.
func (e *DepthError) Is(target error) bool {
	return target == ErrDepthExceeded
}

// DimensionError carries a size that does not match its counterpart.
type DimensionError struct {
	Op   string
	What string
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("haar: %s: %s mismatch: got %d, want %d", e.Op, e.What, e.Got, e.Want)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func errAliased(op string) error {
	return fmt.Errorf("%w: %s", ErrAliasedBuffers, op)
}
