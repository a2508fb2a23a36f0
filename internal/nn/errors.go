package nn

import "fmt"

// ShapeError reports a mismatch between a value's dimensions and the
// dimensions the topology requires. It always indicates a programming
// contract violation, never bad user data, and is therefore fatal to the
// operation that detects it.
type ShapeError struct {
	Op   string // operation that detected the mismatch
	Want string // expected shape or length
	Got  string // observed shape or length
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: want %s, got %s", e.Op, e.Want, e.Got)
}
