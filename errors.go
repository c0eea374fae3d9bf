package memview

import (
	"errors"
	"fmt"
)

// SizeError reports that an inspected type is too small to contain the
// header words an operation needs. It is the only recoverable failure
// in the package: everything else is a caller contract violation that
// cannot be detected without dereferencing unverified memory.
type SizeError struct {
	// Size is the byte size of the inspected type.
	Size uintptr

	// Need is the minimum byte size the operation requires.
	Need uintptr
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	return fmt.Sprintf("type too small: %d byte(s), operation needs at least %d", e.Size, e.Need)
}

// IsTypeTooSmall returns true if the error is a SizeError.
// Uses errors.As to handle wrapped errors.
func IsTypeTooSmall(err error) bool {
	var se *SizeError
	return errors.As(err, &se)
}
