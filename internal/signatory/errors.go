package signatory

import (
	"errors"
	"fmt"
)

// Operation names a gated Signatory accessor.
type Operation string

// Gated operations.
const (
	OpSigningKey Operation = "signingKey"
	OpConfirmKey Operation = "confirmKey"
	OpAddress    Operation = "address"
	OpPublicKey  Operation = "publicKey"
	OpPath       Operation = "path"
	OpOptions    Operation = "options"
)

// ErrUnsupportedOperation matches every UnsupportedOperationError via errors.Is.
var ErrUnsupportedOperation = errors.New("unsupported signatory operation")

// UnsupportedOperationError is returned when an accessor is called on a
// variant that does not carry that piece of signing material. It always
// indicates a programming error in the caller.
type UnsupportedOperationError struct {
	Variant   Kind
	Operation Operation
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("signatory: %s is not supported by %s", e.Operation, e.Variant)
}

// Is implements errors.Is.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}
