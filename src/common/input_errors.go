package common

import "fmt"

// InvalidInputErrType ...
type InvalidInputErrType uint32

const (
	// OddLength ...
	OddLength InvalidInputErrType = iota
	// NonHexDigit ...
	NonHexDigit
)

// InvalidInputErr is returned when a hex parameter cannot be split into
// bytes. Offset is relative to the input with separators removed.
type InvalidInputErr struct {
	errType InvalidInputErrType
	offset  int
	char    byte
}

// NewInvalidInputErr ...
func NewInvalidInputErr(errType InvalidInputErrType, offset int, char byte) InvalidInputErr {
	return InvalidInputErr{
		errType: errType,
		offset:  offset,
		char:    char,
	}
}

// Offset returns the position of the offending character.
func (e InvalidInputErr) Offset() int {
	return e.offset
}

// Error ...
func (e InvalidInputErr) Error() string {
	switch e.errType {
	case OddLength:
		return fmt.Sprintf("invalid input, Odd Length, dangling %q at %d", e.char, e.offset)
	case NonHexDigit:
		return fmt.Sprintf("invalid input, Non Hex Digit, %q at %d", e.char, e.offset)
	}
	return fmt.Sprintf("invalid input at %d", e.offset)
}

// IsInvalidInput checks that an error is of type InvalidInputErr and that its
// code matches the provided InvalidInputErrType.
func IsInvalidInput(err error, t InvalidInputErrType) bool {
	inputErr, ok := err.(InvalidInputErr)
	return ok && inputErr.errType == t
}
