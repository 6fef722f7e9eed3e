package ndarray

import "errors"

// Shape and type errors.
var (
	ErrNoData       = errors.New("ndarray: either data or a shape is required")
	ErrIndexType    = errors.New("ndarray: unsupported index specifier")
	ErrInvalidSlice = errors.New("ndarray: invalid slice")
	ErrInvalidShape = errors.New("ndarray: invalid shape")
	ErrRagged       = errors.New("ndarray: nested data is not rectangular")
	ErrInvalidAxis  = errors.New("ndarray: invalid axis")
	ErrType         = errors.New("ndarray: unsupported operand type")

	ErrUnknownReduction = errors.New("ndarray: unknown reduction")
)

// Bounds errors.
var (
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")
	ErrTooManyIndices  = errors.New("ndarray: too many indices")
)

// Arithmetic errors.
var (
	ErrDivisionByZero   = errors.New("ndarray: division by zero")
	ErrDegreesOfFreedom = errors.New("ndarray: degrees of freedom leave no samples")
	ErrEmptyReduction   = errors.New("ndarray: reduction over an empty sequence")
)

// ErrShapeMismatch reports operands whose shapes cannot be combined.
var ErrShapeMismatch = errors.New("ndarray: shape mismatch")
