package gadgets

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrDivisionByZero is returned when a divisor is known to be zero at
	// generation time.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrAssertionFailed is returned when an equality is enforced between two
	// constants that differ.
	ErrAssertionFailed = errors.New("equality assertion failed")
)

// ValueOutOfRangeError is returned when a literal does not fit the declared
// bit width.
type ValueOutOfRangeError struct {
	Value *big.Int
	Size  int
}

func (e ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("value %s does not fit in %d bits", e.Value, e.Size)
}
