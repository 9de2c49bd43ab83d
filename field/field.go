// Package field abstracts the prime field every constraint system is
// parameterized over. Coefficients are carried as constraint.Element so the
// underlying gnark-crypto arithmetic is used without conversions on the hot
// path.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/vicky2k/AleoLearning/field/bn254"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
