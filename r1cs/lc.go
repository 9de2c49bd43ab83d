package r1cs

import (
	"strconv"
	"strings"

	"github.com/consensys/gnark/constraint"

	"github.com/vicky2k/AleoLearning/field"
)

// Term is coeff*wire. Wire 0 is the constant wire, fixed to one.
type Term struct {
	VID   int
	Coeff constraint.Element
}

// LinearCombination is a sum of terms over the system's wires, sorted by wire
// id with at most one term per wire. The empty combination is zero.
type LinearCombination []Term

// NewConstant returns the combination holding the constant c.
func NewConstant(c constraint.Element) LinearCombination {
	if c.IsZero() {
		return nil
	}
	return LinearCombination{{VID: 0, Coeff: c}}
}

// NewLinear returns c * wire(vid).
func NewLinear(vid int, c constraint.Element) LinearCombination {
	return LinearCombination{{VID: vid, Coeff: c}}
}

func (e LinearCombination) Clone() LinearCombination {
	res := make(LinearCombination, len(e))
	copy(res, e)
	return res
}

// Equal reports whether both combinations have identical terms.
func (e LinearCombination) Equal(o LinearCombination) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

// IsConstant reports whether the combination involves no witness wire.
func (e LinearCombination) IsConstant() bool {
	for _, t := range e {
		if t.VID != 0 {
			return false
		}
	}
	return true
}

// String renders the combination with coefficients in the given field, e.g.
// "1+v2*3". The rendering is deterministic and used to compare systems.
func (e LinearCombination) String(f field.Field) string {
	if len(e) == 0 {
		return "0"
	}
	s := make([]string, len(e))
	for i, t := range e {
		coeff := f.ToBigInt(t.Coeff).String()
		if t.VID == 0 {
			s[i] = coeff
		} else {
			s[i] = "v" + strconv.Itoa(t.VID) + "*" + coeff
		}
	}
	return strings.Join(s, "+")
}

// Add returns a+b as a new combination.
func (s *System) Add(a, b LinearCombination) LinearCombination {
	res := make(LinearCombination, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].VID < b[j].VID:
			res = append(res, a[i])
			i++
		case a[i].VID > b[j].VID:
			res = append(res, b[j])
			j++
		default:
			c := s.field.Add(a[i].Coeff, b[j].Coeff)
			if !c.IsZero() {
				res = append(res, Term{VID: a[i].VID, Coeff: c})
			}
			i++
			j++
		}
	}
	res = append(res, a[i:]...)
	res = append(res, b[j:]...)
	return res
}

// Sub returns a-b as a new combination.
func (s *System) Sub(a, b LinearCombination) LinearCombination {
	return s.Add(a, s.Neg(b))
}

// Neg returns -a as a new combination.
func (s *System) Neg(a LinearCombination) LinearCombination {
	res := a.Clone()
	for i := range res {
		res[i].Coeff = s.field.Neg(res[i].Coeff)
	}
	return res
}

// Scale returns k*a as a new combination.
func (s *System) Scale(a LinearCombination, k constraint.Element) LinearCombination {
	if k.IsZero() {
		return nil
	}
	res := a.Clone()
	for i := range res {
		res[i].Coeff = s.field.Mul(res[i].Coeff, k)
	}
	return res
}
