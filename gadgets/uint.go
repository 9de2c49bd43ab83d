// Package gadgets implements the fixed-width primitives constraint emitters
// are built from: unsigned integers of 8 to 128 bits, circuit booleans and
// native field values.
//
// Every arithmetic operation emits the same constraint sequence whether or
// not witness values are known, so a topology-only pass and a traced pass
// over the same program produce identical systems.
package gadgets

import (
	"fmt"
	"math/big"

	"github.com/vicky2k/AleoLearning/r1cs"
)

// Uint is a fixed-width unsigned integer inside the circuit: either a known
// constant of the declared width, or a little-endian sequence of
// boolean-constrained witness wires of exactly that width.
//
// Add, Sub, Mul and Pow are modular, mod 2^size. Div is truncating integer
// division. A free witness carries a nil value; its wires stay unassigned.
type Uint struct {
	size  int
	bits  []int
	value *big.Int
}

func NewU8(v uint8) Uint {
	u, _ := NewConstant(8, new(big.Int).SetUint64(uint64(v)))
	return u
}

func NewU16(v uint16) Uint {
	u, _ := NewConstant(16, new(big.Int).SetUint64(uint64(v)))
	return u
}

func NewU32(v uint32) Uint {
	u, _ := NewConstant(32, new(big.Int).SetUint64(uint64(v)))
	return u
}

func NewU64(v uint64) Uint {
	u, _ := NewConstant(64, new(big.Int).SetUint64(v))
	return u
}

func NewU128(v *big.Int) (Uint, error) {
	return NewConstant(128, v)
}

// NewConstant returns a constant of the given width. It fails with
// ValueOutOfRangeError if the value does not fit.
func NewConstant(size int, v *big.Int) (Uint, error) {
	checkSupportedSize(size)
	if v.Sign() < 0 || v.BitLen() > size {
		return Uint{}, ValueOutOfRangeError{Value: v, Size: size}
	}
	return Uint{size: size, value: new(big.Int).Set(v)}, nil
}

// AllocU8 allocates an 8-bit witness. A nil value allocates a free witness;
// otherwise the wires are assigned to the literal's bits and the packed
// witness is additionally pinned to the literal.
func AllocU8(s *r1cs.System, value *big.Int) (Uint, error) { return allocUint(s, 8, value) }

// AllocU16 allocates a 16-bit witness; see AllocU8.
func AllocU16(s *r1cs.System, value *big.Int) (Uint, error) { return allocUint(s, 16, value) }

// AllocU32 allocates a 32-bit witness; see AllocU8.
func AllocU32(s *r1cs.System, value *big.Int) (Uint, error) { return allocUint(s, 32, value) }

// AllocU64 allocates a 64-bit witness; see AllocU8.
func AllocU64(s *r1cs.System, value *big.Int) (Uint, error) { return allocUint(s, 64, value) }

// AllocU128 allocates a 128-bit witness; see AllocU8.
func AllocU128(s *r1cs.System, value *big.Int) (Uint, error) { return allocUint(s, 128, value) }

func allocUint(s *r1cs.System, size int, value *big.Int) (Uint, error) {
	checkSupportedSize(size)
	if value != nil && (value.Sign() < 0 || value.BitLen() > size) {
		return Uint{}, ValueOutOfRangeError{Value: value, Size: size}
	}
	u := allocBits(s, size, value)
	if value != nil {
		s.AddConstraint(s.Sub(u.lc(s), s.Constant(value)), s.One(), nil)
	}
	return u, nil
}

// allocBits allocates size boolean-constrained wires, assigned from the
// value's bits when one is known.
func allocBits(s *r1cs.System, size int, value *big.Int) Uint {
	bits := make([]int, size)
	for i := range bits {
		var bv *big.Int
		if value != nil {
			bv = big.NewInt(int64(value.Bit(i)))
		}
		w := s.NewWitness(bv)
		lcw := r1cs.NewLinear(w, s.Field().One())
		s.AddConstraint(lcw, lcw, lcw)
		bits[i] = w
	}
	var v *big.Int
	if value != nil {
		v = new(big.Int).Set(value)
	}
	return Uint{size: size, bits: bits, value: v}
}

func (a Uint) Size() int {
	return a.size
}

// IsConstant reports whether the integer is a compile-time constant with no
// wires.
func (a Uint) IsConstant() bool {
	return a.bits == nil
}

// Value returns a copy of the known value, or nil for a free witness.
func (a Uint) Value() *big.Int {
	if a.value == nil {
		return nil
	}
	return new(big.Int).Set(a.value)
}

func (a Uint) String() string {
	if a.value != nil {
		return a.value.String()
	}
	return "?"
}

// lc packs the integer into a single linear combination.
func (a Uint) lc(s *r1cs.System) r1cs.LinearCombination {
	if a.bits == nil {
		return s.Constant(a.value)
	}
	return pack(s, a.bits)
}

func pack(s *r1cs.System, bits []int) r1cs.LinearCombination {
	e := make(r1cs.LinearCombination, 0, len(bits))
	two := s.Field().FromInterface(2)
	c := s.Field().One()
	for _, w := range bits {
		e = append(e, r1cs.Term{VID: w, Coeff: c})
		c = s.Field().Mul(c, two)
	}
	return e
}

// Eq is structural equality: constants compare by value, allocated integers
// by wire identity. It never touches the constraint system.
func (a Uint) Eq(b Uint) bool {
	if a.size != b.size {
		return false
	}
	if a.bits == nil && b.bits == nil {
		return a.value.Cmp(b.value) == 0
	}
	if a.bits == nil || b.bits == nil {
		return false
	}
	for i := range a.bits {
		if a.bits[i] != b.bits[i] {
			return false
		}
	}
	return true
}

// AssertEq appends a constraint forcing a == b. Two differing constants fail
// immediately with ErrAssertionFailed.
func (a Uint) AssertEq(s *r1cs.System, b Uint) error {
	a.checkSize(b)
	if a.bits == nil && b.bits == nil {
		if a.value.Cmp(b.value) != 0 {
			return fmt.Errorf("%s != %s: %w", a, b, ErrAssertionFailed)
		}
		return nil
	}
	s.AddConstraint(s.Sub(a.lc(s), b.lc(s)), s.One(), nil)
	return nil
}

// Add returns a+b mod 2^size.
func (a Uint) Add(s *r1cs.System, b Uint) (Uint, error) {
	a.checkSize(b)
	if a.bits == nil && b.bits == nil {
		v := new(big.Int).Add(a.value, b.value)
		return NewConstant(a.size, v.And(v, mask(a.size)))
	}
	var sum *big.Int
	if a.value != nil && b.value != nil {
		sum = new(big.Int).Add(a.value, b.value)
	}
	t := s.Add(a.lc(s), b.lc(s))
	return truncate(s, t, sum, a.size+1, a.size), nil
}

// Sub returns a-b mod 2^size.
func (a Uint) Sub(s *r1cs.System, b Uint) (Uint, error) {
	a.checkSize(b)
	if a.bits == nil && b.bits == nil {
		v := new(big.Int).Sub(a.value, b.value)
		return NewConstant(a.size, v.Mod(v, pow2(a.size)))
	}
	var d *big.Int
	if a.value != nil && b.value != nil {
		d = new(big.Int).Add(a.value, pow2(a.size))
		d.Sub(d, b.value)
	}
	// a + 2^size - b is non-negative and below 2^(size+1)
	t := s.Add(a.lc(s), s.Sub(s.Constant(pow2(a.size)), b.lc(s)))
	return truncate(s, t, d, a.size+1, a.size), nil
}

// Mul returns a*b mod 2^size. The product is assembled from half-width limbs
// so the intermediate sum stays below the field modulus even for 128-bit
// operands.
func (a Uint) Mul(s *r1cs.System, b Uint) (Uint, error) {
	a.checkSize(b)
	if a.bits == nil && b.bits == nil {
		v := new(big.Int).Mul(a.value, b.value)
		return NewConstant(a.size, v.And(v, mask(a.size)))
	}
	h := a.size / 2
	a0, a1 := a.halves(s, h)
	b0, b1 := b.halves(s, h)
	var v00, v01, v10, tv *big.Int
	if a.value != nil && b.value != nil {
		av0, av1 := split(a.value, h)
		bv0, bv1 := split(b.value, h)
		v00 = new(big.Int).Mul(av0, bv0)
		v01 = new(big.Int).Mul(av0, bv1)
		v10 = new(big.Int).Mul(av1, bv0)
		tv = new(big.Int).Add(v01, v10)
		tv.Lsh(tv, uint(h))
		tv.Add(tv, v00)
	}
	p00 := mulWire(s, a0, b0, v00)
	p01 := mulWire(s, a0, b1, v01)
	p10 := mulWire(s, a1, b0, v10)
	// only the low size bits of the full product survive; the a1*b1 limb
	// contributes nothing below 2^size
	cross := s.Scale(s.Add(p01, p10), s.Field().FromInterface(pow2(h)))
	t := s.Add(p00, cross)
	return truncate(s, t, tv, a.size+h+2, a.size), nil
}

// Div returns the truncating quotient a/b. It witnesses quotient and
// remainder and enforces a = q*b + r with r < b, which also forces the
// divisor to be nonzero in-circuit. A divisor known to be zero fails
// immediately with ErrDivisionByZero.
func (a Uint) Div(s *r1cs.System, b Uint) (Uint, error) {
	a.checkSize(b)
	if b.value != nil && b.value.Sign() == 0 {
		return Uint{}, ErrDivisionByZero
	}
	if a.bits == nil && b.bits == nil {
		return NewConstant(a.size, new(big.Int).Quo(a.value, b.value))
	}
	var qv, rv *big.Int
	if a.value != nil && b.value != nil {
		qv, rv = new(big.Int).QuoRem(a.value, b.value, new(big.Int))
	}
	return a.enforceDiv(s, b, qv, rv), nil
}

// enforceDiv emits the division constraints for the given quotient and
// remainder witnesses. q*b is assembled from half-width limb products so the
// relation a = q*b + r holds over the integers, not just modulo the field:
// a single q*b product of 128-bit operands could exceed the modulus and admit
// a wrapped-around quotient. The top-limb product is forced to zero, which
// every true quotient satisfies because q*b = a - r fits in size bits.
func (a Uint) enforceDiv(s *r1cs.System, b Uint, qv, rv *big.Int) Uint {
	h := a.size / 2
	var v00, v01, v10, dv *big.Int
	if qv != nil && b.value != nil {
		q0v, q1v := split(qv, h)
		b0v, b1v := split(b.value, h)
		v00 = new(big.Int).Mul(q0v, b0v)
		v01 = new(big.Int).Mul(q0v, b1v)
		v10 = new(big.Int).Mul(q1v, b0v)
	}
	if rv != nil && b.value != nil {
		dv = new(big.Int).Sub(b.value, rv)
		dv.Sub(dv, big.NewInt(1))
	}
	q := allocBits(s, a.size, qv)
	r := allocBits(s, a.size, rv)
	q0, q1 := q.halves(s, h)
	b0, b1 := b.halves(s, h)
	p00 := mulWire(s, q0, b0, v00)
	p01 := mulWire(s, q0, b1, v01)
	p10 := mulWire(s, q1, b0, v10)
	s.AddConstraint(q1, b1, nil)
	cross := s.Scale(s.Add(p01, p10), s.Field().FromInterface(pow2(h)))
	// q*b = a - r
	t := s.Add(p00, cross)
	s.AddConstraint(s.Sub(t, s.Sub(a.lc(s), r.lc(s))), s.One(), nil)
	// r < b, via b - r - 1 in [0, 2^size)
	d := s.Sub(b.lc(s), s.Add(r.lc(s), s.One()))
	dd := allocBits(s, a.size, dv)
	s.AddConstraint(s.Sub(dd.lc(s), d), s.One(), nil)
	return q
}

// Pow returns a**b mod 2^size by square-and-multiply over the exponent bits,
// most significant first. 0**0 is 1, matching big.Int.Exp.
func (a Uint) Pow(s *r1cs.System, b Uint) (Uint, error) {
	a.checkSize(b)
	if a.bits == nil && b.bits == nil {
		return NewConstant(a.size, new(big.Int).Exp(a.value, b.value, pow2(a.size)))
	}
	acc, err := NewConstant(a.size, big.NewInt(1))
	if err != nil {
		return Uint{}, err
	}
	for i := a.size - 1; i >= 0; i-- {
		acc, err = acc.Mul(s, acc)
		if err != nil {
			return Uint{}, err
		}
		bit := b.bit(s, i)
		if c, ok := bit.Constant(); ok {
			if c {
				acc, err = acc.Mul(s, a)
				if err != nil {
					return Uint{}, err
				}
			}
			continue
		}
		m, err := acc.Mul(s, a)
		if err != nil {
			return Uint{}, err
		}
		acc = selectUint(s, bit, m, acc)
	}
	return acc, nil
}

// bit returns the i-th bit as a circuit boolean.
func (a Uint) bit(s *r1cs.System, i int) Boolean {
	if a.bits == nil {
		return NewConstBool(a.value.Bit(i) == 1)
	}
	var v *bool
	if a.value != nil {
		t := a.value.Bit(i) == 1
		v = &t
	}
	return Boolean{lc: r1cs.NewLinear(a.bits[i], s.Field().One()), value: v}
}

func (a Uint) bitLc(s *r1cs.System, i int) r1cs.LinearCombination {
	if a.bits == nil {
		return s.Constant(big.NewInt(int64(a.value.Bit(i))))
	}
	return r1cs.NewLinear(a.bits[i], s.Field().One())
}

// halves returns the low and high half of the integer as combinations.
func (a Uint) halves(s *r1cs.System, h int) (lo, hi r1cs.LinearCombination) {
	if a.bits == nil {
		av0, av1 := split(a.value, h)
		return s.Constant(av0), s.Constant(av1)
	}
	return pack(s, a.bits[:h]), pack(s, a.bits[h:])
}

// truncate decomposes a combination known to fit in width bits and keeps the
// low size of them, constraining the decomposition to equal the combination.
func truncate(s *r1cs.System, t r1cs.LinearCombination, value *big.Int, width, size int) Uint {
	full := allocBits(s, width, value)
	s.AddConstraint(s.Sub(full.lc(s), t), s.One(), nil)
	low := Uint{size: size, bits: full.bits[:size]}
	if value != nil {
		low.value = new(big.Int).And(value, mask(size))
	}
	return low
}

// selectUint returns x when bit is 1, y otherwise, selecting bit by bit. The
// result bits inherit booleanness from the branches.
func selectUint(s *r1cs.System, bit Boolean, x, y Uint) Uint {
	if c, ok := bit.Constant(); ok {
		if c {
			return x
		}
		return y
	}
	known := bit.value != nil && x.value != nil && y.value != nil
	var value *big.Int
	if known {
		value = y.Value()
		if *bit.value {
			value = x.Value()
		}
	}
	bits := make([]int, x.size)
	for i := range bits {
		var rv *big.Int
		if known {
			rv = big.NewInt(int64(value.Bit(i)))
		}
		w := s.NewWitness(rv)
		xi := x.bitLc(s, i)
		yi := y.bitLc(s, i)
		// bit * (x_i - y_i) = r_i - y_i
		s.AddConstraint(bit.lc, s.Sub(xi, yi), s.Sub(r1cs.NewLinear(w, s.Field().One()), yi))
		bits[i] = w
	}
	return Uint{size: x.size, bits: bits, value: value}
}

// mulWire allocates a wire constrained to l*r, assigned when the product is
// known.
func mulWire(s *r1cs.System, l, r r1cs.LinearCombination, value *big.Int) r1cs.LinearCombination {
	w := s.NewWitness(value)
	out := r1cs.NewLinear(w, s.Field().One())
	s.AddConstraint(l, r, out)
	return out
}

func (a Uint) checkSize(b Uint) {
	if a.size != b.size {
		panic("gadget width mismatch")
	}
}

func checkSupportedSize(size int) {
	switch size {
	case 8, 16, 32, 64, 128:
	default:
		panic("unsupported integer width")
	}
}

func pow2(n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n))
}

func mask(n int) *big.Int {
	return new(big.Int).Sub(pow2(n), big.NewInt(1))
}

func split(v *big.Int, h int) (lo, hi *big.Int) {
	lo = new(big.Int).And(v, mask(h))
	hi = new(big.Int).Rsh(v, uint(h))
	return lo, hi
}
