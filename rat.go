package rational

import (
	"errors"
	"fmt"
	"math/big"
)

// Errors returned by functions in this package.
// Use [errors.Is] to classify a failure, since most errors are wrapped
// with the operation and operands that caused them.
var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrDivisionByZero = errors.New("division by zero")
	ErrEmptyInput     = errors.New("empty input")
	ErrMalformedInput = errors.New("malformed input")
)

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// Rat represents an exact rational number num/den.
// The numerator and denominator are always in lowest terms and the
// denominator is always positive.
//
// The zero value is the canonical representation of 0 (that is, 0/1),
// and it is the only value equal to zero that this package returns.
// Rat is immutable and designed to be safe for concurrent use by multiple
// goroutines.
type Rat struct {
	num *big.Int // numerator, nil means 0
	den *big.Int // denominator, nil means 1
	f   *Factory // factory that interned the value, nil means none
}

// Zero is the rational number 0.
var Zero = Rat{}

// One is the rational number 1.
var One = Rat{num: big.NewInt(1), den: big.NewInt(1)}

// New returns a rational number equal to num/den in lowest terms.
//
// New returns an error if the denominator is not positive.
func New(num, den int64) (Rat, error) {
	return plain.New(num, den)
}

// MustNew is like [New] but panics if the rational number cannot be constructed.
// It simplifies safe initialization of global variables holding rational numbers.
func MustNew(num, den int64) Rat {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// NewFromBigInt returns a rational number equal to num/den in lowest terms.
// The arguments are not retained and may be modified after the call.
//
// NewFromBigInt returns an error if the denominator is not positive.
func NewFromBigInt(num, den *big.Int) (Rat, error) {
	return plain.NewFromBigInt(num, den)
}

// NewFromBigRat converts a [big.Rat] to a rational number.
// See also method [Rat.BigRat].
func NewFromBigRat(x *big.Rat) Rat {
	return plain.NewFromBigRat(x)
}

// n returns the numerator without copying it.
func (r Rat) n() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return r.num
}

// d returns the denominator without copying it.
func (r Rat) d() *big.Int {
	if r.den == nil {
		return bigOne
	}
	return r.den
}

// factory returns the factory used to construct results of binary operations.
func (r Rat) factory(b Rat) *Factory {
	switch {
	case r.f != nil:
		return r.f
	case b.f != nil:
		return b.f
	default:
		return plain
	}
}

// Num returns a copy of the numerator of r.
// The sign of the numerator is the sign of r.
func (r Rat) Num() *big.Int {
	return new(big.Int).Set(r.n())
}

// Den returns a copy of the denominator of r.
// The denominator is always positive.
func (r Rat) Den() *big.Int {
	return new(big.Int).Set(r.d())
}

// BigRat returns r as a newly allocated [big.Rat].
// See also constructor [NewFromBigRat].
func (r Rat) BigRat() *big.Rat {
	return new(big.Rat).SetFrac(r.n(), r.d())
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Rat) Sign() int {
	return r.n().Sign()
}

// IsNeg returns:
//
//	true  if r < 0
//	false otherwise
func (r Rat) IsNeg() bool {
	return r.Sign() < 0
}

// IsPos returns:
//
//	true  if r > 0
//	false otherwise
func (r Rat) IsPos() bool {
	return r.Sign() > 0
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Rat) IsZero() bool {
	return r.Sign() == 0
}

// IsOne returns:
//
//	true  if r = 1
//	false otherwise
func (r Rat) IsOne() bool {
	return r.IsInt() && r.n().Cmp(bigOne) == 0
}

// IsInt returns true if the denominator of r is 1.
func (r Rat) IsInt() bool {
	return r.d().Cmp(bigOne) == 0
}

// Neg returns a rational number with the opposite sign.
func (r Rat) Neg() Rat {
	return r.factory(Rat{}).mustCreate(new(big.Int).Neg(r.n()), r.d())
}

// Abs returns the absolute value of r.
func (r Rat) Abs() Rat {
	if r.IsNeg() {
		return r.Neg()
	}
	return r
}

// Inv returns the multiplicative inverse 1/r.
//
// Inv returns an error if r is zero.
func (r Rat) Inv() (Rat, error) {
	if r.IsZero() {
		return Rat{}, fmt.Errorf("computing [1 / %v]: %w", r, ErrDivisionByZero)
	}
	num := new(big.Int).Set(r.d())
	if r.IsNeg() {
		num.Neg(num)
	}
	den := new(big.Int).Abs(r.n())
	return r.factory(Rat{}).mustCreate(num, den), nil
}

// Add returns the sum r + b.
func (r Rat) Add(b Rat) Rat {
	num := new(big.Int).Mul(r.n(), b.d())
	num.Add(num, new(big.Int).Mul(b.n(), r.d()))
	den := new(big.Int).Mul(r.d(), b.d())
	return r.factory(b).mustCreate(num, den)
}

// Sub returns the difference r - b.
func (r Rat) Sub(b Rat) Rat {
	return r.Add(b.Neg())
}

// Mul returns the product r * b.
func (r Rat) Mul(b Rat) Rat {
	num := new(big.Int).Mul(r.n(), b.n())
	den := new(big.Int).Mul(r.d(), b.d())
	return r.factory(b).mustCreate(num, den)
}

// Quo returns the quotient r / b.
//
// Quo returns an error if b is zero.
func (r Rat) Quo(b Rat) (Rat, error) {
	if b.IsZero() {
		return Rat{}, fmt.Errorf("computing [%v / %v]: %w", r, b, ErrDivisionByZero)
	}
	i, err := b.Inv()
	if err != nil {
		return Rat{}, fmt.Errorf("computing [%v / %v]: %w", r, b, err)
	}
	return r.Mul(i), nil
}

// Pow returns r raised to the power of exp.
// A negative exponent computes the power of the inverse of r.
//
// Pow returns an error if r is zero and exp is negative.
func (r Rat) Pow(exp int) (Rat, error) {
	base := r
	if exp < 0 {
		var err error
		base, err = r.Inv()
		if err != nil {
			return Rat{}, fmt.Errorf("computing [%v^%v]: %w", r, exp, ErrDivisionByZero)
		}
		exp = -exp
	}
	e := big.NewInt(int64(exp))
	num := new(big.Int).Exp(base.n(), e, nil)
	den := new(big.Int).Exp(base.d(), e, nil)
	return base.factory(Rat{}).mustCreate(num, den), nil
}

// Cmp compares rational numbers and returns:
//
//	-1 if r < b
//	 0 if r = b
//	+1 if r > b
//
// Numbers of different signs are ordered by sign alone; otherwise
// the cross products r.num * b.den and b.num * r.den are compared.
// See also method [Rat.CmpAbs].
func (r Rat) Cmp(b Rat) int {
	rs, bs := r.Sign(), b.Sign()
	switch {
	case rs < bs:
		return -1
	case rs > bs:
		return 1
	case rs == 0:
		return 0
	}
	x := new(big.Int).Mul(r.n(), b.d())
	y := new(big.Int).Mul(b.n(), r.d())
	return x.Cmp(y)
}

// CmpAbs compares absolute values of rational numbers and returns:
//
//	-1 if |r| < |b|
//	 0 if |r| = |b|
//	+1 if |r| > |b|
func (r Rat) CmpAbs(b Rat) int {
	return r.Abs().Cmp(b.Abs())
}

// Equal returns true if r and b denote the same number,
// regardless of how they were constructed.
func (r Rat) Equal(b Rat) bool {
	return r.Cmp(b) == 0
}

// Less returns true if r < b.
func (r Rat) Less(b Rat) bool {
	return r.Cmp(b) < 0
}

// LessOrEqual returns true if r <= b.
func (r Rat) LessOrEqual(b Rat) bool {
	return r.Cmp(b) <= 0
}

// Greater returns true if r > b.
func (r Rat) Greater(b Rat) bool {
	return r.Cmp(b) > 0
}

// GreaterOrEqual returns true if r >= b.
func (r Rat) GreaterOrEqual(b Rat) bool {
	return r.Cmp(b) >= 0
}

// Clamp compares rational numbers and returns:
//
//	min if r < min
//	max if r > max
//	  r otherwise
//
// Clamp returns an error if min is greater than max.
func (r Rat) Clamp(min, max Rat) (Rat, error) {
	if min.Greater(max) {
		return Rat{}, fmt.Errorf("clamping %v: invalid range [%v, %v]: %w", r, min, max, ErrInvalidOperand)
	}
	switch {
	case r.Less(min):
		return min, nil
	case r.Greater(max):
		return max, nil
	}
	return r, nil
}

// String implements the [fmt.Stringer] interface and returns the display
// form of r: "num" when r is an integer and "num/den" otherwise.
// See also methods [Rat.Fraction], [Rat.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rat) String() string {
	if r.IsInt() {
		return r.n().String()
	}
	return r.Fraction()
}

// Fraction returns the canonical "num/den" form of r.
// The denominator is always present, even when it is 1, which makes
// the result a lossless representation accepted by [ParseFraction].
func (r Rat) Fraction() string {
	return r.n().String() + "/" + r.d().String()
}
