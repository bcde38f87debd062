package rational

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Factory constructs canonical rational numbers and, when it owns a [Cache],
// interns them so that equal values built from the same representation
// share a single instance.
//
// Rational numbers remember the factory that built them, so the results of
// arithmetic on interned values are interned in the same cache.
// A nil cache disables interning without changing any result.
type Factory struct {
	cache *Cache
}

// plain is the factory behind the package-level constructors. It does not intern.
var plain = &Factory{}

// NewFactory returns a factory that interns values in the given cache.
// Passing nil returns a factory that does not intern.
func NewFactory(cache *Cache) *Factory {
	return &Factory{cache: cache}
}

// Cache returns the cache used by the factory, or nil if interning is disabled.
func (f *Factory) Cache() *Cache {
	return f.cache
}

// Prefixes of cache keys written by the entry points. Each entry point only
// reads back keys of its own kind, so a string accepted by one grammar is
// never returned for another grammar that rejects it. Canonical "num/den"
// keys written by create carry no prefix and never contain a colon.
const (
	keyParse    = "p:"
	keyFraction = "f:"
	keyDecimal  = "d:"
	keyFixed    = "x:"
	keyFloat    = "g:"
)

func (f *Factory) lookup(kind, s string) (Rat, bool) {
	if f.cache == nil {
		return Rat{}, false
	}
	return f.cache.Get(kind + s)
}

func (f *Factory) store(kind, s string, r Rat) {
	if f.cache == nil {
		return
	}
	f.cache.Put(kind+s, r)
}

// create is the only place where rational numbers with a non-zero
// numerator are built. It reduces num/den to lowest terms and interns the
// result under its canonical "num/den" key. The arguments are not retained.
// The number 1 is not interned but still carries f, so arithmetic on it
// stays in the same cache.
func (f *Factory) create(num, den *big.Int) (Rat, error) {
	if den.Sign() <= 0 {
		return Rat{}, ErrInvalidOperand
	}
	if num.Sign() == 0 {
		return Rat{}, nil
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	n := new(big.Int).Quo(num, g)
	d := new(big.Int).Quo(den, g)
	if n.Cmp(bigOne) == 0 && d.Cmp(bigOne) == 0 {
		return Rat{num: bigOne, den: bigOne, f: f}, nil
	}
	if f.cache == nil {
		return Rat{num: n, den: d, f: f}, nil
	}
	key := n.String() + "/" + d.String()
	if r, ok := f.cache.Get(key); ok {
		return r, nil
	}
	r := Rat{num: n, den: d, f: f}
	f.cache.Put(key, r)
	return r, nil
}

// mustCreate is like create but panics if the denominator is not positive.
// Use it only if the denominator is positive by construction.
func (f *Factory) mustCreate(num, den *big.Int) Rat {
	r, err := f.create(num, den)
	if err != nil {
		panic(fmt.Sprintf("create(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// New is like the package-level [New] but interns the result.
func (f *Factory) New(num, den int64) (Rat, error) {
	r, err := f.create(big.NewInt(num), big.NewInt(den))
	if err != nil {
		return Rat{}, fmt.Errorf("constructing [%v/%v]: %w", num, den, err)
	}
	return r, nil
}

// NewFromBigInt is like the package-level [NewFromBigInt] but interns the result.
func (f *Factory) NewFromBigInt(num, den *big.Int) (Rat, error) {
	r, err := f.create(num, den)
	if err != nil {
		return Rat{}, fmt.Errorf("constructing [%v/%v]: %w", num, den, err)
	}
	return r, nil
}

// NewFromBigRat is like the package-level [NewFromBigRat] but interns the result.
func (f *Factory) NewFromBigRat(x *big.Rat) Rat {
	return f.mustCreate(x.Num(), x.Denom())
}

// NewFromDecimal returns a rational number exactly equal to the decimal d.
// See also methods [Rat.RoundToDecimal], [Rat.RoundToSignificants].
func NewFromDecimal(d decimal.Decimal) Rat {
	return plain.NewFromDecimal(d)
}

// NewFromDecimal is like the package-level [NewFromDecimal] but interns the
// result under the string form of d.
func (f *Factory) NewFromDecimal(d decimal.Decimal) Rat {
	key := d.String()
	if r, ok := f.lookup(keyDecimal, key); ok {
		return r
	}
	num, den := d.Coefficient(), big.NewInt(1)
	if exp := int(d.Exponent()); exp >= 0 {
		num.Mul(num, pow10(exp))
	} else {
		den = pow10(-exp)
	}
	r := f.mustCreate(num, den)
	f.store(keyDecimal, key, r)
	return r
}

// NewFromFloat64 converts a float to a rational number.
// The float is first converted to the shortest decimal that
// represents it, so NewFromFloat64(0.1) is exactly 1/10.
// See also method [Rat.Float64].
//
// NewFromFloat64 returns an error if the float is a special value (NaN or Inf).
func NewFromFloat64(f float64) (Rat, error) {
	return plain.NewFromFloat64(f)
}

// NewFromFloat64 is like the package-level [NewFromFloat64] but interns the result.
func (f *Factory) NewFromFloat64(v float64) (Rat, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rat{}, fmt.Errorf("converting float: special value %v: %w", v, ErrMalformedInput)
	}
	key := strconv.FormatFloat(v, 'g', -1, 64)
	if r, ok := f.lookup(keyFloat, key); ok {
		return r, nil
	}
	r := f.NewFromDecimal(decimal.NewFromFloat(v))
	f.store(keyFloat, key, r)
	return r, nil
}

// Parse converts a string to a rational number.
// The input must be a decimal or a quotient of two decimals:
//
//	3
//	-1.25
//	1e-3
//	1/3
//	0.5/1.5e2
//
// Each decimal accepts the grammar of [decimal.NewFromString]:
// an optional sign, digits, an optional fractional part and an optional
// exponent.
// See also constructors [ParseFraction], [MustParse].
//
// Parse returns an error if the string is malformed or its divisor is zero.
func Parse(s string) (Rat, error) {
	return plain.Parse(s)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rational numbers.
func MustParse(s string) Rat {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return r
}

// Parse is like the package-level [Parse] but interns the result under s.
func (f *Factory) Parse(s string) (Rat, error) {
	if r, ok := f.lookup(keyParse, s); ok {
		return r, nil
	}
	r, err := f.parse(s)
	if err != nil {
		return Rat{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	f.store(keyParse, s, r)
	return r, nil
}

func (f *Factory) parse(s string) (Rat, error) {
	left, right, quo := strings.Cut(s, "/")
	x, err := f.parseDecimal(left)
	if err != nil {
		return Rat{}, err
	}
	if !quo {
		return x, nil
	}
	y, err := f.parseDecimal(right)
	if err != nil {
		return Rat{}, err
	}
	if y.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return x.Quo(y)
}

func (f *Factory) parseDecimal(s string) (Rat, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rat{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return f.NewFromDecimal(d), nil
}

// ParseFraction converts a string in the strict "num/den" form, where num
// and den are base 10 integers, to a rational number.
// The fraction does not have to be in lowest terms, but the result will be.
// ParseFraction is the inverse of [Rat.Fraction].
//
// ParseFraction returns an error if:
//   - the string is not two integers separated by a single slash;
//   - the denominator is not positive.
func ParseFraction(s string) (Rat, error) {
	return plain.ParseFraction(s)
}

// ParseFraction is like the package-level [ParseFraction] but interns the result under s.
func (f *Factory) ParseFraction(s string) (Rat, error) {
	if r, ok := f.lookup(keyFraction, s); ok {
		return r, nil
	}
	r, err := f.parseFraction(s)
	if err != nil {
		return Rat{}, fmt.Errorf("parsing fraction %q: %w", s, err)
	}
	f.store(keyFraction, s, r)
	return r, nil
}

func (f *Factory) parseFraction(s string) (Rat, error) {
	left, right, ok := strings.Cut(s, "/")
	if !ok {
		return Rat{}, fmt.Errorf("%w: missing denominator", ErrMalformedInput)
	}
	num, ok := new(big.Int).SetString(left, 10)
	if !ok {
		return Rat{}, fmt.Errorf("%w: invalid numerator %q", ErrMalformedInput, left)
	}
	den, ok := new(big.Int).SetString(right, 10)
	if !ok {
		return Rat{}, fmt.Errorf("%w: invalid denominator %q", ErrMalformedInput, right)
	}
	return f.create(num, den)
}

// pow10 returns 10^n as a newly allocated integer.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
