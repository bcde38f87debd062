package rational

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// NewFromFixed returns a rational number exactly equal to the fixed-point
// decimal d. See also method [Rat.Fixed].
func NewFromFixed(d decimal.Decimal) Rat {
	return plain.NewFromFixed(d)
}

// NewFromFixed is like the package-level [NewFromFixed] but interns the
// result under the string form of d.
func (f *Factory) NewFromFixed(d decimal.Decimal) Rat {
	key := d.String()
	if r, ok := f.lookup(keyFixed, key); ok {
		return r
	}
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	r := f.mustCreate(num, pow10(d.Scale()))
	f.store(keyFixed, key, r)
	return r
}

// Fixed returns r rounded to the given scale as a fixed-point decimal.
// See also constructor [NewFromFixed], method [Rat.RoundToDecimal].
//
// Fixed returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the rounded coefficient does not fit into an int64 or
//     has more than [decimal.MaxPrec] digits.
func (r Rat) Fixed(scale int, mode RoundingMode) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v to scale %v: %w", r, scale, ErrInvalidOperand)
	}
	k := divide(new(big.Int).Mul(r.n(), pow10(scale)), r.d(), mode)
	if !k.IsInt64() {
		return decimal.Decimal{}, fmt.Errorf("converting %v to scale %v: coefficient %v overflows int64: %w", r, scale, k, ErrInvalidOperand)
	}
	d, err := decimal.New(k.Int64(), scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to scale %v: %w: %w", r, scale, ErrInvalidOperand, err)
	}
	return d, nil
}
