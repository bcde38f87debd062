package rational

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// floatDigits is the number of decimal places kept by [Rat.Float64].
const floatDigits = 20

// RoundToRat returns the multiple of unit nearest to r under the given mode.
// The quotient r / unit is rounded to an integer k and the result is k * unit.
// For example, rounding 7/3 to a multiple of 1/4 towards zero gives 9/4.
//
// RoundToRat returns an error if unit is zero.
func (r Rat) RoundToRat(unit Rat, mode RoundingMode) (Rat, error) {
	if unit.IsZero() {
		return Rat{}, fmt.Errorf("rounding %v to a multiple of %v: %w", r, unit, ErrDivisionByZero)
	}
	q, err := r.Quo(unit)
	if err != nil {
		return Rat{}, fmt.Errorf("rounding %v to a multiple of %v: %w", r, unit, err)
	}
	k := divide(q.n(), q.d(), mode)
	return r.factory(unit).mustCreate(k.Mul(k, unit.n()), unit.d()), nil
}

// RoundToDecimal returns r rounded to the given number of decimal places.
// The result has exponent -places, so trailing zeros are kept:
// 5/2 rounded to 2 places is 2.50.
// A negative number of places rounds to the left of the decimal point.
// See also constructor [NewFromDecimal].
func (r Rat) RoundToDecimal(places int, mode RoundingMode) decimal.Decimal {
	num, den := r.n(), r.d()
	if places >= 0 {
		num = new(big.Int).Mul(num, pow10(places))
	} else {
		den = new(big.Int).Mul(den, pow10(-places))
	}
	return decimal.NewFromBigInt(divide(num, den, mode), int32(-places))
}

// RoundToSignificants returns r rounded to exactly n significant digits,
// regardless of the magnitude of r or the size of its denominator.
// Zero is returned as [decimal.Zero].
//
// RoundToSignificants returns an error if n is less than 1.
func (r Rat) RoundToSignificants(n int, mode RoundingMode) (decimal.Decimal, error) {
	if n < 1 {
		return decimal.Decimal{}, fmt.Errorf("rounding %v to %v significant digit(s): %w", r, n, ErrInvalidOperand)
	}
	if r.IsZero() {
		return decimal.Zero, nil
	}
	// Scaling by 10^ext guarantees an integer part longer than n digits.
	ext := n + digits(r.d())
	num := new(big.Int).Mul(r.n(), pow10(ext))
	surplus := digits(new(big.Int).Quo(num, r.d())) - n
	den := new(big.Int).Mul(r.d(), pow10(surplus))
	k := divide(num, den, mode)
	if digits(k) > n {
		// Rounding carried into a new digit, e.g. 9.99 -> 10.0.
		k.Quo(k, bigTen)
		surplus++
	}
	return decimal.NewFromBigInt(k, int32(surplus-ext)), nil
}

// digits returns the number of decimal digits in |x|.
func digits(x *big.Int) int {
	s := x.String()
	if x.Sign() < 0 {
		return len(s) - 1
	}
	return len(s)
}

// Float64 returns an approximation of r as a float64.
// The value is truncated to 20 decimal places before conversion, so
// numbers smaller in magnitude than 1e-20 become 0.
// See also constructor [NewFromFloat64].
//
// If the result cannot be represented as a finite float64, then false is returned.
func (r Rat) Float64() (f float64, ok bool) {
	q := new(big.Int).Mul(r.n(), pow10(floatDigits))
	q.Quo(q, r.d())
	f, err := strconv.ParseFloat(q.String()+"e-"+strconv.Itoa(floatDigits), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description                       |
//	| ------ | ------- | --------------------------------- |
//	| %s, %v | -5/4    | Display form, see [Rat.String]    |
//	| %q     | "-5/4"  | Quoted display form               |
//	| %f     | -1.25   | Decimal rounded half to even      |
//
// The '-' format flag can be used with all verbs.
// The '+' and '0' format flags can be used with the %f verb.
//
// Precision is only supported for the %f verb.
// The default precision is 6.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rat) Format(state fmt.State, verb rune) {
	var s string
	zeros := false
	switch verb {
	case 's', 'S', 'v', 'V':
		s = r.String()
	case 'q', 'Q':
		s = `"` + r.String() + `"`
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec = 6
		}
		d := r.RoundToDecimal(prec, RoundHalfEven)
		s = d.StringFixed(int32(prec))
		if state.Flag('+') && d.Sign() >= 0 {
			s = "+" + s
		}
		zeros = true
	default:
		fmt.Fprintf(state, "%%!%c(rational.Rat=%s)", verb, r.String())
		return
	}
	//nolint:errcheck
	state.Write([]byte(pad(state, s, zeros)))
}

// pad applies the width and the '-' and '0' flags of state to s.
// Zero padding is inserted after a leading sign.
func pad(state fmt.State, s string, zeros bool) string {
	w, ok := state.Width()
	if !ok || w <= len(s) {
		return s
	}
	n := w - len(s)
	switch {
	case state.Flag('-'):
		return s + strings.Repeat(" ", n)
	case zeros && state.Flag('0'):
		sign := ""
		if s[0] == '-' || s[0] == '+' {
			sign, s = s[:1], s[1:]
		}
		return sign + strings.Repeat("0", n) + s
	default:
		return strings.Repeat(" ", n) + s
	}
}
