package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// RoundingMode determines how an inexact quotient is mapped to an integer
// whenever a rational number has to be rounded.
// The zero value is [RoundToZero].
type RoundingMode uint8

const (
	RoundToZero       RoundingMode = iota // truncate towards 0
	RoundAwayFromZero                     // away from 0 if inexact
	RoundFloor                            // towards -infinity
	RoundCeil                             // towards +infinity
	RoundHalfUp                           // to nearest; away from 0 if same distance
	RoundHalfDown                         // to nearest; towards 0 if same distance
	RoundHalfEven                         // to nearest; even quotient if same distance
)

var nameLookup = [...]string{
	RoundToZero:       "toZero",
	RoundAwayFromZero: "awayFromZero",
	RoundFloor:        "floor",
	RoundCeil:         "ceil",
	RoundHalfUp:       "halfUp",
	RoundHalfDown:     "halfDown",
	RoundHalfEven:     "halfEven",
}

var modeLookup = func() map[string]RoundingMode {
	m := make(map[string]RoundingMode, len(nameLookup))
	for i, name := range nameLookup {
		m[strings.ToLower(name)] = RoundingMode(i)
	}
	return m
}()

// ParseRoundingMode converts a name to a rounding mode.
// Names are matched case-insensitively:
//
//	toZero
//	awayFromZero
//	floor
//	ceil
//	halfUp
//	halfDown
//	halfEven
//
// ParseRoundingMode returns an error if the name is not known.
func ParseRoundingMode(name string) (RoundingMode, error) {
	m, ok := modeLookup[strings.ToLower(name)]
	if !ok {
		return RoundToZero, fmt.Errorf("rounding mode %q: %w", name, ErrMalformedInput)
	}
	return m, nil
}

// MustParseRoundingMode is like [ParseRoundingMode] but panics if the name is not known.
func MustParseRoundingMode(name string) RoundingMode {
	m, err := ParseRoundingMode(name)
	if err != nil {
		panic(fmt.Sprintf("ParseRoundingMode(%q) failed: %v", name, err))
	}
	return m
}

// IsValid returns true if m is one of the predefined rounding modes.
func (m RoundingMode) IsValid() bool {
	return int(m) < len(nameLookup)
}

// String implements the [fmt.Stringer] interface and returns the name of the mode.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
	return nameLookup[m]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", RoundToZero, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("marshaling %v: %w", m, ErrInvalidOperand)
	}
	return []byte(m.String()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description |
//	| ------ | ---------- | ----------- |
//	| %s, %v | halfEven   | Name        |
//	| %q     | "halfEven" | Quoted name |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m RoundingMode) Format(state fmt.State, verb rune) {
	name := m.String()
	switch verb {
	case 'q', 'Q':
		name = `"` + name + `"`
	case 's', 'S', 'v', 'V':
		// as is
	default:
		fmt.Fprintf(state, "%%!%c(rational.RoundingMode=%s)", verb, name)
		return
	}
	//nolint:errcheck
	state.Write([]byte(pad(state, name, false)))
}

// divide returns the integer quotient a / b rounded according to mode.
// The divisor must not be zero; operands of any sign are supported.
func divide(a, b *big.Int, mode RoundingMode) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	// Direction of the exact quotient, used to step away from zero.
	step := big.NewInt(int64(a.Sign() * b.Sign()))
	switch mode {
	case RoundToZero:
		return q
	case RoundAwayFromZero:
		return q.Add(q, step)
	case RoundFloor:
		if step.Sign() < 0 {
			q.Add(q, step)
		}
		return q
	case RoundCeil:
		if step.Sign() > 0 {
			q.Add(q, step)
		}
		return q
	case RoundHalfUp, RoundHalfDown, RoundHalfEven:
		// Compare 2|r| with |b| to find which integer is nearer.
		r2 := r.Abs(r)
		r2.Lsh(r2, 1)
		switch c := r2.Cmp(new(big.Int).Abs(b)); {
		case c > 0:
			q.Add(q, step)
		case c == 0 && mode == RoundHalfUp:
			q.Add(q, step)
		case c == 0 && mode == RoundHalfEven && q.Bit(0) == 1:
			q.Add(q, step)
		}
		return q
	}
	panic(fmt.Sprintf("divide(%v, %v, %v) failed: unknown rounding mode", a, b, mode))
}
