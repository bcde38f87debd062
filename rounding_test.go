package rational

import (
	"errors"
	"fmt"
	"math/big"
	"testing"
)

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			want RoundingMode
		}{
			{"toZero", RoundToZero},
			{"awayFromZero", RoundAwayFromZero},
			{"floor", RoundFloor},
			{"ceil", RoundCeil},
			{"halfUp", RoundHalfUp},
			{"halfDown", RoundHalfDown},
			{"halfEven", RoundHalfEven},
			{"HALFEVEN", RoundHalfEven},
			{"TOZERO", RoundToZero},
			{"Ceil", RoundCeil},
		}
		for _, tt := range tests {
			got, err := ParseRoundingMode(tt.name)
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "half", "up", "sideways", "to_zero", " floor"}
		for _, name := range tests {
			_, err := ParseRoundingMode(name)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", name, err, ErrMalformedInput)
			}
		}
	})
}

func TestMustParseRoundingMode(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseRoundingMode(\"sideways\") did not panic")
			}
		}()
		MustParseRoundingMode("sideways")
	})
}

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		m    RoundingMode
		want string
	}{
		{RoundToZero, "toZero"},
		{RoundHalfEven, "halfEven"},
		{RoundingMode(42), "RoundingMode(42)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
		if got := tt.m.IsValid(); got != (tt.m <= RoundHalfEven) {
			t.Errorf("RoundingMode(%d).IsValid() = %v, want %v", uint8(tt.m), got, tt.m <= RoundHalfEven)
		}
	}
}

func TestRoundingMode_Text(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for m := RoundToZero; m <= RoundHalfEven; m++ {
			text, err := m.MarshalText()
			if err != nil {
				t.Errorf("%v.MarshalText() failed: %v", m, err)
				continue
			}
			var got RoundingMode
			if err := got.UnmarshalText(text); err != nil {
				t.Errorf("UnmarshalText(%q) failed: %v", text, err)
				continue
			}
			if got != m {
				t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, m)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := RoundingMode(42).MarshalText()
		if !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("RoundingMode(42).MarshalText() = %v, want %v", err, ErrInvalidOperand)
		}
		var m RoundingMode
		err = m.UnmarshalText([]byte("nearest"))
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("UnmarshalText(\"nearest\") = %v, want %v", err, ErrMalformedInput)
		}
	})
}

func TestRoundingMode_Format(t *testing.T) {
	tests := []struct {
		m            RoundingMode
		format, want string
	}{
		{RoundHalfUp, "%v", "halfUp"},
		{RoundHalfUp, "%s", "halfUp"},
		{RoundHalfUp, "%q", "\"halfUp\""},
		{RoundHalfUp, "%8v", "  halfUp"},
		{RoundHalfUp, "%-8v|", "halfUp  |"},
		{RoundHalfUp, "%d", "%!d(rational.RoundingMode=halfUp)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.m)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.m, got, tt.want)
		}
	}
}

func TestDivide(t *testing.T) {
	modes := []RoundingMode{
		RoundToZero, RoundAwayFromZero, RoundFloor, RoundCeil,
		RoundHalfUp, RoundHalfDown, RoundHalfEven,
	}
	tests := []struct {
		a, b int64
		want [7]int64 // indexed like modes
	}{
		// exact
		{6, 3, [7]int64{2, 2, 2, 2, 2, 2, 2}},
		{-6, 3, [7]int64{-2, -2, -2, -2, -2, -2, -2}},
		{0, 7, [7]int64{0, 0, 0, 0, 0, 0, 0}},
		// below half
		{7, 3, [7]int64{2, 3, 2, 3, 2, 2, 2}},
		{-7, 3, [7]int64{-2, -3, -3, -2, -2, -2, -2}},
		// above half
		{8, 3, [7]int64{2, 3, 2, 3, 3, 3, 3}},
		{-8, 3, [7]int64{-2, -3, -3, -2, -3, -3, -3}},
		// exactly half, even quotient
		{5, 2, [7]int64{2, 3, 2, 3, 3, 2, 2}},
		{-5, 2, [7]int64{-2, -3, -3, -2, -3, -2, -2}},
		// exactly half, odd quotient
		{7, 2, [7]int64{3, 4, 3, 4, 4, 3, 4}},
		{-7, 2, [7]int64{-3, -4, -4, -3, -4, -3, -4}},
		// negative divisor
		{7, -2, [7]int64{-3, -4, -4, -3, -4, -3, -4}},
		{-7, -2, [7]int64{3, 4, 3, 4, 4, 3, 4}},
		// quotient below one
		{1, 3, [7]int64{0, 1, 0, 1, 0, 0, 0}},
		{-1, 3, [7]int64{0, -1, -1, 0, 0, 0, 0}},
		{1, 2, [7]int64{0, 1, 0, 1, 1, 0, 0}},
		{-1, 2, [7]int64{0, -1, -1, 0, -1, 0, 0}},
		{3, 2, [7]int64{1, 2, 1, 2, 2, 1, 2}},
	}
	for _, tt := range tests {
		for i, mode := range modes {
			a, b := big.NewInt(tt.a), big.NewInt(tt.b)
			got := divide(a, b, mode)
			if got.Int64() != tt.want[i] {
				t.Errorf("divide(%v, %v, %v) = %v, want %v", tt.a, tt.b, mode, got, tt.want[i])
			}
			if a.Int64() != tt.a || b.Int64() != tt.b {
				t.Errorf("divide(%v, %v, %v) modified its arguments", tt.a, tt.b, mode)
			}
		}
	}

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("divide(1, 2, RoundingMode(42)) did not panic")
			}
		}()
		divide(big.NewInt(1), big.NewInt(2), RoundingMode(42))
	})
}
