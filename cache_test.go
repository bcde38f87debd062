package rational

import (
	"errors"
	"strconv"
	"testing"
)

func TestNewCache(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			high, low int
		}{
			{1, 1},
			{8, 2},
			{DefaultHighWater, DefaultLowWater},
		}
		for _, tt := range tests {
			c, err := NewCache(tt.high, tt.low)
			if err != nil {
				t.Errorf("NewCache(%v, %v) failed: %v", tt.high, tt.low, err)
				continue
			}
			high, low := c.Bounds()
			if high != tt.high || low != tt.low {
				t.Errorf("NewCache(%v, %v).Bounds() = %v, %v", tt.high, tt.low, high, low)
			}
			if c.Len() != 0 {
				t.Errorf("NewCache(%v, %v).Len() = %v, want 0", tt.high, tt.low, c.Len())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			high, low int
		}{
			"zero low":         {8, 0},
			"negative low":     {8, -1},
			"low exceeds high": {2, 3},
			"zero bounds":      {0, 0},
			"negative high":    {-1, 1},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewCache(tt.high, tt.low)
				if !errors.Is(err, ErrInvalidOperand) {
					t.Errorf("NewCache(%v, %v) = %v, want %v", tt.high, tt.low, err, ErrInvalidOperand)
				}
			})
		}
	})
}

func TestMustNewCache(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewCache(1, 2) did not panic")
			}
		}()
		MustNewCache(1, 2)
	})
}

func TestCache_GetPut(t *testing.T) {
	c := MustNewCache(4, 2)
	half := MustNew(1, 2)
	if _, ok := c.Get("1/2"); ok {
		t.Errorf("Get(\"1/2\") on empty cache succeeded")
	}
	c.Put("1/2", half)
	got, ok := c.Get("1/2")
	if !ok || !got.Equal(half) {
		t.Errorf("Get(\"1/2\") = %q, %v, want %q, true", got, ok, half)
	}
	// replacing does not grow the cache
	c.Put("1/2", half)
	if c.Len() != 1 {
		t.Errorf("Len() = %v, want 1", c.Len())
	}
	want := CacheStats{Hits: 1, Misses: 1}
	if s := c.Stats(); s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestCache_Eviction(t *testing.T) {
	c := MustNewCache(4, 2)
	for _, k := range []string{"a", "b", "c", "d"} {
		c.Put(k, One)
	}
	if c.Len() != 4 {
		t.Fatalf("Len() = %v, want 4", c.Len())
	}
	// "a" is the oldest entry but it was used recently
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("Get(\"a\") failed")
	}
	c.Put("e", One)

	for _, k := range []string{"a", "d", "e"} {
		if !c.Contains(k) {
			t.Errorf("Contains(%q) = false, want true", k)
		}
	}
	for _, k := range []string{"b", "c"} {
		if c.Contains(k) {
			t.Errorf("Contains(%q) = true, want false", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %v, want 3", c.Len())
	}
	s := c.Stats()
	if s.Passes != 1 || s.Evictions != 2 {
		t.Errorf("Stats() = %+v, want 1 pass and 2 evictions", s)
	}

	// the recency set is cleared by a pass, so "a" is dropped next time
	c.Put("f", One)
	c.Put("g", One)
	for _, k := range []string{"a", "d"} {
		if c.Contains(k) {
			t.Errorf("Contains(%q) = true after second pass, want false", k)
		}
	}
	for _, k := range []string{"e", "f", "g"} {
		if !c.Contains(k) {
			t.Errorf("Contains(%q) = false after second pass, want true", k)
		}
	}
}

func TestCache_Bounded(t *testing.T) {
	tests := []struct {
		high, low int
	}{
		{1, 1},
		{10, 1},
		{10, 3},
		{10, 10},
	}
	for _, tt := range tests {
		c := MustNewCache(tt.high, tt.low)
		for i := 0; i < 100; i++ {
			key := strconv.Itoa(i)
			c.Put(key, One)
			if i%3 == 0 {
				c.Get(strconv.Itoa(i / 2))
			}
			if c.Len() > tt.high {
				t.Errorf("NewCache(%v, %v): Len() = %v after %v puts, want <= %v", tt.high, tt.low, c.Len(), i+1, tt.high)
				break
			}
			if !c.Contains(key) {
				t.Errorf("NewCache(%v, %v): Contains(%q) = false right after Put", tt.high, tt.low, key)
				break
			}
		}
		s := c.Stats()
		if s.Evictions != s.Passes*uint64(tt.low) {
			t.Errorf("NewCache(%v, %v): Stats() = %+v, want %v evictions per pass", tt.high, tt.low, s, tt.low)
		}
	}
}

func TestCache_Reset(t *testing.T) {
	c := MustNewCache(2, 1)
	c.Put("a", One)
	c.Put("b", One)
	c.Get("a")
	c.Put("c", One)
	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset() = %v, want 0", c.Len())
	}
	if s := c.Stats(); s != (CacheStats{}) {
		t.Errorf("Stats() after Reset() = %+v, want zero", s)
	}
	c.Put("d", One)
	if !c.Contains("d") {
		t.Errorf("Contains(\"d\") after Reset() = false, want true")
	}
}

func TestNewDefaultCache(t *testing.T) {
	c := NewDefaultCache()
	high, low := c.Bounds()
	if high != DefaultHighWater || low != DefaultLowWater {
		t.Errorf("NewDefaultCache().Bounds() = %v, %v, want %v, %v", high, low, DefaultHighWater, DefaultLowWater)
	}
}
