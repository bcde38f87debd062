/*
Package rational implements exact rational numbers with arbitrary-precision
numerators and denominators.
It relies on [math/big] for integer arithmetic and on the [decimal] package
for decimal input and rounded output.

# Features

  - Immutable rational numbers, ensuring safe usage across multiple goroutines
  - Canonical representation: lowest terms with a positive denominator
  - Exact arithmetic and comparison operations
  - Rounding to decimal places, significant digits and multiples of a unit
  - Seven rounding modes, from truncation to banker's rounding
  - Optional interning of values in a bounded cache

# Representation

A Rat holds a numerator and a positive denominator that share no common
factor. Zero is always 0/1, and the zero value of Rat is the number zero.
There is exactly one representation for each number, so two rational numbers
are equal if and only if their numerators and denominators are equal.

# Construction

Rational numbers can be built from integers ([New]), big integers
([NewFromBigInt], [NewFromBigRat]), decimals ([NewFromDecimal],
[NewFromFixed]), floats ([NewFromFloat64]) and strings ([Parse],
[ParseFraction]).
Parse accepts both decimals such as "1.25" and quotients such as "1/3";
ParseFraction accepts only the canonical "num/den" form returned by
[Rat.Fraction].

# Interning

A [Factory] with a [Cache] returns a shared instance for every value it has
seen recently, and arithmetic on these values is interned in the same cache.
The cache is bounded: once it holds the high-water number of entries, an
eviction pass drops a fixed number of the least recently used ones.
The package-level constructors do not intern.
Interning never changes a result.

# Rounding

A rational number can be converted to a decimal rounded to a number of
decimal places ([Rat.RoundToDecimal]) or significant digits
([Rat.RoundToSignificants]), or rounded to a multiple of another rational
number ([Rat.RoundToRat]).
Every rounding operation performs a single division of the exact value,
so results are never rounded twice.
See [RoundingMode] for the available modes.

# Errors

Errors are returned when a denominator is not positive, a divisor is zero,
an input cannot be parsed, or an aggregate has no input.
All errors wrap one of [ErrInvalidOperand], [ErrDivisionByZero],
[ErrMalformedInput] and [ErrEmptyInput], so they can be classified with
[errors.Is].
The Must functions panic instead of returning an error.
*/
package rational
