package rational

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v4"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The input must be a quoted fraction as produced by [Rat.MarshalJSON];
// unquoted JSON numbers are accepted too.
// See also constructors [ParseFraction], [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (r *Rat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var err error
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		*r, err = ParseFraction(string(data[1 : len(data)-1]))
	} else {
		*r, err = Parse(string(data))
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rat{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the quoted "num/den" form.
// See also method [Rat.Fraction].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (r Rat) MarshalJSON() ([]byte, error) {
	s := r.Fraction()
	data := make([]byte, 0, len(s)+2)
	data = append(data, '"')
	data = append(data, s...)
	data = append(data, '"')
	return data, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rat) UnmarshalText(text []byte) error {
	var err error
	*r, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rat{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the "num/den" form.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (r Rat) AppendText(text []byte) ([]byte, error) {
	return append(text, r.Fraction()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the "num/den" form.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rat) MarshalText() ([]byte, error) {
	return r.AppendText(nil)
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also constructor [ParseFraction].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (r *Rat) UnmarshalBinary(data []byte) error {
	var err error
	*r, err = ParseFraction(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rat{}, err)
	}
	return nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary always returns the "num/den" form.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (r Rat) MarshalBinary() ([]byte, error) {
	return r.AppendText(nil)
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// Strings must hold the "num/den" form and 32-bit and 64-bit integers are
// converted exactly. Doubles go through their shortest decimal form, see
// [NewFromFloat64], so 0.1 becomes 1/10.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (r *Rat) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 1:
		if len(data) < 8 {
			err = fmt.Errorf("%w: invalid data length %v", ErrMalformedInput, len(data))
			break
		}
		*r, err = NewFromFloat64(math.Float64frombits(binary.LittleEndian.Uint64(data)))
	case 2:
		var s string
		s, err = parseBSONString(data)
		if err == nil {
			*r, err = ParseFraction(s)
		}
	case 10:
		// null, do nothing
	case 16:
		if len(data) < 4 {
			err = fmt.Errorf("%w: invalid data length %v", ErrMalformedInput, len(data))
			break
		}
		*r, err = New(int64(int32(binary.LittleEndian.Uint32(data))), 1) //nolint:gosec
	case 18:
		if len(data) < 8 {
			err = fmt.Errorf("%w: invalid data length %v", ErrMalformedInput, len(data))
			break
		}
		*r, err = New(int64(binary.LittleEndian.Uint64(data)), 1) //nolint:gosec
	default:
		err = fmt.Errorf("%w: BSON type %d is not supported", ErrMalformedInput, typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Rat{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a BSON string with the "num/den" form.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (r Rat) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, bsonString(r.Fraction()), nil
}

// parseBSONString extracts the payload of a BSON string.
// The byte order of the length prefix must be little-endian.
func parseBSONString(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: invalid data length %v", ErrMalformedInput, len(data))
	}
	l := int(int32(binary.LittleEndian.Uint32(data))) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return "", fmt.Errorf("%w: invalid string length %v", ErrMalformedInput, l)
	}
	if data[l+4-1] != 0 {
		return "", fmt.Errorf("%w: invalid null terminator %v", ErrMalformedInput, data[l+4-1])
	}
	return string(data[4 : l+4-1]), nil
}

// bsonString encodes s as a BSON string with a little-endian length prefix.
func bsonString(s string) []byte {
	l := len(s) + 1
	data := make([]byte, 4+l)
	binary.LittleEndian.PutUint32(data, uint32(l)) //nolint:gosec
	copy(data[4:], s)
	return data
}

// Scan implements the [sql.Scanner] interface.
// Strings are parsed with [Parse], so both "1/3" and "0.25" are accepted.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (r *Rat) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*r, err = Parse(value)
	case []byte:
		*r, err = Parse(string(value))
	case int64:
		*r, err = New(value, 1)
	case float64:
		*r, err = NewFromFloat64(value)
	case nil:
		err = fmt.Errorf("%w: %T does not support null values, use *%T", ErrMalformedInput, Rat{}, Rat{})
	default:
		err = fmt.Errorf("%w: type %T is not supported", ErrMalformedInput, value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Rat{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns the "num/den" form.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r Rat) Value() (driver.Value, error) {
	return r.Fraction(), nil
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// The value is encoded as a msgpack string with the "num/den" form.
//
// [msgpack.CustomEncoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v4#CustomEncoder
func (r Rat) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(r.Fraction())
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
// See also constructor [ParseFraction].
//
// [msgpack.CustomDecoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v4#CustomDecoder
func (r *Rat) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("decoding %T: %w: %w", Rat{}, ErrMalformedInput, err)
	}
	*r, err = ParseFraction(s)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", Rat{}, err)
	}
	return nil
}
