package dbops

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Kind is the dynamic type held by a Value.
type Kind uint8

const (
	Null Kind = iota
	Int
	Float
	Text
	Bool
	Bytes
	Time
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Text:
		return "text"
	case Bool:
		return "bool"
	case Bytes:
		return "bytes"
	case Time:
		return "time"
	default:
		return "null"
	}
}

// Value is a single column value of any SQL type.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
	raw  []byte
	t    time.Time
}

// Row maps column names to values.
type Row map[string]Value

// NewValue converts a value produced by a database/sql driver.
func NewValue(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case int64:
		return Value{kind: Int, i: x}
	case int:
		return Value{kind: Int, i: int64(x)}
	case int32:
		return Value{kind: Int, i: int64(x)}
	case int16:
		return Value{kind: Int, i: int64(x)}
	case int8:
		return Value{kind: Int, i: int64(x)}
	case uint32:
		return Value{kind: Int, i: int64(x)}
	case uint16:
		return Value{kind: Int, i: int64(x)}
	case uint8:
		return Value{kind: Int, i: int64(x)}
	case float64:
		return Value{kind: Float, f: x}
	case float32:
		return Value{kind: Float, f: float64(x)}
	case bool:
		return Value{kind: Bool, b: x}
	case string:
		return Value{kind: Text, s: x}
	case []byte:
		return Value{kind: Bytes, raw: append([]byte(nil), x...)}
	case time.Time:
		return Value{kind: Time, t: x}
	case fmt.Stringer:
		return Value{kind: Text, s: x.String()}
	default:
		return Value{kind: Text, s: fmt.Sprint(x)}
	}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == Null }

// Int returns integer values.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == Int
}

// Float returns float and integer values as float64.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case Float:
		return v.f, true
	case Int:
		return float64(v.i), true
	}
	return 0, false
}

// Text returns text values, and byte values as a string.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case Text:
		return v.s, true
	case Bytes:
		return string(v.raw), true
	}
	return "", false
}

// Bool returns booleans. Integers are accepted as 0/non-zero, which is how
// sqlite reports EXISTS.
func (v Value) Bool() (bool, bool) {
	switch v.kind {
	case Bool:
		return v.b, true
	case Int:
		return v.i != 0, true
	}
	return false, false
}

func (v Value) Bytes() ([]byte, bool) {
	return v.raw, v.kind == Bytes
}

func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == Time
}

// Interface returns the held value as a plain Go value (nil for Null).
func (v Value) Interface() any {
	switch v.kind {
	case Int:
		return v.i
	case Float:
		return v.f
	case Text:
		return v.s
	case Bool:
		return v.b
	case Bytes:
		return v.raw
	case Time:
		return v.t
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case Null:
		return "NULL"
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Text:
		return v.s
	case Bool:
		return strconv.FormatBool(v.b)
	case Bytes:
		if utf8.Valid(v.raw) {
			return string(v.raw)
		}
		return base64.StdEncoding.EncodeToString(v.raw)
	case Time:
		return v.t.Format(time.RFC3339Nano)
	}
	return ""
}

// MarshalJSON encodes the natural scalar. Bytes are written as text when
// they are valid UTF-8 and base64 encoded otherwise, as String does.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == Bytes {
		return json.Marshal(v.String())
	}
	return json.Marshal(v.Interface())
}

// MarshalYAML follows MarshalJSON.
func (v Value) MarshalYAML() (any, error) {
	if v.kind == Bytes {
		return v.String(), nil
	}
	return v.Interface(), nil
}
