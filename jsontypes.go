package custody

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// The platform is loose with scalar types: numeric fields arrive as
// JSON numbers or as quoted strings depending on the endpoint, and
// boolean flags arrive as bools, 0/1 numbers, or "0"/"1"/"true"
// strings. The types below absorb all of those forms so response
// structs can declare one field type regardless of endpoint.

// Int64 decodes a JSON number, a numeric string, or null. A string that
// does not parse as an integer decodes to zero rather than failing,
// matching how the platform's other SDKs treat junk values.
type Int64 int64

// UnmarshalJSON implements json.Unmarshaler.
func (v *Int64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			*v = 0
			return nil
		}
		*v = Int64(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = Int64(n)
	return nil
}

// Int64Value returns the value as a plain int64.
func (v Int64) Int64Value() int64 { return int64(v) }

// Int32 is Int64's 32-bit counterpart for fields the platform documents
// as small integers.
type Int32 int32

// UnmarshalJSON implements json.Unmarshaler.
func (v *Int32) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			*v = 0
			return nil
		}
		*v = Int32(n)
		return nil
	}
	var n int32
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = Int32(n)
	return nil
}

// Int32Value returns the value as a plain int32.
func (v Int32) Int32Value() int32 { return int32(v) }

// Bool decodes a JSON bool, a 0/1 number, a "0"/"1" string, or the
// strings "true"/"True"/"TRUE". Any other string decodes to false.
type Bool bool

// UnmarshalJSON implements json.Unmarshaler.
func (v *Bool) UnmarshalJSON(data []byte) error {
	switch {
	case string(data) == "null":
		*v = false
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = s == "1" || s == "true" || s == "True" || s == "TRUE"
		return nil
	case string(data) == "true" || string(data) == "false":
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	default:
		var n int32
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = n != 0
		return nil
	}
}

// BoolValue returns the value as a plain bool.
func (v Bool) BoolValue() bool { return bool(v) }

// Decimal is a shopspring decimal for amount fields. The platform
// leaves optional amounts null or empty; both decode as zero instead of
// failing the whole record.
type Decimal struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if s := string(data); s == "null" || s == `""` {
		d.Decimal = decimal.Decimal{}
		return nil
	}
	return d.Decimal.UnmarshalJSON(data)
}
