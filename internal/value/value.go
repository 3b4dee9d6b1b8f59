// Package value classifies untyped selection values into a closed tag set so
// the compiler branches on tags and schema lookups rather than on ad hoc type
// assertions scattered through the code.
package value

import (
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	schema "github.com/hanpama/querydoc/schema"
)

// Kind is the structural tag of a selection value.
type Kind int

const (
	Absent Kind = iota // key not present at all
	Null
	Bool
	Int
	Float
	String
	List
	Map
	Rich // a typed scalar carrier: time.Time, decimal.Decimal, uuid.UUID, *big.Int, []byte
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "undefined"
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case List:
		return "list"
	case Map:
		return "object"
	case Rich:
		return "scalar"
	}
	return "unknown"
}

// KindOf classifies v. Callers represent "key absent" themselves; KindOf never
// returns Absent for a value it was actually given except for the sentinel
// returned by Missing().
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return Null
	case missing:
		return Absent
	case bool:
		return Bool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Int
	case float32, float64:
		return Float
	case string:
		return String
	case []any:
		return List
	case map[string]any:
		return Map
	case time.Time, decimal.Decimal, uuid.UUID, *big.Int, []byte:
		return Rich
	}
	return Rich
}

type missing struct{}

// Missing returns the sentinel standing in for an entirely absent value.
func Missing() any { return missing{} }

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// Falsy reports whether v is an explicit "don't select" marker.
func Falsy(v any) bool {
	if v == nil {
		return true
	}
	b, ok := v.(bool)
	return ok && !b
}

// ScalarKindOf infers the wire-primitive kind of a provided scalar value.
// It returns "" for lists, maps and absent values.
//
// JSON decoding represents every number as float64, so a float with no
// fractional part infers as Int the way Number.isInteger would classify it;
// the subtype rules then widen it to Long, BigInt, Float or Decimal as the
// declaration requires.
func ScalarKindOf(v any) schema.ScalarKind {
	switch n := v.(type) {
	case bool:
		return schema.Bool
	case int, int8, int16, int32, uint, uint8, uint16, uint32:
		return schema.Int
	case int64, uint64:
		return schema.Long
	case *big.Int:
		return schema.BigInt
	case float32:
		if f := float64(n); f == math.Trunc(f) && !math.IsInf(f, 0) {
			return schema.Int
		}
		return schema.Float
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return schema.Int
		}
		return schema.Float
	case decimal.Decimal:
		return schema.Decimal
	case string:
		return schema.String
	case time.Time:
		return schema.DateTime
	case uuid.UUID:
		return schema.UUID
	case []byte:
		return schema.Bytes
	}
	return ""
}

// AsInt64 converts any supported integer representation to int64.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

// AsFloat64 converts any supported numeric representation to float64.
func AsFloat64(v any) (float64, bool) {
	if n, ok := AsInt64(v); ok {
		return float64(n), true
	}
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Depth returns the structural nesting depth of v: scalars are 0, a list or
// map adds one level per nesting. Union scoring uses it to weight how deep a
// type mismatch sits.
func Depth(v any) int {
	switch t := v.(type) {
	case []any:
		max := 0
		for _, e := range t {
			if d := Depth(e); d > max {
				max = d
			}
		}
		return max + 1
	case map[string]any:
		max := 0
		for _, e := range t {
			if d := Depth(e); d > max {
				max = d
			}
		}
		return max + 1
	}
	return 0
}
