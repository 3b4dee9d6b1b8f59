package value

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	schema "github.com/hanpama/querydoc/schema"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, Null},
		{"missing sentinel", Missing(), Absent},
		{"bool", true, Bool},
		{"int", 5, Int},
		{"int64", int64(5), Int},
		{"float", 1.5, Float},
		{"string", "x", String},
		{"list", []any{1}, List},
		{"map", map[string]any{}, Map},
		{"time", time.Now(), Rich},
		{"decimal", decimal.New(1, 0), Rich},
		{"uuid", uuid.New(), Rich},
		{"big int", big.NewInt(1), Rich},
		{"bytes", []byte("x"), Rich},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.in); got != tc.want {
				t.Errorf("KindOf(%#v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFalsy(t *testing.T) {
	for _, v := range []any{nil, false} {
		if !Falsy(v) {
			t.Errorf("Falsy(%#v) = false, want true", v)
		}
	}
	for _, v := range []any{true, 0, "", map[string]any{}, []any{}} {
		if Falsy(v) {
			t.Errorf("Falsy(%#v) = true, want false", v)
		}
	}
}

func TestScalarKindOf(t *testing.T) {
	cases := []struct {
		in   any
		want schema.ScalarKind
	}{
		{true, schema.Bool},
		{5, schema.Int},
		{int32(5), schema.Int},
		{int64(5), schema.Long},
		{uint64(5), schema.Long},
		{big.NewInt(5), schema.BigInt},
		{1.5, schema.Float},
		// JSON decoding yields float64 for every number; whole values infer
		// as Int.
		{float64(10), schema.Int},
		{float64(-3), schema.Int},
		{float64(1e6), schema.Int},
		{float32(2), schema.Int},
		{float32(2.5), schema.Float},
		{math.Inf(1), schema.Float},
		{math.NaN(), schema.Float},
		{decimal.New(15, -1), schema.Decimal},
		{"x", schema.String},
		{time.Now(), schema.DateTime},
		{uuid.New(), schema.UUID},
		{[]byte("x"), schema.Bytes},
		{map[string]any{}, schema.ScalarKind("")},
		{[]any{}, schema.ScalarKind("")},
	}
	for _, tc := range cases {
		if got := ScalarKindOf(tc.in); got != tc.want {
			t.Errorf("ScalarKindOf(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDepth(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{5, 0},
		{"x", 0},
		{[]any{1, 2}, 1},
		{map[string]any{"a": 1}, 1},
		{map[string]any{"a": map[string]any{"b": 1}}, 2},
		{[]any{map[string]any{"a": []any{1}}}, 3},
	}
	for _, tc := range cases {
		if got := Depth(tc.in); got != tc.want {
			t.Errorf("Depth(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNumericConversions(t *testing.T) {
	if n, ok := AsInt64(uint32(7)); !ok || n != 7 {
		t.Errorf("AsInt64(uint32) = %d, %v", n, ok)
	}
	if _, ok := AsInt64("7"); ok {
		t.Error("AsInt64(string) must fail")
	}
	if f, ok := AsFloat64(3); !ok || f != 3.0 {
		t.Errorf("AsFloat64(int) = %v, %v", f, ok)
	}
	if f, ok := AsFloat64(float32(1.5)); !ok || f != 1.5 {
		t.Errorf("AsFloat64(float32) = %v, %v", f, ok)
	}
}
