package schema

// ScalarKind identifies a wire-primitive kind. The names double as the Type
// of a scalar Field and as the Scalar of an InputRef.
type ScalarKind string

const (
	Int      ScalarKind = "Int"
	Long     ScalarKind = "Long"
	BigInt   ScalarKind = "BigInt"
	Float    ScalarKind = "Float"
	Decimal  ScalarKind = "Decimal"
	String   ScalarKind = "String"
	DateTime ScalarKind = "DateTime"
	Bool     ScalarKind = "Boolean"
	Json     ScalarKind = "Json"
	Bytes    ScalarKind = "Bytes"
	UUID     ScalarKind = "UUID"
	ID       ScalarKind = "ID"
	// Any is the open structured kind: it accepts every provided value that
	// is not an enum tag or special marker.
	Any ScalarKind = "Any"
)

// NeedsRemap reports whether response leaves of this kind are replaced with a
// richer in-memory representation by the remap pass.
func (k ScalarKind) NeedsRemap() bool {
	switch k {
	case DateTime, Decimal, BigInt, Bytes, Json:
		return true
	}
	return false
}

// Open reports whether the kind accepts arbitrarily shaped values.
func (k ScalarKind) Open() bool { return k == Json || k == Any }
