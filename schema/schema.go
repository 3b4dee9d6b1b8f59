package schema

// Model is the complete, already-resolved schema descriptor the compiler
// validates selections against. It is read-only input: the compiler never
// mutates it and may share one Model across concurrent compilations.
type Model struct {
	Objects map[string]*Object `json:"objects"`
	Inputs  map[string]*Input  `json:"inputs"`
	Enums   map[string]*Enum   `json:"enums,omitempty"`
}

// Object returns the output object type with the given name (nil if absent).
func (m *Model) Object(name string) *Object { return m.Objects[name] }

// Input returns the input object type with the given name (nil if absent).
func (m *Model) Input(name string) *Input { return m.Inputs[name] }

// Enum returns the enum type with the given name (nil if absent).
func (m *Model) Enum(name string) *Enum { return m.Enums[name] }

// Object is an output object type: an ordered field list plus the virtual
// fields that expand into real ones before compilation.
type Object struct {
	Name string `json:"name"`
	// Fields is ordered; selection compilation and default selections
	// preserve this order where the caller did not impose one.
	Fields []*Field `json:"fields"`
	// Composite marks a knowable structured type: relations targeting a
	// composite object are part of the default selection.
	Composite bool `json:"composite,omitempty"`
	// Computed lists virtual fields. A selected computed field is replaced
	// by its backing real fields and the virtual key itself is dropped.
	Computed []*Computed `json:"computed,omitempty"`
}

// FieldByName returns the field with the given name (nil if absent).
func (o *Object) FieldByName(name string) *Field {
	for _, f := range o.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FieldNames returns the ordered names of all fields.
func (o *Object) FieldNames() []string {
	names := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		names[i] = f.Name
	}
	return names
}

// ComputedByName returns the computed field with the given name (nil if absent).
func (o *Object) ComputedByName(name string) *Computed {
	for _, c := range o.Computed {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Computed is a virtual field backed by one or more real fields.
type Computed struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// FieldKind classifies a field's output.
type FieldKind string

const (
	KindScalar FieldKind = "scalar"
	KindEnum   FieldKind = "enum"
	KindObject FieldKind = "object"
)

// Field is a selectable output field.
type Field struct {
	Name string    `json:"name"`
	Kind FieldKind `json:"kind"`
	// Type names the target: a ScalarKind for KindScalar, an enum name for
	// KindEnum, an object name for KindObject.
	Type   string      `json:"type"`
	IsList bool        `json:"isList,omitempty"`
	Args   []*Argument `json:"args,omitempty"`
	// GroupBy names the argument whose list-of-names value synthesizes the
	// child selection for aggregation-style fields. Empty for normal fields.
	GroupBy string `json:"groupBy,omitempty"`
}

// ArgByName returns the declared argument with the given name (nil if absent).
func (f *Field) ArgByName(name string) *Argument {
	for _, a := range f.Args {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Scalar returns the field's scalar kind, or "" for non-scalar fields.
func (f *Field) Scalar() ScalarKind {
	if f.Kind != KindScalar {
		return ""
	}
	return ScalarKind(f.Type)
}

// Argument is a declared argument or input-object field. The two share one
// shape: both carry an ordered union of candidate input types.
type Argument struct {
	Name string `json:"name"`
	// Types is the ordered union of candidate input types. Union resolution
	// tries them in this order.
	Types      []*InputRef `json:"types"`
	IsRequired bool        `json:"isRequired,omitempty"`
	IsNullable bool        `json:"isNullable,omitempty"`
	// NoAutoList disables the implicit wrapping of a bare value into a
	// singleton list for list-typed candidates.
	NoAutoList bool `json:"noAutoList,omitempty"`
}

// InputKind classifies a candidate input type.
type InputKind string

const (
	InputScalar InputKind = "scalar"
	InputEnum   InputKind = "enum"
	InputObject InputKind = "object"
)

// InputRef is one candidate input type of an argument.
type InputRef struct {
	IsList bool       `json:"isList,omitempty"`
	Kind   InputKind  `json:"kind"`
	Scalar ScalarKind `json:"scalar,omitempty"`
	Enum   string     `json:"enum,omitempty"`
	Object string     `json:"object,omitempty"`
	// Unchecked marks the escape-hatch variant of a type pair. Union scoring
	// penalizes its missing-field and unknown-name errors so the checked
	// variant wins close calls.
	Unchecked bool `json:"unchecked,omitempty"`
}

// Name returns the candidate's type name without list wrapping.
func (r *InputRef) Name() string {
	switch r.Kind {
	case InputScalar:
		return string(r.Scalar)
	case InputEnum:
		return r.Enum
	default:
		return r.Object
	}
}

// String renders a human-readable type description, e.g. "List<UserWhereInput>".
func (r *InputRef) String() string {
	if r.IsList {
		return "List<" + r.Name() + ">"
	}
	return r.Name()
}

// Elem returns the candidate with list wrapping stripped.
func (r *InputRef) Elem() *InputRef {
	if !r.IsList {
		return r
	}
	e := *r
	e.IsList = false
	return &e
}

// Input is an input object type.
type Input struct {
	Name        string      `json:"name"`
	Fields      []*Argument `json:"fields"`
	Constraints Constraints `json:"constraints"`
}

// FieldByName returns the input field with the given name (nil if absent).
func (in *Input) FieldByName(name string) *Argument {
	for _, f := range in.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FieldNames returns the ordered names of all input fields.
func (in *Input) FieldNames() []string {
	names := make([]string, len(in.Fields))
	for i, f := range in.Fields {
		names[i] = f.Name
	}
	return names
}

// Constraints are an input object's cardinality rules. Min and Max bound the
// number of keys present in a provided value; zero leaves a bound
// unconstrained. RequireOneOf names a field subset of which at least one must
// be present. The zero value imposes no rules.
type Constraints struct {
	MinFields    int      `json:"minFields,omitempty"`
	MaxFields    int      `json:"maxFields,omitempty"`
	RequireOneOf []string `json:"requireOneOf,omitempty"`
}

// Enum is a closed set of named values.
type Enum struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Has reports whether value is a member of the enum.
func (e *Enum) Has(value string) bool {
	for _, v := range e.Values {
		if v == value {
			return true
		}
	}
	return false
}
