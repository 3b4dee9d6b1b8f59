package document

import (
	schema "github.com/hanpama/querydoc/schema"
)

// Field is one selected output field of the compiled tree.
type Field struct {
	Name string
	// Args is nil for fields compiled without arguments.
	Args *ArgList
	// Children is non-nil only for nested-object outputs.
	Children []*Field
	// Err marks the field itself invalid. A field with an error never has
	// meaningful children; container-level errors (empty select and the
	// like) instead hang off a synthetic child.
	Err *FieldError
	// Schema is the originating schema field. It is nil for synthetic
	// error-carrier fields.
	Schema *schema.Field
	// Synthetic marks a descent-marker child ("select"/"include") that
	// exists only to carry a container-level error at the right path.
	Synthetic bool

	hasInvalidChild bool
	hasInvalidArg   bool
}

// NewField builds a field and fixes its validity flags from the already-built
// children and args.
func NewField(name string, args *ArgList, children []*Field, err *FieldError, sf *schema.Field) *Field {
	f := &Field{Name: name, Args: args, Children: children, Err: err, Schema: sf}
	for _, c := range children {
		if c.Err != nil || c.hasInvalidChild || c.hasInvalidArg {
			f.hasInvalidChild = true
			break
		}
	}
	if args != nil && args.HasInvalidArg() {
		f.hasInvalidArg = true
	}
	return f
}

// NewSyntheticField builds a descent-marker child carrying a container error.
func NewSyntheticField(name string, children []*Field, err *FieldError) *Field {
	f := NewField(name, nil, children, err, nil)
	f.Synthetic = true
	return f
}

// HasInvalidChild reports whether any descendant field carries an error.
func (f *Field) HasInvalidChild() bool { return f.hasInvalidChild }

// HasInvalidArg reports whether any argument under this field carries an error.
func (f *Field) HasInvalidArg() bool { return f.hasInvalidArg }

// ChildByName returns the child field with the given name (nil if absent).
func (f *Field) ChildByName(name string) *Field {
	for _, c := range f.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ArgList is an ordered list of compiled arguments.
type ArgList struct {
	Args []*Arg

	hasInvalidArg bool
}

// NewArgList builds an argument list and fixes its validity flag.
func NewArgList(args []*Arg) *ArgList {
	l := &ArgList{Args: args}
	for _, a := range args {
		if a.HasError() {
			l.hasInvalidArg = true
			break
		}
	}
	return l
}

// HasInvalidArg reports whether any argument in the list carries an error.
func (l *ArgList) HasInvalidArg() bool { return l != nil && l.hasInvalidArg }

// ByKey returns the argument with the given key (nil if absent).
func (l *ArgList) ByKey(key string) *Arg {
	if l == nil {
		return nil
	}
	for _, a := range l.Args {
		if a.Key == key {
			return a
		}
	}
	return nil
}

// Arg is one compiled argument or input-object field. Value holds a scalar Go
// value, a nested *ArgList for object-shaped input, or []*Arg for list
// elements (element Args have an empty Key; their position is their index).
type Arg struct {
	Key   string
	Value any
	// Type is the declared candidate the value resolved against. It is nil
	// when resolution failed before a candidate was chosen.
	Type *schema.InputRef
	Err  *ArgError

	hasError bool
}

// NewArg builds an argument and fixes its error flag from the already-built
// nested value. Informational entries never count as errors.
func NewArg(key string, val any, typ *schema.InputRef, err *ArgError) *Arg {
	a := &Arg{Key: key, Value: val, Type: typ, Err: err}
	if err != nil && !err.Informational {
		a.hasError = true
		return a
	}
	switch v := val.(type) {
	case *ArgList:
		a.hasError = v.HasInvalidArg()
	case []*Arg:
		for _, el := range v {
			if el.HasError() {
				a.hasError = true
				break
			}
		}
	}
	return a
}

// HasError reports whether this argument or anything nested under it carries
// a non-informational error.
func (a *Arg) HasError() bool { return a.hasError }
