package compile

import (
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hanpama/querydoc/document"
	"github.com/hanpama/querydoc/internal/value"
	schema "github.com/hanpama/querydoc/schema"
)

// decimalPattern accepts an optional sign, digits with an optional fraction,
// and an optional exponent. A string must match fully to pass as a Decimal.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// compileArgs compiles a field's arguments from its selection value, skipping
// the reserved descent keys. Declared arguments come first in declaration
// order; unknown keys follow sorted. Absent optional arguments are kept as
// informational entries so diagnostics can list what was available.
func (c *compiler) compileArgs(sf *schema.Field, sel map[string]any, modelName string) *document.ArgList {
	if len(sf.Args) == 0 && len(sel) == 0 {
		return nil
	}
	var args []*document.Arg
	for _, decl := range sf.Args {
		v, ok := sel[decl.Name]
		if !ok {
			args = append(args, document.NewArg(
				decl.Name, nil, firstRef(decl),
				errMissingArg(decl.Name, sf.Name, decl.Types, !decl.IsRequired),
			))
			continue
		}
		args = append(args, c.inferArg(decl.Name, v, decl, modelName, 0))
	}

	declared := make(map[string]bool, len(sf.Args))
	for _, decl := range sf.Args {
		declared[decl.Name] = true
	}
	var unknown []string
	for k := range sel {
		if k == keySelect || k == keyInclude || declared[k] {
			continue
		}
		unknown = append(unknown, k)
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		args = append(args, document.NewArg(
			k, sel[k], nil,
			errUnknownArg(k, sf.Name, argNames(sf.Args), c.looksLikeField(k, sf)),
		))
	}
	if len(args) == 0 {
		return nil
	}
	return document.NewArgList(args)
}

// looksLikeField reports whether an unknown argument key names an output
// field of the target type, which usually means the caller forgot to wrap it
// in a select or include block.
func (c *compiler) looksLikeField(key string, sf *schema.Field) bool {
	if sf.Kind != schema.KindObject {
		return false
	}
	target := c.model.Object(sf.Type)
	return target != nil && target.FieldByName(key) != nil
}

// inferArg resolves a raw value against a declared argument, picking the best
// interpretation among the declared union of candidate input types.
//
// Candidates are tried in declaration order; the first one compiling without
// a single nested error wins. When all fail, every failing attempt is scored
// and the cheapest interpretation's errors become the representative
// diagnostics for the whole union.
func (c *compiler) inferArg(key string, val any, decl *schema.Argument, modelName string, depth int) *document.Arg {
	if val == nil && !decl.IsNullable {
		if !c.nullPermitsEmptyObject(decl) {
			return document.NewArg(key, nil, firstRef(decl), errNullArg(key, decl.Types))
		}
	}
	if len(decl.Types) == 0 {
		// A declaration without candidate types accepts nothing.
		return document.NewArg(key, val, nil, errArgType(key, val, nil))
	}
	if len(decl.Types) == 1 {
		return c.tryCandidate(key, val, decl.Types[0], decl, modelName, depth)
	}
	attempts := make([]*document.Arg, 0, len(decl.Types))
	for _, ref := range decl.Types {
		a := c.tryCandidate(key, val, ref, decl, modelName, depth)
		if !a.HasError() {
			return a
		}
		attempts = append(attempts, a)
	}
	return pickBest(attempts)
}

// nullPermitsEmptyObject reports whether an explicit null can stand in for an
// empty object: some candidate is an input object whose constraints accept
// zero present fields.
func (c *compiler) nullPermitsEmptyObject(decl *schema.Argument) bool {
	for _, ref := range decl.Types {
		if ref.Kind != schema.InputObject || ref.IsList {
			continue
		}
		in := c.model.Input(ref.Object)
		if in == nil {
			continue
		}
		cons := in.Constraints
		if cons.MinFields <= 0 && len(cons.RequireOneOf) == 0 {
			return true
		}
	}
	return false
}

// tryCandidate compiles val against one candidate input type.
func (c *compiler) tryCandidate(key string, val any, ref *schema.InputRef, decl *schema.Argument, modelName string, depth int) *document.Arg {
	if !ref.IsList {
		return c.compileValue(key, val, ref, modelName, depth)
	}
	if lv, ok := val.([]any); ok {
		elems := make([]*document.Arg, len(lv))
		for i, ev := range lv {
			elems[i] = c.compileValue("", ev, ref.Elem(), modelName, depth+1)
		}
		return document.NewArg(key, elems, ref, nil)
	}
	if val == nil {
		return document.NewArg(key, nil, ref, nil)
	}
	if decl != nil && decl.NoAutoList {
		return document.NewArg(key, val, ref, errArgType(key, val, oneRef(ref)))
	}
	// A bare value stands in for a singleton list. Path normalization strips
	// the implied index again when reporting errors.
	elem := c.compileValue("", val, ref.Elem(), modelName, depth)
	return document.NewArg(key, []*document.Arg{elem}, ref, nil)
}

// compileValue compiles a non-list value against a list-stripped candidate.
func (c *compiler) compileValue(key string, val any, ref *schema.InputRef, modelName string, depth int) *document.Arg {
	if val == nil {
		// Nullability was settled before union resolution; null is accepted
		// against any candidate here.
		return document.NewArg(key, nil, ref, nil)
	}
	if depth > maxDepth {
		return document.NewArg(key, val, ref, errArgType(key, val, oneRef(ref)))
	}
	if ref.Kind == schema.InputObject {
		m, ok := val.(map[string]any)
		if !ok {
			return document.NewArg(key, val, ref, errArgType(key, val, oneRef(ref)))
		}
		in := c.model.Input(ref.Object)
		if in == nil {
			return document.NewArg(key, val, ref, errArgType(key, val, oneRef(ref)))
		}
		list, objErr := c.compileObject(m, in, modelName, depth+1)
		return document.NewArg(key, list, ref, objErr)
	}
	if err := c.checkScalar(key, val, ref); err != nil {
		return document.NewArg(key, val, ref, err)
	}
	return document.NewArg(key, val, ref, nil)
}

// compileObject compiles the present keys of an object-shaped value against
// an input type's field list and enforces its cardinality constraints. The
// returned error, if any, belongs on the Arg owning this object.
func (c *compiler) compileObject(m map[string]any, in *schema.Input, modelName string, depth int) (*document.ArgList, *document.ArgError) {
	var args []*document.Arg
	present := 0
	presentOf := func(names []string) int {
		n := 0
		for _, name := range names {
			if _, ok := m[name]; ok {
				n++
			}
		}
		return n
	}
	for _, f := range in.Fields {
		v, ok := m[f.Name]
		if !ok {
			args = append(args, document.NewArg(
				f.Name, nil, firstRef(f),
				errMissingArg(f.Name, in.Name, f.Types, !f.IsRequired),
			))
			continue
		}
		present++
		args = append(args, c.inferArg(f.Name, v, f, modelName, depth))
	}

	var unknown []string
	for k := range m {
		if in.FieldByName(k) == nil {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		looksLike := false
		if obj := c.model.Object(modelName); obj != nil {
			looksLike = obj.FieldByName(k) != nil
		}
		args = append(args, document.NewArg(
			k, m[k], nil, errUnknownArg(k, in.Name, in.FieldNames(), looksLike),
		))
	}

	list := document.NewArgList(args)
	cons := in.Constraints
	if len(cons.RequireOneOf) > 0 && presentOf(cons.RequireOneOf) == 0 {
		return list, errAtLeastOne(in.Name, cons.RequireOneOf)
	}
	if cons.MinFields > 0 && present < cons.MinFields {
		return list, errAtLeastOne(in.Name, nil)
	}
	if cons.MaxFields > 0 && present > cons.MaxFields {
		return list, errAtMostOne(in.Name, in.FieldNames())
	}
	return list, nil
}

// checkScalar applies the one-directional subtype compatibility rules for
// primitive and enum kinds. nil means val is acceptable as declared.
func (c *compiler) checkScalar(key string, val any, ref *schema.InputRef) *document.ArgError {
	if value.IsMissing(val) {
		return errArgType(key, val, oneRef(ref))
	}
	if ref.Kind == schema.InputEnum {
		if s, ok := val.(string); ok {
			if e := c.model.Enum(ref.Enum); e != nil && e.Has(s) {
				return nil
			}
		}
		return errArgType(key, val, oneRef(ref))
	}

	declared := ref.Scalar
	if declared.Open() {
		return nil
	}
	inferred := value.ScalarKindOf(val)
	if inferred == declared {
		return nil
	}

	switch declared {
	case schema.BigInt:
		if inferred == schema.Int || inferred == schema.Long {
			return nil
		}
	case schema.Long:
		if inferred == schema.Int {
			return nil
		}
	case schema.Float:
		if inferred == schema.Int || inferred == schema.Long {
			return nil
		}
	case schema.Decimal:
		if inferred == schema.Int || inferred == schema.Long || inferred == schema.Float {
			return nil
		}
		if s, ok := val.(string); ok && decimalPattern.MatchString(s) {
			return nil
		}
	case schema.String:
		// Temporal and identifier values render as strings on the wire.
		if inferred == schema.DateTime || inferred == schema.UUID {
			return nil
		}
	case schema.ID:
		if inferred == schema.String {
			return nil
		}
	case schema.DateTime:
		if s, ok := val.(string); ok {
			if _, err := time.Parse(time.RFC3339, s); err != nil {
				return errDateArg(key, s)
			}
			return nil
		}
	case schema.UUID:
		if s, ok := val.(string); ok {
			if _, err := uuid.Parse(s); err == nil {
				return nil
			}
		}
	}
	return errArgType(key, val, oneRef(ref))
}

func firstRef(decl *schema.Argument) *schema.InputRef {
	if len(decl.Types) == 0 {
		return nil
	}
	return decl.Types[0]
}

func oneRef(ref *schema.InputRef) []*schema.InputRef { return []*schema.InputRef{ref} }

func argNames(args []*schema.Argument) []string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.Name
	}
	return names
}
