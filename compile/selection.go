package compile

import (
	"sort"

	"github.com/hanpama/querydoc/document"
	"github.com/hanpama/querydoc/internal/value"
	schema "github.com/hanpama/querydoc/schema"
)

// Reserved descent keys. Everything else on a field's value is an argument.
const (
	keySelect  = "select"
	keyInclude = "include"
)

// compileFields compiles one selection map against an object type and returns
// the ordered child fields.
//
// Go maps carry no insertion order, so ordering is imposed: declared fields in
// schema order first, then computed fields in schema order, then unknown keys
// sorted. The result is deterministic for identical inputs.
func (c *compiler) compileFields(sel map[string]any, obj *schema.Object, modelName string, depth int) []*document.Field {
	var out []*document.Field
	seen := make(map[string]bool, len(sel))

	for _, sf := range obj.Fields {
		v, ok := sel[sf.Name]
		if !ok {
			continue
		}
		seen[sf.Name] = true
		if value.Falsy(v) {
			continue
		}
		out = append(out, c.compileField(sf.Name, v, sf, modelName, depth))
	}
	for _, cf := range obj.Computed {
		v, ok := sel[cf.Name]
		if !ok {
			continue
		}
		seen[cf.Name] = true
		if value.Falsy(v) {
			continue
		}
		// A computed field expands into its backing real fields; the virtual
		// key itself never reaches the tree. Explicitly selected backing
		// fields win over the expansion.
		for _, backing := range cf.Fields {
			if _, dup := sel[backing]; dup {
				continue
			}
			if sf := obj.FieldByName(backing); sf != nil {
				out = append(out, c.compileField(sf.Name, v, sf, modelName, depth))
			}
		}
	}

	var unknown []string
	for k := range sel {
		if !seen[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		if value.Falsy(sel[k]) {
			continue
		}
		candidates := obj.FieldNames()
		out = append(out, document.NewField(k, nil, nil, errUnknownField(k, obj.Name, candidates, candidates), nil))
	}
	return out
}

// compileField compiles one selected field from its selection value.
func (c *compiler) compileField(name string, val any, sf *schema.Field, modelName string, depth int) *document.Field {
	if depth > maxDepth {
		return document.NewField(name, nil, nil, errFieldType(name, modelName, val), sf)
	}

	relation := sf.Kind == schema.KindObject

	// A scalar or enum field without arguments is selected with a bare
	// boolean and nothing else.
	if !relation && len(sf.Args) == 0 {
		if value.KindOf(val) != value.Bool {
			return document.NewField(name, nil, nil, errFieldType(name, modelName, val), sf)
		}
		return document.NewField(name, nil, nil, nil, sf)
	}

	var sel map[string]any
	switch v := val.(type) {
	case bool:
		// true: plain selection, no arguments given.
	case map[string]any:
		sel = v
	default:
		return document.NewField(name, nil, nil, errFieldType(name, modelName, val), sf)
	}

	args := c.compileArgs(sf, sel, modelName)

	if !relation {
		return document.NewField(name, args, nil, nil, sf)
	}

	target := c.model.Object(sf.Type)
	if target == nil {
		return document.NewField(name, args, nil, errFieldType(name, modelName, val), sf)
	}
	children := c.compileChildren(name, sel, sf, target, modelName, depth)
	return document.NewField(name, args, children, nil, sf)
}

// compileChildren determines the effective child selection of a relation
// field and compiles it. Explicit select wins; include is deep-merged over
// the target's default selection; an aggregation-style field synthesizes its
// selection from its group-by argument; otherwise the default selection
// applies.
func (c *compiler) compileChildren(name string, sel map[string]any, sf *schema.Field, target *schema.Object, modelName string, depth int) []*document.Field {
	selVal, hasSelect := sel[keySelect]
	incVal, hasInclude := sel[keyInclude]

	switch {
	case hasSelect && hasInclude:
		return []*document.Field{
			document.NewSyntheticField(keyInclude, nil, errContainer(document.IncludeAndSelect, name, modelName)),
		}

	case hasSelect:
		m, ok := selVal.(map[string]any)
		if !ok || len(m) == 0 {
			return []*document.Field{
				document.NewSyntheticField(keySelect, nil, errContainer(document.EmptySelect, name, modelName)),
			}
		}
		if !anyTruthy(m) {
			return []*document.Field{
				document.NewSyntheticField(keySelect, nil, errContainer(document.NoTrueSelect, name, modelName)),
			}
		}
		return c.compileFields(m, target, sf.Type, depth+1)

	case hasInclude:
		m, ok := incVal.(map[string]any)
		if !ok || len(m) == 0 {
			return []*document.Field{
				document.NewSyntheticField(keyInclude, nil, errContainer(document.EmptyInclude, name, modelName)),
			}
		}
		effective := c.defaultSelection(target)
		var bad []*document.Field
		for _, k := range sortedKeys(m) {
			tf := target.FieldByName(k)
			if tf != nil && tf.Kind == schema.KindObject {
				effective[k] = m[k]
				continue
			}
			// Only relations can be included. Flag names that exist but are
			// scalar separately from plain unknowns.
			bad = append(bad, document.NewSyntheticField(
				k, nil, errUnknownInclude(k, target.Name, relationNames(target), tf != nil),
			))
		}
		children := c.compileFields(effective, target, sf.Type, depth+1)
		if len(bad) > 0 {
			children = append(children, document.NewSyntheticField(keyInclude, bad, nil))
		}
		return children

	default:
		if sf.GroupBy != "" {
			if by, ok := sel[sf.GroupBy]; ok {
				if synth := groupBySelection(by); synth != nil {
					return c.compileFields(synth, target, sf.Type, depth+1)
				}
			}
		}
		return c.compileFields(c.defaultSelection(target), target, sf.Type, depth+1)
	}
}

// defaultSelection is the implicit field set of a type: every scalar and enum
// field, plus every relation targeting a composite type.
func (c *compiler) defaultSelection(obj *schema.Object) map[string]any {
	sel := make(map[string]any, len(obj.Fields))
	for _, f := range obj.Fields {
		switch f.Kind {
		case schema.KindScalar, schema.KindEnum:
			sel[f.Name] = true
		case schema.KindObject:
			if t := c.model.Object(f.Type); t != nil && t.Composite {
				sel[f.Name] = true
			}
		}
	}
	return sel
}

// groupBySelection synthesizes a selection from a group-by argument value: a
// list of field names or a single name.
func groupBySelection(by any) map[string]any {
	switch v := by.(type) {
	case string:
		return map[string]any{v: true}
	case []any:
		sel := make(map[string]any, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil
			}
			sel[s] = true
		}
		return sel
	}
	return nil
}

func anyTruthy(m map[string]any) bool {
	for _, v := range m {
		if !value.Falsy(v) {
			return true
		}
	}
	return false
}

func relationNames(obj *schema.Object) []string {
	var names []string
	for _, f := range obj.Fields {
		if f.Kind == schema.KindObject {
			names = append(names, f.Name)
		}
	}
	return names
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
