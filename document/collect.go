package document

// CollectErrors walks the tree once and returns every field- and argument-level
// error paired with its structural path, in construction order.
//
// Structural paths are what the compiler saw, not necessarily what the caller
// wrote: child fields sit behind a "select" descent marker, list elements
// carry int indices even when the compiler auto-wrapped a bare value, and
// synthetic marker children appear under their own name. Use
// diagnose.NormalizePath to rewrite them into caller-visible paths.
//
// Subtrees whose validity flags are clear are skipped, except that the whole
// ArgList of a field with an invalid argument is walked so informational
// missing-field hints next to the real error are picked up.
func CollectErrors(d *Document) ([]FieldDiagnostic, []ArgDiagnostic) {
	var fields []FieldDiagnostic
	var args []ArgDiagnostic
	for _, f := range d.Fields {
		if f.Err != nil {
			fields = append(fields, FieldDiagnostic{Path: Path{f.Name}, Err: f.Err})
		}
		collectField(f, Path{}, &fields, &args)
	}
	return fields, args
}

// collectField visits the subtree of f. base is the path of f's selection
// value: empty for the root field, since the caller's selection value is the
// root field's value itself.
func collectField(f *Field, base Path, fields *[]FieldDiagnostic, args *[]ArgDiagnostic) {
	if f.HasInvalidArg() && f.Args != nil {
		for _, a := range f.Args.Args {
			collectArg(a, base.Child(a.Key), args)
		}
	}
	if !f.HasInvalidChild() {
		return
	}
	for _, c := range f.Children {
		if c.Err == nil && !c.HasInvalidChild() && !c.HasInvalidArg() {
			continue
		}
		childPath := base
		if !c.Synthetic {
			childPath = childPath.Child("select")
		}
		childPath = childPath.Child(c.Name)
		if c.Err != nil {
			*fields = append(*fields, FieldDiagnostic{Path: childPath, Err: c.Err})
		}
		collectField(c, childPath, fields, args)
	}
}

func collectArg(a *Arg, path Path, args *[]ArgDiagnostic) {
	if a.Err != nil {
		*args = append(*args, ArgDiagnostic{Path: path, Err: a.Err})
	}
	switch v := a.Value.(type) {
	case *ArgList:
		for _, sub := range v.Args {
			collectArg(sub, path.Child(sub.Key), args)
		}
	case []*Arg:
		for i, el := range v {
			collectArg(el, path.Child(i), args)
		}
	}
}
