// Package diagnose turns the structural diagnostics collected from a compiled
// document into caller-facing ones: paths are rewritten to match the original
// selection value and the whole set is carried by one aggregate error. All
// human-readable formatting lives here; the compiler core never renders text
// and never reads ambient configuration.
package diagnose

import (
	"fmt"

	"github.com/hanpama/querydoc/document"
)

// NormalizePath rewrites a structural path into the path the caller would
// recognize in their original selection value.
//
// Two rewrites happen while walking the original selection alongside the
// path: a "select" descent marker becomes "include" when the caller used the
// include key at that position, and a list index of exactly 0 is dropped when
// the original value there was not a list, because the compiler auto-wrapped
// a bare value into a singleton list internally.
func NormalizePath(path document.Path, selection any) document.Path {
	out := make(document.Path, 0, len(path))
	cur := selection
	for _, elem := range path {
		switch e := elem.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				out = append(out, e)
				cur = nil
				continue
			}
			if e == "select" {
				if v, has := m["select"]; has {
					out = append(out, "select")
					cur = v
					continue
				}
				if v, has := m["include"]; has {
					out = append(out, "include")
					cur = v
					continue
				}
				// Neither key: the compiler injected a default selection
				// here. Keep the marker; there is no caller key to map to.
				out = append(out, e)
				cur = nil
				continue
			}
			out = append(out, e)
			cur = m[e]
		case int:
			if l, ok := cur.([]any); ok {
				out = append(out, e)
				if e >= 0 && e < len(l) {
					cur = l[e]
				} else {
					cur = nil
				}
				continue
			}
			if e == 0 {
				// Auto-wrapped singleton: the caller wrote a bare value, so
				// the index does not exist for them.
				continue
			}
			out = append(out, e)
			cur = nil
		default:
			out = append(out, elem)
			cur = nil
		}
	}
	return out
}

// ValidationError is the single failure reported by compilation: the
// completed document contained at least one invalid node. It carries the full
// diagnostic set with normalized paths, never just the first problem.
type ValidationError struct {
	Operation string
	RootField string
	// Selection is the caller's original selection value, for renderers that
	// show context.
	Selection   any
	FieldErrors []document.FieldDiagnostic
	ArgErrors   []document.ArgDiagnostic
}

// NewValidationError normalizes every diagnostic path against the original
// selection and wraps the set. Informational argument entries are kept for
// renderers but do not count as failures on their own.
func NewValidationError(
	operation, rootField string,
	selection any,
	fieldErrs []document.FieldDiagnostic,
	argErrs []document.ArgDiagnostic,
) *ValidationError {
	e := &ValidationError{
		Operation: operation,
		RootField: rootField,
		Selection: selection,
	}
	for _, fe := range fieldErrs {
		e.FieldErrors = append(e.FieldErrors, document.FieldDiagnostic{
			Path: NormalizePath(fe.Path, selection),
			Err:  fe.Err,
		})
	}
	for _, ae := range argErrs {
		e.ArgErrors = append(e.ArgErrors, document.ArgDiagnostic{
			Path: NormalizePath(ae.Path, selection),
			Err:  ae.Err,
		})
	}
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s.%s invocation:\n", e.Operation, e.RootField)
	for _, fe := range e.FieldErrors {
		msg += "- " + fieldErrorMessage(fe) + "\n"
	}
	for _, ae := range e.ArgErrors {
		if ae.Err.Informational {
			continue
		}
		msg += "- " + argErrorMessage(ae) + "\n"
	}
	return msg
}
