package diagnose

import (
	"fmt"
	"strings"

	"github.com/hanpama/querydoc/document"
	schema "github.com/hanpama/querydoc/schema"
)

// Message templates per error kind. Keep the wording stable: downstream
// snapshot tests compare rendered output.

func fieldErrorMessage(d document.FieldDiagnostic) string {
	e := d.Err
	at := d.Path.String()
	switch e.Kind {
	case document.InvalidFieldName:
		var b strings.Builder
		if e.OnInclude {
			if e.ValidButScalar {
				fmt.Fprintf(&b, "Field %q at %q exists on %s but is not a relation and cannot be included", e.Name, at, e.Model)
			} else {
				fmt.Fprintf(&b, "Unknown relation %q at %q for include statement on %s", e.Name, at, e.Model)
			}
		} else {
			fmt.Fprintf(&b, "Unknown field %q at %q on %s", e.Name, at, e.Model)
		}
		if e.Suggestion != "" {
			fmt.Fprintf(&b, ", did you mean %q?", e.Suggestion)
		}
		if len(e.Options) > 0 {
			fmt.Fprintf(&b, " Available: %s", strings.Join(e.Options, ", "))
		}
		return b.String()
	case document.InvalidFieldType:
		return fmt.Sprintf("Invalid value %v for field %q at %q: expected a boolean selection", e.Provided, e.Name, at)
	case document.EmptySelect:
		return fmt.Sprintf("The select statement at %q must not be empty", at)
	case document.EmptyInclude:
		return fmt.Sprintf("The include statement at %q must not be empty", at)
	case document.NoTrueSelect:
		return fmt.Sprintf("The select statement at %q needs at least one truthy value", at)
	case document.IncludeAndSelect:
		return fmt.Sprintf("Cannot use both include and select at %q", at)
	}
	return fmt.Sprintf("Invalid selection at %q", at)
}

func argErrorMessage(d document.ArgDiagnostic) string {
	e := d.Err
	at := d.Path.String()
	switch e.Kind {
	case document.InvalidArgName:
		var b strings.Builder
		fmt.Fprintf(&b, "Unknown argument %q at %q", e.Name, at)
		if e.Type != "" {
			fmt.Fprintf(&b, " on %s", e.Type)
		}
		if e.LooksLikeField {
			fmt.Fprintf(&b, ". %q is an output field; did you mean to place it in a select or include block?", e.Name)
		} else if e.Suggestion != "" {
			fmt.Fprintf(&b, ", did you mean %q?", e.Suggestion)
		}
		return b.String()
	case document.InvalidArgType:
		return fmt.Sprintf("Argument %q at %q got %v, expected %s", e.Name, at, e.Provided, expectedTypes(e.Expected))
	case document.InvalidNullArg:
		return fmt.Sprintf("Argument %q at %q must not be null", e.Name, at)
	case document.InvalidDateArg:
		return fmt.Sprintf("Argument %q at %q got %v, expected an RFC 3339 date-time string", e.Name, at, e.Provided)
	case document.MissingArg:
		return fmt.Sprintf("Argument %q of type %s at %q is required but was not provided", e.Name, e.Type, at)
	case document.AtLeastOne:
		if len(e.Constraint) > 0 {
			return fmt.Sprintf("%s at %q needs at least one of: %s", e.Type, at, strings.Join(e.Constraint, ", "))
		}
		return fmt.Sprintf("%s at %q needs at least one field", e.Type, at)
	case document.AtMostOne:
		return fmt.Sprintf("%s at %q accepts at most one field, got more. Fields: %s", e.Type, at, strings.Join(e.Constraint, ", "))
	}
	return fmt.Sprintf("Invalid argument at %q", at)
}

func expectedTypes(refs []*schema.InputRef) string {
	if len(refs) == 0 {
		return "a different type"
	}
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.String()
	}
	return strings.Join(names, " or ")
}

// ANSI styling used by the renderer. Color is a renderer option, decided by
// the caller; nothing in this module inspects the environment.
const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
)

// Options controls rendering. The zero value renders plain, full output.
type Options struct {
	// Color wraps error lines in ANSI escapes.
	Color bool
	// Compact drops the informational hints and renders one line per error.
	Compact bool
}

// Renderer renders a ValidationError for humans.
type Renderer struct {
	opt Options
}

// NewRenderer returns a renderer with the given options.
func NewRenderer(opt Options) *Renderer { return &Renderer{opt: opt} }

// Render formats the full diagnostic set. Informational entries are grouped
// as hints after the hard errors unless Compact is set.
func (r *Renderer) Render(e *ValidationError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid %s.%s invocation:\n", e.Operation, e.RootField)
	for _, fe := range e.FieldErrors {
		r.line(&b, fieldErrorMessage(fe))
	}
	var hints []document.ArgDiagnostic
	for _, ae := range e.ArgErrors {
		if ae.Err.Informational {
			hints = append(hints, ae)
			continue
		}
		r.line(&b, argErrorMessage(ae))
	}
	if !r.opt.Compact && len(hints) > 0 {
		b.WriteString("\nAvailable arguments:\n")
		for _, h := range hints {
			line := fmt.Sprintf("  %s: %s", h.Path.String(), expectedTypes(h.Err.Expected))
			if r.opt.Color {
				line = ansiDim + line + ansiReset
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func (r *Renderer) line(b *strings.Builder, msg string) {
	if r.opt.Color {
		b.WriteString("- " + ansiRed + msg + ansiReset + "\n")
		return
	}
	b.WriteString("- " + msg + "\n")
}
