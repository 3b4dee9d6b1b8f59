package compile

import (
	"github.com/hanpama/querydoc/document"
	"github.com/hanpama/querydoc/internal/suggest"
	schema "github.com/hanpama/querydoc/schema"
)

// Common error constructors. Keep the carried context stable: the renderer
// and snapshot tests depend on it.

func errUnknownField(name, model string, candidates, options []string) *document.FieldError {
	return &document.FieldError{
		Kind:       document.InvalidFieldName,
		Name:       name,
		Model:      model,
		Suggestion: suggest.DidYouMean(name, candidates),
		Options:    options,
	}
}

func errUnknownInclude(name, model string, candidates []string, validButScalar bool) *document.FieldError {
	return &document.FieldError{
		Kind:           document.InvalidFieldName,
		Name:           name,
		Model:          model,
		Suggestion:     suggest.DidYouMean(name, candidates),
		Options:        candidates,
		OnInclude:      true,
		ValidButScalar: validButScalar,
	}
}

func errFieldType(name, model string, provided any) *document.FieldError {
	return &document.FieldError{
		Kind:     document.InvalidFieldType,
		Name:     name,
		Model:    model,
		Provided: provided,
	}
}

func errContainer(kind document.FieldErrorKind, name, model string) *document.FieldError {
	return &document.FieldError{Kind: kind, Name: name, Model: model}
}

func errMissingArg(name, typeName string, expected []*schema.InputRef, informational bool) *document.ArgError {
	return &document.ArgError{
		Kind:          document.MissingArg,
		Name:          name,
		Type:          typeName,
		Expected:      expected,
		Informational: informational,
	}
}

func errUnknownArg(name, typeName string, candidates []string, looksLikeField bool) *document.ArgError {
	return &document.ArgError{
		Kind:           document.InvalidArgName,
		Name:           name,
		Type:           typeName,
		Suggestion:     suggest.DidYouMean(name, candidates),
		Options:        candidates,
		LooksLikeField: looksLikeField,
	}
}

func errArgType(name string, provided any, expected []*schema.InputRef) *document.ArgError {
	return &document.ArgError{
		Kind:     document.InvalidArgType,
		Name:     name,
		Provided: provided,
		Expected: expected,
	}
}

func errNullArg(name string, expected []*schema.InputRef) *document.ArgError {
	return &document.ArgError{
		Kind:     document.InvalidNullArg,
		Name:     name,
		Expected: expected,
	}
}

func errDateArg(name string, provided any) *document.ArgError {
	return &document.ArgError{
		Kind:     document.InvalidDateArg,
		Name:     name,
		Provided: provided,
	}
}

func errAtLeastOne(typeName string, constraint []string) *document.ArgError {
	return &document.ArgError{
		Kind:       document.AtLeastOne,
		Type:       typeName,
		Constraint: constraint,
	}
}

func errAtMostOne(typeName string, constraint []string) *document.ArgError {
	return &document.ArgError{
		Kind:       document.AtMostOne,
		Type:       typeName,
		Constraint: constraint,
	}
}
