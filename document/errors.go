package document

import (
	schema "github.com/hanpama/querydoc/schema"
)

// FieldErrorKind is the closed set of field-level error kinds.
type FieldErrorKind string

const (
	InvalidFieldName FieldErrorKind = "invalidFieldName"
	InvalidFieldType FieldErrorKind = "invalidFieldType"
	EmptySelect      FieldErrorKind = "emptySelect"
	EmptyInclude     FieldErrorKind = "emptyInclude"
	NoTrueSelect     FieldErrorKind = "noTrueSelect"
	IncludeAndSelect FieldErrorKind = "includeAndSelect"
)

// FieldError carries the context a renderer needs to describe one field-level
// problem. Which fields are set depends on Kind.
type FieldError struct {
	Kind FieldErrorKind
	// Name is the offending field name (InvalidFieldName, InvalidFieldType).
	Name string
	// Model is the object type the name was looked up on.
	Model string
	// Suggestion is the nearest valid name, "" when there is no safe guess.
	Suggestion string
	// Options lists the valid names the caller could have used.
	Options []string
	// Provided is the offending selection value (InvalidFieldType).
	Provided any
	// OnInclude marks the include-flavored variant of InvalidFieldName.
	OnInclude bool
	// ValidButScalar is set with OnInclude when the name exists on the type
	// but is not a relation, so it cannot be included.
	ValidButScalar bool
}

// ArgErrorKind is the closed set of argument-level error kinds.
type ArgErrorKind string

const (
	InvalidArgName ArgErrorKind = "invalidName"
	InvalidArgType ArgErrorKind = "invalidType"
	InvalidNullArg ArgErrorKind = "invalidNullArg"
	InvalidDateArg ArgErrorKind = "invalidDateArg"
	MissingArg     ArgErrorKind = "missingArg"
	AtLeastOne     ArgErrorKind = "atLeastOne"
	AtMostOne      ArgErrorKind = "atMostOne"
)

// ArgError carries the context a renderer needs to describe one argument-level
// problem. Which fields are set depends on Kind.
type ArgError struct {
	Kind ArgErrorKind
	// Name is the offending or missing key.
	Name string
	// Type names the input type the key was compiled against.
	Type string
	// Provided is the value the caller supplied (InvalidArgType,
	// InvalidDateArg, InvalidNullArg).
	Provided any
	// Expected lists the declared candidate types the value was tried
	// against.
	Expected []*schema.InputRef
	// Suggestion is the nearest valid key, "" when there is no safe guess.
	Suggestion string
	// Options lists the valid keys of the owning input type.
	Options []string
	// LooksLikeField is set on InvalidArgName when the unknown key names an
	// output field the caller probably forgot to wrap in select/include.
	LooksLikeField bool
	// Constraint names the field subset behind an AtLeastOne/AtMostOne
	// violation.
	Constraint []string
	// Informational marks the hint entries emitted for absent optional
	// fields. They populate "available options" output and never make the
	// owning Arg invalid.
	Informational bool
}

// FieldDiagnostic pairs a field error with the structural path it occurred at.
type FieldDiagnostic struct {
	Path Path
	Err  *FieldError
}

// ArgDiagnostic pairs an argument error with the structural path it occurred at.
type ArgDiagnostic struct {
	Path Path
	Err  *ArgError
}
