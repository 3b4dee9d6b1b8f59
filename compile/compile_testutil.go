package compile

import (
	"context"
	"errors"
	"testing"

	"github.com/hanpama/querydoc/diagnose"
	"github.com/hanpama/querydoc/document"
	schema "github.com/hanpama/querydoc/schema"
)

func scalarRef(k schema.ScalarKind) *schema.InputRef {
	return &schema.InputRef{Kind: schema.InputScalar, Scalar: k}
}

func listRef(k schema.ScalarKind) *schema.InputRef {
	return &schema.InputRef{IsList: true, Kind: schema.InputScalar, Scalar: k}
}

func objectRef(name string) *schema.InputRef {
	return &schema.InputRef{Kind: schema.InputObject, Object: name}
}

func enumRef(name string) *schema.InputRef {
	return &schema.InputRef{Kind: schema.InputEnum, Enum: name}
}

// testModel is the shared fixture: a small user/post model with one field per
// compilation concern (unions, constraints, group-by, scalar widening).
func testModel() *schema.Model {
	return &schema.Model{
		Objects: map[string]*schema.Object{
			"Query": {Name: "Query", Fields: []*schema.Field{
				{Name: "users", Kind: schema.KindObject, Type: "User", IsList: true, Args: []*schema.Argument{
					{Name: "where", Types: []*schema.InputRef{objectRef("UserWhere")}},
					{Name: "limit", Types: []*schema.InputRef{scalarRef(schema.Int)}},
					{Name: "ids", Types: []*schema.InputRef{listRef(schema.Int)}, NoAutoList: true},
				}},
				{Name: "search", Kind: schema.KindObject, Type: "User", IsList: true, Args: []*schema.Argument{
					{Name: "filter", Types: []*schema.InputRef{objectRef("StrictFilter"), scalarRef(schema.String)}},
				}},
				{Name: "pick", Kind: schema.KindObject, Type: "User", Args: []*schema.Argument{
					{Name: "on", Types: []*schema.InputRef{scalarRef(schema.Int), scalarRef(schema.String)}},
				}},
				{Name: "strict", Kind: schema.KindObject, Type: "User", Args: []*schema.Argument{
					{Name: "f", Types: []*schema.InputRef{
						{Kind: schema.InputObject, Object: "Pair", Unchecked: true},
						{Kind: schema.InputObject, Object: "Pair"},
					}},
				}},
				{Name: "typed", Kind: schema.KindScalar, Type: "Int", Args: []*schema.Argument{
					{Name: "in", Types: []*schema.InputRef{objectRef("TypesIn")}},
				}},
				{Name: "range", Kind: schema.KindScalar, Type: "Int", Args: []*schema.Argument{
					{Name: "r", Types: []*schema.InputRef{objectRef("RangeFilter")}},
				}},
				{Name: "capped", Kind: schema.KindScalar, Type: "Int", Args: []*schema.Argument{
					{Name: "o", Types: []*schema.InputRef{objectRef("OneField")}},
				}},
				{Name: "nonempty", Kind: schema.KindScalar, Type: "Int", Args: []*schema.Argument{
					{Name: "n", Types: []*schema.InputRef{objectRef("NonEmpty")}},
				}},
				{Name: "groupUsers", Kind: schema.KindObject, Type: "UserAgg", IsList: true, GroupBy: "by", Args: []*schema.Argument{
					{Name: "by", IsRequired: true, Types: []*schema.InputRef{listRef(schema.String)}},
				}},
			}},
			"User": {
				Name: "User",
				Fields: []*schema.Field{
					{Name: "id", Kind: schema.KindScalar, Type: "Int"},
					{Name: "name", Kind: schema.KindScalar, Type: "String"},
					{Name: "age", Kind: schema.KindScalar, Type: "Int"},
					{Name: "role", Kind: schema.KindEnum, Type: "Role"},
					{Name: "createdAt", Kind: schema.KindScalar, Type: "DateTime"},
					{Name: "balance", Kind: schema.KindScalar, Type: "Decimal"},
					{Name: "posts", Kind: schema.KindObject, Type: "Post", IsList: true, Args: []*schema.Argument{
						{Name: "take", Types: []*schema.InputRef{scalarRef(schema.Int)}},
					}},
					{Name: "profile", Kind: schema.KindObject, Type: "Profile"},
				},
				Computed: []*schema.Computed{{Name: "fullName", Fields: []string{"name"}}},
			},
			"Post": {Name: "Post", Fields: []*schema.Field{
				{Name: "id", Kind: schema.KindScalar, Type: "Int"},
				{Name: "title", Kind: schema.KindScalar, Type: "String"},
			}},
			"Profile": {Name: "Profile", Composite: true, Fields: []*schema.Field{
				{Name: "bio", Kind: schema.KindScalar, Type: "String"},
			}},
			"UserAgg": {Name: "UserAgg", Fields: []*schema.Field{
				{Name: "name", Kind: schema.KindScalar, Type: "String"},
				{Name: "age", Kind: schema.KindScalar, Type: "Int"},
			}},
		},
		Inputs: map[string]*schema.Input{
			"UserWhere": {Name: "UserWhere", Fields: []*schema.Argument{
				{Name: "id", Types: []*schema.InputRef{listRef(schema.Int)}},
				{Name: "name", Types: []*schema.InputRef{scalarRef(schema.String)}},
				{Name: "email", Types: []*schema.InputRef{scalarRef(schema.String)}},
			}},
			"StrictFilter": {Name: "StrictFilter", Fields: []*schema.Argument{
				{Name: "mode", IsRequired: true, Types: []*schema.InputRef{scalarRef(schema.String)}},
				{Name: "tag", Types: []*schema.InputRef{scalarRef(schema.String)}},
			}},
			"Pair": {Name: "Pair", Fields: []*schema.Argument{
				{Name: "x", IsRequired: true, Types: []*schema.InputRef{scalarRef(schema.Int)}},
			}},
			"TypesIn": {Name: "TypesIn", Fields: []*schema.Argument{
				{Name: "i", Types: []*schema.InputRef{scalarRef(schema.Int)}},
				{Name: "l", Types: []*schema.InputRef{scalarRef(schema.Long)}},
				{Name: "b", Types: []*schema.InputRef{scalarRef(schema.BigInt)}},
				{Name: "f", Types: []*schema.InputRef{scalarRef(schema.Float)}},
				{Name: "d", Types: []*schema.InputRef{scalarRef(schema.Decimal)}},
				{Name: "s", Types: []*schema.InputRef{scalarRef(schema.String)}},
				{Name: "dt", Types: []*schema.InputRef{scalarRef(schema.DateTime)}},
				{Name: "u", Types: []*schema.InputRef{scalarRef(schema.UUID)}},
				{Name: "id", Types: []*schema.InputRef{scalarRef(schema.ID)}},
				{Name: "js", Types: []*schema.InputRef{scalarRef(schema.Json)}},
				{Name: "by", Types: []*schema.InputRef{scalarRef(schema.Bytes)}},
				{Name: "en", Types: []*schema.InputRef{enumRef("Role")}},
				{Name: "ns", IsNullable: true, Types: []*schema.InputRef{scalarRef(schema.String)}},
			}},
			"RangeFilter": {
				Name:        "RangeFilter",
				Constraints: schema.Constraints{RequireOneOf: []string{"gte", "lte"}},
				Fields: []*schema.Argument{
					{Name: "gte", Types: []*schema.InputRef{scalarRef(schema.Int)}},
					{Name: "lte", Types: []*schema.InputRef{scalarRef(schema.Int)}},
				},
			},
			"OneField": {
				Name:        "OneField",
				Constraints: schema.Constraints{MaxFields: 1},
				Fields: []*schema.Argument{
					{Name: "a", Types: []*schema.InputRef{scalarRef(schema.Int)}},
					{Name: "b", Types: []*schema.InputRef{scalarRef(schema.Int)}},
				},
			},
			"NonEmpty": {
				Name:        "NonEmpty",
				Constraints: schema.Constraints{MinFields: 1},
				Fields: []*schema.Argument{
					{Name: "v", Types: []*schema.InputRef{scalarRef(schema.Int)}},
				},
			},
		},
		Enums: map[string]*schema.Enum{
			"Role": {Name: "Role", Values: []string{"ADMIN", "USER"}},
		},
	}
}

// mustCompile compiles and fails the test on any validation error.
func mustCompile(t *testing.T, root string, sel map[string]any, modelName string) *document.Document {
	t.Helper()
	doc, err := Compile(context.Background(), testModel(), document.Query, root, sel, modelName)
	if err != nil {
		t.Fatalf("unexpected compile error:\n%v", err)
	}
	return doc
}

// compileErr compiles and fails the test unless a validation error came back.
func compileErr(t *testing.T, root string, sel map[string]any, modelName string) *diagnose.ValidationError {
	t.Helper()
	_, err := Compile(context.Background(), testModel(), document.Query, root, sel, modelName)
	if err == nil {
		t.Fatalf("expected a validation error, got none")
	}
	var verr *diagnose.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *diagnose.ValidationError, got %T", err)
	}
	return verr
}

// hardArgErrs strips the informational hint entries.
func hardArgErrs(e *diagnose.ValidationError) []document.ArgDiagnostic {
	var out []document.ArgDiagnostic
	for _, ae := range e.ArgErrors {
		if !ae.Err.Informational {
			out = append(out, ae)
		}
	}
	return out
}

// childNames lists the non-synthetic children of f in order.
func childNames(f *document.Field) []string {
	var names []string
	for _, c := range f.Children {
		if !c.Synthetic {
			names = append(names, c.Name)
		}
	}
	return names
}
