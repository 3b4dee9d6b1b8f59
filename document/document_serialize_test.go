package document

import (
	"strings"
	"testing"

	schema "github.com/hanpama/querydoc/schema"
)

func TestSerialize(t *testing.T) {
	intRef := &schema.InputRef{Kind: schema.InputScalar, Scalar: schema.Int}
	enumRef := &schema.InputRef{Kind: schema.InputEnum, Enum: "Role"}

	where := NewArg("where", NewArgList([]*Arg{
		NewArg("name", "ada", nil, nil),
		NewArg("email", nil, nil, &ArgError{Kind: MissingArg, Name: "email", Informational: true}),
	}), nil, nil)
	limit := NewArg("limit", 10, intRef, nil)
	role := NewArg("role", "ADMIN", enumRef, nil)
	bogus := NewArg("bogus", "x", nil, &ArgError{Kind: InvalidArgName, Name: "bogus"})

	title := NewField("title", nil, nil, nil, nil)
	posts := NewField("posts", nil, []*Field{title}, nil, nil)
	marker := NewSyntheticField("select", nil, &FieldError{Kind: EmptySelect})
	root := NewField("users", NewArgList([]*Arg{where, limit, role, bogus}), []*Field{posts, marker}, nil, nil)
	d := NewDocument(Query, []*Field{root})

	out := Serialize(d)

	for _, want := range []string{"query", "users(", "where:", "name:", `"ada"`, "limit:", "10", "posts", "title"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Enum values render bare, not as strings.
	if strings.Contains(out, `"ADMIN"`) || !strings.Contains(out, "ADMIN") {
		t.Errorf("enum value not rendered bare:\n%s", out)
	}
	// Error carriers, hint entries and synthetic markers never reach the output.
	if strings.Contains(out, "bogus") || strings.Contains(out, "email") || strings.Contains(out, "select") {
		t.Errorf("invalid or synthetic node leaked into output:\n%s", out)
	}

	if again := Serialize(d); again != out {
		t.Errorf("serialization not deterministic:\n%s\n---\n%s", out, again)
	}
}

func TestSerialize_Mutation(t *testing.T) {
	root := NewField("createUser", nil, []*Field{NewField("id", nil, nil, nil, nil)}, nil, nil)
	out := Serialize(NewDocument(Mutation, []*Field{root}))

	if !strings.Contains(out, "mutation") || !strings.Contains(out, "createUser") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
