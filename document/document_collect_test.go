package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectErrors_StructuralPaths(t *testing.T) {
	t.Run("Root field error", func(t *testing.T) {
		err := &FieldError{Kind: InvalidFieldName, Name: "userz"}
		d := NewDocument(Query, []*Field{NewField("userz", nil, nil, err, nil)})

		fields, args := CollectErrors(d)

		wantFields := []FieldDiagnostic{{Path: Path{"userz"}, Err: err}}
		if diff := cmp.Diff(wantFields, fields); diff != "" {
			t.Fatalf("field diagnostics mismatch (-want +got):\n%s", diff)
		}
		if len(args) != 0 {
			t.Fatalf("want no arg diagnostics, got %v", args)
		}
	})

	t.Run("Child errors sit behind the select marker", func(t *testing.T) {
		err := &FieldError{Kind: InvalidFieldName, Name: "zzz"}
		bad := NewField("zzz", nil, nil, err, nil)
		good := NewField("id", nil, nil, nil, nil)
		root := NewField("users", nil, []*Field{good, bad}, nil, nil)
		d := NewDocument(Query, []*Field{root})

		fields, _ := CollectErrors(d)

		want := []FieldDiagnostic{{Path: Path{"select", "zzz"}, Err: err}}
		if diff := cmp.Diff(want, fields); diff != "" {
			t.Fatalf("field diagnostics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Synthetic children add no marker", func(t *testing.T) {
		err := &FieldError{Kind: EmptySelect, Name: "users"}
		marker := NewSyntheticField("select", nil, err)
		root := NewField("users", nil, []*Field{marker}, nil, nil)
		d := NewDocument(Query, []*Field{root})

		fields, _ := CollectErrors(d)

		want := []FieldDiagnostic{{Path: Path{"select"}, Err: err}}
		if diff := cmp.Diff(want, fields); diff != "" {
			t.Fatalf("field diagnostics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Nested relation path", func(t *testing.T) {
		err := &FieldError{Kind: InvalidFieldType, Name: "title"}
		bad := NewField("title", nil, nil, err, nil)
		posts := NewField("posts", nil, []*Field{bad}, nil, nil)
		root := NewField("users", nil, []*Field{posts}, nil, nil)
		d := NewDocument(Query, []*Field{root})

		fields, _ := CollectErrors(d)

		want := []FieldDiagnostic{{Path: Path{"select", "posts", "select", "title"}, Err: err}}
		if diff := cmp.Diff(want, fields); diff != "" {
			t.Fatalf("field diagnostics mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCollectErrors_Args(t *testing.T) {
	t.Run("Informational hints ride along with a real error", func(t *testing.T) {
		hint := &ArgError{Kind: MissingArg, Name: "where", Informational: true}
		real := &ArgError{Kind: InvalidArgType, Name: "limit"}
		args := NewArgList([]*Arg{
			NewArg("where", nil, nil, hint),
			NewArg("limit", "x", nil, real),
		})
		root := NewField("users", args, nil, nil, nil)
		d := NewDocument(Query, []*Field{root})

		_, got := CollectErrors(d)

		want := []ArgDiagnostic{
			{Path: Path{"where"}, Err: hint},
			{Path: Path{"limit"}, Err: real},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("arg diagnostics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Hints without a real error are not collected", func(t *testing.T) {
		hint := &ArgError{Kind: MissingArg, Name: "where", Informational: true}
		args := NewArgList([]*Arg{NewArg("where", nil, nil, hint)})
		root := NewField("users", args, nil, nil, nil)
		d := NewDocument(Query, []*Field{root})

		_, got := CollectErrors(d)
		if len(got) != 0 {
			t.Fatalf("want no diagnostics, got %v", got)
		}
	})

	t.Run("Object and list nesting", func(t *testing.T) {
		elemErr := &ArgError{Kind: InvalidArgType}
		elems := []*Arg{
			NewArg("", 1, nil, nil),
			NewArg("", "x", nil, elemErr),
		}
		id := NewArg("id", elems, nil, nil)
		where := NewArg("where", NewArgList([]*Arg{id}), nil, nil)
		root := NewField("users", NewArgList([]*Arg{where}), nil, nil, nil)
		d := NewDocument(Query, []*Field{root})

		_, got := CollectErrors(d)

		want := []ArgDiagnostic{{Path: Path{"where", "id", 1}, Err: elemErr}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("arg diagnostics mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPath(t *testing.T) {
	p := Path{"where", "id"}
	c1 := p.Child(0)
	c2 := p.Child(1)

	if got, want := c1.String(), "where.id.0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := c2.String(), "where.id.1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
