package compile

import (
	"context"
	"testing"

	"github.com/hanpama/querydoc/document"
	schema "github.com/hanpama/querydoc/schema"
)

func TestUnion_FirstCleanCandidateWins(t *testing.T) {
	t.Run("String value picks the String candidate", func(t *testing.T) {
		doc := mustCompile(t, "pick", map[string]any{"on": "hi"}, "User")
		a := doc.Fields[0].Args.ByKey("on")
		if a.Type == nil || a.Type.Scalar != schema.String {
			t.Fatalf("resolved type = %v, want String", a.Type)
		}
	})

	t.Run("Int value picks the Int candidate", func(t *testing.T) {
		doc := mustCompile(t, "pick", map[string]any{"on": 5}, "User")
		a := doc.Fields[0].Args.ByKey("on")
		if a.Type == nil || a.Type.Scalar != schema.Int {
			t.Fatalf("resolved type = %v, want Int", a.Type)
		}
	})
}

// An object missing one field is a nearer miss than a whole-value type
// mismatch, so the object candidate's diagnostics must be the ones reported.
func TestUnion_ScoringPrefersNearMiss(t *testing.T) {
	verr := compileErr(t, "search", map[string]any{
		"filter": map[string]any{"tag": "x"},
	}, "User")

	hard := hardArgErrs(verr)
	if len(hard) != 1 {
		t.Fatalf("want 1 hard error, got %d: %v", len(hard), verr)
	}
	ae := hard[0]
	if ae.Err.Kind != document.MissingArg || ae.Err.Name != "mode" {
		t.Fatalf("unexpected representative error: %+v", ae.Err)
	}
	if got := ae.Path.String(); got != "filter.mode" {
		t.Errorf("path = %q, want %q", got, "filter.mode")
	}
}

// When a checked and an unchecked variant fail the same way, the penalty on
// the unchecked variant's errors must make the checked one representative,
// regardless of declaration order.
func TestUnion_UncheckedVariantLoses(t *testing.T) {
	doc, err := Compile(context.Background(), testModel(), document.Query, "strict",
		map[string]any{"f": map[string]any{}}, "User")
	if err == nil {
		t.Fatalf("expected a validation error, got none")
	}

	a := doc.Fields[0].Args.ByKey("f")
	if a.Type == nil || a.Type.Unchecked {
		t.Fatalf("resolved type = %+v, want the checked Pair variant", a.Type)
	}
}

// The penalty attaches to the object candidate owning the error, not to the
// erroring field's own scalar ref, so two otherwise identical failures score
// apart when only their owners differ in the Unchecked flag.
func TestUnion_PenaltyFollowsOwningCandidate(t *testing.T) {
	missingX := func() *document.Arg {
		return document.NewArg("x", nil, scalarRef(schema.Int), &document.ArgError{
			Kind: document.MissingArg, Name: "x", Type: "Pair",
		})
	}
	unchecked := document.NewArg("f",
		document.NewArgList([]*document.Arg{missingX()}),
		&schema.InputRef{Kind: schema.InputObject, Object: "Pair", Unchecked: true}, nil)
	checked := document.NewArg("f",
		document.NewArgList([]*document.Arg{missingX()}),
		objectRef("Pair"), nil)

	su, sc := scoreAttempt(unchecked), scoreAttempt(checked)
	if su <= sc {
		t.Fatalf("unchecked attempt scored %v, checked scored %v; want unchecked strictly higher", su, sc)
	}
	if got := pickBest([]*document.Arg{unchecked, checked}); got != checked {
		t.Fatalf("representative attempt has type %+v, want the checked variant", got.Type)
	}
}
