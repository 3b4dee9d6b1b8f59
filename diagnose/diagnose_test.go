package diagnose

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hanpama/querydoc/document"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		name      string
		path      document.Path
		selection any
		want      document.Path
	}{
		{
			name:      "Select marker kept for a select caller",
			path:      document.Path{"select", "posts", "select"},
			selection: map[string]any{"select": map[string]any{"posts": map[string]any{"select": map[string]any{}}}},
			want:      document.Path{"select", "posts", "select"},
		},
		{
			name:      "Select marker rewritten for an include caller",
			path:      document.Path{"select", "posts", "select"},
			selection: map[string]any{"include": map[string]any{"posts": map[string]any{"select": map[string]any{}}}},
			want:      document.Path{"include", "posts", "select"},
		},
		{
			name:      "Auto-wrapped index dropped",
			path:      document.Path{"where", "id", 0},
			selection: map[string]any{"where": map[string]any{"id": 5}},
			want:      document.Path{"where", "id"},
		},
		{
			name:      "Real list index kept",
			path:      document.Path{"where", "id", 1},
			selection: map[string]any{"where": map[string]any{"id": []any{1, "x"}}},
			want:      document.Path{"where", "id", 1},
		},
		{
			name:      "Index zero kept for a real list",
			path:      document.Path{"where", "id", 0},
			selection: map[string]any{"where": map[string]any{"id": []any{"x"}}},
			want:      document.Path{"where", "id", 0},
		},
		{
			name:      "Marker kept for an injected default selection",
			path:      document.Path{"select", "name"},
			selection: map[string]any{},
			want:      document.Path{"select", "name"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePath(tc.path, tc.selection)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("NormalizePath mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func newTestError() *ValidationError {
	selection := map[string]any{
		"limit":  "ten",
		"select": map[string]any{"zzz": true},
	}
	fieldErrs := []document.FieldDiagnostic{{
		Path: document.Path{"select", "zzz"},
		Err:  &document.FieldError{Kind: document.InvalidFieldName, Name: "zzz", Model: "User"},
	}}
	argErrs := []document.ArgDiagnostic{
		{
			Path: document.Path{"limit"},
			Err:  &document.ArgError{Kind: document.InvalidArgType, Name: "limit", Provided: "ten"},
		},
		{
			Path: document.Path{"where"},
			Err:  &document.ArgError{Kind: document.MissingArg, Name: "where", Type: "users", Informational: true},
		},
	}
	return NewValidationError("query", "users", selection, fieldErrs, argErrs)
}

func TestValidationError_Error(t *testing.T) {
	msg := newTestError().Error()

	if !strings.HasPrefix(msg, "invalid query.users invocation:\n") {
		t.Errorf("unexpected header:\n%s", msg)
	}
	if !strings.Contains(msg, `Unknown field "zzz"`) {
		t.Errorf("missing field error line:\n%s", msg)
	}
	if !strings.Contains(msg, `Argument "limit"`) {
		t.Errorf("missing arg error line:\n%s", msg)
	}
	// Informational hints are renderer material, not error lines.
	if strings.Contains(msg, `"where"`) {
		t.Errorf("informational entry leaked into the error message:\n%s", msg)
	}
}

func TestRenderer(t *testing.T) {
	e := newTestError()

	t.Run("Default output lists hints", func(t *testing.T) {
		out := NewRenderer(Options{}).Render(e)
		if !strings.Contains(out, "Available arguments:") {
			t.Errorf("missing hint section:\n%s", out)
		}
		if !strings.Contains(out, "where:") {
			t.Errorf("missing hint line:\n%s", out)
		}
		if strings.Contains(out, ansiRed) {
			t.Errorf("unexpected ANSI escapes:\n%q", out)
		}
	})

	t.Run("Compact drops hints", func(t *testing.T) {
		out := NewRenderer(Options{Compact: true}).Render(e)
		if strings.Contains(out, "Available arguments:") {
			t.Errorf("hint section present in compact output:\n%s", out)
		}
	})

	t.Run("Color wraps error lines", func(t *testing.T) {
		out := NewRenderer(Options{Color: true}).Render(e)
		if !strings.Contains(out, ansiRed) || !strings.Contains(out, ansiReset) {
			t.Errorf("missing ANSI escapes:\n%q", out)
		}
	})
}
