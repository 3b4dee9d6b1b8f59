package compile

import (
	"math"

	"github.com/hanpama/querydoc/document"
	"github.com/hanpama/querydoc/internal/value"
	schema "github.com/hanpama/querydoc/schema"
)

// Scoring weights for union disambiguation. Lower scores win. The weights are
// chosen so that a type mismatch on a deeply nested value always outweighs a
// handful of shallow missing-field errors: the caller most likely meant the
// candidate requiring the fewest, shallowest corrections.
const (
	// typeMismatchWeight scales the exponential depth penalty applied to
	// InvalidArgType errors.
	typeMismatchWeight = 10.0
	// depthBase is the exponent base for the nesting depth of the offending
	// provided value.
	depthBase = 2.0
	// uncheckedFactor multiplies missing-argument and unknown-name errors
	// owned by an Unchecked (escape-hatch) variant, so the checked variant
	// of a type pair wins near ties.
	uncheckedFactor = 2.0
)

// attemptError is one error found in a failed candidate compilation, with
// enough context to score it.
type attemptError struct {
	err       *document.ArgError
	path      document.Path
	unchecked bool
}

// pickBest returns the failing attempt with the lowest score. Ties keep the
// earliest candidate in declaration order.
func pickBest(attempts []*document.Arg) *document.Arg {
	best := attempts[0]
	bestScore := scoreAttempt(best)
	for _, a := range attempts[1:] {
		if s := scoreAttempt(a); s < bestScore {
			best, bestScore = a, s
		}
	}
	return best
}

// scoreAttempt rates a failed candidate compilation: the error count, plus an
// exponential penalty on how deeply nested each type mismatch sits, plus a
// logarithmic path-length tie-breaker, with unchecked-variant errors
// multiplied up.
func scoreAttempt(a *document.Arg) float64 {
	var errs []attemptError
	collectAttempt(a, document.Path{}, nil, &errs)
	score := 0.0
	for _, e := range errs {
		contrib := 1.0
		if e.err.Kind == document.InvalidArgType {
			contrib += typeMismatchWeight * math.Pow(depthBase, float64(value.Depth(e.err.Provided)))
		}
		contrib += math.Log(float64(1 + len(e.path)))
		if e.unchecked && (e.err.Kind == document.MissingArg || e.err.Kind == document.InvalidArgName) {
			contrib *= uncheckedFactor
		}
		score += contrib
	}
	return score
}

// collectAttempt gathers the non-informational errors of a candidate
// compilation together with their local paths and the input object that owns
// each error. Ownership follows the enclosing object candidate, never the
// erroring field's own declared ref, so the unchecked penalty lands on the
// escape-hatch candidate and not on its leaf fields.
func collectAttempt(a *document.Arg, path document.Path, owner *schema.InputRef, out *[]attemptError) {
	if a.Err != nil && !a.Err.Informational {
		*out = append(*out, attemptError{
			err:       a.Err,
			path:      path,
			unchecked: owner != nil && owner.Unchecked,
		})
	}
	next := owner
	if a.Type != nil && a.Type.Kind == schema.InputObject {
		next = a.Type
	}
	switch v := a.Value.(type) {
	case *document.ArgList:
		for _, sub := range v.Args {
			collectAttempt(sub, path.Child(sub.Key), next, out)
		}
	case []*document.Arg:
		for i, el := range v {
			collectAttempt(el, path.Child(i), next, out)
		}
	}
}
