// Package compile turns an untyped selection value into a validated
// query document against a schema model.
//
// Compilation never aborts on invalid input: every problem is recorded on the
// exact tree node it was detected at, the tree is always completed, and the
// entry point reports a single aggregate error when the finished document
// contains any invalid node. The compiler is pure: it reads the model,
// allocates new nodes bottom-up and returns; concurrent compilations share
// nothing but the read-only model.
package compile

import (
	"context"
	"time"

	"github.com/hanpama/querydoc/diagnose"
	"github.com/hanpama/querydoc/document"
	"github.com/hanpama/querydoc/internal/eventbus"
	"github.com/hanpama/querydoc/internal/events"
	"github.com/hanpama/querydoc/internal/reqid"
	schema "github.com/hanpama/querydoc/schema"
)

// maxDepth bounds selection recursion. Schema models may be cyclic, so the
// caller's selection value is the only source of unbounded descent.
const maxDepth = 128

// rootTypeName maps an operation kind to the object type holding its root
// fields.
func rootTypeName(op document.Operation) string {
	if op == document.Mutation {
		return "Mutation"
	}
	return "Query"
}

// Compile resolves selection against model and returns the compiled document.
//
// selection is the value of the root field: its keys are the root field's
// arguments plus the reserved descent keys "select" and "include". modelName
// is the ambient model the root field returns, used for relation-aware
// default typing.
//
// The returned document is always complete. The error is non-nil exactly when
// the document contains any invalid node; it is a *diagnose.ValidationError
// carrying every diagnostic with caller-visible paths.
func Compile(
	ctx context.Context,
	model *schema.Model,
	op document.Operation,
	rootField string,
	selection map[string]any,
	modelName string,
) (*document.Document, error) {
	ctx, _ = reqid.NewContext(ctx)
	started := time.Now()
	eventbus.Publish(ctx, events.CompileStart{
		Operation: string(op),
		RootField: rootField,
		Model:     modelName,
	})

	c := &compiler{model: model}
	if selection == nil {
		selection = map[string]any{}
	}
	rootObj := model.Object(rootTypeName(op))
	root := c.compileRoot(rootField, selection, rootObj, modelName)
	doc := document.NewDocument(op, []*document.Field{root})

	var err error
	errCount := 0
	if doc.HasErrors() {
		fieldErrs, argErrs := document.CollectErrors(doc)
		verr := diagnose.NewValidationError(string(op), rootField, selection, fieldErrs, argErrs)
		errCount = len(verr.FieldErrors) + len(verr.ArgErrors)
		err = verr
	}
	eventbus.Publish(ctx, events.CompileFinish{
		Operation:  string(op),
		RootField:  rootField,
		Model:      modelName,
		ErrorCount: errCount,
		Duration:   time.Since(started),
	})
	return doc, err
}

type compiler struct {
	model *schema.Model
}

// compileRoot compiles the single root field. An unknown root field reports
// InvalidFieldName against the operation's root object like any other field.
func (c *compiler) compileRoot(name string, selection map[string]any, rootObj *schema.Object, modelName string) *document.Field {
	if rootObj == nil {
		return document.NewField(name, nil, nil, errUnknownField(name, "", nil, nil), nil)
	}
	sf := rootObj.FieldByName(name)
	if sf == nil {
		opts := rootObj.FieldNames()
		return document.NewField(name, nil, nil, errUnknownField(name, rootObj.Name, opts, opts), nil)
	}
	return c.compileField(name, selection, sf, modelName, 0)
}
