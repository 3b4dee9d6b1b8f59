// Package remap post-processes a response payload against a compiled
// document, replacing wire-primitive leaves (temporal, decimal, big-integer,
// byte-sequence and structured-text values) with richer Go representations.
// It is pure data transformation: it validates nothing and never fails.
package remap

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hanpama/querydoc/document"
	"github.com/hanpama/querydoc/internal/eventbus"
	"github.com/hanpama/querydoc/internal/events"
	"github.com/hanpama/querydoc/internal/reqid"
	schema "github.com/hanpama/querydoc/schema"
)

// Apply walks payload shape-for-shape with the document's field tree and
// coerces designated scalar leaves in place. The payload must be exclusively
// owned by the caller: leaves are mutated, not copied. Missing and null
// leaves, and leaves that fail to parse, are left untouched.
func Apply(d *document.Document, payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}
	for _, f := range d.Fields {
		remapField(f, payload)
	}
	return payload
}

// ApplyContext is Apply plus lifecycle events, letting a compile span adopt
// the remap span when both run under the same correlation ID.
func ApplyContext(ctx context.Context, d *document.Document, payload map[string]any) map[string]any {
	ctx, _ = reqid.NewContext(ctx)
	rootField := ""
	if len(d.Fields) > 0 {
		rootField = d.Fields[0].Name
	}
	started := time.Now()
	eventbus.Publish(ctx, events.RemapStart{Operation: string(d.Kind), RootField: rootField})
	out := Apply(d, payload)
	eventbus.Publish(ctx, events.RemapFinish{
		Operation: string(d.Kind),
		RootField: rootField,
		Duration:  time.Since(started),
	})
	return out
}

func remapField(f *document.Field, parent map[string]any) {
	if f.Synthetic || f.Schema == nil {
		return
	}
	v, ok := parent[f.Name]
	if !ok || v == nil {
		return
	}
	sf := f.Schema

	if sf.Kind == schema.KindObject {
		switch t := v.(type) {
		case map[string]any:
			for _, c := range f.Children {
				remapField(c, t)
			}
		case []any:
			for _, el := range t {
				if m, ok := el.(map[string]any); ok {
					for _, c := range f.Children {
						remapField(c, m)
					}
				}
			}
		}
		return
	}

	kind := sf.Scalar()
	if !kind.NeedsRemap() {
		return
	}
	if l, ok := v.([]any); ok {
		for i, el := range l {
			if el != nil {
				l[i] = coerceLeaf(kind, el)
			}
		}
		return
	}
	parent[f.Name] = coerceLeaf(kind, v)
}

// coerceLeaf converts one raw leaf to its in-memory representation, returning
// the input unchanged when it does not parse.
func coerceLeaf(kind schema.ScalarKind, v any) any {
	switch kind {
	case schema.DateTime:
		if s, ok := v.(string); ok {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return t
			}
		}
	case schema.Decimal:
		switch t := v.(type) {
		case string:
			if d, err := decimal.NewFromString(t); err == nil {
				return d
			}
		case float64:
			return decimal.NewFromFloat(t)
		case int64:
			return decimal.NewFromInt(t)
		case int:
			return decimal.NewFromInt(int64(t))
		}
	case schema.BigInt:
		switch t := v.(type) {
		case string:
			if n, ok := new(big.Int).SetString(t, 10); ok {
				return n
			}
		case float64:
			return big.NewInt(int64(t))
		case int64:
			return big.NewInt(t)
		case int:
			return big.NewInt(int64(t))
		}
	case schema.Bytes:
		if s, ok := v.(string); ok {
			if b, err := base64.StdEncoding.DecodeString(s); err == nil {
				return b
			}
		}
	case schema.Json:
		if raw, err := json.Marshal(v); err == nil {
			return json.RawMessage(raw)
		}
	}
	return v
}
