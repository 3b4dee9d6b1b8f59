package document

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	schema "github.com/hanpama/querydoc/schema"
)

// Serialize renders the document as GraphQL-style query text. The output is
// deterministic: two documents compiled from identical inputs serialize to
// identical text. Invalid nodes serialize best-effort from their raw values;
// serialization performs no validation.
func Serialize(d *Document) string {
	op := &ast.OperationDefinition{
		Operation:    ast.Operation(d.Kind),
		SelectionSet: fieldsToSelectionSet(d.Fields),
	}
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(&ast.QueryDocument{
		Operations: ast.OperationList{op},
	})
	return buf.String()
}

func fieldsToSelectionSet(fields []*Field) ast.SelectionSet {
	var set ast.SelectionSet
	for _, f := range fields {
		if f.Synthetic {
			continue
		}
		// The parser sets Alias == Name for unaliased fields; the formatter
		// expects the same shape.
		set = append(set, &ast.Field{
			Alias:        f.Name,
			Name:         f.Name,
			Arguments:    argsToAST(f.Args),
			SelectionSet: fieldsToSelectionSet(f.Children),
		})
	}
	return set
}

func argsToAST(l *ArgList) ast.ArgumentList {
	if l == nil {
		return nil
	}
	var out ast.ArgumentList
	for _, a := range l.Args {
		// Error carriers have no usable value; informational hints have
		// none at all.
		if a.Err != nil {
			continue
		}
		out = append(out, &ast.Argument{Name: a.Key, Value: argValueToAST(a)})
	}
	return out
}

func argValueToAST(a *Arg) *ast.Value {
	switch v := a.Value.(type) {
	case *ArgList:
		obj := &ast.Value{Kind: ast.ObjectValue}
		for _, sub := range v.Args {
			if sub.Err != nil {
				continue
			}
			obj.Children = append(obj.Children, &ast.ChildValue{Name: sub.Key, Value: argValueToAST(sub)})
		}
		return obj
	case []*Arg:
		list := &ast.Value{Kind: ast.ListValue}
		for _, el := range v {
			list.Children = append(list.Children, &ast.ChildValue{Value: argValueToAST(el)})
		}
		return list
	default:
		return scalarToAST(a.Value, a.Type)
	}
}

func scalarToAST(v any, typ *schema.InputRef) *ast.Value {
	switch t := v.(type) {
	case nil:
		return &ast.Value{Kind: ast.NullValue, Raw: "null"}
	case bool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(t)}
	case string:
		if typ != nil && typ.Kind == schema.InputEnum {
			return &ast.Value{Kind: ast.EnumValue, Raw: t}
		}
		return &ast.Value{Kind: ast.StringValue, Raw: t}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return &ast.Value{Kind: ast.IntValue, Raw: fmt.Sprint(t)}
	case float32:
		return &ast.Value{Kind: ast.FloatValue, Raw: strconv.FormatFloat(float64(t), 'g', -1, 32)}
	case float64:
		return &ast.Value{Kind: ast.FloatValue, Raw: strconv.FormatFloat(t, 'g', -1, 64)}
	case time.Time:
		return &ast.Value{Kind: ast.StringValue, Raw: t.UTC().Format(time.RFC3339Nano)}
	case decimal.Decimal:
		return &ast.Value{Kind: ast.FloatValue, Raw: t.String()}
	case *big.Int:
		return &ast.Value{Kind: ast.IntValue, Raw: t.String()}
	case uuid.UUID:
		return &ast.Value{Kind: ast.StringValue, Raw: t.String()}
	case []byte:
		return &ast.Value{Kind: ast.StringValue, Raw: base64.StdEncoding.EncodeToString(t)}
	case map[string]any:
		// Raw value kept on an invalid node. Keys are sorted so output
		// stays deterministic.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := &ast.Value{Kind: ast.ObjectValue}
		for _, k := range keys {
			obj.Children = append(obj.Children, &ast.ChildValue{Name: k, Value: scalarToAST(t[k], nil)})
		}
		return obj
	case []any:
		list := &ast.Value{Kind: ast.ListValue}
		for _, el := range t {
			list.Children = append(list.Children, &ast.ChildValue{Value: scalarToAST(el, nil)})
		}
		return list
	default:
		return &ast.Value{Kind: ast.StringValue, Raw: fmt.Sprint(t)}
	}
}
