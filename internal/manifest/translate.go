// This file translates decoded manifest blocks into engine options: cty
// default values become native Go values, and `elements` type keywords
// become element conversion rules.

package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/envcast"
	"github.com/specialistvlad/envcast/internal/ctxlog"
	"github.com/specialistvlad/envcast/internal/schema"
)

// translateVariable merges one decoded variable block into the options.
func translateVariable(ctx context.Context, v *schema.Variable, opts *envcast.Options) error {
	logger := ctxlog.FromContext(ctx)

	if v.Default != nil {
		if v.Default.IsNull() {
			// The engine owns the rejection of null defaults; record it
			// as-is so the error surfaces in key order.
			opts.Defaults[v.Name] = nil
		} else {
			native, err := ctyToNative(*v.Default)
			if err != nil {
				return fmt.Errorf("invalid default for variable %q: %w", v.Name, err)
			}
			opts.Defaults[v.Name] = native
		}
	}

	if isExprDefined(v.Elements) {
		kind, err := elemKindFromExpr(v.Elements)
		if err != nil {
			return fmt.Errorf("in variable %q: %w", v.Name, err)
		}
		opts.ArrayTypes[v.Name] = kind
		logger.Debug("Element type hint declared.", "variable", v.Name, "elements", string(kind))
	}

	return nil
}

// isExprDefined checks if an HCL expression was actually present in the
// source. The decoder populates optional expression fields with non-nil,
// zero-width placeholders, so a nil check is insufficient; a real attribute
// occupies bytes in the file.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}

// elemKindFromExpr converts a bare type keyword expression into an element
// conversion rule.
func elemKindFromExpr(expr hcl.Expression) (envcast.ElemKind, error) {
	v, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok {
		return "", fmt.Errorf("unsupported expression for elements type: %T", expr)
	}
	if len(v.Traversal) != 1 {
		return "", fmt.Errorf("invalid elements keyword: traversal path is not a single identifier")
	}
	switch name := v.Traversal.RootName(); name {
	case "string":
		return envcast.ElemString, nil
	case "number":
		return envcast.ElemNumber, nil
	case "bool", "boolean":
		return envcast.ElemBoolean, nil
	default:
		return "", fmt.Errorf("unknown elements type %q (expected string, number, or bool)", name)
	}
}

// ctyToNative recursively converts a cty value into the native Go shapes
// the engine dispatches on: string, float64, bool, []any, map[string]any.
func ctyToNative(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}

	t := val.Type()
	switch {
	case t == cty.String:
		return val.AsString(), nil

	case t == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil

	case t == cty.Bool:
		return val.True(), nil

	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			native, err := ctyToNative(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil

	case t.IsObjectType() || t.IsMapType():
		out := make(map[string]any)
		for name, ev := range val.AsValueMap() {
			native, err := ctyToNative(ev)
			if err != nil {
				return nil, err
			}
			out[name] = native
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported default value type %s", t.FriendlyName())
	}
}
