package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/nodegraph/internal/config"
	"github.com/specialistvlad/nodegraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// stringListType is what `children` and `links` must convert to.
var stringListType = cty.List(cty.String)

// translateNode converts a decoded `node` block into its model form.
func (l *Loader) translateNode(ctx context.Context, block *NodeBlock) (*config.NodeSpec, error) {
	children, err := stringList(ctx, block.Children, "children")
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", block.Name, err)
	}
	links, err := stringList(ctx, block.Links, "links")
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", block.Name, err)
	}
	return &config.NodeSpec{
		Name:     block.Name,
		Children: children,
		Links:    links,
	}, nil
}

// stringList evaluates an optional list attribute into a Go string slice.
func stringList(ctx context.Context, expr hcl.Expression, attrName string) ([]string, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate %q: %w", attrName, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("attribute %q must be known at load time", attrName)
	}

	val, err := convert.Convert(val, stringListType)
	if err != nil {
		return nil, fmt.Errorf("attribute %q must be a list of strings: %w", attrName, err)
	}

	out := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.IsNull() {
			return nil, fmt.Errorf("attribute %q contains a null element", attrName)
		}
		out = append(out, v.AsString())
	}
	return out, nil
}

// isExprDefined checks if an HCL expression was actually present in the source.
// gohcl fills omitted optional expression fields with a zero-width placeholder,
// so a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}
