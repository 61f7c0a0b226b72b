package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/turbot/pipe-fittings/error_helpers"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// ParseConfig decodes HCL config bytes into target
func ParseConfig[T any](configString []byte, filename string, target *T) error {
	file, diags := hclsyntax.ParseConfig(configString, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return error_helpers.HclDiagsToError("failed to parse config", diags)
	}
	// create empty eval context
	evalCtx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value),
		Functions: make(map[string]function.Function),
	}
	moreDiags := gohcl.DecodeBody(file.Body, evalCtx, target)
	diags = append(diags, moreDiags...)
	if diags.HasErrors() {
		return error_helpers.HclDiagsToError("failed to parse config", diags)
	}
	return nil
}
