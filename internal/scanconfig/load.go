package scanconfig

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/refgraph/internal/ctxlog"
)

// scanFile is the decode target for a scan configuration file.
type scanFile struct {
	LabelMacro       string   `hcl:"label_macro,optional"`
	ReferenceMacros  []string `hcl:"reference_macros,optional"`
	MainEnvironments []string `hcl:"main_environments,optional"`
}

// Load reads a scan configuration from an HCL file. Attributes left out keep
// their defaults. The built-in sets are exposed to the file as
// default_reference_macros, default_main_environments and
// default_label_macro, so a config can build on them instead of restating
// them.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scan config file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scan config %s: %s", path, diags.Error())
	}

	def := Default()
	var parsed scanFile
	diags = gohcl.DecodeBody(file.Body, evalContext(def), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scan config %s: %s", path, diags.Error())
	}

	if parsed.LabelMacro == "" {
		parsed.LabelMacro = def.LabelMacro
	}
	if len(parsed.ReferenceMacros) == 0 {
		parsed.ReferenceMacros = def.ReferenceMacros
	}
	if len(parsed.MainEnvironments) == 0 {
		parsed.MainEnvironments = def.MainEnvironments
	}

	cfg := New(parsed.LabelMacro, parsed.ReferenceMacros, parsed.MainEnvironments)
	logger.Debug("Scan config loaded.",
		"reference_macros", len(cfg.ReferenceMacros),
		"main_environments", len(cfg.MainEnvironments))
	return cfg, nil
}

func evalContext(def *Config) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_label_macro":       cty.StringVal(def.LabelMacro),
			"default_reference_macros":  stringList(def.ReferenceMacros),
			"default_main_environments": stringList(def.MainEnvironments),
		},
	}
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}
