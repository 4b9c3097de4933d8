// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tfvars

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/tfrun/tfrun/internal/log"
)

// Parse evaluates the top-level attributes of an HCL variables or backend
// file and returns them keyed by attribute name. Attributes that reference
// variables or functions cannot be evaluated statically and are skipped with
// a debug log; environment files are expected to hold literals.
func Parse(path string) (map[string]cty.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read attributes of %s: %w", path, diags)
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(&hcl.EvalContext{})
		if diags.HasErrors() {
			log.Debugf("attribute skipped, not statically evaluable: file=%s attr=%s", path, name)
			continue
		}
		values[name] = value
	}

	return values, nil
}

// JSON renders the file's attributes as a canonical JSON object, suitable
// for diffing and machine output.
func JSON(path string) ([]byte, error) {
	values, err := Parse(path)
	if err != nil {
		return nil, err
	}

	obj := cty.EmptyObjectVal
	if len(values) > 0 {
		obj = cty.ObjectVal(values)
	}

	return ctyjson.Marshal(obj, obj.Type())
}

// GetString returns the string attribute named key, or "" when absent or of
// another type.
func GetString(path, key string) string {
	values, err := Parse(path)
	if err != nil {
		return ""
	}
	value, ok := values[key]
	if !ok || value.Type() != cty.String || value.IsNull() {
		return ""
	}
	return value.AsString()
}

// FormatLines renders the attributes as sorted "name = value" lines for
// display.
func FormatLines(values map[string]cty.Value) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		value := values[name]
		rendered, err := ctyjson.Marshal(value, value.Type())
		if err != nil {
			rendered = []byte(fmt.Sprintf("%v", value))
		}
		lines = append(lines, fmt.Sprintf("%s = %s", name, rendered))
	}
	return lines
}
