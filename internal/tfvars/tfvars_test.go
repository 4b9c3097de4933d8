// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tfvars

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func writeVars(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dev.tfvars")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	path := writeVars(t, `
environment = "dev"
replicas    = 3
encrypt     = true
subnets     = ["a", "b"]
`)

	values, err := Parse(path)
	assert.NoError(t, err)

	assert.True(t, values["environment"].RawEquals(cty.StringVal("dev")))
	assert.True(t, values["replicas"].RawEquals(cty.NumberIntVal(3)))
	assert.True(t, values["encrypt"].RawEquals(cty.True))
	assert.True(t, values["subnets"].RawEquals(
		cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})))
}

func TestParseSkipsNonStaticAttributes(t *testing.T) {
	path := writeVars(t, `
environment = "dev"
derived     = var.something
`)

	values, err := Parse(path)
	assert.NoError(t, err)
	assert.Contains(t, values, "environment")
	assert.NotContains(t, values, "derived")
}

func TestParseInvalidHCL(t *testing.T) {
	_, err := Parse(writeVars(t, "environment = \n"))
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.tfvars"))
	assert.Error(t, err)
}

func TestJSON(t *testing.T) {
	path := writeVars(t, `
environment = "dev"
encrypt     = true
`)

	got, err := JSON(path)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"environment": "dev", "encrypt": true}`, string(got))
}

func TestJSONEmptyFile(t *testing.T) {
	got, err := JSON(writeVars(t, ""))
	assert.NoError(t, err)
	assert.JSONEq(t, `{}`, string(got))
}

func TestGetString(t *testing.T) {
	path := writeVars(t, `
bucket = "terraform-state-dev"
count  = 2
`)

	assert.Equal(t, "terraform-state-dev", GetString(path, "bucket"))
	assert.Empty(t, GetString(path, "region"))
	assert.Empty(t, GetString(path, "count"))
	assert.Empty(t, GetString(filepath.Join(t.TempDir(), "nope"), "bucket"))
}

func TestFormatLines(t *testing.T) {
	lines := FormatLines(map[string]cty.Value{
		"region":  cty.StringVal("us-east-1"),
		"encrypt": cty.True,
	})

	assert.Equal(t, []string{
		`encrypt = true`,
		`region = "us-east-1"`,
	}, lines)
}
