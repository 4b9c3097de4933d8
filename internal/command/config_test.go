// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  any
	}{
		{name: "true literal", value: "true", want: true},
		{name: "yes literal", value: "Yes", want: true},
		{name: "false literal", value: "false", want: false},
		{name: "no literal", value: "n", want: false},
		{name: "integer", value: "42", want: 42},
		{name: "negative integer", value: "-1", want: -1},
		{name: "plain string", value: "terraform", want: "terraform"},
		{name: "numeric-looking string", value: "1.5", want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseConfigValue(tt.value))
		})
	}
}

func TestFlattenConfig(t *testing.T) {
	into := map[string]interface{}{}
	flattenConfig("", map[string]interface{}{
		"vars_dir": "envs",
		"colors": map[string]interface{}{
			"title": "#ffffff",
			"odd":   "#00c8f0",
		},
		"apply": map[string]interface{}{
			"auto_approve": true,
		},
	}, into)

	assert.Equal(t, map[string]interface{}{
		"vars_dir":           "envs",
		"colors.title":       "#ffffff",
		"colors.odd":         "#00c8f0",
		"apply.auto_approve": true,
	}, into)
}
