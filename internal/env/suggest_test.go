// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	m := NewManager(seedDir(t,
		"dev.tfvars",
		"prod.tfvars",
		"staging.tfvars",
	))

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "prefix match", query: "de", want: "dev"},
		{name: "prefix beats substring", query: "stag", want: "staging"},
		{name: "substring match", query: "tagi", want: "staging"},
		{name: "close edit distance", query: "prod2", want: "prod"},
		{name: "doubled letter", query: "devv", want: "dev"},
		{name: "nothing close falls back to first name", query: "xyz", want: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Suggest(tt.query)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestEmptyRegistry(t *testing.T) {
	m := NewManager(seedDir(t))

	got, ok := m.Suggest("dev")
	assert.False(t, ok)
	assert.Empty(t, got)
}
