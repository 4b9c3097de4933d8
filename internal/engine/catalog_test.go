// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogFilePolicies(t *testing.T) {
	tests := []struct {
		name         string
		wantsVars    bool
		wantsBackend bool
	}{
		{name: "init", wantsBackend: true},
		{name: "plan", wantsVars: true},
		{name: "apply", wantsVars: true},
		{name: "destroy", wantsVars: true},
		{name: "refresh", wantsVars: true},
		{name: "output"},
		{name: "validate"},
		{name: "fmt"},
		{name: "state"},
		{name: "workspace"},
		{name: "graph"},
		{name: "providers"},
		{name: "version"},
	}

	assert.Len(t, Names(), len(tests))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := Lookup(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.name, spec.Name)
			assert.NotEmpty(t, spec.Description)
			assert.Equal(t, tt.wantsVars, spec.NeedsVarsFile)
			assert.Equal(t, tt.wantsBackend, spec.NeedsBackendConfig)
			assert.NotNil(t, spec.DefaultArgs)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("import")
	assert.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
