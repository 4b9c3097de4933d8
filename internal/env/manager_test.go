// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// seedDir creates a vars directory holding the given files.
func seedDir(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, file := range files {
		writeFile(t, filepath.Join(dir, file))
	}
	return dir
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{
			name:  "vars files only",
			files: []string{"dev.tfvars", "prod.tfvars"},
			want:  []string{"dev", "prod"},
		},
		{
			name:  "backend file only still contributes an entry",
			files: []string{"stage.tfbackend"},
			want:  []string{"stage"},
		},
		{
			name:  "pair is not duplicated",
			files: []string{"dev.tfvars", "dev.tfbackend"},
			want:  []string{"dev"},
		},
		{
			name:  "unrelated files ignored",
			files: []string{"dev.tfvars", "README.md", "dev.tf"},
			want:  []string{"dev"},
		},
		{
			name:  "empty directory",
			files: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(seedDir(t, tt.files...))
			assert.Equal(t, tt.want, m.Names())
		})
	}
}

func TestDiscoverCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vars")
	m := NewManager(dir)

	assert.Empty(t, m.Names())
	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDiscoverUncreatableDirIsNotFatal(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "parent")
	writeFile(t, parent) // a file where the parent dir should be

	m := NewManager(filepath.Join(parent, "vars"))
	assert.Empty(t, m.Names())
}

func TestGet(t *testing.T) {
	m := NewManager(seedDir(t, "dev.tfvars"))

	e, ok := m.Get("dev")
	assert.True(t, ok)
	assert.Equal(t, "dev", e.Name)
	assert.Equal(t, filepath.Join(m.VarsDir(), "dev.tfvars"), e.VarsFile)
	assert.Equal(t, filepath.Join(m.VarsDir(), "dev.tfbackend"), e.BackendFile)

	_, ok = m.Get("prod")
	assert.False(t, ok)
}

func TestValidateKnownNameSkipsFileChecks(t *testing.T) {
	// Only the backend file exists; the catalogued name must still pass.
	// Missing files are the engine's to report.
	m := NewManager(seedDir(t, "dev.tfbackend"))
	assert.NoError(t, m.Validate("dev"))
}

func TestValidateUnknownNameListsKnown(t *testing.T) {
	m := NewManager(seedDir(t, "dev.tfvars", "prod.tfvars"))

	err := m.Validate("staging")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "dev")
	assert.Contains(t, err.Error(), "prod")
}

func TestValidateEmptyRegistry(t *testing.T) {
	m := NewManager(seedDir(t))

	err := m.Validate("dev")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "No environments available")
}

func TestValidateRegistersOnTheFly(t *testing.T) {
	m := NewManager(seedDir(t, "dev.tfvars"))

	// A file dropped in after the scan validates and lands in the registry.
	writeFile(t, filepath.Join(m.VarsDir(), "stage.tfvars"))
	assert.NoError(t, m.Validate("stage"))

	e, ok := m.Get("stage")
	assert.True(t, ok)
	assert.Equal(t, "stage", e.Name)
}

func TestLookupOrRegister(t *testing.T) {
	m := NewManager(seedDir(t, "dev.tfvars"))

	e, registered := m.LookupOrRegister("dev")
	assert.NotNil(t, e)
	assert.False(t, registered)

	writeFile(t, filepath.Join(m.VarsDir(), "qa.tfbackend"))
	e, registered = m.LookupOrRegister("qa")
	assert.NotNil(t, e)
	assert.True(t, registered)

	e, registered = m.LookupOrRegister("nope")
	assert.Nil(t, e)
	assert.False(t, registered)
}

func TestDiscoverIsRerunnable(t *testing.T) {
	m := NewManager(seedDir(t, "dev.tfvars"))
	assert.Equal(t, []string{"dev"}, m.Names())

	writeFile(t, filepath.Join(m.VarsDir(), "prod.tfvars"))
	m.Discover()
	assert.Equal(t, []string{"dev", "prod"}, m.Names())
}
