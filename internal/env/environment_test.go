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

func writeFile(t *testing.T, path string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(path, []byte("environment = \"x\"\n"), 0o644))
}

func TestEnvironmentIsValid(t *testing.T) {
	dir := t.TempDir()
	e := &Environment{
		Name:        "dev",
		VarsFile:    filepath.Join(dir, "dev.tfvars"),
		BackendFile: filepath.Join(dir, "dev.tfbackend"),
	}

	assert.False(t, e.IsValid())
	assert.False(t, e.IsPartiallyValid())
	assert.Len(t, e.MissingFiles(), 2)

	writeFile(t, e.VarsFile)
	assert.False(t, e.IsValid())
	assert.True(t, e.IsPartiallyValid())
	assert.Equal(t, []string{e.BackendFile}, e.MissingFiles())

	writeFile(t, e.BackendFile)
	assert.True(t, e.IsValid())
	assert.Empty(t, e.MissingFiles())
}

func TestEnvironmentValidityNotCached(t *testing.T) {
	dir := t.TempDir()
	e := &Environment{
		Name:        "dev",
		VarsFile:    filepath.Join(dir, "dev.tfvars"),
		BackendFile: filepath.Join(dir, "dev.tfbackend"),
	}

	writeFile(t, e.VarsFile)
	writeFile(t, e.BackendFile)
	assert.True(t, e.IsValid())

	// Validity must track the filesystem, not construction time.
	assert.NoError(t, os.Remove(e.BackendFile))
	assert.False(t, e.IsValid())
}

func TestEnvironmentDirectoryIsNotAFile(t *testing.T) {
	dir := t.TempDir()
	varsPath := filepath.Join(dir, "dev.tfvars")
	assert.NoError(t, os.Mkdir(varsPath, 0o755))

	e := &Environment{Name: "dev", VarsFile: varsPath, BackendFile: filepath.Join(dir, "dev.tfbackend")}
	assert.False(t, e.IsPartiallyValid())
}
