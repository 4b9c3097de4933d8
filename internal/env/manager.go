// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tfrun/tfrun/internal/log"
)

// File suffixes that identify environment files in the vars directory. A
// name present via either suffix contributes exactly one registry entry.
const (
	VarsSuffix    = ".tfvars"
	BackendSuffix = ".tfbackend"
)

// Manager discovers environments from the vars directory convention and
// answers lookup, validation and suggestion queries against them. It is not
// safe for concurrent use; each invocation builds and owns its own Manager.
type Manager struct {
	varsDir string
	envs    map[string]*Environment
}

// NewManager constructs a Manager rooted at varsDir and runs an initial
// discovery scan.
func NewManager(varsDir string) *Manager {
	m := &Manager{varsDir: varsDir}
	m.Discover()
	return m
}

// VarsDir returns the directory the manager scans.
func (m *Manager) VarsDir() string {
	return m.varsDir
}

// Discover rebuilds the registry from the vars directory. The directory is
// created when absent; failure to create it is not fatal, it just yields an
// empty registry. Re-runnable after template creation or copy side effects.
func (m *Manager) Discover() {
	m.envs = make(map[string]*Environment)

	if _, err := os.Stat(m.varsDir); os.IsNotExist(err) {
		if err := os.MkdirAll(m.varsDir, 0o755); err != nil {
			log.Warnf("vars dir create failed: dir=%s err=%v", m.varsDir, err)
			return
		}
	}

	entries, err := os.ReadDir(m.varsDir)
	if err != nil {
		log.Debugf("vars dir read failed: dir=%s err=%v", m.varsDir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		var stem string
		switch name := entry.Name(); {
		case strings.HasSuffix(name, VarsSuffix):
			stem = strings.TrimSuffix(name, VarsSuffix)
		case strings.HasSuffix(name, BackendSuffix):
			stem = strings.TrimSuffix(name, BackendSuffix)
		default:
			continue
		}
		if _, ok := m.envs[stem]; ok {
			continue
		}
		m.envs[stem] = m.conventional(stem)
	}

	log.Debugf("environments discovered: dir=%s count=%d", m.varsDir, len(m.envs))
}

// Get returns the registered environment for name, if any. No fuzzy
// matching; see Suggest for that.
func (m *Manager) Get(name string) (*Environment, bool) {
	e, ok := m.envs[name]
	return e, ok
}

// Names returns all registered environment names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.envs))
	for name := range m.envs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupOrRegister returns the environment for name, registering it on the
// fly when it is unknown but at least one of its conventional files exists
// on disk. The second result reports whether a new entry was added. This is
// the one read path that mutates the registry.
func (m *Manager) LookupOrRegister(name string) (*Environment, bool) {
	if e, ok := m.envs[name]; ok {
		return e, false
	}

	candidate := m.conventional(name)
	if candidate.IsPartiallyValid() || isFile(candidate.BackendFile) {
		m.envs[name] = candidate
		log.Debugf("environment registered on the fly: name=%s", name)
		return candidate, true
	}

	return nil, false
}

// Validate reports whether name is runnable. A name already in the registry
// passes without re-checking its files; missing files are the engine's to
// report. Unknown names are registered on the fly when possible, so Validate
// may mutate the registry. The returned error message contains "not found"
// so callers can trigger suggestion lookup on it.
func (m *Manager) Validate(name string) error {
	if e, _ := m.LookupOrRegister(name); e != nil {
		return nil
	}

	names := m.Names()
	if len(names) > 0 {
		return fmt.Errorf("environment '%s' not found. Available environments: %s",
			name, strings.Join(names, ", "))
	}
	return fmt.Errorf("environment '%s' not found. No environments available in %s/",
		name, m.varsDir)
}

// conventional builds the Environment for name using the directory naming
// convention. Neither file needs to exist.
func (m *Manager) conventional(name string) *Environment {
	return &Environment{
		Name:        name,
		VarsFile:    filepath.Join(m.varsDir, name+VarsSuffix),
		BackendFile: filepath.Join(m.varsDir, name+BackendSuffix),
	}
}
