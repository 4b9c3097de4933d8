// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/tfrun/tfrun/internal/log"
)

// CreateTemplate writes placeholder vars and backend files for name,
// creating the vars directory as needed. Files that already exist are left
// untouched, so the operation is idempotent. The new environment is
// registered on success. Returns false on any I/O failure; it never raises
// to the caller.
func (m *Manager) CreateTemplate(name string) bool {
	if err := os.MkdirAll(m.varsDir, 0o755); err != nil {
		log.Debugf("template dir create failed: dir=%s err=%v", m.varsDir, err)
		return false
	}

	e := m.conventional(name)

	if !isFile(e.VarsFile) {
		if err := os.WriteFile(e.VarsFile, []byte(varsStub(name)), 0o644); err != nil {
			log.Debugf("vars stub write failed: file=%s err=%v", e.VarsFile, err)
			return false
		}
	}

	if !isFile(e.BackendFile) {
		if err := os.WriteFile(e.BackendFile, []byte(backendStub(name)), 0o644); err != nil {
			log.Debugf("backend stub write failed: file=%s err=%v", e.BackendFile, err)
			return false
		}
	}

	m.envs[name] = e
	return true
}

// Copy duplicates the source environment's files under the target name,
// rewriting references to the source name, and rescans the registry so the
// new environment is immediately visible.
func (m *Manager) Copy(source, target string) error {
	src, ok := m.Get(source)
	if !ok {
		return fmt.Errorf("source environment '%s' not found", source)
	}

	if err := os.MkdirAll(m.varsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create vars directory: %w", err)
	}

	dst := m.conventional(target)

	if isFile(src.VarsFile) {
		if err := copyRewrite(src.VarsFile, dst.VarsFile, source, target); err != nil {
			return fmt.Errorf("failed to copy vars file: %w", err)
		}
	}

	if isFile(src.BackendFile) {
		// Only rewrite path segments so bucket names that merely contain the
		// source string survive intact.
		if err := copyRewrite(src.BackendFile, dst.BackendFile, "/"+source+"/", "/"+target+"/"); err != nil {
			return fmt.Errorf("failed to copy backend file: %w", err)
		}
	}

	m.Discover()
	return nil
}

func copyRewrite(src, dst, from, to string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	rewritten := strings.ReplaceAll(string(content), from, to)
	return os.WriteFile(dst, []byte(rewritten), 0o644)
}

func varsStub(name string) string {
	return fmt.Sprintf(`# Variables for the %s environment.

environment = %q
region      = "us-east-1"
`, name, name)
}

func backendStub(name string) string {
	return fmt.Sprintf(`bucket  = "terraform-state-%s"
key     = "terraform/%s/terraform.tfstate"
region  = "us-east-1"
encrypt = true
`, name, name)
}
