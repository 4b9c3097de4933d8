// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package env

import "os"

// Environment is one deployment target: a name plus the variables file and
// backend configuration file that drive the engine for that target.
type Environment struct {
	Name        string
	VarsFile    string
	BackendFile string
}

// IsValid reports whether both files exist. The filesystem is consulted on
// every call rather than cached; the user may edit or remove files between
// validation and execution.
func (e *Environment) IsValid() bool {
	return isFile(e.VarsFile) && isFile(e.BackendFile)
}

// IsPartiallyValid reports whether at least the variables file exists.
func (e *Environment) IsPartiallyValid() bool {
	return isFile(e.VarsFile)
}

// MissingFiles returns the paths of the environment files absent on disk.
func (e *Environment) MissingFiles() []string {
	var missing []string
	if !isFile(e.VarsFile) {
		missing = append(missing, e.VarsFile)
	}
	if !isFile(e.BackendFile) {
		missing = append(missing, e.BackendFile)
	}
	return missing
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
