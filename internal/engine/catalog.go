// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import "sort"

// Spec describes one logical engine command: which environment files its
// invocation needs and any default arguments appended after the derived
// flags.
type Spec struct {
	Name               string
	Description        string
	NeedsVarsFile      bool
	NeedsBackendConfig bool
	DefaultArgs        []string
}

// catalog is the static table of logical commands. Read-only after init.
var catalog = map[string]Spec{
	"init": {
		Name:               "init",
		Description:        "Initialize a working directory",
		NeedsBackendConfig: true,
	},
	"plan": {
		Name:          "plan",
		Description:   "Create an execution plan",
		NeedsVarsFile: true,
	},
	"apply": {
		Name:          "apply",
		Description:   "Apply changes to infrastructure",
		NeedsVarsFile: true,
	},
	"destroy": {
		Name:          "destroy",
		Description:   "Destroy managed infrastructure",
		NeedsVarsFile: true,
	},
	"refresh": {
		Name:          "refresh",
		Description:   "Update local state against real resources",
		NeedsVarsFile: true,
	},
	"output": {
		Name:        "output",
		Description: "Show output values from your infrastructure",
	},
	"validate": {
		Name:        "validate",
		Description: "Validate the configuration files",
	},
	"fmt": {
		Name:        "fmt",
		Description: "Format the configuration files",
	},
	"state": {
		Name:        "state",
		Description: "Advanced state management",
	},
	"workspace": {
		Name:        "workspace",
		Description: "Workspace management",
	},
	"graph": {
		Name:        "graph",
		Description: "Generate a dependency graph",
	},
	"providers": {
		Name:        "providers",
		Description: "Show the providers required by the configuration",
	},
	"version": {
		Name:        "version",
		Description: "Show the engine version",
	},
}

// DefaultArgs is never nil so downstream concatenation stays total.
func init() {
	for name, spec := range catalog {
		if spec.DefaultArgs == nil {
			spec.DefaultArgs = []string{}
			catalog[name] = spec
		}
	}
}

// Lookup returns the catalog entry for name. Commands not in the table are
// still runnable; the builder falls back to a minimal flag policy for them.
func Lookup(name string) (Spec, bool) {
	spec, ok := catalog[name]
	return spec, ok
}

// Names returns the sorted catalog command names.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
