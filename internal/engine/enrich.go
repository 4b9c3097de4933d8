// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tfrun/tfrun/internal/env"
)

// signature pairs a known stderr failure pattern with remediation advice.
// Signatures are checked in table order and only the first match
// contributes, so put the most specific patterns first.
type signature struct {
	name string
	re   *regexp.Regexp
	hint func(match []string, envName string) string
}

var signatures = []signature{
	{
		name: "s3-bucket-missing",
		re:   regexp.MustCompile(`(?i)S3 bucket\s+"?([^"\s]+)"?\s+does not exist`),
		hint: func(match []string, envName string) string {
			return fmt.Sprintf(`The state bucket %q does not exist yet.
  - Create it:        aws s3 mb s3://%s
  - Or point the backend config for '%s' at an existing bucket and re-run:
                      tfrun init %s -reconfigure`,
				match[1], match[1], envName, envName)
		},
	},
	{
		name: "workspace-missing",
		re:   regexp.MustCompile(`workspace\s+"([^"]+)"\s+does(?:n't| not) exist`),
		hint: func(match []string, envName string) string {
			return fmt.Sprintf(`The workspace %q has not been created.
  - Create it:        tfrun run %s workspace new %s
  - Or list existing: tfrun run %s workspace list`,
				match[1], envName, match[1], envName)
		},
	},
	{
		name: "no-config-files",
		re:   regexp.MustCompile(`(?i)no (?:Terraform )?configuration files`),
		hint: func(_ []string, envName string) string {
			return fmt.Sprintf(`No configuration files were found in the working directory.
  - Run tfrun from the directory containing your .tf files, or
  - check that you meant environment '%s' in this project.`, envName)
		},
	},
	{
		name: "state-locked",
		re:   regexp.MustCompile(`(?s)Error acquiring the state lock(?:.*?ID:\s+([0-9a-fA-F-]+))?`),
		hint: func(match []string, envName string) string {
			id := "<lock-id>"
			if len(match) > 1 && match[1] != "" {
				id = match[1]
			}
			return fmt.Sprintf(`The state for '%s' is locked, most likely by another run in progress.
  - Wait for the other operation to finish, or
  - force-unlock once you are sure it is stale:
                      tfrun run %s force-unlock %s`,
				envName, envName, id)
		},
	},
	{
		name: "invalid-json",
		re:   regexp.MustCompile(`(?i)(?:invalid|error parsing) JSON`),
		hint: func(_ []string, envName string) string {
			return fmt.Sprintf(`A JSON document could not be parsed.
  - Check the backend and variable files for '%s' for syntax errors.`, envName)
		},
	},
	{
		name: "invalid-module-path",
		re:   regexp.MustCompile(`(?i)(?:Unreadable module directory|Module not installed|module "([^"]+)" is not)`),
		hint: func(match []string, envName string) string {
			module := "the referenced module"
			if len(match) > 1 && match[1] != "" {
				module = fmt.Sprintf("module %q", match[1])
			}
			return fmt.Sprintf(`%s could not be loaded.
  - Re-run init to fetch modules: tfrun init %s
  - Check the module source path in your configuration.`,
				strings.ToUpper(module[:1])+module[1:], envName)
		},
	},
}

// Hint returns the remediation block for the first failure signature
// matching stderr, or false when none match. Useful when the raw stderr has
// already been streamed and only the advice should be emitted.
func Hint(stderr string, environment *env.Environment) (string, bool) {
	if stderr == "" {
		return "", false
	}

	envName := "<environment>"
	if environment != nil {
		envName = environment.Name
	}

	for _, sig := range signatures {
		match := sig.re.FindStringSubmatch(stderr)
		if match == nil {
			continue
		}
		return "Hint (" + sig.name + "):\n" + sig.hint(match, envName) + "\n", true
	}

	return "", false
}

// Enrich scans stderr for the known failure signatures and appends a
// remediation block for the first one that matches. The original text is
// always preserved verbatim and the caller's exit code is never altered;
// this is advisory concatenation only.
func Enrich(stderr string, environment *env.Environment) string {
	hint, ok := Hint(stderr, environment)
	if !ok {
		return stderr
	}
	return strings.TrimRight(stderr, "\n") + "\n\n" + hint
}
