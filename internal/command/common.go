// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfrun/tfrun/internal/config"
	"github.com/tfrun/tfrun/internal/env"
	"github.com/tfrun/tfrun/internal/meta"
	"github.com/tfrun/tfrun/internal/output"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// varsDirSetting resolves the vars directory: flag, then env var, then
// config, then the "vars" default.
func varsDirSetting(cmd *cli.Command) string {
	if cmd != nil && cmd.IsSet("vars-dir") {
		return cmd.String("vars-dir")
	}
	if v := os.Getenv("TFRUN_VARS_DIR"); v != "" {
		return v
	}
	v, _ := config.GetString("vars_dir", "vars")
	return v
}

// enginePathSetting resolves the engine executable: flag, then env var, then
// config, then the literal "terraform".
func enginePathSetting(cmd *cli.Command) string {
	if cmd != nil && cmd.IsSet("engine") {
		return cmd.String("engine")
	}
	if v := os.Getenv("TFRUN_ENGINE"); v != "" {
		return v
	}
	v, _ := config.GetString("terraform_path", "terraform")
	return v
}

// newManager builds an environment Manager for the resolved vars directory.
func newManager(cmd *cli.Command) *env.Manager {
	return env.NewManager(varsDirSetting(cmd))
}

// newSinks returns the normal and error sinks for a command. Styling follows
// the --color flag where present, else the config.
func newSinks(cmd *cli.Command) (*output.Sink, *output.Sink) {
	colored := false
	if cmd != nil && cmd.Bool("color") {
		colored = true
	} else if v, err := config.GetBool("color"); err == nil {
		colored = v
	}
	return output.NewSink(os.Stdout, colored), output.NewSink(os.Stderr, colored)
}

// resolveEnvironment validates name against the manager, printing the error
// and a "Did you mean" suggestion on failure. Returns the environment when
// validation passes.
func resolveEnvironment(manager *env.Manager, name string, errSink *output.Sink) (*env.Environment, bool) {
	if err := manager.Validate(name); err != nil {
		errSink.Errorf("%s", err)
		if strings.Contains(err.Error(), "not found") {
			if suggestion, ok := manager.Suggest(name); ok {
				errSink.Infof("Did you mean: %s?", suggestion)
			}
		}
		return nil, false
	}
	e, _ := manager.Get(name)
	return e, true
}

// confirm prompts on stdout and reads a y/n answer from stdin.
func confirm(prompt string, out *output.Sink) bool {
	out.Printf("%s", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

// contains reports whether list holds the exact argument arg.
func contains(list []string, arg string) bool {
	for _, a := range list {
		if a == arg {
			return true
		}
	}
	return false
}
