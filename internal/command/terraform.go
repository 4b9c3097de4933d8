// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfrun/tfrun/internal/config"
	"github.com/tfrun/tfrun/internal/engine"
	"github.com/tfrun/tfrun/internal/env"
	"github.com/tfrun/tfrun/internal/log"
	"github.com/tfrun/tfrun/internal/meta"
)

// engineCommandBuilder constructs a cli.Command that forwards one logical
// engine verb. Flag parsing is skipped so engine flags like -auto-approve
// pass through untouched.
func engineCommandBuilder(m meta.Meta, name, usage string) *cli.Command {
	usageText := fmt.Sprintf("tfrun %s [engine args...]", name)
	if spec, ok := engine.Lookup(name); ok && (spec.NeedsVarsFile || spec.NeedsBackendConfig) {
		usageText = fmt.Sprintf("tfrun %s [ENVIRONMENT] [engine args...]", name)
	}
	return &cli.Command{
		Name:            name,
		Usage:           usage,
		UsageText:       usageText,
		SkipFlagParsing: true,
		Metadata:        map[string]any{"meta": m},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return executeEngine(ctx, cmd, name)
		},
	}
}

// runCommandBuilder constructs the "run" command for engine verbs not in
// the catalog: tfrun run ENVIRONMENT COMMAND [args...].
func runCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:            "run",
		Usage:           "run an arbitrary engine command for an environment",
		UsageText:       "tfrun run ENVIRONMENT COMMAND [engine args...]",
		SkipFlagParsing: true,
		Metadata:        map[string]any{"meta": m},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			_, errSink := newSinks(cmd)
			if len(args) < 2 {
				errSink.Errorf("Environment and command are required")
				errSink.Infof("Usage: tfrun run ENVIRONMENT COMMAND [engine args...]")
				return cli.Exit("", 1)
			}
			return execute(ctx, cmd, args[1], args[0], args[2:])
		},
	}
}

// executeEngine parses the positional arguments of a verb command into an
// environment name plus extra engine args, then runs the verb.
func executeEngine(ctx context.Context, cmd *cli.Command, verb string) error {
	envName, extra := splitVerbArgs(verb, cmd.Args().Slice())
	return execute(ctx, cmd, verb, envName, extra)
}

// splitVerbArgs decides whether the leading positional argument is an
// environment name. Verbs that derive no file flags treat every positional
// as an engine argument, so subcommand forms like "state list" or
// "workspace new feature" run without an environment prefix.
func splitVerbArgs(verb string, args []string) (string, []string) {
	if spec, ok := engine.Lookup(verb); ok && !spec.NeedsVarsFile && !spec.NeedsBackendConfig {
		return "", args
	}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "", args
}

// execute is the single path from a logical command to an engine process:
// validate (or pick) the environment, apply per-verb policy, build the
// argument vector, run it, and enrich failures.
func execute(ctx context.Context, cmd *cli.Command, verb, envName string, extra []string) error {
	out, errSink := newSinks(cmd)
	manager := newManager(cmd)

	spec, known := engine.Lookup(verb)
	needsEnv := !known || spec.NeedsVarsFile || spec.NeedsBackendConfig

	if envName == "" && needsEnv {
		picked, ok := pickEnvironment(manager)
		if !ok {
			errSink.Errorf("Environment name is required")
			errSink.Infof("Usage: tfrun %s ENVIRONMENT [engine args...]", verb)
			return cli.Exit("", 1)
		}
		envName = picked
	}

	var environment *env.Environment
	if envName != "" {
		var ok bool
		environment, ok = resolveEnvironment(manager, envName, errSink)
		if !ok {
			return cli.Exit("", 1)
		}
	}

	if verb == "apply" {
		if auto, _ := config.GetBool("auto_approve", false); auto && !contains(extra, "-auto-approve") {
			log.Debugf("auto_approve injected from config")
			extra = append(extra, "-auto-approve")
		}
	}

	// Confirmation only makes sense on a terminal; piped invocations pass
	// straight through to the engine's own prompt.
	if verb == "destroy" && !contains(extra, "-auto-approve") && term.IsTerminal(int(os.Stdin.Fd())) {
		out.Warnf("This will destroy all resources for '%s'. This action cannot be undone.", envName)
		if !confirm("Do you want to continue? (y/n) ", out) {
			out.Infof("Operation aborted.")
			return nil
		}
	}

	runner := engine.NewRunner(enginePathSetting(cmd), out.Writer(), errSink.Writer())
	argv := runner.Build(verb, environment, extra)

	out.Infof("Running: %s", strings.Join(argv, " "))
	out.Println("")

	code, _, stderr := runner.Run(ctx, argv)

	if code != 0 {
		// The raw stderr already streamed live; emit only the advice block.
		if hint, ok := engine.Hint(stderr, environment); ok {
			errSink.Println("")
			errSink.Println(hint)
		}
		errSink.Errorf("Command failed with exit code %d", code)
		return cli.Exit("", code)
	}

	out.Println("")
	out.Successf("Command succeeded")
	return nil
}
