// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfrun/tfrun/internal/differ"
	"github.com/tfrun/tfrun/internal/meta"
	"github.com/tfrun/tfrun/internal/output"
	"github.com/tfrun/tfrun/internal/tfvars"
)

// envCommandBuilder constructs the "env" command group: list, show, create,
// copy, diff.
func envCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "env",
		Usage:    "environment management",
		Metadata: map[string]any{"meta": m},
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list discovered environments",
				UsageText: "tfrun env list [options]",
				Flags:     append([]cli.Flag{NewVarsDirFlag("env", m.Config.Source)}, NewListingFlags()...),
				Action:    envListAction,
			},
			{
				Name:      "show",
				Usage:     "show an environment's files and variables",
				UsageText: "tfrun env show ENVIRONMENT",
				Flags:     []cli.Flag{NewVarsDirFlag("env", m.Config.Source)},
				Action:    envShowAction,
			},
			{
				Name:      "create",
				Usage:     "create an environment from template files",
				UsageText: "tfrun env create ENVIRONMENT",
				Flags:     []cli.Flag{NewVarsDirFlag("env", m.Config.Source)},
				Action:    envCreateAction,
			},
			{
				Name:      "copy",
				Usage:     "copy an environment to a new name",
				UsageText: "tfrun env copy SOURCE TARGET",
				Flags:     []cli.Flag{NewVarsDirFlag("env", m.Config.Source)},
				Action:    envCopyAction,
			},
			{
				Name:      "diff",
				Usage:     "diff the variables of two environments",
				UsageText: "tfrun env diff ENVIRONMENT ENVIRONMENT",
				Flags: append([]cli.Flag{
					NewVarsDirFlag("env", m.Config.Source),
				}, NewListingFlags()...),
				Action: envDiffAction,
			},
		},
	}
}

func envListAction(ctx context.Context, cmd *cli.Command) error {
	out, _ := newSinks(cmd)
	manager := newManager(cmd)

	names := manager.Names()
	if len(names) == 0 {
		out.Warnf("No environments found. Make sure you have %s files in the %s/ directory.",
			"*.tfvars", manager.VarsDir())
		return nil
	}

	headers := []string{"environment", "vars", "backend", "modified", "status"}
	dataset := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		e, _ := manager.Get(name)

		status := "incomplete"
		if e.IsValid() {
			status = "ready"
		} else if e.IsPartiallyValid() {
			status = "vars only"
		}

		modified := ""
		if info, err := os.Stat(e.VarsFile); err == nil {
			modified = humanize.Time(info.ModTime())
		}

		dataset = append(dataset, map[string]interface{}{
			"environment": name,
			"vars":        fileCell(e.VarsFile),
			"backend":     fileCell(e.BackendFile),
			"modified":    modified,
			"status":      status,
		})
	}

	output.Listing(cmd.String("output"), headers, dataset, cmd.Bool("titles"), cmd.Bool("color"), out.Writer())
	return nil
}

func envShowAction(ctx context.Context, cmd *cli.Command) error {
	out, errSink := newSinks(cmd)
	manager := newManager(cmd)

	name := cmd.Args().First()
	if name == "" {
		errSink.Errorf("Environment name is required")
		errSink.Infof("Usage: tfrun env show ENVIRONMENT")
		return cli.Exit("", 1)
	}

	e, ok := resolveEnvironment(manager, name, errSink)
	if !ok {
		return cli.Exit("", 1)
	}

	out.Infof("Environment: %s", e.Name)
	out.Infof("Vars file:    %s", fileCell(e.VarsFile))
	out.Infof("Backend file: %s", fileCell(e.BackendFile))

	for _, path := range []string{e.VarsFile, e.BackendFile} {
		values, err := tfvars.Parse(path)
		if err != nil || len(values) == 0 {
			continue
		}
		out.Println("")
		out.Infof("%s:", filepath.Base(path))
		for _, line := range tfvars.FormatLines(values) {
			out.Infof("  %s", line)
		}
	}

	return nil
}

func envCreateAction(ctx context.Context, cmd *cli.Command) error {
	out, errSink := newSinks(cmd)
	manager := newManager(cmd)

	name := cmd.Args().First()
	if name == "" {
		errSink.Errorf("Environment name is required")
		errSink.Infof("Usage: tfrun env create ENVIRONMENT")
		return cli.Exit("", 1)
	}

	if e, ok := manager.Get(name); ok {
		if e.IsValid() {
			out.Warnf("Environment '%s' already exists", name)
			return nil
		}
		out.Warnf("Environment '%s' already exists; missing files will be created:", name)
		for _, file := range e.MissingFiles() {
			out.Infof("  - %s", file)
		}
	}

	if !manager.CreateTemplate(name) {
		errSink.Errorf("Failed to create environment '%s'", name)
		return cli.Exit("", 1)
	}

	e, _ := manager.Get(name)
	out.Successf("Created environment '%s'", name)
	out.Infof("Files created:")
	out.Infof("  - %s", e.VarsFile)
	out.Infof("  - %s", e.BackendFile)
	out.Println("")
	out.Infof("Next steps:")
	out.Infof("  1. Edit the vars file: %s", e.VarsFile)
	out.Infof("  2. Edit the backend config: %s", e.BackendFile)
	out.Infof("  3. Initialize the engine: tfrun init %s", name)
	return nil
}

func envCopyAction(ctx context.Context, cmd *cli.Command) error {
	out, errSink := newSinks(cmd)
	manager := newManager(cmd)

	source := cmd.Args().Get(0)
	target := cmd.Args().Get(1)
	if source == "" || target == "" {
		errSink.Errorf("Source and target environment names are required")
		errSink.Infof("Usage: tfrun env copy SOURCE TARGET")
		return cli.Exit("", 1)
	}

	if e, ok := manager.Get(target); ok && e.IsValid() {
		out.Warnf("Target environment '%s' already exists", target)
		if !confirm("Overwrite? (y/n) ", out) {
			return nil
		}
	}

	if err := manager.Copy(source, target); err != nil {
		errSink.Errorf("Failed to copy environment: %s", err)
		return cli.Exit("", 1)
	}

	e, _ := manager.Get(target)
	out.Successf("Copied environment '%s' to '%s'", source, target)
	out.Infof("Files created:")
	out.Infof("  - %s", e.VarsFile)
	out.Infof("  - %s", e.BackendFile)
	return nil
}

func envDiffAction(ctx context.Context, cmd *cli.Command) error {
	out, errSink := newSinks(cmd)
	manager := newManager(cmd)

	left := cmd.Args().Get(0)
	right := cmd.Args().Get(1)
	if left == "" || right == "" {
		errSink.Errorf("Two environment names are required")
		errSink.Infof("Usage: tfrun env diff ENVIRONMENT ENVIRONMENT")
		return cli.Exit("", 1)
	}

	leftEnv, ok := resolveEnvironment(manager, left, errSink)
	if !ok {
		return cli.Exit("", 1)
	}
	rightEnv, ok := resolveEnvironment(manager, right, errSink)
	if !ok {
		return cli.Exit("", 1)
	}

	leftDoc, err := tfvars.JSON(leftEnv.VarsFile)
	if err != nil {
		errSink.Errorf("Failed to read variables for '%s': %s", left, err)
		return cli.Exit("", 1)
	}
	rightDoc, err := tfvars.JSON(rightEnv.VarsFile)
	if err != nil {
		errSink.Errorf("Failed to read variables for '%s': %s", right, err)
		return cli.Exit("", 1)
	}

	modified, err := differ.Diff(leftDoc, rightDoc, out.Writer(), cmd.Bool("color"))
	if err != nil {
		errSink.Errorf("%s", err)
		return cli.Exit("", 1)
	}
	if !modified {
		out.Infof("The environments define identical variables.")
	}
	return nil
}

// fileCell renders a path with an existence mark for listings.
func fileCell(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path + " ✓"
	}
	return path + " ✗"
}
