// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfrun/tfrun/internal/config"
	"github.com/tfrun/tfrun/internal/engine"
	"github.com/tfrun/tfrun/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the tfrun
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load() //nolint
	cfg.Namespace = ns
	config.Config.Namespace = ns

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "tfrun",
		Usage: "deploy Terraform across multiple environments",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "tfrun version info",
				HideDefault: true,
			},
		},
	}

	// One forwarding command per catalog verb, then the management commands.
	for _, name := range engine.Names() {
		spec, _ := engine.Lookup(name)
		app.Commands = append(app.Commands, engineCommandBuilder(m, spec.Name, spec.Description))
	}

	app.Commands = append(app.Commands,
		runCommandBuilder(m),
		envCommandBuilder(m),
		configCommandBuilder(m),
		commandsCommandBuilder(m),
		doctorCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
