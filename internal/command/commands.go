// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfrun/tfrun/internal/engine"
	"github.com/tfrun/tfrun/internal/meta"
	"github.com/tfrun/tfrun/internal/output"
)

// commandsCommandBuilder constructs the "commands" command, a listing of the
// logical command catalog.
func commandsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "commands",
		Usage:     "list the logical engine commands",
		UsageText: "tfrun commands [options]",
		Metadata:  map[string]any{"meta": m},
		Flags:     NewListingFlags(),
		Action:    commandsAction,
	}
}

func commandsAction(ctx context.Context, cmd *cli.Command) error {
	out, _ := newSinks(cmd)

	headers := []string{"command", "description", "var file", "backend config"}
	names := engine.Names()
	dataset := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		spec, _ := engine.Lookup(name)
		dataset = append(dataset, map[string]interface{}{
			"command":        spec.Name,
			"description":    spec.Description,
			"var file":       mark(spec.NeedsVarsFile),
			"backend config": mark(spec.NeedsBackendConfig),
		})
	}

	output.Listing(cmd.String("output"), headers, dataset, cmd.Bool("titles"), cmd.Bool("color"), out.Writer())
	return nil
}

func mark(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}
