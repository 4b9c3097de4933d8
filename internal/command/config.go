// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/tfrun/tfrun/internal/config"
	"github.com/tfrun/tfrun/internal/meta"
	"github.com/tfrun/tfrun/internal/output"
)

// configCommandBuilder constructs the "config" command group: show, set,
// init.
func configCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "config",
		Usage:    "configuration management",
		Metadata: map[string]any{"meta": m},
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "show the merged configuration and where each value comes from",
				UsageText: "tfrun config show [options]",
				Flags:     NewListingFlags(),
				Action:    configShowAction,
			},
			{
				Name:      "set",
				Usage:     "set and persist a global configuration value",
				UsageText: "tfrun config set KEY VALUE",
				Action:    configSetAction,
			},
			{
				Name:      "init",
				Usage:     "create a project overlay file in the working directory",
				UsageText: "tfrun config init",
				Action:    configInitAction,
			},
		},
	}
}

func configShowAction(ctx context.Context, cmd *cli.Command) error {
	out, _ := newSinks(cmd)

	merged := map[string]interface{}{}
	flattenConfig("", config.Config.Data, merged)

	sources := map[string]string{}
	for key := range merged {
		sources[key] = "global"
	}
	if config.Config.ProjectData != "" {
		gjson.Parse(config.Config.ProjectData).ForEach(func(key, value gjson.Result) bool {
			merged[key.String()] = value.Value()
			sources[key.String()] = "project"
			return true
		})
	}

	if len(merged) == 0 {
		out.Warnf("No configuration loaded. Set a value with: tfrun config set KEY VALUE")
		return nil
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := []string{"setting", "value", "source"}
	dataset := make([]map[string]interface{}, 0, len(keys))
	for _, key := range keys {
		dataset = append(dataset, map[string]interface{}{
			"setting": key,
			"value":   merged[key],
			"source":  sources[key],
		})
	}

	output.Listing(cmd.String("output"), headers, dataset, cmd.Bool("titles"), cmd.Bool("color"), out.Writer())
	return nil
}

func configSetAction(ctx context.Context, cmd *cli.Command) error {
	out, errSink := newSinks(cmd)

	key := cmd.Args().Get(0)
	value := cmd.Args().Get(1)
	if key == "" || value == "" {
		errSink.Errorf("Key and value are required")
		errSink.Infof("Usage: tfrun config set KEY VALUE")
		return cli.Exit("", 1)
	}

	if err := config.Set(key, parseConfigValue(value)); err != nil {
		errSink.Errorf("Failed to save configuration: %s", err)
		return cli.Exit("", 1)
	}

	out.Successf("Set '%s' to '%s' in %s", key, value, config.Config.Source)
	return nil
}

func configInitAction(ctx context.Context, cmd *cli.Command) error {
	out, errSink := newSinks(cmd)

	wd, err := os.Getwd()
	if err != nil {
		errSink.Errorf("%s", err)
		return cli.Exit("", 1)
	}

	existing := filepath.Join(wd, config.ProjectFile)
	if _, err := os.Stat(existing); err == nil {
		out.Warnf("Project configuration already exists: %s", existing)
		if !confirm("Overwrite? (y/n) ", out) {
			return nil
		}
	}

	path, err := config.WriteProjectStub(wd)
	if err != nil {
		errSink.Errorf("Failed to create project configuration: %s", err)
		return cli.Exit("", 1)
	}

	out.Successf("Created project configuration: %s", path)
	out.Infof("Values in this file override the global configuration for this directory.")
	return nil
}

// parseConfigValue coerces a CLI string into the type it reads as: boolean
// and integer literals become typed values, everything else stays a string.
func parseConfigValue(value string) any {
	switch strings.ToLower(value) {
	case "true", "yes", "y":
		return true
	case "false", "no", "n":
		return false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

// flattenConfig folds nested maps into dotted keys with scalar leaves.
func flattenConfig(prefix string, data map[string]interface{}, into map[string]interface{}) {
	for key, value := range data {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if child, ok := value.(map[string]interface{}); ok {
			flattenConfig(name, child, into)
			continue
		}
		into[name] = value
	}
}
