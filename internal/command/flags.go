// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewListingFlags returns the flags shared by the listing commands (env
// list, commands): output format, color, titles.
func NewListingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				switch value {
				case "text", "json", "yaml":
					return nil
				}
				return errors.New("output must be one of: text, json, yaml")
			},
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}
}

// NewVarsDirFlag constructs the "vars-dir" flag, optionally namespaced to a
// command and config file. params[1] is the config file.
func NewVarsDirFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "vars-dir",
		Usage: "directory containing environment files",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TFRUN_VARS_DIR"),
		),
		Value: "vars",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewEngineFlag constructs the "engine" flag for the engine executable path,
// optionally namespaced to a command and config file.
func NewEngineFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "engine",
		Usage: "path to the engine executable",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TFRUN_ENGINE"),
		),
		Value: "terraform",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
