// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/tfrun/tfrun/internal/aws"
	"github.com/tfrun/tfrun/internal/meta"
	"github.com/tfrun/tfrun/internal/output"
	"github.com/tfrun/tfrun/internal/tfvars"
)

// doctorCommandBuilder constructs the "doctor" command, a set of environment
// health checks: engine binary on PATH, environment files present, and the
// backend S3 bucket reachable.
func doctorCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Usage:     "check an environment's runnability",
		UsageText: "tfrun doctor ENVIRONMENT [options]",
		Metadata:  map[string]any{"meta": m},
		Flags: []cli.Flag{
			NewVarsDirFlag("doctor", m.Config.Source),
			NewEngineFlag("doctor", m.Config.Source),
			&cli.BoolFlag{
				Name:  "no-aws",
				Usage: "skip the backend bucket check",
				Value: false,
			},
		},
		Action: doctorAction,
	}
}

func doctorAction(ctx context.Context, cmd *cli.Command) error {
	out, errSink := newSinks(cmd)
	manager := newManager(cmd)

	name := cmd.Args().First()
	if name == "" {
		errSink.Errorf("Environment name is required")
		errSink.Infof("Usage: tfrun doctor ENVIRONMENT")
		return cli.Exit("", 1)
	}

	e, ok := resolveEnvironment(manager, name, errSink)
	if !ok {
		return cli.Exit("", 1)
	}

	failed := false

	enginePath := enginePathSetting(cmd)
	if resolved, err := exec.LookPath(enginePath); err == nil {
		out.Infof("engine:  %s", resolved)
	} else {
		errSink.Errorf("engine '%s' not found on PATH", enginePath)
		failed = true
	}

	if missing := e.MissingFiles(); len(missing) == 0 {
		out.Infof("files:   all present")
	} else {
		for _, file := range missing {
			errSink.Errorf("missing file: %s", file)
		}
		failed = true
	}

	if !cmd.Bool("no-aws") {
		if !checkBackendBucket(ctx, e.BackendFile, out, errSink) {
			failed = true
		}
	}

	if failed {
		return cli.Exit("", 1)
	}
	out.Successf("Environment '%s' looks runnable", name)
	return nil
}

// checkBackendBucket heads the S3 bucket declared by the backend file. A
// backend without a bucket attribute (local state, other backends) passes
// trivially.
func checkBackendBucket(ctx context.Context, backendFile string, out, errSink *output.Sink) bool {
	bucket := tfvars.GetString(backendFile, "bucket")
	if bucket == "" {
		out.Infof("backend: no S3 bucket declared, skipping")
		return true
	}

	region := tfvars.GetString(backendFile, "region")

	var opts []aws.Option
	if region != "" {
		opts = append(opts, aws.WithRegion(region))
	}

	cfg, err := aws.LoadAWSConfig(ctx, opts...)
	if err != nil {
		errSink.Errorf("failed to load AWS config: %s", err)
		return false
	}

	exists, err := aws.BucketExists(ctx, aws.NewS3(cfg), bucket)
	if err != nil {
		errSink.Errorf("failed to check bucket '%s': %s", bucket, err)
		return false
	}
	if !exists {
		errSink.Errorf("backend bucket '%s' does not exist", bucket)
		return false
	}

	out.Infof("backend: bucket '%s' reachable", bucket)
	return true
}
