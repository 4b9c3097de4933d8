// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/tfrun/tfrun/internal/env"
	"github.com/tfrun/tfrun/internal/log"
)

// Runner builds and executes engine invocations. Out and Err are the sinks
// the child's streams are forwarded to in real time; they default to the
// process's own streams when nil. Sinks are injected rather than global so
// callers can redirect or capture output.
type Runner struct {
	Path string
	Out  io.Writer
	Err  io.Writer
}

// NewRunner constructs a Runner for the engine executable at path.
func NewRunner(path string, out, errOut io.Writer) *Runner {
	return &Runner{Path: path, Out: out, Err: errOut}
}

// Build deterministically constructs the argument vector for command.
// When an environment is supplied, flags derived from the catalog entry are
// appended, each only if the file it references currently exists on disk.
// Unknown commands get the minimal policy: the vars file if present, nothing
// else. Extra arguments are appended verbatim, last, in caller order. No
// I/O beyond existence checks, no mutation.
func (r *Runner) Build(command string, environment *env.Environment, extra []string) []string {
	argv := []string{r.Path, command}

	if environment != nil {
		if spec, ok := Lookup(command); ok {
			if spec.NeedsBackendConfig && isFile(environment.BackendFile) {
				argv = append(argv, "-backend-config="+environment.BackendFile)
			}
			if spec.NeedsVarsFile && isFile(environment.VarsFile) {
				argv = append(argv, "-var-file="+environment.VarsFile)
			}
			argv = append(argv, spec.DefaultArgs...)
		} else if isFile(environment.VarsFile) {
			argv = append(argv, "-var-file="+environment.VarsFile)
		}
	}

	return append(argv, extra...)
}

// Run executes argv as a child process with no shell interpretation,
// streaming both output pipes to the runner's sinks while accumulating
// them. It blocks until the child exits and returns the child's real exit
// status with the captured text. Spawn failures (missing executable,
// permission denied) are reported as exit code 1 with the description as
// the stderr text, never as a raised error. No retries, no timeout: a hung
// child blocks until its context is cancelled.
func (r *Runner) Run(ctx context.Context, argv []string) (int, string, string) {
	if len(argv) == 0 {
		return 1, "", "empty command"
	}

	log.Debugf("running: argv=%v", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 1, "", err.Error()
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 1, "", err.Error()
	}

	if err := cmd.Start(); err != nil {
		return 1, "", err.Error()
	}

	// Drain both pipes concurrently so neither stream can deadlock the other
	// on a full pipe buffer. The group join guarantees both buffers are fully
	// drained before the child is reaped.
	var outBuf, errBuf bytes.Buffer
	g := new(errgroup.Group)
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(&outBuf, r.out()), stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(&errBuf, r.err()), stderr)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Debugf("stream drain err: err=%v", err)
	}

	exit := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exit = exitErr.ExitCode()
		} else {
			exit = 1
			if errBuf.Len() > 0 {
				errBuf.WriteString("\n")
			}
			errBuf.WriteString(err.Error())
		}
	}

	log.Debugf("child exited: code=%d stdout=%dB stderr=%dB", exit, outBuf.Len(), errBuf.Len())

	return exit, outBuf.String(), errBuf.String()
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r *Runner) err() io.Writer {
	if r.Err != nil {
		return r.Err
	}
	return os.Stderr
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
