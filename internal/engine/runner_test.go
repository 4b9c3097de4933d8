// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfrun/tfrun/internal/env"
)

// testEnv returns an environment whose files exist on disk per the flags.
func testEnv(t *testing.T, withVars, withBackend bool) *env.Environment {
	t.Helper()
	dir := t.TempDir()
	e := &env.Environment{
		Name:        "dev",
		VarsFile:    filepath.Join(dir, "dev.tfvars"),
		BackendFile: filepath.Join(dir, "dev.tfbackend"),
	}
	if withVars {
		assert.NoError(t, os.WriteFile(e.VarsFile, []byte("environment = \"dev\"\n"), 0o644))
	}
	if withBackend {
		assert.NoError(t, os.WriteFile(e.BackendFile, []byte("bucket = \"b\"\n"), 0o644))
	}
	return e
}

func TestBuild(t *testing.T) {
	r := NewRunner("terraform", nil, nil)
	full := testEnv(t, true, true)

	tests := []struct {
		name        string
		command     string
		environment *env.Environment
		extra       []string
		want        []string
	}{
		{
			name:        "init takes the backend config only",
			command:     "init",
			environment: full,
			want:        []string{"terraform", "init", "-backend-config=" + full.BackendFile},
		},
		{
			name:        "plan takes the var file only",
			command:     "plan",
			environment: full,
			want:        []string{"terraform", "plan", "-var-file=" + full.VarsFile},
		},
		{
			name:        "extra args come last in caller order",
			command:     "apply",
			environment: full,
			extra:       []string{"-auto-approve", "-target=aws_s3_bucket.b"},
			want: []string{
				"terraform", "apply", "-var-file=" + full.VarsFile,
				"-auto-approve", "-target=aws_s3_bucket.b",
			},
		},
		{
			name:        "missing var file yields no flag",
			command:     "plan",
			environment: testEnv(t, false, false),
			want:        []string{"terraform", "plan"},
		},
		{
			name:        "unknown command gets the var file and nothing else",
			command:     "import",
			environment: full,
			extra:       []string{"aws_instance.web", "i-1234"},
			want: []string{
				"terraform", "import", "-var-file=" + full.VarsFile,
				"aws_instance.web", "i-1234",
			},
		},
		{
			name:    "no environment means no derived flags",
			command: "version",
			want:    []string{"terraform", "version"},
		},
		{
			name:    "extra args survive without an environment",
			command: "fmt",
			extra:   []string{"-check"},
			want:    []string{"terraform", "fmt", "-check"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Build(tt.command, tt.environment, tt.extra))
		})
	}
}

func TestRunCapturesAndForwardsStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRunner("terraform", &out, &errOut)

	code, stdout, stderr := r.Run(context.Background(), []string{"echo", "hello"})

	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout)
	assert.Empty(t, stderr)
	// Forwarded live as well as captured.
	assert.Equal(t, "hello\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunCapturesStderrAndExitCode(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRunner("terraform", &out, &errOut)

	code, stdout, stderr := r.Run(context.Background(),
		[]string{"sh", "-c", "echo oops >&2; exit 3"})

	assert.Equal(t, 3, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "oops\n", stderr)
	assert.Equal(t, "oops\n", errOut.String())
}

func TestRunSpawnFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRunner("terraform", &out, &errOut)

	code, stdout, stderr := r.Run(context.Background(),
		[]string{"/nonexistent/binary-xyz"})

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.NotEmpty(t, stderr)
}

func TestRunEmptyArgv(t *testing.T) {
	r := NewRunner("terraform", nil, nil)

	code, stdout, stderr := r.Run(context.Background(), nil)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "empty command", stderr)
}

func TestRunBothStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRunner("terraform", &out, &errOut)

	code, stdout, stderr := r.Run(context.Background(),
		[]string{"sh", "-c", "echo one; echo two >&2"})

	assert.Equal(t, 0, code)
	assert.Equal(t, "one\n", stdout)
	assert.Equal(t, "two\n", stderr)
}
