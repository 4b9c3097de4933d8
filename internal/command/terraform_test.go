// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitVerbArgs(t *testing.T) {
	tests := []struct {
		name      string
		verb      string
		args      []string
		wantEnv   string
		wantExtra []string
	}{
		{
			name:      "file verb takes a leading environment",
			verb:      "plan",
			args:      []string{"dev", "-compact-warnings"},
			wantEnv:   "dev",
			wantExtra: []string{"-compact-warnings"},
		},
		{
			name:      "file verb with leading flag has no environment",
			verb:      "apply",
			args:      []string{"-auto-approve"},
			wantEnv:   "",
			wantExtra: []string{"-auto-approve"},
		},
		{
			name:      "state subcommand is not an environment",
			verb:      "state",
			args:      []string{"list"},
			wantEnv:   "",
			wantExtra: []string{"list"},
		},
		{
			name:      "workspace subcommand with argument",
			verb:      "workspace",
			args:      []string{"new", "feature"},
			wantEnv:   "",
			wantExtra: []string{"new", "feature"},
		},
		{
			name:      "bare file verb",
			verb:      "plan",
			args:      nil,
			wantEnv:   "",
			wantExtra: nil,
		},
		{
			name:      "unknown verb keeps the environment heuristic",
			verb:      "import",
			args:      []string{"dev", "aws_instance.web", "i-1234"},
			wantEnv:   "dev",
			wantExtra: []string{"aws_instance.web", "i-1234"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, extra := splitVerbArgs(tt.verb, tt.args)
			assert.Equal(t, tt.wantEnv, env)
			assert.Equal(t, tt.wantExtra, extra)
		})
	}
}
