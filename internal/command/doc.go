// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for tfrun. It wires flags,
// actions, and the interactive environment picker for subcommands.
package command
