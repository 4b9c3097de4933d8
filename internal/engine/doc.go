// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package engine maps logical commands to provisioning-engine invocations:
// the static command catalog, the argument-vector builder, the subprocess
// runner, and the stderr enricher.
package engine
