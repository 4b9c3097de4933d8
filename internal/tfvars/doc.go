// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tfvars reads the HCL attribute files that describe an environment:
// variable files (.tfvars) and backend configuration files (.tfbackend).
package tfvars
