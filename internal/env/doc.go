// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package env discovers and validates deployment environments from the vars
// directory convention: <dir>/<name>.tfvars and <dir>/<name>.tfbackend.
package env
