// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for tfrun's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/tfrun.yaml or $HOME/.config/tfrun.yaml
//   - Windows: %APPDATA%/tfrun/tfrun.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. A JSON project overlay (.tfrun.json in the working directory)
// is merged on top, with project values taking precedence.
package config
