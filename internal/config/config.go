// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ProjectFile is the name of the per-project overlay looked up in the
// working directory. It is JSON, not YAML, because it is shared with other
// tooling that predates tfrun.
const ProjectFile = ".tfrun.json"

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: absolute path of the YAML file loaded.
//   - Namespace: optional dot-prefixed keyspace used to prefer namespaced
//     lookups (e.g. "apply.auto_approve").
//   - Data: raw key/value tree unmarshaled from YAML.
//   - ProjectSource / ProjectData: path and raw bytes of the project overlay.
//
// Note: Data is intentionally kept as map[string]any to allow flexible shapes.
// Callers should use typed getters (GetString, GetInt, GetBool) for
// convenience. Project values take precedence over the global file.
type Type struct {
	Source        string
	Namespace     string
	Data          map[string]interface{}
	ProjectSource string
	ProjectData   string
}

// Config holds the global, lazily-initialized configuration instance.
var Config Type

// init attempts to load configuration at process start. Errors are ignored so
// the application can still run without a config file; callers of getters will
// trigger a lazy reload when needed.
func init() {
	_, _ = Load()
}

// GetBool returns the boolean value for the given dotted key path. A single
// defaultValue may be provided and is returned when the key is missing.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	if len(Config.Data) == 0 && Config.ProjectData == "" {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, errors.New("value is not a bool")
	}

	return b, nil
}

// GetInt returns the integer value for the given dotted key path. A single
// defaultValue may be provided and is returned when the key is missing.
// YAML numbers may decode as int, int64, or float64; common cases are handled.
func GetInt(key string, defaultValue ...int) (int, error) {
	if len(Config.Data) == 0 && Config.ProjectData == "" {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// Numbers may arrive as int/int64/float64 depending on the source.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

// GetString returns the string value for the given dotted key path. If the key
// is not found and a single defaultValue is provided, the default is returned.
// Returns an error if the value exists but is not a string.
func GetString(key string, defaultValue ...string) (string, error) {
	if len(Config.Data) == 0 && Config.ProjectData == "" {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

// GetStringSlice returns the string slice value for the given dotted key path.
// If the key is not found and a single default slice is provided, that default
// is returned. Returns an error if the value exists but is not a string slice.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	if len(Config.Data) == 0 && Config.ProjectData == "" {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("slice element is not a string")
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, errors.New("value is not a slice")
	}
}

// Load reads the global YAML configuration file and, if present, the JSON
// project overlay from the working directory, and populates the global
// Config. A missing global file is not fatal when an overlay exists; the
// overlay alone is enough to run.
func Load(cfgFilePath ...string) (Type, error) {
	cfg := Type{}

	path, err := getConfigFile()
	if err == nil {
		bytes, readErr := os.ReadFile(path)
		if readErr != nil {
			return Type{}, readErr
		}

		var data map[string]interface{}
		if err := yaml.Unmarshal(bytes, &data); err != nil {
			return Type{}, err
		}

		cfg.Source = path
		cfg.Data = data
	}

	// The project overlay is best-effort: absent or unparseable files are
	// ignored, matching the permissive behavior of the global file.
	if wd, wdErr := os.Getwd(); wdErr == nil {
		project := filepath.Join(wd, ProjectFile)
		if bytes, readErr := os.ReadFile(project); readErr == nil {
			if gjson.ValidBytes(bytes) {
				cfg.ProjectSource = project
				cfg.ProjectData = string(bytes)
				log.Debugf("project overlay loaded: %s", project)
			} else {
				log.Debugf("project overlay is not valid JSON: %s", project)
			}
		}
	}

	Config = cfg

	if cfg.Source == "" && cfg.ProjectSource == "" {
		return cfg, err
	}

	return cfg, nil
}

// Save writes the in-memory global configuration back to its YAML file. When
// nothing was loaded yet, the TFRUN_CFG_FILE path or the user config dir
// default is created, so the first `config set` works on a clean machine.
func Save() error {
	path := Config.Source
	if path == "" {
		if path = os.Getenv("TFRUN_CFG_FILE"); path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return err
			}
			path = filepath.Join(dir, "tfrun.yaml")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	out, err := yaml.Marshal(Config.Data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return err
	}

	Config.Source = path
	log.Debugf("config saved: %s", path)
	return nil
}

// Set stores value under the dotted key path in the global configuration and
// persists it immediately, creating intermediate maps as needed. The project
// overlay is never written through; it belongs to the project, not the user.
func Set(key string, value any) error {
	if Config.Data == nil {
		Config.Data = map[string]interface{}{}
	}

	keys := strings.Split(key, ".")
	current := Config.Data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value

	return Save()
}

// WriteProjectStub writes a default project overlay into dir and returns its
// path. An existing file is overwritten; callers confirm first.
func WriteProjectStub(dir string) (string, error) {
	path := filepath.Join(dir, ProjectFile)
	stub := map[string]interface{}{
		"vars_dir":       "vars",
		"terraform_path": "terraform",
	}
	out, err := json.MarshalIndent(stub, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// get resolves a dotted key path (e.g. "colors.title"). The project overlay
// is consulted first, then the global YAML tree. If Namespace is set, a
// namespaced candidate key is attempted before the plain key at each level.
// Returns the raw value (any) if found.
func (cfg *Type) get(kspec string) (any, error) {
	if len(cfg.Data) == 0 && cfg.ProjectData == "" {
		_, _ = Load(cfg.Source)
	}

	candidateKeys := []string{"", kspec}
	if cfg.Namespace != "" {
		candidateKeys[0] = cfg.Namespace + "." + kspec
	}

	for _, key := range candidateKeys {
		if key == "" {
			continue
		}

		if cfg.ProjectData != "" {
			if result := gjson.Get(cfg.ProjectData, key); result.Exists() {
				return result.Value(), nil
			}
		}

		keys := strings.Split(key, ".")
		var current interface{} = cfg.Data

		success := true
		for _, key := range keys {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[key]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// getConfigFile returns the absolute path to the YAML config file. If the
// TFRUN_CFG_FILE environment variable is set, it is treated as the full path
// to the config file. Otherwise, the OS-specific user configuration directory
// returned by os.UserConfigDir is used with the filename "tfrun.yaml". The
// file must exist and not be a directory.
func getConfigFile() (string, error) {
	// Check for TFRUN_CFG_FILE environment variable first
	if cfgPath := os.Getenv("TFRUN_CFG_FILE"); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file from TFRUN_CFG_FILE: %s", cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("TFRUN_CFG_FILE points to a directory: %s", cfgPath)
		}
		return "", fmt.Errorf("config file not found at TFRUN_CFG_FILE path: %s", cfgPath)
	}

	// Fall back to user config directory
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "tfrun.yaml")
	if fileInfo, err := os.Stat(file); err == nil {
		if !fileInfo.IsDir() {
			log.Debugf("using config file: %s", file)
			return file, nil
		}
	}

	return "", fmt.Errorf("no config file found in standard locations")
}
