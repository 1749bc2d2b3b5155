// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// Files returns the env file names for mode in load order.
func Files(mode string) []string {
	return []string{
		".env",
		".env.local",
		".env." + mode,
		".env." + mode + ".local",
	}
}

// Load reads the env files for mode from dir and layers process on top.
//
// Missing files are skipped. A file that exists but cannot be parsed is an
// error. process is typically [ProcessEnv]; pass nil to ignore the process
// environment entirely.
func Load(dir, mode string, process map[string]string) (map[string]string, error) {
	merged := make(map[string]string)

	for _, name := range Files(mode) {
		path := filepath.Join(dir, name)
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error reading env file %s: %w", path, err)
		}

		if err := mergo.Merge(&merged, values, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging env file %s: %w", path, err)
		}
	}

	if len(process) > 0 {
		if err := mergo.Merge(&merged, process, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging process environment: %w", err)
		}
	}

	return merged, nil
}

// ProcessEnv snapshots the current process environment.
func ProcessEnv() map[string]string {
	environ := os.Environ()
	snapshot := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		snapshot[key] = value
	}
	return snapshot
}
