// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"path/filepath"
)

// AppName is used for config directories and lock files.
const AppName = "lbar"

// GetConfigPathWithEnv returns the configuration file path for env.
func GetConfigPathWithEnv(env Env) string {
	configHome := GetXDGConfigHomeWithEnv(env.XDGConfigHome, env.Home)
	if configHome == "" {
		return ""
	}

	return filepath.Join(configHome, AppName, "config.toml")
}
