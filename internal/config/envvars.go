// ABOUTME: Expands ${VAR}, ${VAR:-fallback}, and a leading ~/ in config string fields
// ABOUTME: Applied after merging so either config file may reference the environment

package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)(?::-([^}]*))?\}`)

// ResolveEnvVars expands environment references in the string fields of
// Settings. LogFile additionally has a leading ~/ replaced by the home
// directory.
func ResolveEnvVars(s *Settings) {
	s.LogFile = expandHome(expandEnv(s.LogFile))
	s.Border = expandEnv(s.Border)
	s.Theme = expandEnv(s.Theme)
	for role, v := range s.Colors {
		s.Colors[role] = expandEnv(v)
	}
}

// expandEnv replaces ${VAR} with its value. ${VAR:-fallback} yields the
// fallback when VAR is unset or empty; a bare unset ${VAR} becomes "".
func expandEnv(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		if v := os.Getenv(m[1]); v != "" {
			return v
		}
		return m[2]
	})
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
