// ABOUTME: Standard filesystem paths for winframe configuration and logs
// ABOUTME: Resolves ~/.winframe/ for global and .winframe/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".winframe"
	projectDirName = ".winframe"
)

// GlobalDir returns the user-global config directory (~/.winframe/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.yaml")
}

// ConfigFiles returns every file Load reads, global first.
func ConfigFiles(projectRoot string) []string {
	return []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)}
}

// DefaultLogFile returns where the demo logs while it owns the terminal.
func DefaultLogFile() string {
	return filepath.Join(GlobalDir(), "winframe.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
