package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcaddon-labs/mcaddon/internal/branding"
	"go.yaml.in/yaml/v3"
)

const projectFile = "project.yaml"

// ErrNotInitialized is returned by Load when the project has no saved config.
var ErrNotInitialized = errors.New("project not initialized")

// ConfigPath returns the full path to .mcaddon/project.yaml for a project.
func ConfigPath(projectPath string) string {
	return filepath.Join(projectPath, branding.HomeDir(), projectFile)
}

// Exists reports whether the project already has a saved config.
func Exists(projectPath string) bool {
	_, err := os.Stat(ConfigPath(projectPath))
	return err == nil
}

// Load reads the saved project config. The returned Info is in switch mode.
func Load(projectPath string) (Info, error) {
	path := ConfigPath(projectPath)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Info{}, fmt.Errorf("%w: %s does not exist", ErrNotInitialized, path)
	}
	if err != nil {
		return Info{}, fmt.Errorf("reading project config: %w", err)
	}

	var info Info
	if err := yaml.Unmarshal(data, &info); err != nil {
		return Info{}, fmt.Errorf("parsing project config: %w", err)
	}

	info.Mode = ModeSwitch
	info.Auto = true
	return info, nil
}

// Save writes the project config to .mcaddon/project.yaml.
func Save(projectPath string, info Info) error {
	path := ConfigPath(projectPath)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", branding.HomeDir(), err)
	}

	data, err := yaml.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}

	return nil
}
