package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"rgit/internal/repo"
)

// Known keys: core.logLevel, color.ui

const (
	KeyLogLevel = "core.logLevel"
	KeyColor    = "color.ui"
)

var ErrNoValue = errors.New("no config value")

func globalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rgit"), nil
}

func globalConfigPath() (string, error) {
	dir, err := globalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// RepoConfigPath is <repoPath>/.rgit/config.toml
func RepoConfigPath(repoPath string) string {
	return filepath.Join(repo.MarkerPath(repoPath), "config.toml")
}

func loadToml(path string) (*toml.Tree, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		tree, err := toml.TreeFromMap(map[string]interface{}{})
		if err != nil {
			return nil, fmt.Errorf("failed to create empty config: %w", err)
		}
		return tree, nil
	}
	if err != nil {
		return nil, err
	}
	tree, err := toml.LoadBytes(b)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tree, nil
}

func saveToml(tree *toml.Tree, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(tree.String()), 0644)
}

func setValue(path, key, val string) error {
	tree, err := loadToml(path)
	if err != nil {
		return err
	}
	tree.Set(key, val)
	return saveToml(tree, path)
}

// SetGlobalValue sets key=val in ~/.config/rgit/config.toml
func SetGlobalValue(key, val string) error {
	gp, err := globalConfigPath()
	if err != nil {
		return err
	}
	return setValue(gp, key, val)
}

// SetRepoValue sets key=val in <repoPath>/.rgit/config.toml
func SetRepoValue(repoPath, key, val string) error {
	if st, err := repo.Inspect(repo.MarkerPath(repoPath)); err != nil || st != repo.MarkerDirectory {
		return fmt.Errorf("%s is not an rgit repository", repoPath)
	}
	return setValue(RepoConfigPath(repoPath), key, val)
}

// GetValue => repo-level override, else global. An empty repoPath skips the
// repo level.
func GetValue(repoPath, key string) (string, error) {
	var paths []string
	if repoPath != "" {
		paths = append(paths, RepoConfigPath(repoPath))
	}
	if gp, err := globalConfigPath(); err == nil {
		paths = append(paths, gp)
	}
	for _, p := range paths {
		tree, err := loadToml(p)
		if err != nil {
			return "", err
		}
		if v := tree.Get(key); v != nil {
			return fmt.Sprintf("%v", v), nil
		}
	}
	return "", fmt.Errorf("%w for %s", ErrNoValue, key)
}

// Lookup is GetValue for callers that treat a missing key as unset. Read
// and parse errors are still returned.
func Lookup(repoPath, key string) (string, error) {
	v, err := GetValue(repoPath, key)
	if errors.Is(err, ErrNoValue) {
		return "", nil
	}
	return v, err
}
