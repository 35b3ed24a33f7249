package theme

import (
	"os"
	"path/filepath"
)

// SearchPaths returns theme config directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".glaze", "themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "glaze", "themes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "glaze", "themes"))
	return paths
}

// LoadConfigsFromSearchPaths loads configs from search paths with first-hit
// precedence by name, builtins last.
func LoadConfigsFromSearchPaths(projectDir string) ([]*Config, error) {
	paths := SearchPaths(projectDir)
	seen := make(map[string]*Config)
	order := make([]string, 0)

	for _, path := range paths {
		configs, err := LoadConfigsFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, cfg := range configs {
			if _, exists := seen[cfg.Name]; exists {
				continue
			}
			seen[cfg.Name] = cfg
			order = append(order, cfg.Name)
		}
	}

	builtins, err := LoadBuiltinConfigs()
	if err != nil {
		return nil, err
	}
	for _, cfg := range builtins {
		if _, exists := seen[cfg.Name]; exists {
			continue
		}
		seen[cfg.Name] = cfg
		order = append(order, cfg.Name)
	}

	resolved := make([]*Config, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}

	return resolved, nil
}

// FindConfig loads a specific theme config by name.
func FindConfig(projectDir, name string) (*Config, error) {
	configs, err := LoadConfigsFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	for _, cfg := range configs {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return nil, ErrConfigNotFound
}
