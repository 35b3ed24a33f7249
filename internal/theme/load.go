package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a single theme config from disk.
func LoadConfig(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme config path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme config %s: %w", path, err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// LoadConfigsFromDir loads all theme configs from a directory. A missing
// directory is not an error.
func LoadConfigsFromDir(dir string) ([]*Config, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Config{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Config{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	configs := make([]*Config, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		cfg, err := LoadConfig(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})

	return configs, nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.Name = strings.TrimSpace(cfg.Name)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
