package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinConfigs returns the theme configs bundled with glaze.
func LoadBuiltinConfigs() ([]*Config, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin themes: %w", err)
	}

	configs := make([]*Config, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin theme %s: %w", entry.Name(), err)
		}
		cfg, err := parseConfig(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin theme %s: %w", entry.Name(), err)
		}
		cfg.Source = "builtin"
		configs = append(configs, cfg)
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})

	return configs, nil
}
