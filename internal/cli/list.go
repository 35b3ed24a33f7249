package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/glaze-ui/glaze/internal/theme"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available theme configs",
	Long:  "List theme configs found on the search paths, builtins included, in precedence order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, err := theme.LoadConfigsFromSearchPaths(projectDir())
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			type listed struct {
				Name       string           `json:"name"`
				Appearance theme.Appearance `json:"appearance"`
				Author     string           `json:"author,omitempty"`
				Source     string           `json:"source"`
			}
			payload := make([]listed, 0, len(configs))
			for _, cfg := range configs {
				payload = append(payload, listed{
					Name:       cfg.Name,
					Appearance: cfg.Appearance,
					Author:     cfg.Author,
					Source:     cfg.Source,
				})
			}
			return WriteOutput(os.Stdout, payload)
		}

		rows := make([][]string, 0, len(configs))
		for _, cfg := range configs {
			rows = append(rows, []string{cfg.Name, string(cfg.Appearance), cfg.Author, cfg.Source})
		}
		return writeTable(os.Stdout, []string{"NAME", "APPEARANCE", "AUTHOR", "SOURCE"}, rows)
	},
}
