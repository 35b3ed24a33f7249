package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glaze-ui/glaze/internal/export"
	"github.com/glaze-ui/glaze/internal/merge"
	"github.com/glaze-ui/glaze/internal/styletree"
	"github.com/glaze-ui/glaze/internal/theme"
)

var (
	buildOut    string
	buildNoTree bool
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildOut, "out", "", "write the resolved theme to a file instead of stdout")
	buildCmd.Flags().BoolVar(&buildNoTree, "no-tree", false, "omit the per-surface style tree from the output")
}

var buildCmd = &cobra.Command{
	Use:   "build <name|path>",
	Short: "Resolve a theme config into a complete style tree",
	Long:  "Resolve a theme config (by name on the search paths, or by file path) into a fully concrete theme and emit it as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := resolveThemeConfig(args[0])
		if err != nil {
			return err
		}

		resolved, err := theme.New(cfg, logger)
		if err != nil {
			return err
		}

		var tree merge.Fragment
		if !buildNoTree {
			tree, err = styletree.Build(styletree.DefaultContext(resolved))
			if err != nil {
				return fmt.Errorf("build style tree for %s: %w", resolved.Name, err)
			}
		}

		doc, err := export.Build(resolved, tree)
		if err != nil {
			return err
		}

		if buildOut != "" {
			if err := export.WriteFile(buildOut, doc); err != nil {
				return err
			}
			return writeBuildSummary(resolved, buildOut)
		}
		return export.Write(os.Stdout, doc)
	},
}

// resolveThemeConfig accepts a theme name (looked up on the search paths) or
// a direct path to a YAML file.
func resolveThemeConfig(arg string) (*theme.Config, error) {
	ext := strings.ToLower(filepath.Ext(arg))
	if ext == ".yaml" || ext == ".yml" {
		return theme.LoadConfig(arg)
	}
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return theme.LoadConfig(arg)
	}

	cfg, err := theme.FindConfig(projectDir(), arg)
	if err != nil {
		if errors.Is(err, theme.ErrConfigNotFound) {
			return nil, &PreflightError{
				Message:  fmt.Sprintf("theme %q not found", arg),
				Hint:     "run `glaze list` to see available themes, or pass a config file path",
				NextStep: "glaze list",
			}
		}
		return nil, err
	}
	return cfg, nil
}

func writeBuildSummary(resolved *theme.Theme, out string) error {
	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(writer, "Theme:\t%s\n", resolved.Name)
	fmt.Fprintf(writer, "Appearance:\t%s\n", resolved.Appearance)
	fmt.Fprintf(writer, "Syntax tokens:\t%d\n", len(resolved.Syntax))
	fmt.Fprintf(writer, "Output:\t%s\n", out)
	return writer.Flush()
}
