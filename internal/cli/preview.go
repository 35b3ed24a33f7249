package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glaze-ui/glaze/internal/theme"
	"github.com/glaze-ui/glaze/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <name|path>",
	Short: "Preview a resolved theme in the terminal",
	Long:  "Resolve a theme config and browse its layers, ramps, players and syntax colors interactively.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return &PreflightError{
				Message:  "preview requires an interactive terminal",
				Hint:     "use `glaze build` for machine output",
				NextStep: "glaze build " + args[0],
			}
		}

		cfg, err := resolveThemeConfig(args[0])
		if err != nil {
			return err
		}

		resolved, err := theme.New(cfg, newLogger())
		if err != nil {
			return err
		}

		holder := &theme.Holder{}
		holder.Load(resolved)
		return tui.Run(holder)
	},
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
