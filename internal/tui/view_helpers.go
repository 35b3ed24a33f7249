package tui

import (
	"sort"

	"github.com/glaze-ui/glaze/internal/ramp"
	"github.com/glaze-ui/glaze/internal/theme"
)

func rampNames() []string {
	return ramp.Names
}

func sortedSyntaxTokens(syntax map[string]theme.HighlightStyle) []string {
	tokens := make([]string, 0, len(syntax))
	for token := range syntax {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
