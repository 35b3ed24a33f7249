// Package tui implements the glaze theme preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glaze-ui/glaze/internal/theme"
	"github.com/glaze-ui/glaze/internal/tui/styles"
)

// Run launches the preview program for the loaded theme.
func Run(holder *theme.Holder) error {
	current, err := holder.Current()
	if err != nil {
		return err
	}
	program := tea.NewProgram(initialModel(holder, current), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type viewID int

const (
	viewLayers viewID = iota
	viewRamps
	viewPlayers
	viewSyntax
	viewCount
)

type model struct {
	holder *theme.Holder
	theme  *theme.Theme
	styles styles.Styles
	view   viewID
	width  int
	height int
}

const minWidth = 60

func initialModel(holder *theme.Holder, current *theme.Theme) model {
	return model{
		holder: holder,
		theme:  current,
		styles: styles.FromTheme(current),
		view:   viewLayers,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "1":
			m.view = viewLayers
		case "2":
			m.view = viewRamps
		case "3":
			m.view = viewPlayers
		case "4":
			m.view = viewSyntax
		case "g", "tab":
			m.view = (m.view + 1) % viewCount
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	// The holder may have been swapped behind us; re-derive styles when the
	// theme identity changes.
	if current, err := m.holder.Current(); err == nil && current != m.theme {
		m.theme = current
		m.styles = styles.FromTheme(current)
	}

	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.width < minWidth {
		return fmt.Sprintf("%s\n%s\n",
			m.styles.Title.Render(m.theme.Name),
			m.styles.Muted.Render("Terminal too narrow for the preview."))
	}

	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("%s (%s)", m.theme.Name, m.theme.Appearance)),
		"",
	}
	lines = append(lines, m.viewLines()...)
	lines = append(lines, "", m.styles.Muted.Render("1 layers | 2 ramps | 3 players | 4 syntax | g next | q quit"))
	return strings.Join(lines, "\n") + "\n"
}

func (m model) viewLines() []string {
	switch m.view {
	case viewRamps:
		return m.rampLines()
	case viewPlayers:
		return m.playerLines()
	case viewSyntax:
		return m.syntaxLines()
	default:
		return m.layerLines()
	}
}

func (m model) layerLines() []string {
	lines := []string{m.styles.Text.Render("Layers")}
	for _, entry := range []struct {
		name  string
		layer theme.Layer
	}{
		{"lowest", m.theme.Lowest},
		{"middle", m.theme.Middle},
		{"highest", m.theme.Highest},
	} {
		lines = append(lines, "", m.styles.Muted.Render(entry.name))
		for _, role := range []struct {
			name string
			set  theme.StyleSet
		}{
			{"base", entry.layer.Base},
			{"variant", entry.layer.Variant},
			{"on", entry.layer.On},
			{"accent", entry.layer.Accent},
			{"positive", entry.layer.Positive},
			{"warning", entry.layer.Warning},
			{"negative", entry.layer.Negative},
		} {
			row := []string{fmt.Sprintf("  %-9s", role.name)}
			for _, style := range []theme.Style{
				role.set.Default,
				role.set.Hovered,
				role.set.Pressed,
				role.set.Active,
				role.set.Disabled,
				role.set.Inverted,
			} {
				row = append(row, styles.Swatch(style.Background, 4))
			}
			lines = append(lines, strings.Join(row, " "))
		}
	}
	return lines
}

func (m model) rampLines() []string {
	lines := []string{m.styles.Text.Render("Ramps")}
	width := m.width - 14
	if width < 10 || width > 64 {
		width = 32
	}
	for _, name := range rampNames() {
		r, err := m.theme.Ramps.ByName(name)
		if err != nil {
			continue
		}
		var bar strings.Builder
		for i := 0; i < width; i++ {
			bar.WriteString(styles.Swatch(r.Hex(float64(i)/float64(width-1)), 1))
		}
		lines = append(lines, fmt.Sprintf("  %-9s %s", name, bar.String()))
	}
	return lines
}

func (m model) playerLines() []string {
	lines := []string{m.styles.Text.Render("Players"), ""}
	for i, player := range m.theme.Players {
		lines = append(lines, fmt.Sprintf("  player %d  %s %s",
			i+1, styles.Swatch(player.Cursor, 6), m.styles.Muted.Render(player.Cursor)))
	}
	lines = append(lines, "", m.styles.Text.Render("Shadows"))
	lines = append(lines, fmt.Sprintf("  modal    blur %.0f  %s", m.theme.Shadows.Modal.Blur,
		m.styles.Muted.Render(m.theme.Shadows.Modal.Color)))
	lines = append(lines, fmt.Sprintf("  popover  blur %.0f  %s", m.theme.Shadows.Popover.Blur,
		m.styles.Muted.Render(m.theme.Shadows.Popover.Color)))
	return lines
}

func (m model) syntaxLines() []string {
	lines := []string{m.styles.Text.Render("Syntax"), ""}
	for _, token := range sortedSyntaxTokens(m.theme.Syntax) {
		style := m.theme.Syntax[token]
		flags := style.Weight
		if style.Italic {
			flags += " italic"
		}
		if style.Underline {
			flags += " underline"
		}
		lines = append(lines, fmt.Sprintf("  %-16s %s %s  %s",
			token, styles.Swatch(style.Color, 4), m.styles.Muted.Render(style.Color), m.styles.Muted.Render(flags)))
	}
	return lines
}
