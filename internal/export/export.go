// Package export serializes resolved themes for the rendering toolkit.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/glaze-ui/glaze/internal/merge"
	"github.com/glaze-ui/glaze/internal/ramp"
	"github.com/glaze-ui/glaze/internal/theme"
)

// Document is the JSON payload produced by `glaze build`. Every ramp, state
// and syntax token is concrete; consumers never see optional fields.
type Document struct {
	Name       string                          `json:"name"`
	Appearance theme.Appearance                `json:"appearance"`
	IsLight    bool                            `json:"is_light"`
	Author     string                          `json:"author,omitempty"`
	License    theme.License                   `json:"license,omitempty"`
	Ramps      map[string][]string             `json:"ramps"`
	Layers     map[string]theme.Layer          `json:"layers"`
	Players    []theme.Player                  `json:"players"`
	Shadows    theme.Shadows                   `json:"shadows"`
	Syntax     map[string]theme.HighlightStyle `json:"syntax"`
	StyleTree  merge.Fragment                  `json:"style_tree,omitempty"`
}

// Build assembles the export document from a resolved theme and an optional
// style tree.
func Build(t *theme.Theme, tree merge.Fragment) (Document, error) {
	ramps := make(map[string][]string, len(ramp.Names))
	for _, name := range ramp.Names {
		r, err := t.Ramps.ByName(name)
		if err != nil {
			return Document{}, fmt.Errorf("export ramps: %w", err)
		}
		ramps[name] = r.Values()
	}

	return Document{
		Name:       t.Name,
		Appearance: t.Appearance,
		IsLight:    t.IsLight,
		Author:     t.Author,
		License:    t.License,
		Ramps:      ramps,
		Layers: map[string]theme.Layer{
			string(theme.ElevationLowest):  t.Lowest,
			string(theme.ElevationMiddle):  t.Middle,
			string(theme.ElevationHighest): t.Highest,
		},
		Players:   t.Players[:],
		Shadows:   t.Shadows,
		Syntax:    t.Syntax,
		StyleTree: tree,
	}, nil
}

// Write emits the document as indented JSON.
func Write(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode theme %s: %w", doc.Name, err)
	}
	return nil
}

// WriteFile writes the document to a path.
func WriteFile(path string, doc Document) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := Write(file, doc); err != nil {
		return err
	}
	return file.Close()
}
