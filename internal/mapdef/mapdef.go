// Package mapdef loads map definitions from YAML: a terrain legend
// mapping single-character glyphs to terrain names, plus the map body
// as rows of glyphs. The same format serves the square adventure map
// and the hex battle map; only the topology field differs.
package mapdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oakmund/warpath/pkg/grid"
)

// Def is a parsed map definition, not yet validated.
type Def struct {
	Name     string            `yaml:"name"`
	Topology string            `yaml:"topology"` // "square" or "hex"
	Legend   map[string]string `yaml:"legend"`
	Rows     []string          `yaml:"rows"`
}

// Parse decodes a YAML map definition.
func Parse(data []byte) (*Def, error) {
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("mapdef: unmarshal: %w", err)
	}
	return &d, nil
}

// Load reads and decodes a map definition file.
func Load(path string) (*Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapdef: load %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("mapdef: %s: %w", path, err)
	}
	return d, nil
}

// Build validates the definition and constructs its map. Every row
// must be the same width and every glyph must appear in the legend
// with a known terrain name.
func (d *Def) Build() (*grid.Map, error) {
	var topology grid.Topology
	switch d.Topology {
	case "square":
		topology = grid.SquareGrid
	case "hex":
		topology = grid.HexGrid
	default:
		return nil, fmt.Errorf("mapdef: %s: unknown topology %q", d.Name, d.Topology)
	}
	if len(d.Rows) == 0 {
		return nil, fmt.Errorf("mapdef: %s: no rows", d.Name)
	}

	terrains := make(map[rune]grid.Terrain, len(d.Legend))
	for glyph, name := range d.Legend {
		runes := []rune(glyph)
		if len(runes) != 1 {
			return nil, fmt.Errorf("mapdef: %s: legend key %q is not a single character", d.Name, glyph)
		}
		terr, ok := grid.TerrainByName(name)
		if !ok {
			return nil, fmt.Errorf("mapdef: %s: unknown terrain %q", d.Name, name)
		}
		terrains[runes[0]] = terr
	}

	width := len([]rune(d.Rows[0]))
	m := grid.NewMap(width, len(d.Rows), topology)
	for y, row := range d.Rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("mapdef: %s: row %d is %d cells wide, want %d", d.Name, y, len(cells), width)
		}
		for x, glyph := range cells {
			terr, ok := terrains[glyph]
			if !ok {
				return nil, fmt.Errorf("mapdef: %s: row %d: glyph %q not in legend", d.Name, y, string(glyph))
			}
			m.SetTerrain(grid.Position{X: x, Y: y}, terr)
		}
	}
	return m, nil
}

// LoadMap is the one-call path from file to validated map.
func LoadMap(path string) (*grid.Map, *Def, error) {
	d, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := d.Build()
	if err != nil {
		return nil, nil, err
	}
	return m, d, nil
}
