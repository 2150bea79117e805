// Package render displays solved grids: in a terminal through tcell and as
// PNG images through gg.
package render

import (
	"image/color"

	"github.com/pdrpinto/astar-maze/maze"
)

// Palette maps cell symbols to display colors.
type Palette map[maze.Symbol]color.RGBA

// unknownColor is used for symbols missing from a palette.
var unknownColor = color.RGBA{0x80, 0x80, 0x80, 0xff}

// DefaultPalette returns the standard colors: green start, red end, white to
// deepening pink terrain tiers, black obstacles and an orange path.
func DefaultPalette() Palette {
	return Palette{
		maze.Start:      {0x00, 0xff, 0x00, 0xff},
		maze.End:        {0xff, 0x00, 0x00, 0xff},
		maze.Open:       {0xff, 0xff, 0xff, 0xff},
		maze.Rough:      {0xff, 0xe0, 0xe0, 0xff},
		maze.Difficult:  {0xff, 0xb0, 0xb0, 0xff},
		maze.Extreme:    {0xff, 0x80, 0x80, 0xff},
		maze.Obstacle:   {0x00, 0x00, 0x00, 0xff},
		maze.PathMarker: {0xff, 0xa5, 0x00, 0xff},
	}
}

// Color returns the color for s.
func (p Palette) Color(s maze.Symbol) color.RGBA {
	if c, ok := p[s]; ok {
		return c
	}
	return unknownColor
}
