package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/pdrpinto/astar-maze/maze"
)

var gridLineColor = color.RGBA{0x80, 0x80, 0x80, 0xff}

func drawImage(cells [][]maze.Symbol, cellSize int, palette Palette) (*gg.Context, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("render: nothing to draw")
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("render: invalid cell size %d", cellSize)
	}
	size := float64(cellSize)
	dc := gg.NewContext(len(cells[0])*cellSize, len(cells)*cellSize)
	dc.SetColor(color.White)
	dc.Clear()

	for r, row := range cells {
		for c, s := range row {
			dc.SetColor(palette.Color(s))
			dc.DrawRectangle(float64(c)*size, float64(r)*size, size, size)
			dc.Fill()
		}
	}

	// Outline each cell; only the borders are touched.
	dc.SetColor(gridLineColor)
	dc.SetLineWidth(1)
	for r, row := range cells {
		for c := range row {
			dc.DrawRectangle(float64(c)*size+0.5, float64(r)*size+0.5, size-1, size-1)
		}
	}
	dc.Stroke()
	return dc, nil
}

// Image renders cells as an image, cellSize pixels per cell.
func Image(cells [][]maze.Symbol, cellSize int, palette Palette) (image.Image, error) {
	dc, err := drawImage(cells, cellSize, palette)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders cells and encodes the result as PNG to w.
func WritePNG(w io.Writer, cells [][]maze.Symbol, cellSize int, palette Palette) error {
	dc, err := drawImage(cells, cellSize, palette)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders cells into the PNG file at path.
func SavePNG(path string, cells [][]maze.Symbol, cellSize int, palette Palette) error {
	dc, err := drawImage(cells, cellSize, palette)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
