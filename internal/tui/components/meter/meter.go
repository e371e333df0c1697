package meter

import (
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/mbartlett/thuck/internal/tui/theme"
)

// braille cells are 2 dots wide and 4 dots tall
const (
	dotsPerCell = 2
	dotRows     = 4
)

// Meter is a single-row braille progress bar showing how far the elapsed
// time has advanced toward a window midpoint.
type Meter struct {
	Fraction   float64 // 0..1, clamped on render
	Cells      int     // width in terminal cells
	Color      color.Color
	TrackColor color.Color
}

func New(fraction float64, cells int, c color.Color) Meter {
	return Meter{
		Fraction:   fraction,
		Cells:      cells,
		Color:      c,
		TrackColor: theme.ColorBgLight,
	}
}

func (m Meter) Render() string {
	fraction := m.Fraction
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	totalDots := m.Cells * dotsPerCell
	filledDots := int(fraction*float64(totalDots) + 0.5)

	fill := renderBar(filledDots, totalDots)
	track := renderBar(totalDots, totalDots)

	fillStyle := lipgloss.NewStyle().Foreground(m.Color)
	trackStyle := lipgloss.NewStyle().Foreground(m.TrackColor)

	// overlay the filled prefix on the dim track
	fillCells := filledCellCount(filledDots)
	var b strings.Builder
	if fillCells > 0 {
		b.WriteString(fillStyle.Render(string([]rune(fill)[:fillCells])))
	}
	if fillCells < m.Cells {
		b.WriteString(trackStyle.Render(string([]rune(track)[fillCells:])))
	}
	return b.String()
}

// renderBar draws filled dots across a full-height bar and returns the
// single row of braille cells.
func renderBar(filledDots, totalDots int) string {
	canvas := drawille.NewCanvas()
	for x := range totalDots {
		if x >= filledDots {
			break
		}
		for y := range dotRows {
			canvas.Set(x, y)
		}
	}

	rows := canvas.Rows(0, 0, totalDots, dotRows)
	cells := totalDots / dotsPerCell

	var row string
	if len(rows) > 0 {
		row = rows[0]
	}

	runes := []rune(row)
	if len(runes) < cells {
		row += strings.Repeat("⠀", cells-len(runes))
	} else if len(runes) > cells {
		row = string(runes[:cells])
	}
	return row
}

// filledCellCount rounds a dot count up to whole cells so a partially
// filled cell renders in the fill color.
func filledCellCount(filledDots int) int {
	return (filledDots + dotsPerCell - 1) / dotsPerCell
}
