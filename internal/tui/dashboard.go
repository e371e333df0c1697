package tui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mbartlett/thuck/internal/tui/components/meter"
	"github.com/mbartlett/thuck/internal/tui/theme"
)

const (
	dataColWidth  = 12
	labelColWidth = 14
	meterCells    = 16
)

func (m *Model) DashboardView() string {
	slots := BuildSlots(m.now, m.deps.State, m.deps.Windows)

	var (
		dataStyle = lipgloss.NewStyle().
				Width(dataColWidth).
				Align(lipgloss.Right).
				Bold(true)
		labelStyle = m.theme.TextMuted().
				Width(labelColWidth).
				PaddingLeft(2)
	)

	rows := []string{
		slotRow(dataStyle.Foreground(theme.ColorFeed), labelStyle, slots.LastFeed, slots.LastVolume, ""),
		slotRow(dataStyle.Foreground(theme.ColorElapsed), labelStyle, slots.Elapsed, "elapsed", ""),
	}

	if slots.Populated {
		for _, w := range slots.Windows {
			bar := meter.New(w.Fraction, meterCells, windowColor(w.Fraction)).Render()
			rows = append(rows, slotRow(dataStyle.Foreground(windowColor(w.Fraction)), labelStyle, w.Value, w.Name, bar))
		}
	} else {
		// pre-data: labels only, data cells stay blank
		for _, w := range m.deps.Windows {
			rows = append(rows, slotRow(dataStyle, labelStyle, "", w.Name, ""))
		}
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	body := lipgloss.Place(
		m.viewportWidth,
		m.viewportHeight,
		lipgloss.Center,
		lipgloss.Center,
		grid,
	)

	footer := lipgloss.Place(
		m.viewportWidth,
		m.viewportHeight,
		lipgloss.Left,
		lipgloss.Bottom,
		m.footerView(),
	)

	return overlayStrings(body, footer)
}

func slotRow(dataStyle, labelStyle lipgloss.Style, data, label, bar string) string {
	row := lipgloss.JoinHorizontal(
		lipgloss.Top,
		dataStyle.Render(data),
		labelStyle.Render(label),
	)
	if bar == "" {
		return row
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", bar)
}

// windowColor flips from "still ahead" to "passed" as the elapsed time
// crosses the midpoint.
func windowColor(fraction float64) color.Color {
	if fraction >= 1 {
		return theme.ColorPassed
	}
	return theme.ColorAhead
}

func (m *Model) footerView() string {
	pad := lipgloss.NewStyle().PaddingLeft(2).PaddingBottom(1)

	if m.entry.active {
		prompt := "log bottle (ml): " + m.entry.buffer + "█"
		if m.entry.hint != "" {
			prompt += "  " + m.entry.hint
		}
		return pad.Render(m.theme.TextAccent().Render(prompt))
	}

	line := m.status
	if m.child != nil {
		line += "  ·  l to log a bottle, q to quit"
	}
	return pad.Render(m.theme.TextMuted().Render(line))
}

// overlayStrings merges two equal-sized blocks, preferring non-blank
// cells from the overlay.
func overlayStrings(base, overlay string) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	merged := make([]string, max(len(baseLines), len(overlayLines)))
	for i := range merged {
		merged[i] = overlayLine(lineAt(baseLines, i), lineAt(overlayLines, i))
	}
	return strings.Join(merged, "\n")
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func overlayLine(base, overlay string) string {
	baseRunes := []rune(base)
	overlayRunes := []rune(overlay)

	out := make([]rune, max(len(baseRunes), len(overlayRunes)))
	for i := range out {
		out[i] = ' '
		if i < len(baseRunes) {
			out[i] = baseRunes[i]
		}
		if i < len(overlayRunes) && overlayRunes[i] != ' ' {
			out[i] = overlayRunes[i]
		}
	}
	return string(out)
}
