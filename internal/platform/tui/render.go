package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleID selects the lipgloss style of a cell.
type styleID uint8

const (
	styleDefault styleID = iota
	styleTile
	stylePlayer
	styleFinish
	styleHUD
	styleMenu
)

// cellStyles maps style IDs to lipgloss styles.
var cellStyles = map[styleID]lipgloss.Style{
	styleDefault: lipgloss.NewStyle(),
	styleTile:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	stylePlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	styleFinish:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	styleHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	styleMenu:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
}

type cell struct {
	r     rune
	style styleID
}

// frame is a fixed-size character buffer the board is drawn into.
type frame struct {
	width int
	rows  [][]cell
}

func newFrame(width, height int) *frame {
	f := &frame{width: width, rows: make([][]cell, height)}
	for y := range f.rows {
		f.rows[y] = make([]cell, width)
		for x := range f.rows[y] {
			f.rows[y][x] = cell{r: ' '}
		}
	}
	return f
}

// set places a rune; out-of-bounds coordinates are silently ignored.
func (f *frame) set(x, y int, r rune, style styleID) {
	if y < 0 || y >= len(f.rows) || x < 0 || x >= f.width {
		return
	}
	f.rows[y][x] = cell{r: r, style: style}
}

func (f *frame) text(x, y int, s string, style styleID) {
	for i, r := range []rune(s) {
		f.set(x+i, y, r, style)
	}
}

// String converts the frame to a styled string.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (f *frame) String() string {
	var sb strings.Builder
	sb.Grow(f.width*len(f.rows)*2 + len(f.rows))

	for y, row := range f.rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(row) {
			start := row[x].style

			var run strings.Builder
			for x < len(row) && row[x].style == start {
				run.WriteRune(row[x].r)
				x++
			}

			style, ok := cellStyles[start]
			if !ok || start == styleDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Plain returns the frame without styling, for tests.
func (f *frame) Plain() string {
	lines := make([]string, len(f.rows))
	for y, row := range f.rows {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.r
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}
