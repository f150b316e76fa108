package core

import (
	"strings"
)

// Screen is a character grid standing in for the device's LCD.
// Coordinates are (row, col), both zero-based, one cell per 8x8 glyph.
type Screen struct {
	rows  int
	cols  int
	cells [][]rune
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		rows: rows,
		cols: cols,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]rune, s.rows)
	for r := range s.cells {
		s.cells[r] = make([]rune, s.cols)
	}
}

// Rows returns the screen height in characters.
func (s *Screen) Rows() int {
	return s.rows
}

// Cols returns the screen width in characters.
func (s *Screen) Cols() int {
	return s.cols
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c] = ' '
		}
	}
}

// DrawChar places a rune at the given cell.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) DrawChar(row, col int, ch rune) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.cells[row][col] = ch
}

// Char returns the rune at the given cell.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Char(row, col int) rune {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return ' '
	}
	return s.cells[row][col]
}

// DrawText writes a string left to right starting at (row, col).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(row, col int, text string) {
	i := 0
	for _, ch := range text {
		s.DrawChar(row, col+i, ch)
		i++
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.rows*s.cols + s.rows)

	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < s.cols; c++ {
			sb.WriteRune(s.cells[r][c])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	return string(s.cells[row])
}

// Lines returns every row, top to bottom.
func (s *Screen) Lines() []string {
	lines := make([]string, s.rows)
	for r := range lines {
		lines[r] = string(s.cells[r])
	}
	return lines
}
