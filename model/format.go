package model

import "strings"

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// String renders the grid with block glyphs, one line per row. Meant for
// debug logs and test failure output.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
