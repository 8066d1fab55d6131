// Package render draws boards and full solutions as inline SVG and HTML
// for the web UI and the CLI's report file.
package render

import (
	"fmt"
	"strings"

	"svw.info/numbermatch/internal/domain"
)

const cellSize = 50

// lineColors cycles per move so overlapping lines stay tellable apart.
var lineColors = []string{
	"#E53935", "#1E88E5", "#43A047", "#FB8C00", "#8E24AA",
	"#00ACC1", "#D81B60", "#6D4C41", "#546E7A", "#FFB300",
	"#7CB342", "#039BE5", "#C0CA33", "#F4511E", "#5E35B1",
}

// BoardSVG renders the board with optional move lines; highlight is the
// index within moves drawn thicker (the row-removing move), or -1.
func BoardSVG(b domain.Board, moves []domain.Move, highlight int) string {
	if len(b) == 0 {
		return `<div class="cleared">Board cleared!</div>`
	}

	width := domain.RowSize * cellSize
	height := b.Rows() * cellSize

	marked := make(map[int]bool, 2*len(moves))
	for _, m := range moves {
		marked[m.I] = true
		marked[m.J] = true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" style="display:block">`, width, height)
	sb.WriteByte('\n')

	for idx, v := range b {
		row, col := domain.RowCol(idx)
		x, y := col*cellSize, row*cellSize

		fill, stroke := "#FFF", "#F5F5F5"
		switch {
		case marked[idx]:
			fill, stroke = "#C8E6C9", "#4CAF50"
		case v > 0:
			fill, stroke = "#F5F5F5", "#DDD"
		case v == domain.Cleared:
			fill, stroke = "#FAFAFA", "#EEE"
		}
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" rx="4"/>`,
			x+2, y+2, cellSize-4, cellSize-4, fill, stroke)
		sb.WriteByte('\n')

		if v > 0 {
			weight := "normal"
			if marked[idx] {
				weight = "bold"
			}
			fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="middle" font-size="20" font-family="monospace" font-weight="%s" fill="#333">%d</text>`,
				x+cellSize/2, y+cellSize/2+7, weight, v)
			sb.WriteByte('\n')
		} else if v == domain.Cleared {
			fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="middle" font-size="16" fill="#CCC">&#183;</text>`,
				x+cellSize/2, y+cellSize/2+5)
			sb.WriteByte('\n')
		}
	}

	for k, m := range moves {
		ri, ci := domain.RowCol(m.I)
		rj, cj := domain.RowCol(m.J)
		x1, y1 := ci*cellSize+cellSize/2, ri*cellSize+cellSize/2
		x2, y2 := cj*cellSize+cellSize/2, rj*cellSize+cellSize/2
		lineWidth, opacity := 3, "0.7"
		if k == highlight {
			lineWidth, opacity = 5, "0.9"
		}
		fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d" stroke-linecap="round" opacity="%s"/>`,
			x1, y1, x2, y2, lineColors[k%len(lineColors)], lineWidth, opacity)
		sb.WriteByte('\n')
	}

	sb.WriteString("</svg>")
	return sb.String()
}
