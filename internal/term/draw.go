package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine/cursor"
)

// Theme holds the styles the front end draws with.
type Theme struct {
	Text      tcell.Style
	Selection tcell.Style
	Cursor    tcell.Style
	Status    tcell.Style
}

// NewTheme builds styles from a configured palette. Foregrounds on
// coloured backgrounds are black or white, whichever reads better.
func NewTheme(p config.Palette) Theme {
	return Theme{
		Text:      tcell.StyleDefault,
		Selection: tcell.StyleDefault.Background(toTcell(p.Selection)).Foreground(contrast(p.Selection)),
		Cursor:    tcell.StyleDefault.Background(toTcell(p.Cursor)).Foreground(contrast(p.Cursor)),
		Status:    tcell.StyleDefault.Background(toTcell(p.Status)).Foreground(contrast(p.Status)),
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// contrast picks the foreground for text drawn on bg.
func contrast(bg colorful.Color) tcell.Color {
	if l, _, _ := bg.Lab(); l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

// cell is one grapheme of a line laid out on screen.
type cell struct {
	col   int // column of the grapheme's first character
	chars int
	x     int // screen offset from the line start
	width int
	runes []rune
}

// layout splits line into graphemes and assigns screen offsets. Tabs
// advance to the next multiple of tabWidth and are drawn as spaces.
func layout(line string, tabWidth int) []cell {
	var cells []cell
	col, x := 0, 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		runes := g.Runes()
		chars := len(runes)
		width := g.Width()
		if chars == 1 && runes[0] == '\t' {
			width = tabWidth - x%tabWidth
			runes = []rune{' '}
		}
		cells = append(cells, cell{col: col, chars: chars, x: x, width: width, runes: runes})
		col += chars
		x += width
	}
	return cells
}

// columnToX returns the screen offset of column col in line.
func columnToX(line string, col, tabWidth int) int {
	x := 0
	for _, c := range layout(line, tabWidth) {
		if c.col >= col {
			return c.x
		}
		x = c.x + c.width
	}
	return x
}

// selected reports whether pos lies in any non-empty selection.
func selected(sels []cursor.Selection, pos cursor.Position) bool {
	for _, s := range sels {
		if !s.IsEmpty() && s.Contains(pos) {
			return true
		}
	}
	return false
}

// drawLine draws line at screen row y, skipping the first left cells and
// clipping at width. Styles come from the selections and the secondary
// cursor positions on this line.
func drawLine(s tcell.Screen, y int, line string, lineNo int, left, width, tabWidth int,
	sels []cursor.Selection, carets map[cursor.Position]bool, theme Theme) {
	cells := layout(line, tabWidth)
	endCol, endX := 0, 0
	if n := len(cells); n > 0 {
		endCol = cells[n-1].col + cells[n-1].chars
		endX = cells[n-1].x + cells[n-1].width
	}
	if carets[cursor.Position{Line: lineNo, Column: endCol}] && endX-left >= 0 && endX-left < width {
		s.SetContent(endX-left, y, ' ', nil, theme.Cursor)
	}
	for _, c := range cells {
		x := c.x - left
		if x < 0 {
			continue
		}
		if x+c.width > width {
			break
		}
		pos := cursor.Position{Line: lineNo, Column: c.col}
		style := theme.Text
		switch {
		case carets[pos]:
			style = theme.Cursor
		case selected(sels, pos):
			style = theme.Selection
		}
		if c.width == 0 {
			continue
		}
		s.SetContent(x, y, c.runes[0], c.runes[1:], style)
		for i := 1; i < c.width && c.runes[0] == ' '; i++ {
			s.SetContent(x+i, y, ' ', nil, style)
		}
	}
}

// drawText draws text from x on row y in style, clipped at width, and
// returns the next free x.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if x+w > width {
			break
		}
		if w > 0 {
			s.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}

// fill paints row y from x to width with spaces in style.
func fill(s tcell.Screen, x, y, width int, style tcell.Style) {
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}
