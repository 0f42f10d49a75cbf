package draw

import (
	"io"
	"math"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Logical coordinates grow downwards, like terminal rows.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Rows written by the previous Render. Only changed rows are sent again.
	prevRows []string
	rowBuf   []rune
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A changed size forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		subPixelHeight := termHeight * 2
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.prevRows = make([]string, termHeight)
	}

	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render write every row.
func (c *Canvas) ForceRedraw() {
	clear(c.prevRows)
}

// Invalidate makes the next Render rewrite the given 1-based canvas row, for
// rows that had text written over them.
func (c *Canvas) Invalidate(row int) {
	if row >= 1 && row <= len(c.prevRows) {
		c.prevRows[row-1] = ""
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the pixel at terminal sub-pixel coordinates is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills the logical rectangle [x0,x1]×[y0,y1].
// Every rectangle covers at least one pixel so thin shapes stay visible.
func (c *Canvas) FillRect(x0, y0, x1, y1 float64) {
	px0 := int(math.Floor(x0 * c.scaleX))
	py0 := int(math.Floor(y0 * c.scaleY))
	px1 := max(int(math.Ceil(x1*c.scaleX))-1, px0)
	py1 := max(int(math.Ceil(y1*c.scaleY))-1, py0)

	for y := py0; y <= py1; y++ {
		for x := px0; x <= px1; x++ {
			c.setPixel(x, y)
		}
	}
}

// FillCircle fills a circle given in logical coordinates.
// Pixels whose centre lies inside the circle are set; a circle smaller than
// a pixel still sets the pixel under its centre.
func (c *Canvas) FillCircle(cx, cy, radius float64) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	rx := radius * c.scaleX
	ry := radius * c.scaleY

	c.setPixel(int(math.Floor(pcx)), int(math.Floor(pcy)))
	if rx <= 0 || ry <= 0 {
		return
	}

	for y := int(math.Floor(pcy - ry)); y <= int(math.Ceil(pcy+ry)); y++ {
		dy := (float64(y) + 0.5 - pcy) / ry
		for x := int(math.Floor(pcx - rx)); x <= int(math.Ceil(pcx+rx)); x++ {
			dx := (float64(x) + 0.5 - pcx) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(x, y)
			}
		}
	}
}

// Render outputs the canvas to the writer using half-block characters.
// Rows identical to the previous frame are skipped.
func (c *Canvas) Render(w io.Writer) {
	if cap(c.rowBuf) < c.termWidth {
		c.rowBuf = make([]rune, c.termWidth)
	}
	row := c.rowBuf[:c.termWidth]

	var buf strings.Builder
	for r := 0; r < c.termHeight; r++ {
		topOffset := r * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			switch {
			case top && bottom:
				row[col] = BlockFull
			case top:
				row[col] = BlockUpperHalf
			case bottom:
				row[col] = BlockLowerHalf
			default:
				row[col] = BlockEmpty
			}
		}

		line := string(row)
		if line == c.prevRows[r] {
			continue
		}
		c.prevRows[r] = line
		writeCursor(&buf, c.offsetCol+1, c.offsetRow+r+1)
		buf.WriteString(line)
	}

	io.WriteString(w, buf.String())
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			writeCursor(&buf, left, top)
			buf.WriteString("┌" + line + "┐")
			writeCursor(&buf, left, bottom)
			buf.WriteString("└" + line + "┘")
		} else {
			writeCursor(&buf, c.offsetCol+1, top)
			buf.WriteString(line)
			writeCursor(&buf, c.offsetCol+1, bottom)
			buf.WriteString(line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			writeCursor(&buf, left, row)
			buf.WriteString("│")
			writeCursor(&buf, right, row)
			buf.WriteString("│")
		}
	}

	io.WriteString(w, buf.String())
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
