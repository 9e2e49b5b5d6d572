package draw

import (
	"image/color"
	"math"
	"sort"
	"strconv"
)

// Point is a position in logical coordinates.
type Point struct {
	X, Y float64
}

// Half-block glyphs. A terminal cell shows two vertically stacked pixels.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// cell is what a terminal cell showed in the last rendered frame.
type cell struct {
	top, bottom color.RGBA
	dirty       bool // overwritten by text, repaint next frame
}

type textSpan struct {
	col, row int
	styled   string
	width    int
}

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. Drawing happens in logical coordinates which are
// scaled to terminal pixels. Only cells that changed since the previous
// Render are written.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // [y * termWidth + x], zero alpha is empty
	shown          []cell       // [row * termWidth + col]
	texts          []textSpan

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	offsetCol int
	offsetRow int

	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
	numBuf          [20]byte
}

// NewScaledCanvas creates a canvas of termWidth x termHeight cells that maps
// a logicalWidth x logicalHeight coordinate space onto it.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size. A change in size forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 1), max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]color.RGBA, c.subPixelHeight*termWidth)
		c.shown = make([]cell, termHeight*termWidth)
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based column and row where the canvas starts.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int      { return c.offsetCol }
func (c *Canvas) OffsetRow() int      { return c.offsetRow }
func (c *Canvas) TerminalWidth() int  { return c.termWidth }
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels and pending texts for a new frame.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.texts = c.texts[:0]
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	for i := range c.shown {
		c.shown[i].dirty = true
	}
}

// setPixel sets a pixel at terminal pixel coordinates.
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// Pixel returns the color at terminal pixel coordinates.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}
	}
	return c.pixels[y*c.termWidth+x]
}

// At returns the color at logical coordinates.
func (c *Canvas) At(x, y float64) color.RGBA {
	return c.Pixel(c.scale(Point{X: x, Y: y}))
}

func (c *Canvas) scale(p Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// SetFloat sets a single pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64, col color.RGBA) {
	px, py := c.scale(Point{X: x, Y: y})
	c.setPixel(px, py, col)
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, col color.RGBA) {
	x1, y1 := c.scale(p1)
	x2, y2 := c.scale(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon outline, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []Point, col color.RGBA, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points, col)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point, col color.RGBA) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	n := len(scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.intersectionBuf[:0]
		for i := 0; i < n; i++ {
			p1, p2 := scaled[i], scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// FillRect fills the axis-aligned rectangle spanned by lo and hi.
func (c *Canvas) FillRect(lo, hi Point, col color.RGBA) {
	x1, y1 := c.scale(lo)
	x2, y2 := c.scale(hi)
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			c.setPixel(x, y, col)
		}
	}
}

// DrawCircle draws a circle outline of the given logical radius.
func (c *Canvas) DrawCircle(center Point, radius float64, col color.RGBA) {
	steps := int(math.Ceil(2 * math.Pi * radius * math.Max(c.scaleX, c.scaleY)))
	steps = max(steps, 8)
	prev := Point{X: center.X + radius, Y: center.Y}
	for i := 1; i <= steps; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(steps))
		next := Point{X: center.X + radius*cos, Y: center.Y + radius*sin}
		c.DrawLine(prev, next, col)
		prev = next
	}
}

// Text places an already styled string at a 1-based canvas cell. width is
// the number of cells the text occupies once printed. Text that does not
// fit on the canvas entirely is dropped.
func (c *Canvas) Text(col, row int, styled string, width int) {
	if row < 1 || row > c.termHeight || col < 1 || col+width-1 > c.termWidth {
		return
	}
	c.texts = append(c.texts, textSpan{col: col, row: row, styled: styled, width: width})
}

// Render writes the cells that changed since the previous Render, then the
// texts on top of them.
func (c *Canvas) Render(cw *ChunkWriter) {
	var fg, bg color.RGBA // attributes currently set on the terminal
	cw.WriteString(sgrReset)

	for row := 0; row < c.termHeight; row++ {
		topRow := row * 2 * c.termWidth
		bottomRow := topRow + c.termWidth
		for col := 0; col < c.termWidth; col++ {
			next := cell{top: c.pixels[topRow+col], bottom: c.pixels[bottomRow+col]}
			idx := row*c.termWidth + col
			if c.shown[idx] == next {
				continue
			}
			c.shown[idx] = next

			cw.MoveCursor(col+1, row+1)
			glyph, wantFg, wantBg := cellGlyph(next)
			if wantFg != fg {
				c.writeColor(cw, 38, wantFg)
				fg = wantFg
			}
			if wantBg != bg {
				c.writeColor(cw, 48, wantBg)
				bg = wantBg
			}
			cw.WriteRune(glyph)
		}
	}
	cw.WriteString(sgrReset)

	for _, t := range c.texts {
		cw.WriteAt(t.col, t.row, t.styled)
		for col := t.col; col < t.col+t.width; col++ {
			c.shown[(t.row-1)*c.termWidth+col-1].dirty = true
		}
	}
}

// cellGlyph picks the half-block and colors for a cell. Zero colors mean
// the terminal default.
func cellGlyph(cl cell) (glyph rune, fg, bg color.RGBA) {
	top, bottom := cl.top.A != 0, cl.bottom.A != 0
	switch {
	case top && bottom && cl.top == cl.bottom:
		return BlockFull, cl.top, color.RGBA{}
	case top && bottom:
		return BlockUpperHalf, cl.top, cl.bottom
	case top:
		return BlockUpperHalf, cl.top, color.RGBA{}
	case bottom:
		return BlockLowerHalf, cl.bottom, color.RGBA{}
	default:
		return ' ', color.RGBA{}, color.RGBA{}
	}
}

const sgrReset = "\033[0m"

// writeColor emits a truecolor SGR; code is 38 for foreground, 48 for background.
func (c *Canvas) writeColor(cw *ChunkWriter, code int, col color.RGBA) {
	if col.A == 0 {
		cw.WriteString("\033[" + strconv.Itoa(code+1) + "m") // 39/49: default color
		return
	}
	cw.WriteString("\033[")
	cw.WriteString(strconv.Itoa(code))
	cw.WriteString(";2;")
	for i, v := range [3]uint8{col.R, col.G, col.B} {
		if i > 0 {
			cw.WriteByte(';')
		}
		cw.Write(strconv.AppendUint(c.numBuf[:0], uint64(v), 10))
	}
	cw.WriteByte('m')
}

// RenderBorder draws a box around the canvas when it is centered inside a
// larger terminal. Horizontal bars need a row offset, vertical bars a
// column offset.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	// canvas-relative, the writer applies the offset
	left, right := 0, c.termWidth+1
	top, bottom := 0, c.termHeight+1

	bar := make([]rune, c.termWidth)
	for i := range bar {
		bar[i] = '─'
	}
	if hasV {
		if hasH {
			cw.WriteAt(left, top, "┌"+string(bar)+"┐")
			cw.WriteAt(left, bottom, "└"+string(bar)+"┘")
		} else {
			cw.WriteAt(1, top, string(bar))
			cw.WriteAt(1, bottom, string(bar))
		}
	}
	if hasH {
		for row := 1; row <= c.termHeight; row++ {
			cw.WriteAt(left, row, "│")
			cw.WriteAt(right, row, "│")
		}
	}
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas cell.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.scale(Point{X: x, Y: y})
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of n points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
