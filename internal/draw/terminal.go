package draw

import (
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes written at once, about one MTU, so a
// frame streams smoothly over SSH.
const maxChunkSize = 1400

// ChunkWriter collects one frame of terminal output and hands it to the
// underlying writer in chunks. Cursor positions are 1-based canvas
// coordinates shifted by the offset.
type ChunkWriter struct {
	out    io.Writer
	frame  []byte
	offCol int
	offRow int
}

func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    w,
		frame:  make([]byte, 0, 16*1024),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the canvas origin, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

// MoveCursor appends a cursor position sequence for a canvas cell.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.frame = append(cw.frame, termenv.CSI...)
	cw.frame = strconv.AppendInt(cw.frame, int64(row+cw.offRow), 10)
	cw.frame = append(cw.frame, ';')
	cw.frame = strconv.AppendInt(cw.frame, int64(col+cw.offCol), 10)
	cw.frame = append(cw.frame, 'H')
}

func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.frame = append(cw.frame, p...)
	return len(p), nil
}

func (cw *ChunkWriter) WriteString(s string) {
	cw.frame = append(cw.frame, s...)
}

func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.frame = append(cw.frame, s...)
}

func (cw *ChunkWriter) WriteByte(c byte) error {
	cw.frame = append(cw.frame, c)
	return nil
}

func (cw *ChunkWriter) WriteRune(r rune) {
	cw.frame = utf8.AppendRune(cw.frame, r)
}

// Len returns the size of the pending frame.
func (cw *ChunkWriter) Len() int {
	return len(cw.frame)
}

// Flush sends the pending frame and empties it. The buffer is kept for the
// next frame.
func (cw *ChunkWriter) Flush() error {
	defer func() { cw.frame = cw.frame[:0] }()
	for data := cw.frame; len(data) > 0; {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

var _ io.Writer = (*ChunkWriter)(nil)

// TermSizeFunc returns the terminal dimensions in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns the size of the terminal on os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClampSize limits a terminal size to maxWidth x maxHeight and returns the
// offset that centers the clamped area.
func ClampSize(termWidth, termHeight, maxWidth, maxHeight int) (width, height, offsetCol, offsetRow int) {
	width = min(termWidth, maxWidth)
	height = min(termHeight, maxHeight)
	return width, height, (termWidth - width) / 2, (termHeight - height) / 2
}

func ClearScreen(w io.Writer) { termenv.NewOutput(w).ClearScreen() }
func HideCursor(w io.Writer)  { termenv.NewOutput(w).HideCursor() }
func ShowCursor(w io.Writer)  { termenv.NewOutput(w).ShowCursor() }
