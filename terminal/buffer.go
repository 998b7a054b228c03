package terminal

import "bufio"

// row holds the cells written to one screen line this frame
type row struct {
	data []byte
}

// rowBuffer is the frame grid: height rows of at most width bytes each,
// filled in order through a virtual cursor
type rowBuffer struct {
	rows  []row
	width int

	// Next empty cell
	cursorRow int
	cursorCol int

	// Set once the cursor moves past the last row; cleared by flush
	wrapped bool
}

// newRowBuffer allocates height empty rows
func newRowBuffer(width, height int) *rowBuffer {
	return &rowBuffer{
		rows:  make([]row, height),
		width: width,
	}
}

// put copies text into the grid and returns len(text), including any bytes
// dropped once the grid is full
func (b *rowBuffer) put(text string) int {
	if b.wrapped || len(b.rows) == 0 {
		return 0
	}

	for i := 0; i < len(text) && !b.wrapped; i++ {
		c := text[i]
		if c == '\n' {
			b.cursorCol = 0
			b.nextRow()
			continue
		}

		r := &b.rows[b.cursorRow]
		if len(r.data) == cap(r.data) {
			// Grow by exactly the run up to the next newline or the row end
			grown := make([]byte, len(r.data), len(r.data)+b.span(text[i:]))
			copy(grown, r.data)
			r.data = grown
		}
		r.data = append(r.data, c)

		b.cursorCol++
		if b.cursorCol == b.width {
			b.cursorCol = 0
			b.nextRow()
		}
	}

	return len(text)
}

// span counts the cells text can still place in the current row
func (b *rowBuffer) span(text string) int {
	room := b.width - b.cursorCol
	n := 0
	for n < len(text) && n < room && text[n] != '\n' {
		n++
	}
	return n
}

func (b *rowBuffer) nextRow() {
	b.cursorRow++
	if b.cursorRow == len(b.rows) {
		b.wrapped = true
	}
}

// flush writes every row to w and releases it. Rows are separated by CRLF;
// the last row gets none so the terminal does not scroll.
func (b *rowBuffer) flush(w *bufio.Writer) {
	last := len(b.rows) - 1
	for i := range b.rows {
		w.Write(csiEraseLine)
		if r := &b.rows[i]; r.data != nil {
			w.Write(r.data)
			r.data = nil
		}
		if i < last {
			w.Write(crlf)
		}
	}

	b.cursorRow = 0
	b.cursorCol = 0
	b.wrapped = false
}

// release frees all rows, flushed or not
func (b *rowBuffer) release() {
	b.rows = nil
	b.width = 0
	b.cursorRow = 0
	b.cursorCol = 0
	b.wrapped = false
}

func (b *rowBuffer) height() int {
	return len(b.rows)
}
