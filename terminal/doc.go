// Package terminal provides a minimal buffered console screen.
//
// A Screen puts the terminal into raw mode, captures its size once, and
// collects application output in a grid of rows addressed by a virtual
// cursor. Flush writes the rows to the terminal with a handful of ANSI
// sequences (cursor home, erase line, cursor visibility) and empties the
// grid for the next frame.
//
// Typical frame loop:
//
//	scr, err := terminal.New(terminal.Options{})
//	if err != nil { ... }
//	if err := scr.Init(); err != nil { ... }
//	defer scr.Close()
//
//	for {
//		scr.Flush()
//		scr.Printf("frame %d\n", n)
//		if scr.ReadChar() == terminal.Ctrl('q') {
//			return
//		}
//	}
//
// Output beyond height x width cells in one frame is dropped. Bytes are
// cells: there is no color, style or Unicode width handling.
package terminal
