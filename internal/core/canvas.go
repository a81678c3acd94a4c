package core

// CanvasForTerminal returns a canvas size that fills a terminal of cols x rows
// characters, reserving one row for the status line. Every character cell
// shows two vertically stacked pixels.
func CanvasForTerminal(cols, rows int) (int, int) {
	if rows > 1 {
		rows--
	}
	return Max(cols, 1), Max(rows*2, 2)
}
