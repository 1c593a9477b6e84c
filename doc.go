// Package termcore provides an embeddable terminal-emulation core: a
// fixed-capacity circular text buffer with per-cell colors, a
// cursor/selection/scroll model, and an ANSI escape-sequence interpreter
// that mutates that buffer.
//
// There is no display and no process plumbing here. The package consumes a
// character stream and key events and exposes a read-only render model
// (cells + cursor + selection), making it the core of:
//
//   - Terminal widgets (the GUI layer paints View and forwards keys)
//   - Testing CLI output without a GUI
//   - Capturing colored program output as structured data or images
//
// # Quick Start
//
// Create a terminal and feed ANSI sequences to it:
//
//	term, _ := termcore.New()
//	term.Feed("\x1b[31mHello \x1b[32mWorld\x1b[m!\n")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: the owning core, wiring the pieces below together
//   - [RingBuffer]: a circular buffer of cells bounded by sentinels, with
//     line-boundary queries and the scroll origin
//   - [Interpreter]: the escape-sequence state machine feeding the buffer
//   - [InputEditor]: keyboard capture with a watermark, word motion, and
//     visible or masked (password) input
//   - [Cell] and [ColorID]: one character with foreground/background color
//
// # Ring buffer
//
// Content lives in a fixed ring: the write cursor wraps past the last index
// back to zero, and old content is overwritten as the stream outruns the
// capacity. There is no line index and no length field; a NUL sentinel
// bounds the written content, and the two cells at and after the cursor are
// always sentinel, so scans probing one cell ahead never read stale data.
//
// # Feeding output
//
// Terminal implements [io.Writer], so command output can be piped in
// directly:
//
//	term, _ := termcore.New(termcore.WithCapacity(64000))
//	cmd := exec.Command("ls", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//
// # Reading input
//
// Input capture is explicit: nothing can be typed unless a read is pending.
//
//	term.ReadLine(true, func(line string) {
//	    fmt.Println("got:", line)
//	})
//	term.HandleKey(termcore.KeyEvent{Key: termcore.KeyRune, Rune: 'h'})
//	term.HandleKey(termcore.KeyEvent{Key: termcore.KeyRune, Rune: 'i'})
//	term.HandleKey(termcore.KeyEvent{Key: termcore.KeyEnter})
//
// Masked capture (ReadLine with visible=false) keeps typed characters out
// of the buffer entirely and draws a mask placeholder instead.
//
// # Rendering
//
// A renderer walks [Terminal.View] for up to rows logical lines from the
// scroll origin, reading per-cell colors plus cursor and selection overlay
// flags. [Terminal.Snapshot] exports the same data as a structured value
// and [Terminal.Screenshot] renders it to an image for debugging or golden
// tests.
//
// # Concurrency
//
// The core is single-threaded: operations are bounded synchronous scans
// applied strictly in call order, and the Terminal performs no internal
// locking. Producers on other goroutines must hand off through a channel or
// an external lock. The process-wide color registry is the one shared
// structure and carries its own mutex.
package termcore
