// Package backend defines the terminal driver boundary of the framework.
// A Backend owns the physical terminal: it buffers cell writes, commits
// them on Show, and produces decoded input events. The render pipeline is
// the only writer; swapping the tcell implementation for the simulation
// one is how the engine is tested without a terminal.
package backend

import "github.com/weftui/weft/pkg/terminal"

// Backend is the terminal abstraction the event loop drives.
type Backend interface {
	// Init acquires the terminal (alt screen, raw mode).
	Init() error

	// Fini releases the terminal, restoring its previous state.
	Fini()

	// Size returns the current terminal dimensions in cells.
	Size() (width, height int)

	// SetContent writes one cell. comb holds combining runes and may be nil.
	// Writes are buffered until Show.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show commits buffered writes to the physical terminal.
	Show()

	// Clear erases the whole screen buffer.
	Clear()

	// HideCursor hides the hardware cursor.
	HideCursor()

	// ShowCursor makes the hardware cursor visible.
	ShowCursor()

	// SetCursorPos positions the hardware cursor.
	SetCursorPos(x, y int)

	// PollEvent blocks until the next input event. A nil return means the
	// driver has shut down; callers must treat it as terminal.
	PollEvent() terminal.Event

	// PostEvent injects a synthetic event into the input queue.
	PostEvent(ev terminal.Event) error

	// Beep rings the terminal bell.
	Beep()

	// Sync forces a full repaint on the next Show.
	Sync()
}

// RenderTarget is the write-only subset of Backend the render pipeline
// hands to widgets. Nothing above the pipeline sees the full Backend.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}
