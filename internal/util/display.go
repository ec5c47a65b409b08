package util

import "github.com/mattn/go-runewidth"

// Terminal control sequences
const (
	ColorReset = "\033[0m"

	ClearScreen         = "\033[2J"     // Clear entire screen
	ClearLineFromCursor = "\033[0K"     // Clear from cursor to end of line
	ClearToScreenEnd    = "\033[0J"     // Clear from cursor to end of screen
	ClearScrollback     = "\033[3J"     // Clear scrollback buffer
	ResetScrollRegion   = "\033[r"      // Reset scroll region
	DisableScrollback   = "\033[?1007h" // Disable scrollback
	EnableScrollback    = "\033[?1007l" // Enable scrollback
	EnterAltScreen      = "\033[?1049h" // Switch to alternate screen buffer
	ExitAltScreen       = "\033[?1049l" // Return to normal screen buffer
	MoveCursorHome      = "\033[H"      // Move cursor to home position
	HideCursor          = "\033[?25l"   // Hide cursor
	ShowCursor          = "\033[?25h"   // Show cursor
)

// GetDisplayWidth calculates the display width of a string in terminal cells
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}
