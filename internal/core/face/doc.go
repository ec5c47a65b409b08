// Package face draws an analog dial showing local time and UTC together.
//
// Hours 0-11 sit on an outer ring and 12-23 on an inner ring, so the label for
// the current local hour and the label for the current GMT hour can both be
// emphasised on the same dial. The minute arm and a half-length hour arm are
// drawn from the center, and the signed UTC offset of the local zone is
// printed as a label.
//
// The package is split into pure pieces (geometry, offset formatting, style
// resolution, the height animation step) and one stateful piece, the Engine,
// which owns the frame scheduler and the animation state. The Engine never
// blocks and never starts goroutines: a host delivers lifecycle notifications
// and timer ticks to it one at a time, and it answers through the Host
// interface by arming or cancelling the next tick and asking for a redraw.
package face
