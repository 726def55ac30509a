package frame

import (
	"bytes"
	"fmt"
)

// The mascot is composed from a fixed 12x11 character grid anchored to the
// panel's horizontal center. Each non-dot cell is one pixelSize square; the
// grid rows must all be gridCols wide.
const (
	gridCols   = 12
	pixelSize  = 4
	mascotSpan = gridCols * pixelSize
)

var mascotPalette = map[byte]string{
	'o': "#d97757", // body
	'w': "#fff4df", // mouth band
	'k': "#2d2a24", // eyes
	'h': "#3b4f7a", // hat
	'z': "#9db6db", // thought bubble
}

var mascotVariants = map[string][]string{
	"default": {
		"....oooo....",
		"...oooooo...",
		"..oooooooo..",
		"..okoookoo..",
		"..oooooooo..",
		"..oowwwwoo..",
		"...oooooo...",
		"....o..o....",
		"....o..o....",
		"...oo..oo...",
		"............",
	},
	"hatted": {
		".hhhhhhhhhh.",
		"...hhhhhh...",
		"..oooooooo..",
		"..okoookoo..",
		"..oooooooo..",
		"..oowwwwoo..",
		"...oooooo...",
		"....o..o....",
		"....o..o....",
		"...oo..oo...",
		"............",
	},
	"thinking": {
		"....oooo..z.",
		"...oooooo...",
		"..oooooooo.z",
		"..okoookoo..",
		"..oooooooo..",
		"..oowwwwoo..",
		"...oooooo...",
		"....o..o....",
		"....o..o....",
		"...oo..oo...",
		"............",
	},
	"waving": {
		"....oooo....",
		"...oooooo...",
		"..oooooooo.o",
		"..okoookoo.o",
		"..oooooooo..",
		"..oowwwwoo..",
		"...oooooo...",
		"....o..o....",
		"....o..o....",
		"...oo..oo...",
		"............",
	},
}

// drawMascot renders the named mascot variant centered on cx with its top
// edge at y. Unknown variants fall back to the default silently.
func drawMascot(buf *bytes.Buffer, cx, y int, variant string) {
	grid, ok := mascotVariants[variant]
	if !ok {
		grid = mascotVariants["default"]
	}

	left := cx - mascotSpan/2
	for row, line := range grid {
		for col := 0; col < len(line) && col < gridCols; col++ {
			fill, ok := mascotPalette[line[col]]
			if !ok {
				continue
			}
			fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" />`,
				left+col*pixelSize, y+row*pixelSize, pixelSize, pixelSize, fill)
		}
	}
}
