package frame

import (
	"bytes"
	"fmt"

	"github.com/promptframe/promptframe/lib/escape"
)

// segment is one trapezoid block of a powerline status bar. frac is the
// segment's share of the total canvas width; next is the fill of the
// triangular arrow trailing the segment, colored as the following segment so
// the blocks visually flow into each other.
type segment struct {
	frac       float64
	color      string
	next       string
	label      string
	labelColor string
}

const powerlineArrowWidth = 6

func renderPowerlineRow(buf *bytes.Buffer, segs []segment, width, yOff, rowH int) {
	x := 0
	for _, s := range segs {
		sw := int(float64(width)*s.frac + 0.5)
		fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" />`,
			x, yOff, sw+powerlineArrowWidth, rowH, s.color)
		text9Centered(buf, x+sw/2, yOff+rowH/2, s.labelColor, s.label)
		ax := x + sw
		fmt.Fprintf(buf, `<polygon points="%d,%d %d,%d %d,%d" fill="%s" />`,
			ax, yOff, ax+powerlineArrowWidth, yOff+rowH/2, ax, yOff+rowH, s.next)
		x += sw
	}
}

func text9Centered(buf *bytes.Buffer, x, y int, fill, content string) {
	fmt.Fprintf(buf,
		`<text x="%d" y="%d" fill="%s" font-family="%s" font-size="9" font-weight="500" dominant-baseline="central" text-anchor="middle">%s</text>`,
		x, y, fill, monoFamily, escape.XML(content))
}
