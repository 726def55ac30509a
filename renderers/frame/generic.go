package frame

import (
	"bytes"
	"fmt"

	"github.com/promptframe/promptframe/themes"
)

// generic is the fallback chrome for chat-composer themes. It draws with the
// theme's own palette so each generic theme still reads as itself.
type generic struct{}

func (generic) header(buf *bytes.Buffer, t *themes.Theme, w, h int, title, language string, logo bool, mascot string) {
	midY := h / 2

	topRoundedPanel(buf, w, h, t.Header)
	textX := 14
	if logo {
		fmt.Fprintf(buf, `<circle cx="18" cy="%d" r="4" fill="%s" />`, midY, t.Accent)
		textX = 30
	}
	text(buf, textX, midY, t.Text, uiFamily, 13, 600, title)
	if language != "" {
		textEnd(buf, w-14, midY, t.Muted, monoFamily, 11, 400, language)
	}
	fmt.Fprintf(buf, `<line x1="0" y1="%d.5" x2="%d" y2="%d.5" stroke="%s" />`, h-1, w, h-1, t.Border)
}

func (generic) footer(buf *bytes.Buffer, t *themes.Theme, w, h int, opts Options) {
	bottomRoundedPanel(buf, w, h, t.Header)
	fmt.Fprintf(buf, `<line x1="0" y1="0.5" x2="%d" y2="0.5" stroke="%s" />`, w, t.Border)
	if opts.Text != "" && h >= 16 {
		text(buf, 14, h/2, t.Muted, monoFamily, 10, 400, opts.Text)
	}
}
