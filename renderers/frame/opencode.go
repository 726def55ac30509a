package frame

import (
	"bytes"
	"fmt"

	"github.com/promptframe/promptframe/themes"
)

// GitHub dark mode code block bg: #161b22
// Headers and footers sit flush against the native code block, so the
// terminal-styled themes pin their panel to this instead of the theme shell.
const (
	blendBg     = "#161b22"
	blendBorder = "#30363d"
)

// openCode mimics the opencode TUI: a thin accent bar down the left edge and
// monospace status text.
type openCode struct{}

const openCodeBarWidth = 3

func (openCode) header(buf *bytes.Buffer, t *themes.Theme, w, h int, title, language string, logo bool, mascot string) {
	midY := h / 2

	topRoundedPanel(buf, w, h, blendBg)
	fmt.Fprintf(buf, `<rect x="0" y="0" width="%d" height="%d" fill="%s" />`, openCodeBarWidth, h, t.Accent)
	if logo {
		fmt.Fprintf(buf, `<rect x="%d" y="%d" width="8" height="8" fill="%s" rx="2" ry="2" />`, openCodeBarWidth+12, midY-4, t.Accent)
		text(buf, openCodeBarWidth+28, midY, "#c8c8cc", monoFamily, 13, 400, title)
	} else {
		text(buf, openCodeBarWidth+16, midY, "#c8c8cc", monoFamily, 13, 400, title)
	}
	if language != "" {
		textEnd(buf, w-14, midY, "#6b6b75", monoFamily, 11, 400, language)
	}
	fmt.Fprintf(buf, `<line x1="0" y1="%d.5" x2="%d" y2="%d.5" stroke="%s" />`, h-1, w, h-1, blendBorder)
}

func (openCode) footer(buf *bytes.Buffer, t *themes.Theme, w, h int, opts Options) {
	midY := h / 2

	bottomRoundedPanel(buf, w, h, blendBg)
	fmt.Fprintf(buf, `<rect x="0" y="0" width="%d" height="%d" fill="%s" />`, openCodeBarWidth, h, t.Accent)
	fmt.Fprintf(buf, `<line x1="0" y1="0.5" x2="%d" y2="0.5" stroke="%s" />`, w, blendBorder)

	if opts.Text != "" {
		text(buf, openCodeBarWidth+16, midY, "#c8c8cc", monoFamily, 10, 500, opts.Text)
		return
	}

	agent := opts.Agent
	if agent == "" {
		agent = "Sisyphus (Ultraworker)"
	}
	model := opts.Model
	if model == "" {
		model = "Claude Opus 4.6"
	}
	project := opts.Project
	if project == "" {
		project = "promptframe"
	}

	text(buf, openCodeBarWidth+16, midY, t.Accent, monoFamily, 10, 600, agent)
	text(buf, openCodeBarWidth+190, midY, "#c8c8cc", monoFamily, 10, 400, model)
	text(buf, openCodeBarWidth+320, midY, "#6b6b75", monoFamily, 10, 400, project)
	if opts.Tokens != "" {
		textEnd(buf, w-14, midY, "#6b6b75", monoFamily, 10, 400, opts.Tokens)
	}
}
