package frame

import (
	"bytes"
	"fmt"

	"github.com/promptframe/promptframe/themes"
)

// claudeCode mimics the Claude Code terminal: a pixel-art mascot above the
// title line and a two-row powerline status bar for the footer.
type claudeCode struct{}

const (
	claudeText  = "#d4d4d4"
	claudeMuted = "#6b6b80"
	claudeIcon  = "#7b7b95"
)

func (claudeCode) header(buf *bytes.Buffer, t *themes.Theme, w, h int, title, language string, logo bool, mascot string) {
	topRoundedPanel(buf, w, h, blendBg)

	drawMascot(buf, w/2, 8, mascot)

	titleY := h - 20
	textX := 14
	if logo {
		fmt.Fprintf(buf, `<circle cx="18" cy="%d" r="4.5" fill="%s" opacity="0.7" />`, titleY, claudeIcon)
		textX = 30
	}
	text(buf, textX, titleY, claudeText, monoFamily, 13, 400, title)
	if language != "" {
		textEnd(buf, w-14, titleY, claudeMuted, monoFamily, 11, 400, language)
	}
	fmt.Fprintf(buf, `<line x1="0" y1="%d.5" x2="%d" y2="%d.5" stroke="%s" />`, h-1, w, h-1, blendBorder)
}

func (claudeCode) footer(buf *bytes.Buffer, t *themes.Theme, w, h int, opts Options) {
	bottomRoundedPanel(buf, w, h, blendBg)
	fmt.Fprintf(buf, `<line x1="0" y1="0.5" x2="%d" y2="0.5" stroke="%s" />`, w, blendBorder)

	if opts.Text != "" {
		// Full substitution: the caller's text replaces both status rows.
		text(buf, 14, h/2, claudeText, monoFamily, 10, 500, opts.Text)
		return
	}

	project := opts.Project
	if project == "" {
		project = "~/promptframe"
	}
	model := opts.Model
	if model == "" {
		model = "Opus 4.6"
	}
	tokens := opts.Tokens
	if tokens == "" {
		tokens = "$0.00"
	}
	branch := "⇡ main"
	if opts.Agent != "" {
		branch = opts.Agent
	}

	// Row 1: path, model, cpu, errors, warnings.
	row1 := []segment{
		{frac: 0.28, color: "#3b4f7a", next: "#4a5a8a", label: project, labelColor: "#c8d4e8"},
		{frac: 0.11, color: "#4a5a8a", next: "#4a7a6a", label: model, labelColor: "#d8e0f0"},
		{frac: 0.07, color: "#4a7a6a", next: "#6a4a5a", label: "0.0%", labelColor: "#c8e8d8"},
		{frac: 0.05, color: "#6a4a5a", next: "#7a6a3a", label: "0", labelColor: "#e8c8d8"},
		{frac: 0.05, color: "#7a6a3a", next: blendBg, label: "0", labelColor: "#e8dcc0"},
	}

	// Row 2: branch, git, changes, time, cost/tokens.
	row2 := []segment{
		{frac: 0.14, color: "#3b4f7a", next: "#4a5a8a", label: branch, labelColor: "#c8d4e8"},
		{frac: 0.11, color: "#4a5a8a", next: "#4a7a6a", label: "main", labelColor: "#d8e0f0"},
		{frac: 0.08, color: "#4a7a6a", next: "#6a4a5a", label: "(+0,-0)", labelColor: "#c8e8d8"},
		{frac: 0.06, color: "#6a4a5a", next: "#7a6a3a", label: "0m", labelColor: "#e8c8d8"},
		{frac: 0.07, color: "#7a6a3a", next: blendBg, label: tokens, labelColor: "#e8dcc0"},
	}

	rowH := h / 2
	renderPowerlineRow(buf, row1, w, 1, rowH)
	renderPowerlineRow(buf, row2, w, rowH+1, rowH)
}
