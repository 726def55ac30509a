// Package frame renders the decorative SVG header and footer bars that wrap
// an externally-rendered markdown code block. Headers round only their top
// corners and footers only their bottom corners so the pair visually fuses
// with the block between them.
package frame

import (
	"bytes"
	"fmt"

	"github.com/promptframe/promptframe/lib/escape"
	"github.com/promptframe/promptframe/lib/textutil"
	"github.com/promptframe/promptframe/themes"
	"github.com/promptframe/promptframe/themes/catalog"
)

const (
	MinWidth     = 300
	MaxWidth     = 1280
	DefaultWidth = 800

	cornerRadius = 6

	maxTitleLen    = 60
	maxLanguageLen = 16
	maxThemeLen    = 32
	maxLabelLen    = 24
)

// Options are the per-request knobs for one header or footer render. All
// fields are caller-supplied and untrusted; rendering clamps and truncates,
// it never fails.
type Options struct {
	Theme    string
	Title    string
	Language string
	Width    int // 0 means DefaultWidth
	Mascot   string
	Logo     bool

	// Footer fields. Text fully replaces the segmented status display.
	Text    string
	Tokens  string
	Model   string
	Project string
	Agent   string
}

// partRenderer is implemented once per theme with bespoke chrome. Adding a
// theme means adding a variant here and a palette in themes/catalog.
type partRenderer interface {
	header(buf *bytes.Buffer, t *themes.Theme, w, h int, title, language string, logo bool, mascot string)
	footer(buf *bytes.Buffer, t *themes.Theme, w, h int, opts Options)
}

var partRenderers = map[string]partRenderer{
	"claude-code": claudeCode{},
	"opencode":    openCode{},
}

func rendererFor(key string) partRenderer {
	if r, ok := partRenderers[key]; ok {
		return r
	}
	return generic{}
}

// RenderHeader renders the header bar SVG for opts. It is a total function:
// malformed fields fall back to defaults, unknown themes to the default
// theme.
func RenderHeader(opts Options) string {
	themeKey := textutil.Truncate(opts.Theme, maxThemeLen)
	t := catalog.Resolve(themeKey)
	width := clampWidth(opts.Width)
	height := t.HeaderHeight

	title := textutil.Truncate(opts.Title, maxTitleLen)
	if title == "" {
		title = t.Name
	}
	language := textutil.Truncate(opts.Language, maxLanguageLen)

	buf := &bytes.Buffer{}
	rendererFor(t.Key).header(buf, t, width, height, title, language, opts.Logo, opts.Mascot)

	return svgDoc(width, height, title, buf.String())
}

// RenderFooter renders the footer bar SVG for opts.
func RenderFooter(opts Options) string {
	themeKey := textutil.Truncate(opts.Theme, maxThemeLen)
	t := catalog.Resolve(themeKey)
	width := clampWidth(opts.Width)
	height := t.FooterHeight

	o := opts
	o.Text = textutil.Truncate(o.Text, maxTitleLen)
	o.Tokens = textutil.Truncate(o.Tokens, maxLabelLen)
	o.Model = textutil.Truncate(o.Model, maxLabelLen)
	o.Project = textutil.Truncate(o.Project, maxLabelLen)
	o.Agent = textutil.Truncate(o.Agent, maxLabelLen)

	buf := &bytes.Buffer{}
	rendererFor(t.Key).footer(buf, t, width, height, o)

	return svgDoc(width, height, "", buf.String())
}

func clampWidth(w int) int {
	if w == 0 {
		w = DefaultWidth
	}
	return textutil.Clamp(w, MinWidth, MaxWidth)
}

func svgDoc(width, height int, label, inner string) string {
	buf := &bytes.Buffer{}
	fmt.Fprint(buf, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprint(buf, "\n")
	if label != "" {
		fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-label="%s">`, width, height, escape.XML(label))
	} else {
		fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img">`, width, height)
	}
	fmt.Fprint(buf, "\n")
	fmt.Fprint(buf, inner)
	fmt.Fprint(buf, "\n</svg>")
	return buf.String()
}

const monoFamily = "'JetBrains Mono','Fira Code',monospace"
const uiFamily = "-apple-system,'SF Pro Display',system-ui,sans-serif"

// text emits a positioned text element with a vertically centered baseline.
func text(buf *bytes.Buffer, x, y int, fill, family string, size int, weight int, content string) {
	fmt.Fprintf(buf,
		`<text x="%d" y="%d" fill="%s" font-family="%s" font-size="%d" font-weight="%d" dominant-baseline="central">%s</text>`,
		x, y, fill, family, size, weight, escape.XML(content))
}

// textEnd is text anchored to its end coordinate, for right-aligned labels.
func textEnd(buf *bytes.Buffer, x, y int, fill, family string, size int, weight int, content string) {
	fmt.Fprintf(buf,
		`<text x="%d" y="%d" fill="%s" font-family="%s" font-size="%d" font-weight="%d" dominant-baseline="central" text-anchor="end">%s</text>`,
		x, y, fill, family, size, weight, escape.XML(content))
}

// topRoundedPanel draws the header panel: rounded top corners, square bottom.
func topRoundedPanel(buf *bytes.Buffer, w, h int, fill string) {
	fmt.Fprintf(buf,
		`<path d="M 0 %d L 0 %d Q 0 0 %d 0 L %d 0 Q %d 0 %d %d L %d %d Z" fill="%s" />`,
		h, cornerRadius, cornerRadius, w-cornerRadius, w, w, cornerRadius, w, h, fill)
}

// bottomRoundedPanel draws the footer panel: square top, rounded bottom.
// Footers shorter than the corner radius degrade to a plain strip.
func bottomRoundedPanel(buf *bytes.Buffer, w, h int, fill string) {
	if h <= cornerRadius*2 {
		fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="%s" />`, w, h, fill)
		return
	}
	fmt.Fprintf(buf,
		`<path d="M 0 0 L %d 0 L %d %d Q %d %d %d %d L %d %d Q 0 %d 0 %d Z" fill="%s" />`,
		w, w, h-cornerRadius, w, h, w-cornerRadius, h, cornerRadius, h, h, h-cornerRadius, fill)
}
