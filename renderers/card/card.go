// Package card renders the composite prompt-card SVG: a full chat-composer
// scene with header chip, wrapped prompt body, toolbar and send button. It is
// the one renderer whose canvas height is derived from content rather than
// fixed by the theme.
package card

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"net/url"

	"github.com/promptframe/promptframe/lib/escape"
	"github.com/promptframe/promptframe/lib/textutil"
	"github.com/promptframe/promptframe/themes"
	"github.com/promptframe/promptframe/themes/catalog"
)

const (
	MinWidth     = 460
	MaxWidth     = 1280
	DefaultWidth = 760

	MinFontSize     = 12
	MaxFontSize     = 20
	DefaultFontSize = 16

	maxLines = 18

	maxTitleLen    = 60
	maxLanguageLen = 16
	maxThemeLen    = 32
)

// Options are the per-request knobs for one card render.
type Options struct {
	Prompt   string
	Theme    string
	Title    string
	Language string
	Width    int // 0 means DefaultWidth
	FontSize int // 0 means DefaultFontSize
	Accent   string
	CopyHref string
}

const monoFamily = "'JetBrains Mono','Fira Code',monospace"

// Render produces the card SVG. Total over its option space: every field is
// defaulted, clamped or truncated before layout.
func Render(opts Options) string {
	themeKey := textutil.Truncate(opts.Theme, maxThemeLen)
	t := catalog.Resolve(themeKey)
	if opts.Accent != "" {
		t = themes.WithAccent(t, opts.Accent)
	}

	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}
	width = textutil.Clamp(width, MinWidth, MaxWidth)

	fontSize := opts.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}
	fontSize = textutil.Clamp(fontSize, MinFontSize, MaxFontSize)

	language := textutil.Truncate(opts.Language, maxLanguageLen)
	if language == "" {
		language = "prompt"
	}
	title := textutil.Truncate(opts.Title, maxTitleLen)
	if title == "" {
		title = t.Name
	}
	prompt := textutil.NormalizePrompt(opts.Prompt)
	copyHref := opts.CopyHref
	if copyHref == "" {
		copyHref = CopyHref(opts, prompt)
	}

	outerPad := 22
	cardX := outerPad
	cardY := outerPad
	cardWidth := width - outerPad*2
	headerHeight := 56
	composerX := cardX + 16
	composerY := cardY + headerHeight + 10
	composerWidth := cardWidth - 32
	promptPanelX := composerX + 12
	promptPanelY := composerY + 12
	promptPanelWidth := composerWidth - 24

	charWidth := fontSize * 61 / 100
	if charWidth < 7 {
		charWidth = 7
	}
	maxChars := (promptPanelWidth - 74) / charWidth
	if maxChars < textutil.MinWrapWidth {
		maxChars = textutil.MinWrapWidth
	}
	lines := textutil.WrapPrompt(prompt, maxChars, maxLines)
	lineHeight := int(float64(fontSize)*1.45 + 0.5)
	promptTextX := promptPanelX + 34
	markerX := promptPanelX + 16
	promptTextY := promptPanelY + 20
	bodyHeight := len(lines)*lineHeight + 6
	if bodyHeight < 44 {
		bodyHeight = 44
	}
	toolbarHeight := 38
	promptPanelHeight := 18 + bodyHeight + 12 + toolbarHeight + 12
	composerHeight := promptPanelHeight + 24
	cardHeight := headerHeight + 10 + composerHeight + 16
	height := cardY + cardHeight + outerPad

	// Defs ids are salted so several cards can be inlined in one page
	// without gradient collisions.
	salt := idSalt(t.Key, prompt, title, language, width, fontSize)

	buf := &bytes.Buffer{}
	fmt.Fprint(buf, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprint(buf, "\n")
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-label="%s">`,
		width, height, escape.XML(title))
	fmt.Fprintf(buf, `<defs>
<linearGradient id="bg-%[1]s" x1="0" y1="0" x2="1" y2="1">
<stop offset="0%%" stop-color="%[2]s" />
<stop offset="100%%" stop-color="%[3]s" />
</linearGradient>
<linearGradient id="card-%[1]s" x1="0" y1="0" x2="0" y2="1">
<stop offset="0%%" stop-color="%[4]s" />
<stop offset="100%%" stop-color="%[5]s" />
</linearGradient>
<radialGradient id="glow-%[1]s" cx="50%%" cy="0%%" r="75%%">
<stop offset="0%%" stop-color="%[6]s" stop-opacity="0.28" />
<stop offset="100%%" stop-color="%[6]s" stop-opacity="0" />
</radialGradient>
<filter id="shadow-%[1]s" x="-20%%" y="-20%%" width="140%%" height="160%%">
<feDropShadow dx="0" dy="14" stdDeviation="16" flood-color="#000000" flood-opacity="0.24" />
</filter>
</defs>`, salt, t.Background, t.Panel, t.ShellTop, t.Shell, t.CanvasGlow)

	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="url(#bg-%s)" />`, width, height, salt)
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="url(#glow-%s)" />`, width, height*58/100, salt)

	fmt.Fprintf(buf, `<g filter="url(#shadow-%s)">`, salt)
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="url(#card-%s)" stroke="%s" rx="20" ry="20" />`,
		cardX, cardY, cardWidth, cardHeight, salt, t.ShellBorder)
	fmt.Fprintf(buf, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-opacity="0.6" />`,
		cardX, cardY+headerHeight, cardX+cardWidth, cardY+headerHeight, t.PromptBorder)
	fmt.Fprintf(buf, `<circle cx="%d" cy="%d" r="4" fill="%s" />`, cardX+22, cardY+21, t.Accent)
	text(buf, cardX+34, cardY+20, t.Muted, t.Name+" "+t.Subtitle, 11, 700, "central")
	text(buf, cardX+20, cardY+39, t.Text, title, 14, 600, "central")

	langChipWidth := textutil.Clamp(len(language)*8+26, 62, 130)
	copyWidth := 90
	copyHeight := 30
	copyX := cardX + cardWidth - copyWidth - 16
	copyY := cardY + 14
	langChipX := copyX - langChipWidth - 10
	langChipY := cardY + 20
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="18" fill="%s" rx="9" ry="9" />`,
		langChipX, langChipY, langChipWidth, t.ChipBg)
	text(buf, langChipX+10, langChipY+9, t.ChipText, language, 10, 700, "central")

	fmt.Fprintf(buf, `<a href="%s" target="_blank">`, escape.XML(copyHref))
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" rx="9" ry="9" />`,
		copyX, copyY, copyWidth, copyHeight, t.ButtonBg, t.ButtonBorder)
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="10" height="11" fill="none" stroke="%s" rx="2" ry="2" />`,
		copyX+13, copyY+9, t.CopyIcon)
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="10" height="3" fill="%s" rx="1.5" ry="1.5" />`,
		copyX+15, copyY+7, t.CopyIcon)
	text(buf, copyX+34, copyY+16, t.ButtonText, "Copy", 11, 700, "central")
	fmt.Fprint(buf, `</a>`)

	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" rx="14" ry="14" />`,
		promptPanelX, promptPanelY, promptPanelWidth, promptPanelHeight, t.PromptSurface, t.PromptBorder)
	accentBarHeight := bodyHeight - 4
	if accentBarHeight < 26 {
		accentBarHeight = 26
	}
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="4" height="%d" fill="%s" fill-opacity="0.85" rx="2" ry="2" />`,
		promptPanelX+12, promptPanelY+14, accentBarHeight, t.Accent)

	markerSize := fontSize - 1
	if markerSize < 11 {
		markerSize = 11
	}
	for i, line := range lines {
		y := promptTextY + i*lineHeight
		marker := "·"
		if i == 0 {
			marker = ">"
		}
		text(buf, markerX, y, t.Accent, marker, markerSize, 700, "hanging")
		text(buf, promptTextX, y, t.Text, line, fontSize, 500, "hanging")
	}
	ghostSize := fontSize - 3
	if ghostSize < 11 {
		ghostSize = 11
	}
	text(buf, promptTextX, promptTextY+len(lines)*lineHeight+2, t.GhostText, "Type your message...", ghostSize, 500, "hanging")

	toolbarY := promptPanelY + promptPanelHeight - toolbarHeight - 12
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" rx="10" ry="10" />`,
		promptPanelX+10, toolbarY, promptPanelWidth-20, toolbarHeight, t.Toolbar)
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="94" height="20" fill="%s" rx="10" ry="10" />`,
		promptPanelX+18, toolbarY+9, t.ChipBg)
	text(buf, promptPanelX+30, toolbarY+19, t.ChipText, t.DefaultModel, 10, 700, "central")
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="90" height="20" fill="%s" rx="10" ry="10" />`,
		promptPanelX+120, toolbarY+9, t.ChipAltBg)
	text(buf, promptPanelX+132, toolbarY+19, t.ChipAltText, fmt.Sprintf("%d lines", len(lines)), 10, 700, "central")
	text(buf, promptPanelX+224, toolbarY+19, t.FooterText, "Ready", 10, 700, "central")

	sendWidth := 84
	sendHeight := 28
	sendX := promptPanelX + promptPanelWidth - sendWidth - 12
	sendY := toolbarY + 5
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" rx="10" ry="10" />`,
		sendX-1, sendY-1, sendWidth+2, sendHeight+2, t.SendGlow)
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" rx="9" ry="9" />`,
		sendX, sendY, sendWidth, sendHeight, t.SendBg)
	text(buf, sendX+18, sendY+14, t.SendText, "Send", 11, 700, "central")
	fmt.Fprintf(buf, `<path d="M %d %d l 8 -4 l -2 4 l 2 4 z" fill="%s" />`, sendX+56, sendY+14, t.SendText)
	fmt.Fprint(buf, `</g>`)
	fmt.Fprint(buf, `</svg>`)

	return buf.String()
}

// CopyHref builds the companion copy-view URL that re-encodes the prompt and
// display fields plus the autocopy flag, so following the copy affordance
// opens a page that immediately attempts the clipboard write.
func CopyHref(opts Options, prompt string) string {
	params := url.Values{}
	params.Set("prompt", prompt)
	params.Set("autocopy", "1")
	if opts.Theme != "" {
		params.Set("theme", textutil.Truncate(opts.Theme, maxThemeLen))
	}
	if opts.Language != "" {
		params.Set("lang", textutil.Truncate(opts.Language, maxLanguageLen))
	}
	if opts.Title != "" {
		params.Set("title", textutil.Truncate(opts.Title, maxTitleLen))
	}
	return "/api/copy?" + params.Encode()
}

func idSalt(parts ...interface{}) string {
	h := fnv.New32a()
	fmt.Fprint(h, parts...)
	return fmt.Sprintf("%08x", h.Sum32())
}

func text(buf *bytes.Buffer, x, y int, fill, content string, size, weight int, baseline string) {
	fmt.Fprintf(buf,
		`<text x="%d" y="%d" fill="%s" font-family="%s" font-size="%d" font-weight="%d" dominant-baseline="%s">%s</text>`,
		x, y, fill, monoFamily, size, weight, baseline, escape.XML(content))
}
