// Package themes defines the immutable visual palettes promptframe renders
// with. Every theme exposes the same field set so renderers can treat them
// uniformly; lookups never fail, unknown keys fall back to the default.
package themes

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Theme is a named palette plus the layout constants that select a visual
// style. Instances live in the catalog for the process lifetime and are never
// mutated after Derive runs at init.
type Theme struct {
	Key  string
	Name string

	Background    string
	Panel         string
	Header        string
	Border        string
	Shell         string
	ShellTop      string
	ShellBorder   string
	PromptSurface string
	PromptBorder  string
	Toolbar       string
	ButtonBg      string
	ButtonBorder  string
	ButtonText    string
	CopyIcon      string
	SendBg        string
	SendGlow      string
	SendText      string
	ChipBg        string
	ChipText      string
	ChipAltBg     string
	ChipAltText   string
	Text          string
	Muted         string
	Accent        string
	Language      string
	LineNumber    string
	GhostText     string
	CanvasGlow    string
	FooterText    string

	// Fixed frame heights. The card computes its own height from content.
	HeaderHeight int
	FooterHeight int

	// Mascot marks terminal-CLI themes whose header reserves room for the
	// pixel-art mascot. Powerline marks themes whose footer renders the
	// segmented status bar.
	Mascot    bool
	Powerline bool

	// Composer chrome defaults.
	Subtitle     string
	DefaultModel string
}

// WithAccent returns a copy of t with the accent color (and the glow derived
// from it) replaced by css, which may be any CSS color. Invalid input returns
// t unchanged. The registry entry is never mutated.
func WithAccent(t *Theme, css string) *Theme {
	c, err := csscolorparser.Parse(css)
	if err != nil {
		return t
	}
	override := *t
	override.Accent = c.HexString()[:7]
	override.CanvasGlow = override.Accent
	override.SendGlow = lighten(override.Accent, 0.25)
	return &override
}

// Derive fills gradient and chrome fields the palette leaves empty. The
// catalog specifies the base palette; the rest is computed so every theme
// exposes the full field set.
func Derive(t *Theme) {
	if t.ShellTop == "" {
		t.ShellTop = lighten(t.Shell, 0.06)
	}
	if t.CanvasGlow == "" {
		t.CanvasGlow = t.Accent
	}
	if t.SendGlow == "" {
		t.SendGlow = lighten(t.SendBg, 0.25)
	}
	if t.GhostText == "" {
		t.GhostText = blend(t.Muted, t.Shell, 0.45)
	}
	if t.ChipAltBg == "" {
		t.ChipAltBg = t.ChipBg
	}
	if t.ChipAltText == "" {
		t.ChipAltText = t.ChipText
	}
	if t.FooterText == "" {
		t.FooterText = t.Muted
	}
	if t.Header == "" {
		t.Header = t.Panel
	}
}

func lighten(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white, _ := colorful.Hex("#ffffff")
	return c.BlendLab(white, amount).Clamped().Hex()
}

func blend(hex, towards string, amount float64) string {
	a, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	b, err := colorful.Hex(towards)
	if err != nil {
		return hex
	}
	return a.BlendLab(b, amount).Clamped().Hex()
}
