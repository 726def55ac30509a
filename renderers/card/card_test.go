package card_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptframe/promptframe/lib/textutil"
	"github.com/promptframe/promptframe/renderers/card"
)

func TestRenderDefaults(t *testing.T) {
	svg := card.Render(card.Options{})

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `width="760"`)
	assert.Contains(t, svg, textutil.DefaultPrompt)
	assert.Contains(t, svg, ">Copy</text>")
	assert.Contains(t, svg, ">Send</text>")
	assert.Contains(t, svg, ">Ready</text>")
	assert.Contains(t, svg, "Type your message...")
	// Default theme chrome.
	assert.Contains(t, svg, "OpenCode")
	assert.Contains(t, svg, "1 lines")
}

func TestRenderWidthAndFontClamps(t *testing.T) {
	svg := card.Render(card.Options{Width: 100, FontSize: 2})
	assert.Contains(t, svg, `width="460"`)

	svg = card.Render(card.Options{Width: 5000, FontSize: 99})
	assert.Contains(t, svg, `width="1280"`)
}

func TestRenderFirstLineMarker(t *testing.T) {
	svg := card.Render(card.Options{Prompt: "first line\nsecond line"})

	// The first wrapped line carries the caret marker, continuations a dot.
	assert.Contains(t, svg, "&gt;")
	assert.Contains(t, svg, "·")
	assert.Contains(t, svg, "2 lines")
}

func TestRenderLineCapDropsOverflow(t *testing.T) {
	prompt := strings.TrimSpace(strings.Repeat("line\n", 40))
	svg := card.Render(card.Options{Prompt: prompt})
	assert.Contains(t, svg, "18 lines")
}

func TestRenderEscapesPrompt(t *testing.T) {
	svg := card.Render(card.Options{Prompt: `say "hi" & run <b>fast</b>`})
	assert.NotContains(t, svg, "<b>")
	assert.Contains(t, svg, "&lt;b&gt;")
	assert.Contains(t, svg, "&amp;")
}

func TestRenderCopyHref(t *testing.T) {
	svg := card.Render(card.Options{Prompt: "deploy it", Theme: "claude-code", Language: "go"})

	assert.Contains(t, svg, "/api/copy?")
	assert.Contains(t, svg, "autocopy=1")
	assert.Contains(t, svg, "theme=claude-code")
	assert.Contains(t, svg, "lang=go")
	assert.Contains(t, svg, "prompt=deploy+it")
	// Query separators must be escaped inside the href attribute.
	assert.Contains(t, svg, "&amp;")
}

func TestRenderAccentOverride(t *testing.T) {
	base := card.Render(card.Options{Prompt: "x"})
	tinted := card.Render(card.Options{Prompt: "x", Accent: "rebeccapurple"})

	assert.NotEqual(t, base, tinted)
	assert.Contains(t, tinted, "#663399")

	// Unparseable accents are ignored.
	assert.Equal(t, base, card.Render(card.Options{Prompt: "x", Accent: "not-a-color"}))
}

func TestRenderSaltedDefIDs(t *testing.T) {
	a := card.Render(card.Options{Prompt: "alpha"})
	b := card.Render(card.Options{Prompt: "beta"})

	idOf := func(svg string) string {
		i := strings.Index(svg, `id="bg-`)
		if i < 0 {
			return ""
		}
		return svg[i+7 : i+15]
	}
	assert.NotEmpty(t, idOf(a))
	assert.NotEqual(t, idOf(a), idOf(b))
}

func TestRenderUnknownThemeFallsBack(t *testing.T) {
	svg := card.Render(card.Options{Theme: "no-such-theme", Prompt: "x"})
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "OpenCode")
}
