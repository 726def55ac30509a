package frame_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptframe/promptframe/renderers/frame"
)

func TestClaudeCodeHeader(t *testing.T) {
	svg := frame.RenderHeader(frame.Options{Theme: "claude-code", Title: "My Agent", Language: "Agents", Logo: true})

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `viewBox="0 0 800 96"`)
	assert.Contains(t, svg, "My Agent")
	assert.Contains(t, svg, "Agents")
	// Pixel mascot and icon dot.
	assert.Contains(t, svg, "#d97757")
	assert.Contains(t, svg, "<circle")
	assert.Contains(t, svg, "JetBrains Mono")
}

func TestClaudeCodeFooterPowerline(t *testing.T) {
	svg := frame.RenderFooter(frame.Options{Theme: "claude-code"})

	assert.Contains(t, svg, `viewBox="0 0 800 32"`)
	assert.Contains(t, svg, "Opus 4.6")
	assert.Contains(t, svg, "~/promptframe")
	// Ten segments, each trailed by a powerline arrow.
	assert.Equal(t, 10, strings.Count(svg, "<polygon"))
}

func TestClaudeCodeFooterLabelOverrides(t *testing.T) {
	svg := frame.RenderFooter(frame.Options{
		Theme:   "claude-code",
		Model:   "Sonnet 4.5",
		Project: "~/acme",
		Tokens:  "12.3k tok",
	})
	assert.Contains(t, svg, "Sonnet 4.5")
	assert.Contains(t, svg, "~/acme")
	assert.Contains(t, svg, "12.3k tok")
	assert.NotContains(t, svg, "Opus 4.6")
}

func TestFooterTextFullySubstitutes(t *testing.T) {
	svg := frame.RenderFooter(frame.Options{Theme: "claude-code", Text: "Custom footer"})

	assert.Contains(t, svg, "Custom footer")
	assert.NotContains(t, svg, "<polygon")
	assert.NotContains(t, svg, "Opus 4.6")
}

func TestOpenCodeHeader(t *testing.T) {
	svg := frame.RenderHeader(frame.Options{Theme: "opencode", Title: "OpenCode", Language: "bash"})

	assert.Contains(t, svg, `viewBox="0 0 800 44"`)
	assert.Contains(t, svg, "OpenCode")
	assert.Contains(t, svg, "bash")
	// Cyan accent bar on the left edge.
	assert.Contains(t, svg, "#22d3ee")
	assert.Contains(t, svg, `width="3"`)
}

func TestOpenCodeFooterStatusLine(t *testing.T) {
	svg := frame.RenderFooter(frame.Options{Theme: "opencode"})

	assert.Contains(t, svg, "Sisyphus (Ultraworker)")
	assert.Contains(t, svg, "Claude Opus 4.6")
	assert.Contains(t, svg, "#22d3ee")
}

func TestGenericThemesUseOwnPalette(t *testing.T) {
	svg := frame.RenderHeader(frame.Options{Theme: "github-dark", Title: "Terminal"})
	assert.Contains(t, svg, "Terminal")
	assert.Contains(t, svg, "#161b22")

	svg = frame.RenderHeader(frame.Options{Theme: "vscode-dark", Title: "Editor"})
	assert.Contains(t, svg, "Editor")
	assert.Contains(t, svg, "#323233")

	svg = frame.RenderHeader(frame.Options{Theme: "vscode-light", Title: "Editor"})
	assert.Contains(t, svg, "#e8e8e8")
}

func TestHeaderDefaultTitleIsThemeName(t *testing.T) {
	svg := frame.RenderHeader(frame.Options{Theme: "opencode"})
	assert.Contains(t, svg, "OpenCode")
}

func TestHeaderUnknownThemeFallsBack(t *testing.T) {
	svg := frame.RenderHeader(frame.Options{Theme: "nonexistent"})
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "viewBox")
	// Default theme chrome.
	assert.Contains(t, svg, "OpenCode")
}

func TestHeaderWidthClamps(t *testing.T) {
	svg := frame.RenderHeader(frame.Options{Theme: "opencode", Width: 900})
	assert.Contains(t, svg, `viewBox="0 0 900 44"`)

	svg = frame.RenderHeader(frame.Options{Theme: "opencode", Width: 100})
	assert.Contains(t, svg, `viewBox="0 0 300 44"`)

	svg = frame.RenderHeader(frame.Options{Theme: "opencode", Width: 9999})
	assert.Contains(t, svg, `viewBox="0 0 1280 44"`)
}

func TestHeaderEscapesXML(t *testing.T) {
	svg := frame.RenderHeader(frame.Options{Theme: "opencode", Title: `<script>alert("xss")</script>`})
	assert.NotContains(t, svg, "<script>")
	assert.Contains(t, svg, "&lt;script&gt;")
}

func TestHeaderOmitsLanguageWhenAbsent(t *testing.T) {
	svg := frame.RenderHeader(frame.Options{Theme: "github-dark", Title: "Terminal"})
	assert.NotContains(t, svg, `text-anchor="end"`)
}

func TestHeaderTruncatesLongFields(t *testing.T) {
	svg := frame.RenderHeader(frame.Options{
		Theme:    "opencode",
		Title:    strings.Repeat("t", 200),
		Language: strings.Repeat("l", 50),
	})
	assert.Contains(t, svg, strings.Repeat("t", 60))
	assert.NotContains(t, svg, strings.Repeat("t", 61))
	assert.Contains(t, svg, strings.Repeat("l", 16))
	assert.NotContains(t, svg, strings.Repeat("l", 17))
}

func TestMascotVariants(t *testing.T) {
	def := frame.RenderHeader(frame.Options{Theme: "claude-code", Mascot: "default"})
	unknown := frame.RenderHeader(frame.Options{Theme: "claude-code", Mascot: "robot-overlord"})
	assert.Equal(t, def, unknown)

	hatted := frame.RenderHeader(frame.Options{Theme: "claude-code", Mascot: "hatted"})
	assert.NotEqual(t, def, hatted)
	assert.Contains(t, hatted, "#3b4f7a")
}

func TestNoTrafficLightDots(t *testing.T) {
	for _, theme := range []string{"claude-code", "opencode", "github-dark"} {
		svg := frame.RenderHeader(frame.Options{Theme: theme})
		assert.NotContains(t, svg, "#ff5f57", theme)
		assert.NotContains(t, svg, "#febc2e", theme)
		assert.NotContains(t, svg, "#28c840", theme)
	}
}
