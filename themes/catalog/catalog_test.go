package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptframe/promptframe/themes"
	"github.com/promptframe/promptframe/themes/catalog"
)

func TestResolveFallsBackToDefault(t *testing.T) {
	def := catalog.Resolve("")
	assert.Equal(t, "opencode", def.Key)
	assert.Same(t, def, catalog.Resolve("not-a-real-theme"))
	assert.Same(t, def, catalog.Resolve("OPENCODE")) // keys are case sensitive
}

func TestResolveKnownThemes(t *testing.T) {
	for _, key := range catalog.Keys() {
		assert.Equal(t, key, catalog.Resolve(key).Key)
	}
}

func TestEveryThemeFullyPopulated(t *testing.T) {
	for _, th := range catalog.Catalog {
		fields := map[string]string{
			"Background":    th.Background,
			"Panel":         th.Panel,
			"Header":        th.Header,
			"Border":        th.Border,
			"Shell":         th.Shell,
			"ShellTop":      th.ShellTop,
			"ShellBorder":   th.ShellBorder,
			"PromptSurface": th.PromptSurface,
			"PromptBorder":  th.PromptBorder,
			"Toolbar":       th.Toolbar,
			"ButtonBg":      th.ButtonBg,
			"ButtonBorder":  th.ButtonBorder,
			"ButtonText":    th.ButtonText,
			"CopyIcon":      th.CopyIcon,
			"SendBg":        th.SendBg,
			"SendGlow":      th.SendGlow,
			"SendText":      th.SendText,
			"ChipBg":        th.ChipBg,
			"ChipText":      th.ChipText,
			"ChipAltBg":     th.ChipAltBg,
			"ChipAltText":   th.ChipAltText,
			"Text":          th.Text,
			"Muted":         th.Muted,
			"Accent":        th.Accent,
			"Language":      th.Language,
			"LineNumber":    th.LineNumber,
			"GhostText":     th.GhostText,
			"CanvasGlow":    th.CanvasGlow,
			"FooterText":    th.FooterText,
		}
		for name, v := range fields {
			assert.NotEmpty(t, v, "%s.%s", th.Key, name)
			assert.True(t, strings.HasPrefix(v, "#"), "%s.%s = %q", th.Key, name, v)
		}
		assert.Positive(t, th.HeaderHeight, th.Key)
		assert.Positive(t, th.FooterHeight, th.Key)
		assert.NotEmpty(t, th.Subtitle, th.Key)
		assert.NotEmpty(t, th.DefaultModel, th.Key)
	}
}

func TestWithAccentOverride(t *testing.T) {
	base := catalog.Resolve("opencode")

	got := themes.WithAccent(base, "tomato")
	assert.NotSame(t, base, got)
	assert.NotEqual(t, base.Accent, got.Accent)
	assert.True(t, strings.HasPrefix(got.Accent, "#"))
	assert.Len(t, got.Accent, 7)

	// Invalid colors leave the theme untouched.
	assert.Same(t, base, themes.WithAccent(base, "definitely-not-a-color"))
	assert.Same(t, base, themes.WithAccent(base, ""))

	// The registry entry is never mutated.
	assert.Equal(t, "#22d3ee", base.Accent)
}
