package snippet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptframe/promptframe/lib/diff"
	"github.com/promptframe/promptframe/renderers/snippet"
)

func TestRenderGolden(t *testing.T) {
	got := snippet.Render(snippet.Options{
		Host:     "https://example.com",
		Theme:    "claude-code",
		Language: "bash",
		Title:    "Install",
		Code:     "npm install",
	})

	exp := "<img src=\"https://example.com/api/header.svg?lang=bash&theme=claude-code&title=Install\" width=\"100%\" />\n" +
		"\n" +
		"```bash\n" +
		"npm install\n" +
		"```\n" +
		"\n" +
		"<img src=\"https://example.com/api/footer.svg?theme=claude-code\" width=\"100%\" />"
	diff.AssertStringEq(t, exp, got)
}

func TestRenderScenario(t *testing.T) {
	md := snippet.Render(snippet.Options{
		Host:     "https://example.com",
		Theme:    "t",
		Language: "bash",
		Title:    "Setup",
		Code:     "npm install",
	})

	assert.Contains(t, md, "https://example.com/api/header.svg?")
	assert.Contains(t, md, "https://example.com/api/footer.svg?")
	assert.Contains(t, md, "```bash")
	assert.Contains(t, md, "npm install")
	assert.Contains(t, md, "theme=t")
	assert.Contains(t, md, "title=Setup")
}

func TestRenderDefaults(t *testing.T) {
	md := snippet.Render(snippet.Options{})

	assert.Contains(t, md, snippet.DefaultHost+"/api/header.svg?")
	assert.Contains(t, md, "theme=opencode")
	assert.Contains(t, md, "```bash")
	assert.Contains(t, md, "# your command here")
	assert.NotContains(t, md, "title=")
	assert.NotContains(t, md, "width=")
}

func TestRenderTrailingSlashAndWidth(t *testing.T) {
	md := snippet.Render(snippet.Options{Host: "https://example.com/", Width: 900})

	assert.NotContains(t, md, "com//api")
	assert.Contains(t, md, "width=900")
}

func TestRenderHTMLPreview(t *testing.T) {
	html, err := snippet.RenderHTML(snippet.Options{
		Host: "https://example.com",
		Code: "echo hi",
	})
	require.NoError(t, err)

	// Raw img tags survive the markdown conversion; the fence becomes a
	// highlighted code block whose tokens are wrapped in styled spans.
	assert.Contains(t, html, `<img src="https://example.com/api/header.svg?`)
	assert.Contains(t, html, "echo")
	assert.Contains(t, html, "hi")
	assert.Contains(t, html, "<pre")
}
