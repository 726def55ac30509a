package escape_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptframe/promptframe/lib/escape"
)

func TestXML(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(&quot;xss&quot;)&lt;/script&gt;", escape.XML(`<script>alert("xss")</script>`))
	assert.Equal(t, "a &amp; b", escape.XML("a & b"))
	assert.Equal(t, "&apos;", escape.XML("'"))
	assert.Equal(t, "plain", escape.XML("plain"))
}

func TestHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;", escape.HTML("<b>"))
	assert.Equal(t, "&#39;", escape.HTML("'"))
	assert.Equal(t, "&amp;lt;", escape.HTML("&lt;"))
}

func TestNoLiteralScriptSurvives(t *testing.T) {
	for _, s := range []string{
		"<script>alert(1)</script>",
		`"><script src="http://evil"></script>`,
		"<SCRIPT>ok</SCRIPT><script>",
	} {
		assert.False(t, strings.Contains(escape.XML(s), "<script>"), s)
		assert.False(t, strings.Contains(escape.HTML(s), "<script>"), s)
	}
}
