// Package snippet assembles the copy-paste markdown fragment that embeds the
// header and footer images around a fenced code block. No escaping is applied
// beyond URL query encoding; the consuming markdown renderer handles the rest.
package snippet

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/promptframe/promptframe/lib/textutil"
)

// DefaultHost is used when the caller supplies no host.
const DefaultHost = "https://promptframe.dev"

const (
	maxTitleLen    = 60
	maxLanguageLen = 16
	maxThemeLen    = 32
)

// Options select the embedded image URLs and the fenced block contents.
type Options struct {
	Host     string
	Theme    string
	Language string
	Title    string
	Code     string
	Width    int // 0 omits the width parameter
}

// Render builds the markdown fragment: header image, fenced code block,
// footer image. Images use width="100%" so they track the container.
func Render(opts Options) string {
	host := strings.TrimSuffix(opts.Host, "/")
	if host == "" {
		host = DefaultHost
	}
	theme := textutil.Truncate(opts.Theme, maxThemeLen)
	if theme == "" {
		theme = "opencode"
	}
	language := textutil.Truncate(opts.Language, maxLanguageLen)
	if language == "" {
		language = "bash"
	}
	title := textutil.Truncate(opts.Title, maxTitleLen)
	code := opts.Code
	if code == "" {
		code = "# your command here"
	}

	headerParams := url.Values{}
	headerParams.Set("theme", theme)
	if title != "" {
		headerParams.Set("title", title)
	}
	headerParams.Set("lang", language)

	footerParams := url.Values{}
	footerParams.Set("theme", theme)

	if opts.Width > 0 {
		w := strconv.Itoa(opts.Width)
		headerParams.Set("width", w)
		footerParams.Set("width", w)
	}

	return fmt.Sprintf(`<img src="%s/api/header.svg?%s" width="100%%" />

`+"```%s\n%s\n```"+`

<img src="%s/api/footer.svg?%s" width="100%%" />`,
		host, headerParams.Encode(), language, code, host, footerParams.Encode())
}

var preview = goldmark.New(
	goldmark.WithExtensions(
		highlighting.NewHighlighting(
			highlighting.WithCustomStyle(styles.Get("github-dark")),
		),
	),
	goldmark.WithRendererOptions(
		// The fragment's own img tags must pass through verbatim.
		goldmarkhtml.WithUnsafe(),
	),
)

// RenderHTML converts the markdown fragment to an HTML preview with the code
// block syntax-highlighted, for the generator page's live preview pane.
func RenderHTML(opts Options) (string, error) {
	buf := &bytes.Buffer{}
	if err := preview.Convert([]byte(Render(opts)), buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
