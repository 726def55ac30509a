package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"

	"github.com/promptframe/promptframe/lib/textutil"
	"github.com/promptframe/promptframe/server"
)

func testRouter(t *testing.T, mutate func(*server.Config)) http.Handler {
	t.Helper()
	cfg := server.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	clog := cmdlog.NewTB(xos.NewEnv(os.Environ()), t)
	return server.New(cfg, clog).Routes()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHeaderSVGRoute(t *testing.T) {
	h := testRouter(t, nil)
	rec := get(t, h, "/api/header.svg?theme=claude-code&title=My+Agent&lang=Agents")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `viewBox="0 0 800 96"`)
	assert.Contains(t, rec.Body.String(), "My Agent")
}

func TestFooterSVGRoute(t *testing.T) {
	h := testRouter(t, nil)
	rec := get(t, h, "/api/footer.svg?theme=claude-code&text=Custom+footer")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Custom footer")
	assert.NotContains(t, rec.Body.String(), "<polygon")
}

func TestBlockSVGRoute(t *testing.T) {
	h := testRouter(t, nil)
	rec := get(t, h, "/api/block.svg?prompt=deploy+it&fontSize=banana&width=junk")

	// Unparseable numbers fall back to defaults rather than erroring.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `width="760"`)
	assert.Contains(t, rec.Body.String(), "deploy it")
}

func TestBlockHTMLAndCopyAutocopyDefaults(t *testing.T) {
	h := testRouter(t, nil)

	rec := get(t, h, "/api/block.html?prompt=x")
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=120", rec.Header().Get("Cache-Control"))
	assert.NotContains(t, rec.Body.String(), `window.addEventListener("load"`)

	rec = get(t, h, "/api/copy?prompt=x")
	assert.Contains(t, rec.Body.String(), `window.addEventListener("load", copyPrompt)`)

	// Explicit opt-out on the copy page.
	rec = get(t, h, "/api/copy?prompt=x&autocopy=0")
	assert.NotContains(t, rec.Body.String(), `window.addEventListener("load"`)
}

func TestSnippetRoute(t *testing.T) {
	h := testRouter(t, func(cfg *server.Config) {
		cfg.Server.BaseURL = "https://frames.example.com"
	})
	rec := get(t, h, "/api/snippet?lang=bash&code=npm+install")

	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "```bash")
	assert.Contains(t, rec.Body.String(), "npm install")
	assert.Contains(t, rec.Body.String(), "https://frames.example.com/api/header.svg?")
}

func TestPromptTXTRoute(t *testing.T) {
	h := testRouter(t, nil)

	rec := get(t, h, "/api/prompt.txt?prompt=++do+it++")
	assert.Equal(t, "do it", rec.Body.String())

	rec = get(t, h, "/api/prompt.txt")
	assert.Equal(t, textutil.DefaultPrompt, rec.Body.String())
}

func TestThemesRoute(t *testing.T) {
	h := testRouter(t, nil)
	rec := get(t, h, "/themes")

	var body struct {
		Themes  []string `json:"themes"`
		Default string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "opencode", body.Default)
	assert.Contains(t, body.Themes, "claude-code")
	assert.Contains(t, body.Themes, "opencode")
}

func TestHealthzRoute(t *testing.T) {
	h := testRouter(t, nil)
	rec := get(t, h, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestNotFoundIsJSON(t *testing.T) {
	h := testRouter(t, nil)
	rec := get(t, h, "/api/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestPermalinkRoundtrip(t *testing.T) {
	h := testRouter(t, nil)

	rec := get(t, h, "/api/permalink?mode=card&theme=claude-code&prompt=ship+it")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, strings.HasPrefix(body.Path, "/g?s="))

	rec = get(t, h, body.Path)
	assert.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "claude-code", loc.Query().Get("theme"))
	assert.Equal(t, "ship it", loc.Query().Get("prompt"))
}

func TestPermalinkRestoreRejectsGarbage(t *testing.T) {
	h := testRouter(t, nil)
	rec := get(t, h, "/g?s=%25%25not-base64")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIndexGeneratorToggle(t *testing.T) {
	h := testRouter(t, nil)
	rec := get(t, h, "/")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "PromptFrame")

	h = testRouter(t, func(cfg *server.Config) {
		cfg.Server.Generator = false
	})
	rec = get(t, h, "/")
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), "/api/header.svg")
}

func TestDefaultThemeConfig(t *testing.T) {
	h := testRouter(t, func(cfg *server.Config) {
		cfg.Server.DefaultTheme = "claude-code"
	})
	rec := get(t, h, "/api/header.svg")

	assert.Contains(t, rec.Body.String(), `viewBox="0 0 800 96"`)
}

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	cfg, err := server.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "opencode", cfg.Server.DefaultTheme)
	assert.True(t, cfg.Server.Generator)
	assert.Equal(t, 300, cfg.Cache.SVGMaxAge)

	t.Setenv("PROMPTFRAME_SERVER_PORT", "8080")
	t.Setenv("PROMPTFRAME_CACHE_SVG_MAX_AGE", "600")
	cfg, err = server.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 600, cfg.Cache.SVGMaxAge)
}
