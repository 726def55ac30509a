// Package server exposes the renderers over HTTP. Handlers never reject
// malformed input: numeric parameters are parse-or-default then clamped and
// text parameters are truncated inside the renderers, so image-embedding
// contexts always get a valid body back.
package server

import (
	"embed"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"oss.terrastruct.com/cmdlog"

	"github.com/promptframe/promptframe/lib/textutil"
	"github.com/promptframe/promptframe/lib/urlenc"
	"github.com/promptframe/promptframe/lib/xhttp"
	"github.com/promptframe/promptframe/renderers/card"
	"github.com/promptframe/promptframe/renderers/composer"
	"github.com/promptframe/promptframe/renderers/frame"
	"github.com/promptframe/promptframe/renderers/snippet"
	"github.com/promptframe/promptframe/themes/catalog"
)

//go:embed static/index.html
var static embed.FS

type Server struct {
	cfg  Config
	clog *cmdlog.Logger
}

func New(cfg Config, clog *cmdlog.Logger) *Server {
	return &Server{
		cfg:  cfg,
		clog: clog,
	}
}

// Routes builds the router. Every handler is wrapped in the logging
// middleware and the error adapter; CORS is wide open since all endpoints are
// read-only renders.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return xhttp.Log(s.clog, next)
	})
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	h := func(f xhttp.HandlerFunc) http.Handler {
		return xhttp.HandlerFuncAdapter{Log: s.clog, Func: f}
	}

	r.Method(http.MethodGet, "/api/header.svg", h(s.headerSVG))
	r.Method(http.MethodGet, "/api/footer.svg", h(s.footerSVG))
	r.Method(http.MethodGet, "/api/block.svg", h(s.blockSVG))
	r.Method(http.MethodGet, "/api/block.html", h(s.blockHTML))
	r.Method(http.MethodGet, "/api/copy", h(s.copyPage))
	r.Method(http.MethodGet, "/api/snippet", h(s.snippetMD))
	r.Method(http.MethodGet, "/api/snippet.html", h(s.snippetHTML))
	r.Method(http.MethodGet, "/api/prompt.txt", h(s.promptTXT))
	r.Method(http.MethodGet, "/api/permalink", h(s.permalink))
	r.Method(http.MethodGet, "/themes", h(s.themeIndex))
	r.Method(http.MethodGet, "/healthz", h(s.healthz))
	r.Method(http.MethodGet, "/g", h(s.permalinkRestore))
	r.Method(http.MethodGet, "/", h(s.index))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		xhttp.JSON(s.clog, w, http.StatusNotFound, map[string]interface{}{
			"error": "not found",
		})
	})
	return r
}

func (s *Server) headerSVG(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	svg := frame.RenderHeader(frame.Options{
		Theme:    s.theme(q.Get("theme")),
		Title:    q.Get("title"),
		Language: q.Get("lang"),
		Width:    qInt(q.Get("width"), 0),
		Mascot:   q.Get("mascot"),
		Logo:     qBool(q.Get("logo"), false),
	})
	return xhttp.Blob(w, "image/svg+xml", s.cfg.Cache.SVGMaxAge, []byte(svg))
}

func (s *Server) footerSVG(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	svg := frame.RenderFooter(frame.Options{
		Theme:   s.theme(q.Get("theme")),
		Width:   qInt(q.Get("width"), 0),
		Text:    q.Get("text"),
		Tokens:  q.Get("tokens"),
		Model:   q.Get("model"),
		Project: q.Get("project"),
		Agent:   q.Get("agent"),
	})
	return xhttp.Blob(w, "image/svg+xml", s.cfg.Cache.SVGMaxAge, []byte(svg))
}

func (s *Server) blockSVG(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	svg := card.Render(card.Options{
		Prompt:   q.Get("prompt"),
		Theme:    s.theme(q.Get("theme")),
		Title:    q.Get("title"),
		Language: q.Get("lang"),
		Width:    qInt(q.Get("width"), 0),
		FontSize: qInt(q.Get("fontSize"), 0),
		Accent:   q.Get("accent"),
	})
	return xhttp.Blob(w, "image/svg+xml", s.cfg.Cache.SVGMaxAge, []byte(svg))
}

func (s *Server) blockHTML(w http.ResponseWriter, r *http.Request) error {
	return s.composerPage(w, r, false)
}

// copyPage is blockHTML with autocopy defaulting on, so the copy affordance
// in rendered cards can link straight to it.
func (s *Server) copyPage(w http.ResponseWriter, r *http.Request) error {
	return s.composerPage(w, r, true)
}

func (s *Server) composerPage(w http.ResponseWriter, r *http.Request, autoCopyDefault bool) error {
	q := r.URL.Query()
	html := composer.Render(composer.Options{
		Prompt:   q.Get("prompt"),
		Theme:    s.theme(q.Get("theme")),
		Title:    q.Get("title"),
		Language: q.Get("lang"),
		Width:    qInt(q.Get("width"), 0),
		AutoCopy: qBool(q.Get("autocopy"), autoCopyDefault),
	})
	return xhttp.Blob(w, "text/html; charset=utf-8", s.cfg.Cache.DocMaxAge, []byte(html))
}

func (s *Server) snippetOptions(r *http.Request) snippet.Options {
	q := r.URL.Query()
	host := q.Get("host")
	if host == "" {
		host = s.cfg.Server.BaseURL
	}
	return snippet.Options{
		Host:     host,
		Theme:    s.theme(q.Get("theme")),
		Language: q.Get("lang"),
		Title:    q.Get("title"),
		Code:     q.Get("code"),
		Width:    qInt(q.Get("width"), 0),
	}
}

func (s *Server) snippetMD(w http.ResponseWriter, r *http.Request) error {
	md := snippet.Render(s.snippetOptions(r))
	return xhttp.Blob(w, "text/plain; charset=utf-8", s.cfg.Cache.DocMaxAge, []byte(md))
}

func (s *Server) snippetHTML(w http.ResponseWriter, r *http.Request) error {
	html, err := snippet.RenderHTML(s.snippetOptions(r))
	if err != nil {
		return xhttp.ErrorWrap(http.StatusInternalServerError, nil, err)
	}
	return xhttp.Blob(w, "text/html; charset=utf-8", s.cfg.Cache.DocMaxAge, []byte(html))
}

func (s *Server) promptTXT(w http.ResponseWriter, r *http.Request) error {
	prompt := textutil.NormalizePrompt(r.URL.Query().Get("prompt"))
	return xhttp.Blob(w, "text/plain; charset=utf-8", s.cfg.Cache.DocMaxAge, []byte(prompt))
}

// permalink encodes the raw query into a shareable /g path carrying the
// generator form state.
func (s *Server) permalink(w http.ResponseWriter, r *http.Request) error {
	encoded, err := urlenc.Encode(r.URL.RawQuery)
	if err != nil {
		return xhttp.ErrorWrap(http.StatusInternalServerError, nil, err)
	}
	xhttp.JSON(s.clog, w, http.StatusOK, map[string]interface{}{
		"path": "/g?s=" + encoded,
	})
	return nil
}

func (s *Server) permalinkRestore(w http.ResponseWriter, r *http.Request) error {
	decoded, err := urlenc.Decode(r.URL.Query().Get("s"))
	if err != nil {
		return xhttp.ErrorWrap(http.StatusBadRequest, "invalid permalink", err)
	}
	http.Redirect(w, r, "/?"+decoded, http.StatusFound)
	return nil
}

func (s *Server) themeIndex(w http.ResponseWriter, r *http.Request) error {
	xhttp.JSON(s.clog, w, http.StatusOK, map[string]interface{}{
		"themes":  catalog.Keys(),
		"default": catalog.Catalog[0].Key,
	})
	return nil
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) error {
	xhttp.JSON(s.clog, w, http.StatusOK, map[string]interface{}{
		"ok": true,
	})
	return nil
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) error {
	if !s.cfg.Server.Generator {
		xhttp.JSON(s.clog, w, http.StatusOK, map[string]interface{}{
			"endpoints": []string{
				"/api/header.svg",
				"/api/footer.svg",
				"/api/block.svg",
				"/api/block.html",
				"/api/copy",
				"/api/snippet",
				"/api/snippet.html",
				"/api/prompt.txt",
				"/themes",
				"/healthz",
			},
		})
		return nil
	}
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		return xhttp.ErrorWrap(http.StatusInternalServerError, nil, err)
	}
	return xhttp.Blob(w, "text/html; charset=utf-8", s.cfg.Cache.DocMaxAge, page)
}

// theme substitutes the configured default before resolution so deployments
// can pick their house style without touching embed URLs.
func (s *Server) theme(v string) string {
	if v == "" {
		return s.cfg.Server.DefaultTheme
	}
	return v
}

func qInt(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func qBool(v string, def bool) bool {
	switch v {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
