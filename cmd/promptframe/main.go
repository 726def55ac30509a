package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"cdr.dev/slog"
	"github.com/pkg/browser"
	"github.com/spf13/pflag"

	"github.com/promptframe/promptframe/lib/log"
	"github.com/promptframe/promptframe/lib/version"
	"github.com/promptframe/promptframe/lib/xhttp"
	"github.com/promptframe/promptframe/lib/xmain"
	"github.com/promptframe/promptframe/renderers/card"
	"github.com/promptframe/promptframe/renderers/frame"
	"github.com/promptframe/promptframe/renderers/snippet"
	"github.com/promptframe/promptframe/server"
	"github.com/promptframe/promptframe/themes/catalog"
)

func main() {
	xmain.Main(run)
}

func run(ctx context.Context, ms *xmain.State) error {
	hostFlag := ms.Opts.String("PROMPTFRAME_HOST", "host", "", "", "host to listen on (overrides config)")
	portFlag, err := ms.Opts.Int64("PROMPTFRAME_PORT", "port", "p", 0, "port to listen on (overrides config)")
	if err != nil {
		return err
	}
	configFlag := ms.Opts.String("PROMPTFRAME_CONFIG", "config", "c", "", "path to a yaml config file")
	browserFlag, err := ms.Opts.Bool("", "browser", "", false, "open the generator page once the server is listening")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "print version information and exit")
	if err != nil {
		return err
	}
	helpFlag, err := ms.Opts.Bool("", "help", "h", false, "print usage information and exit")
	if err != nil {
		return err
	}

	themeFlag := ms.Opts.String("PROMPTFRAME_THEME", "theme", "t", "", "theme for the render subcommand")
	titleFlag := ms.Opts.String("", "title", "", "", "title for the render subcommand")
	langFlag := ms.Opts.String("", "lang", "", "", "language tag for the render subcommand")
	promptFlag := ms.Opts.String("", "prompt", "", "", "prompt text for the render subcommand")
	codeFlag := ms.Opts.String("", "code", "", "", "code block for render snippet")
	widthFlag, err := ms.Opts.Int64("", "width", "w", 0, "width for the render subcommand")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) || *helpFlag {
		help(ms)
		return nil
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	if *debugFlag {
		ms.Env.Setenv("DEBUG", "1")
	}
	ctx = log.Stderr(ctx)

	args := ms.Opts.Flags.Args()
	cmd := "serve"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "serve":
		return serve(ctx, ms, *configFlag, *hostFlag, int(*portFlag), *browserFlag)
	case "render":
		return render(ms, args[1:], renderOpts{
			theme:  *themeFlag,
			title:  *titleFlag,
			lang:   *langFlag,
			prompt: *promptFlag,
			code:   *codeFlag,
			width:  int(*widthFlag),
		})
	case "themes":
		fmt.Fprint(ms.Stdout, catalog.CLIString())
		return nil
	case "version":
		fmt.Fprintln(ms.Stdout, version.Version)
		version.CheckVersion(ctx, ms.Log)
		return nil
	default:
		return xmain.UsageErrorf("unknown command %q", cmd)
	}
}

func serve(ctx context.Context, ms *xmain.State, configPath, host string, port int, openBrowser bool) error {
	cfg, err := server.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	log.Debug(ctx, "configuration resolved",
		slog.F("addr", addr),
		slog.F("default_theme", cfg.Server.DefaultTheme),
		slog.F("generator", cfg.Server.Generator),
	)
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s := server.New(cfg, ms.Log)
	hs := xhttp.NewServer(ms.Log.Error, s.Routes())

	url := fmt.Sprintf("http://%s", l.Addr())
	ms.Log.Success.Printf("listening on %s", url)
	if openBrowser {
		go func() {
			if err := browser.OpenURL(url); err != nil {
				ms.Log.Warn.Printf("failed to open browser: %v", err)
			}
		}()
	}

	return xhttp.Serve(ctx, 5*time.Second, hs, l)
}

type renderOpts struct {
	theme  string
	title  string
	lang   string
	prompt string
	code   string
	width  int
}

// render writes a single render to the given path, or stdout when the path is
// absent or "-".
func render(ms *xmain.State, args []string, opts renderOpts) error {
	if len(args) == 0 {
		return xmain.UsageErrorf("render requires a kind: header, footer, card or snippet")
	}
	out := "-"
	if len(args) > 1 {
		out = args[1]
	}

	var body string
	switch args[0] {
	case "header":
		body = frame.RenderHeader(frame.Options{
			Theme:    opts.theme,
			Title:    opts.title,
			Language: opts.lang,
			Width:    opts.width,
		})
	case "footer":
		body = frame.RenderFooter(frame.Options{
			Theme: opts.theme,
			Width: opts.width,
		})
	case "card":
		body = card.Render(card.Options{
			Prompt:   opts.prompt,
			Theme:    opts.theme,
			Title:    opts.title,
			Language: opts.lang,
			Width:    opts.width,
		})
	case "snippet":
		body = snippet.Render(snippet.Options{
			Theme:    opts.theme,
			Title:    opts.title,
			Language: opts.lang,
			Code:     opts.code,
			Width:    opts.width,
		})
	default:
		return xmain.UsageErrorf("unknown render kind %q", args[0])
	}

	return ms.WritePath(out, []byte(body+"\n"))
}

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s renders decorative prompt frames for READMEs and serves them over HTTP.

Usage:
  %[1]s [command] [flags]

Commands:
  serve     start the HTTP server (default)
  render    render one artifact to a file or stdout:
              %[1]s render <header|footer|card|snippet> [out]
  themes    list the registered themes
  version   print version information and check for updates

Flags:
%s
`, ms.Name, ms.Opts.Help())
}
