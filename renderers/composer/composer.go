// Package composer renders the interactive HTML prompt card: the same visual
// scene as the SVG card but with a live copy button. The embedded script is
// the only interactive surface in the whole service, so its fallback chain is
// spelled out here rather than left to the page: async clipboard first, then
// legacy execCommand copy, then a manual selection panel.
package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promptframe/promptframe/lib/escape"
	"github.com/promptframe/promptframe/lib/textutil"
	"github.com/promptframe/promptframe/themes/catalog"
)

const (
	MinWidth     = 420
	MaxWidth     = 1280
	DefaultWidth = 760

	maxTitleLen    = 60
	maxLanguageLen = 16
	maxThemeLen    = 32
)

// Options are the per-request knobs for one composer document.
type Options struct {
	Prompt   string
	Theme    string
	Title    string
	Language string
	Width    int // 0 means DefaultWidth
	AutoCopy bool
}

// Render produces a standalone HTML document. Copy-button behavior is a small
// client-side state machine: Ready, Copying while the attempt is in flight,
// then either a transient Copied that reverts after 1.2s or a sticky Blocked
// state that reveals the manual panel with the prompt preselected.
func Render(opts Options) string {
	t := catalog.Resolve(textutil.Truncate(opts.Theme, maxThemeLen))
	title := textutil.Truncate(opts.Title, maxTitleLen)
	if title == "" {
		title = t.Name
	}
	language := textutil.Truncate(opts.Language, maxLanguageLen)
	if language == "" {
		language = "prompt"
	}
	prompt := textutil.NormalizePrompt(opts.Prompt)
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}
	width = textutil.Clamp(width, MinWidth, MaxWidth)
	lineCount := strings.Count(prompt, "\n") + 1

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>%s</title>
    <style>
      :root {
        color-scheme: light dark;
      }
      * {
        box-sizing: border-box;
      }
      body {
        margin: 0;
        min-height: 100vh;
        display: grid;
        place-items: center;
        padding: 24px;
        background: linear-gradient(135deg, %s, %s);
        font-family: "JetBrains Mono", "Fira Code", monospace;
      }
      .shell {
        width: min(%dpx, 100%%);
        border-radius: 18px;
        border: 1px solid %s;
        background: %s;
        padding: 16px;
      }
`, escape.HTML(title), t.Background, t.Panel, width, t.ShellBorder, t.Shell)
	fmt.Fprintf(buf, `      .header {
        display: flex;
        justify-content: space-between;
        align-items: center;
        gap: 12px;
      }
      .meta {
        min-width: 0;
      }
      .meta small {
        color: %s;
        font-weight: 700;
        font-size: 11px;
        display: block;
      }
      .meta strong {
        color: %s;
        font-size: 13px;
        white-space: nowrap;
        overflow: hidden;
        text-overflow: ellipsis;
        display: block;
      }
      .actions {
        display: flex;
        align-items: center;
        gap: 10px;
      }
      .chip {
        background: %s;
        color: %s;
        border-radius: 999px;
        padding: 4px 10px;
        font-size: 10px;
        font-weight: 700;
      }
      .copy-btn {
        border: 1px solid %s;
        background: %s;
        color: %s;
        border-radius: 9px;
        padding: 6px 12px;
        font-size: 12px;
        font-weight: 700;
        cursor: pointer;
      }
      .copy-btn:disabled {
        opacity: 0.6;
        cursor: wait;
      }
`, t.Muted, t.Text, t.ChipBg, t.ChipText, t.ButtonBorder, t.ButtonBg, t.ButtonText)
	fmt.Fprintf(buf, `      .prompt {
        margin-top: 12px;
        border: 1px solid %[1]s;
        border-radius: 14px;
        background: %[2]s;
        padding: 14px;
      }
      .prompt pre {
        margin: 0;
        color: %[3]s;
        white-space: pre-wrap;
        word-break: break-word;
        font-size: 15px;
        line-height: 1.45;
      }
      .prompt .prefix {
        color: %[4]s;
        font-weight: 700;
        margin-right: 6px;
      }
      .toolbar {
        margin-top: 12px;
        border-radius: 10px;
        background: %[5]s;
        padding: 6px 10px;
        display: flex;
        align-items: center;
        justify-content: space-between;
        gap: 10px;
      }
      .toolbar .info {
        color: %[6]s;
        font-size: 11px;
      }
      .send {
        border: none;
        border-radius: 9px;
        background: %[7]s;
        color: %[8]s;
        font-weight: 700;
        padding: 6px 14px;
      }
      .manual {
        margin-top: 12px;
        border: 1px solid %[1]s;
        border-radius: 10px;
        padding: 10px;
      }
      .manual small {
        color: %[9]s;
        display: block;
        margin-bottom: 6px;
      }
      .manual textarea {
        width: 100%%;
        border: 1px solid %[1]s;
        border-radius: 8px;
        background: %[2]s;
        color: %[3]s;
        font-family: inherit;
        font-size: 13px;
        padding: 8px;
        resize: vertical;
      }
    </style>
  </head>
`, t.PromptBorder, t.PromptSurface, t.Text, t.Accent, t.Toolbar, t.ChipText, t.SendBg, t.SendText, t.Muted)

	fmt.Fprintf(buf, `  <body>
    <div class="shell">
      <div class="header">
        <div class="meta">
          <small>%s Input</small>
          <strong>%s</strong>
        </div>
        <div class="actions">
          <span class="chip">%s</span>
          <button class="copy-btn" id="copy-btn" type="button">Copy</button>
        </div>
      </div>
      <div class="prompt">
        <pre id="prompt-text"><span class="prefix">&gt;</span>%s</pre>
        <div class="toolbar">
          <span class="info">%d lines</span>
          <button class="send" type="button">Send</button>
        </div>
      </div>
      <div class="manual" id="manual-panel" hidden>
        <small>Automatic copy was blocked. Select the text below and copy it yourself.</small>
        <textarea id="manual-text" readonly rows="4">%s</textarea>
      </div>
    </div>
`, escape.HTML(t.Name), escape.HTML(title), escape.HTML(language),
		escape.HTML(prompt), lineCount, escape.HTML(prompt))

	fmt.Fprintf(buf, `    <script>
      const button = document.getElementById("copy-btn");
      const manual = document.getElementById("manual-panel");
      const manualText = document.getElementById("manual-text");
      const promptText = %s;
      let blocked = false;

      function legacyCopy(text) {
        const area = document.createElement("textarea");
        area.value = text;
        area.setAttribute("readonly", "");
        area.style.position = "absolute";
        area.style.left = "-9999px";
        document.body.appendChild(area);
        area.select();
        let ok = false;
        try {
          ok = document.execCommand("copy");
        } catch (error) {
          ok = false;
        }
        document.body.removeChild(area);
        return ok;
      }

      async function copyPrompt() {
        if (button.disabled) {
          return;
        }
        button.disabled = true;
        button.textContent = "Copying";
        let ok = false;
        if (navigator.clipboard && window.isSecureContext) {
          try {
            await navigator.clipboard.writeText(promptText);
            ok = true;
          } catch (error) {
            ok = false;
          }
        }
        if (!ok) {
          ok = legacyCopy(promptText);
        }
        button.disabled = false;
        if (ok) {
          blocked = false;
          manual.hidden = true;
          button.textContent = "Copied";
          setTimeout(() => {
            if (!blocked) {
              button.textContent = "Copy";
            }
          }, 1200);
        } else {
          blocked = true;
          manual.hidden = false;
          manualText.focus();
          manualText.select();
          button.textContent = "Select below";
        }
      }

      button.addEventListener("click", copyPrompt);
`, jsString(prompt))
	if opts.AutoCopy {
		fmt.Fprint(buf, `      window.addEventListener("load", copyPrompt);
`)
	}
	fmt.Fprint(buf, `    </script>
  </body>
</html>
`)

	return buf.String()
}

// jsString encodes s as a JavaScript string literal. json.Marshal escapes
// angle brackets, so the literal can never terminate the surrounding script
// element.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
