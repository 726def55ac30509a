package catalog

import "github.com/promptframe/promptframe/themes"

var ClaudeCode = themes.Theme{
	Key:  "claude-code",
	Name: "Claude Code",

	Background:    "#f8f4ea",
	Panel:         "#fffaf0",
	Header:        "#eee5d2",
	Border:        "#d8c8aa",
	Shell:         "#fffaf2",
	ShellBorder:   "#d0bf9f",
	PromptSurface: "#fff4df",
	PromptBorder:  "#d9c39d",
	Toolbar:       "#f4e8d2",
	ButtonBg:      "#f2e4cd",
	ButtonBorder:  "#cfb58e",
	ButtonText:    "#5b4530",
	CopyIcon:      "#8f6038",
	SendBg:        "#c26f29",
	SendText:      "#fff8ef",
	ChipBg:        "#e8d7b9",
	ChipText:      "#6b5439",
	Text:          "#2d2a24",
	Muted:         "#8a7d68",
	Accent:        "#c26f29",
	Language:      "#8f4a15",
	LineNumber:    "#9a8a71",

	// The header reserves a mascot row; the footer renders the two-row
	// powerline status bar.
	HeaderHeight: 96,
	FooterHeight: 32,
	Mascot:       true,
	Powerline:    true,

	Subtitle:     "Message Composer",
	DefaultModel: "claude-3.7",
}
