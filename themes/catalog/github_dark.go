package catalog

import "github.com/promptframe/promptframe/themes"

var GitHubDark = themes.Theme{
	Key:  "github-dark",
	Name: "GitHub Dark",

	Background:    "#0d1117",
	Panel:         "#161b22",
	Header:        "#161b22",
	Border:        "#30363d",
	Shell:         "#0f141b",
	ShellBorder:   "#30363d",
	PromptSurface: "#161b22",
	PromptBorder:  "#30363d",
	Toolbar:       "#0f141b",
	ButtonBg:      "#21262d",
	ButtonBorder:  "#30363d",
	ButtonText:    "#c9d1d9",
	CopyIcon:      "#8b949e",
	SendBg:        "#238636",
	SendText:      "#f0fff4",
	ChipBg:        "#21262d",
	ChipText:      "#8b949e",
	Text:          "#c9d1d9",
	Muted:         "#8b949e",
	Accent:        "#58a6ff",
	Language:      "#79c0ff",
	LineNumber:    "#6e7681",

	HeaderHeight: 36,
	FooterHeight: 4,

	Subtitle:     "Prompt Composer",
	DefaultModel: "gpt-4.1",
}
