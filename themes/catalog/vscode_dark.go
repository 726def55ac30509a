package catalog

import "github.com/promptframe/promptframe/themes"

var VSCodeDark = themes.Theme{
	Key:  "vscode-dark",
	Name: "VS Code Dark",

	Background:    "#1e1e1e",
	Panel:         "#252526",
	Header:        "#323233",
	Border:        "#3c3c3c",
	Shell:         "#1f1f23",
	ShellBorder:   "#3c3c3c",
	PromptSurface: "#252526",
	PromptBorder:  "#454545",
	Toolbar:       "#2d2d30",
	ButtonBg:      "#313136",
	ButtonBorder:  "#4a4a50",
	ButtonText:    "#cccccc",
	CopyIcon:      "#9cdcfe",
	SendBg:        "#0e639c",
	SendText:      "#f3f9fd",
	ChipBg:        "#313136",
	ChipText:      "#9e9ea4",
	Text:          "#d4d4d4",
	Muted:         "#858585",
	Accent:        "#007acc",
	Language:      "#4fc1ff",
	LineNumber:    "#858585",

	HeaderHeight: 36,
	FooterHeight: 4,

	Subtitle:     "Prompt Composer",
	DefaultModel: "copilot",
}
