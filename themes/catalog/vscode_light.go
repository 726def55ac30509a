package catalog

import "github.com/promptframe/promptframe/themes"

var VSCodeLight = themes.Theme{
	Key:  "vscode-light",
	Name: "VS Code Light",

	Background:    "#f3f3f3",
	Panel:         "#ffffff",
	Header:        "#e8e8e8",
	Border:        "#d4d4d4",
	Shell:         "#fbfbfb",
	ShellBorder:   "#d4d4d4",
	PromptSurface: "#ffffff",
	PromptBorder:  "#c8c8c8",
	Toolbar:       "#f0f0f0",
	ButtonBg:      "#f5f5f5",
	ButtonBorder:  "#c4c4c4",
	ButtonText:    "#3b3b3b",
	CopyIcon:      "#0066b8",
	SendBg:        "#007acc",
	SendText:      "#f7fcff",
	ChipBg:        "#eaeaea",
	ChipText:      "#5f5f66",
	Text:          "#1f1f1f",
	Muted:         "#717171",
	Accent:        "#007acc",
	Language:      "#0066b8",
	LineNumber:    "#237893",

	HeaderHeight: 36,
	FooterHeight: 4,

	Subtitle:     "Prompt Composer",
	DefaultModel: "copilot",
}
