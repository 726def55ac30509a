package catalog

import "github.com/promptframe/promptframe/themes"

var OpenCode = themes.Theme{
	Key:  "opencode",
	Name: "OpenCode",

	Background:    "#0b1020",
	Panel:         "#131c30",
	Header:        "#0f172a",
	Border:        "#2b3a52",
	Shell:         "#0d1526",
	ShellBorder:   "#334155",
	PromptSurface: "#111d31",
	PromptBorder:  "#3b4d69",
	Toolbar:       "#0d1729",
	ButtonBg:      "#16243c",
	ButtonBorder:  "#36506f",
	ButtonText:    "#dbeafe",
	CopyIcon:      "#93c5fd",
	SendBg:        "#22d3ee",
	SendText:      "#06242b",
	ChipBg:        "#172338",
	ChipText:      "#9db6db",
	Text:          "#e5e7eb",
	Muted:         "#9aa9c0",
	Accent:        "#22d3ee",
	Language:      "#67e8f9",
	LineNumber:    "#64748b",

	HeaderHeight: 44,
	FooterHeight: 20,

	Subtitle:     "Prompt Composer",
	DefaultModel: "opencode",
}
