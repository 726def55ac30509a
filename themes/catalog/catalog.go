// Package catalog holds the registered promptframe themes. The registry is
// closed and static: it is finalized during init and never mutated afterward.
package catalog

import (
	"github.com/promptframe/promptframe/themes"
)

// Catalog lists every registered theme. The first entry is the default.
var Catalog = []*themes.Theme{
	&OpenCode,
	&ClaudeCode,
	&GitHubDark,
	&VSCodeDark,
	&VSCodeLight,
}

func init() {
	for _, t := range Catalog {
		themes.Derive(t)
	}
}

// Resolve returns the theme registered under key. Empty or unknown keys fall
// back to the default theme; Resolve never fails.
func Resolve(key string) *themes.Theme {
	for _, t := range Catalog {
		if t.Key == key {
			return t
		}
	}
	return Catalog[0]
}

// Keys lists the registered theme identifiers in catalog order.
func Keys() []string {
	keys := make([]string, len(Catalog))
	for i, t := range Catalog {
		keys[i] = t.Key
	}
	return keys
}

// CLIString renders the catalog for CLI help output.
func CLIString() string {
	s := ""
	for _, t := range Catalog {
		s += "- " + t.Key + ": " + t.Name + "\n"
	}
	return s
}
