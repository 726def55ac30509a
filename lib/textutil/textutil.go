// Package textutil implements prompt normalization, greedy word wrapping and
// numeric clamping for the renderers.
//
// All functions are total: malformed input is substituted or clamped, never
// rejected, so image-embedding contexts always get a valid render.
package textutil

import "strings"

// MaxPromptLength bounds a normalized prompt.
const MaxPromptLength = 600

// DefaultPrompt is substituted when the caller supplies an empty prompt.
const DefaultPrompt = "Write a concise implementation plan for this task."

// MinWrapWidth is the floor for the wrap width. Callers must not pass a
// smaller maxChars to WrapLine or WrapPrompt; it guarantees termination even
// under extreme width and font size combinations.
const MinWrapWidth = 20

// NormalizePrompt replaces CRLF with LF, trims surrounding whitespace,
// substitutes DefaultPrompt when the result is empty, and truncates to
// MaxPromptLength. The result is never empty.
func NormalizePrompt(raw string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if cleaned == "" {
		return DefaultPrompt
	}
	return Truncate(cleaned, MaxPromptLength)
}

// Clamp constrains v to [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// WrapLine greedily wraps line into fragments of at most maxChars characters.
// It prefers splitting at the last space at or before maxChars; if that split
// point falls before half of maxChars it hard-cuts at exactly maxChars
// instead, so one long unspaced token near the boundary cannot produce a tiny
// leading fragment. A single unbroken token longer than maxChars is the only
// case where a returned fragment exceeds maxChars, and only transiently: the
// hard cut bounds every emitted fragment.
func WrapLine(line string, maxChars int) []string {
	if maxChars < MinWrapWidth {
		maxChars = MinWrapWidth
	}
	runes := []rune(line)
	if len(runes) <= maxChars {
		return []string{line}
	}

	var wrapped []string
	rest := runes
	for len(rest) > maxChars {
		splitAt := lastSpaceAtOrBefore(rest, maxChars)
		if splitAt < maxChars/2 {
			splitAt = maxChars
		}
		wrapped = append(wrapped, string(rest[:splitAt]))
		rest = trimLeadingSpaces(rest[splitAt:])
	}
	if len(rest) > 0 {
		wrapped = append(wrapped, string(rest))
	}
	return wrapped
}

// WrapPrompt splits prompt on "\n", wraps each resulting line independently
// so explicit user line breaks survive as wrap-unit boundaries, and truncates
// the combined sequence to maxLines. Lines beyond the cap are silently
// dropped; there is no ellipsis marker.
func WrapPrompt(prompt string, maxChars, maxLines int) []string {
	var lines []string
	for _, rawLine := range strings.Split(prompt, "\n") {
		lines = append(lines, WrapLine(rawLine, maxChars)...)
		if len(lines) >= maxLines {
			break
		}
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

func lastSpaceAtOrBefore(runes []rune, pos int) int {
	for i := pos; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

func trimLeadingSpaces(runes []rune) []rune {
	for len(runes) > 0 && runes[0] == ' ' {
		runes = runes[1:]
	}
	return runes
}
