package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out every screen the same way: title, divider, indented
// body, divider, page hotkeys plus the global quit hint.
func renderPage(title, data, hotKeys string) string {
	body := data
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString("  " + uiDivider + "\n\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n  " + uiDivider + "\n")
	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  " + hotKeys + "\n")
	}
	b.WriteString("  ctrl+c: выход")

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText truncates to max characters. Counting runes, not bytes, keeps
// Cyrillic names from being cut mid-sequence.
func fitText(v string, max int) string {
	if max <= 0 {
		return v
	}
	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func formatSize(size int64) string {
	const mb = 1024 * 1024
	const kb = 1024

	if size >= mb {
		return fmt.Sprintf("%.1f MB", float64(size)/mb)
	}
	if size >= kb {
		return fmt.Sprintf("%.1f KB", float64(size)/kb)
	}
	return fmt.Sprintf("%d B", size)
}
