// Package utils holds small helpers shared by the engine and the CLI.
package utils

import "strings"

const ellipsis = "..."

// TruncateForLog flattens free text such as CV content onto one line and keeps
// at most limit runes of it.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	flat := []rune(strings.Join(strings.Fields(s), " "))
	if len(flat) <= limit {
		return string(flat)
	}
	return strings.TrimRight(string(flat[:limit]), " ") + ellipsis
}
