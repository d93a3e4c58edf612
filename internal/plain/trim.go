package plain

import "strings"

// TrimControlAndSpace strips leading and trailing C0 controls and spaces.
// The flag reports whether anything was removed.
func TrimControlAndSpace(s string) (string, bool) {
	start, end := 0, len(s)
	for start < end && IsControlOrSpace(s[start]) {
		start++
	}
	for end > start && IsControlOrSpace(s[end-1]) {
		end--
	}
	return s[start:end], start != 0 || end != len(s)
}

// RemoveTabAndNewline drops every tab, line feed and carriage return.
func RemoveTabAndNewline(s string) (string, bool) {
	if !strings.ContainsAny(s, "\t\n\r") {
		return s, false
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\t', '\n', '\r':
		default:
			buf = append(buf, s[i])
		}
	}
	return BufferToString(buf), true
}
