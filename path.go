package weburl

import (
	"bytes"

	"github.com/oesand/weburl/internal/percent"
	"github.com/oesand/weburl/internal/plain"
	"github.com/oesand/weburl/internal/scheme"
)

// appendPath appends the segments of input to buf, where buf[start:] is
// the path built so far. Dot segments are resolved as they are met and
// empty segments are kept.
func appendPath(buf []byte, start int, input string, typ scheme.Type) []byte {
	special := typ.IsSpecial()
	for {
		segment, last := input, true
		for i := 0; i < len(input); i++ {
			if input[i] == '/' || special && input[i] == '\\' {
				segment, input, last = input[:i], input[i+1:], false
				break
			}
		}

		switch {
		case isDoubleDotSegment(segment):
			buf = shortenPath(buf, start, typ)
			if last {
				buf = append(buf, '/')
			}
		case isSingleDotSegment(segment):
			if last {
				buf = append(buf, '/')
			}
		case typ == scheme.File && len(buf) == start && isWindowsDriveLetter(segment):
			buf = append(buf, '/', segment[0], ':')
		default:
			buf = append(buf, '/')
			buf = percent.Append(buf, segment, &percent.Path)
		}

		if last {
			return buf
		}
	}
}

// shortenPath drops the last segment of buf[start:]. A file path made of a
// single drive letter is never shortened.
func shortenPath(buf []byte, start int, typ scheme.Type) []byte {
	path := buf[start:]
	if typ == scheme.File && len(path) == 3 && path[0] == '/' && isNormalizedWindowsDriveLetter(string(path[1:])) {
		return buf
	}
	if i := bytes.LastIndexByte(path, '/'); i >= 0 {
		return buf[:start+i]
	}
	return buf
}

func isSingleDotSegment(s string) bool {
	return s == "." || plain.EqualFold(s, "%2e")
}

func isDoubleDotSegment(s string) bool {
	switch len(s) {
	case 2:
		return s == ".."
	case 4:
		return plain.EqualFold(s, ".%2e") || plain.EqualFold(s, "%2e.")
	case 6:
		return plain.EqualFold(s, "%2e%2e")
	}
	return false
}

// isWindowsDriveLetter matches a letter followed by ':' or '|'.
func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && plain.IsAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && plain.IsAlpha(s[0]) && s[1] == ':'
}

// startsWithWindowsDriveLetter reports a drive letter that is the whole of
// s or is followed by a path, query or fragment delimiter.
func startsWithWindowsDriveLetter(s string) bool {
	if len(s) < 2 || !isWindowsDriveLetter(s[:2]) {
		return false
	}
	if len(s) == 2 {
		return true
	}
	switch s[2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}
