package percent

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/oesand/weburl/internal/plain"
)

var (
	ErrInvalidEncoding = errors.New("percent: malformed escape sequence")
	ErrInvalidUTF8     = errors.New("percent: decoded bytes are not utf-8")
)

// ValidShape reports whether every '%' in s starts a %XX sequence.
func ValidShape(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+2 >= len(s) || !plain.IsHexDigit(s[i+1]) || !plain.IsHexDigit(s[i+2]) {
			return false
		}
		i += 2
	}
	return true
}

// Decode strictly decodes s: malformed sequences and invalid UTF-8 in the
// result are errors.
func Decode(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}
	if !ValidShape(s) {
		return "", ErrInvalidEncoding
	}
	out := DecodeLenient(s)
	if !utf8.ValidString(out) {
		return "", ErrInvalidUTF8
	}
	return out, nil
}

// DecodeLenient decodes every well-formed %XX sequence and copies anything
// else through. The result may hold arbitrary bytes.
func DecodeLenient(s string) string {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return s
	}
	buf := make([]byte, 0, len(s))
	buf = append(buf, s[:i]...)
	for ; i < len(s); i++ {
		b := s[i]
		if b == '%' && i+2 < len(s) && plain.IsHexDigit(s[i+1]) && plain.IsHexDigit(s[i+2]) {
			buf = append(buf, plain.HexValue(s[i+1])<<4|plain.HexValue(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, b)
	}
	return plain.BufferToString(buf)
}
