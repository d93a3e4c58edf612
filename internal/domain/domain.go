package domain

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oesand/weburl/internal/plain"
	"golang.org/x/net/idna"
	"golang.org/x/text/width"
)

var (
	ErrIDNA             = errors.New("domain: idna conversion failed")
	ErrInvalidCodePoint = errors.New("domain: forbidden code point")
)

const softHyphen = '\u00AD'

// UTS #46 ToASCII as a URL host needs it: non-transitional, bidi and joiner
// checks on, hyphen placement, STD3 rules and DNS lengths unchecked.
var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.CheckHyphens(false),
	idna.CheckJoiners(true),
	idna.StrictDomainName(false),
	idna.VerifyDNSLength(false),
)

// ToASCII converts a percent-decoded domain to its lowercase ASCII form.
// Plain ASCII input without punycode labels skips the IDNA mapping.
func ToASCII(s string) (string, error) {
	if plain.IsASCII(s) && !HasPunycode(s) {
		s = plain.LowerCase(s)
		if s == "" || IndexForbidden(s) >= 0 {
			return "", ErrInvalidCodePoint
		}
		return s, nil
	}

	if IsSoftHyphenOnly(s) || HasEmptyPunycodeLabel(s) {
		return "", ErrIDNA
	}
	folded, err := FoldFullWidth(s)
	if err != nil {
		return "", err
	}
	if IndexSpace(folded) >= 0 {
		return "", ErrInvalidCodePoint
	}

	out, err := profile.ToASCII(folded)
	if err != nil || out == "" {
		return "", ErrIDNA
	}
	if IndexForbidden(out) >= 0 {
		return "", ErrInvalidCodePoint
	}
	return out, nil
}

// HasPunycode reports whether any label starts with "xn--", ignoring case.
func HasPunycode(s string) bool {
	for len(s) > 0 {
		label := s
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			label, s = s[:dot], s[dot+1:]
		} else {
			s = ""
		}
		if len(label) >= 4 && plain.EqualFold(label[:4], "xn--") {
			return true
		}
	}
	return false
}

// HasEmptyPunycodeLabel reports a label that is exactly "xn--".
func HasEmptyPunycodeLabel(s string) bool {
	for _, label := range strings.Split(s, ".") {
		if plain.EqualFold(label, "xn--") {
			return true
		}
	}
	return false
}

func IsSoftHyphenOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != softHyphen {
			return false
		}
	}
	return true
}

// FoldFullWidth maps the full-width forms of printable ASCII (U+FF01 to
// U+FF5E) to ASCII. Any other code point of the halfwidth and fullwidth
// forms block is rejected.
func FoldFullWidth(s string) (string, error) {
	var buf []byte
	for i, r := range s {
		if r < 0xFF00 || r > 0xFFEF {
			if buf != nil {
				buf = utf8.AppendRune(buf, r)
			}
			continue
		}
		if r == 0xFF00 || r > 0xFF5E {
			return "", ErrInvalidCodePoint
		}
		if buf == nil {
			buf = append(make([]byte, 0, len(s)), s[:i]...)
		}
		if narrow := width.LookupRune(r).Narrow(); narrow != 0 {
			r = narrow
		}
		buf = utf8.AppendRune(buf, r)
	}
	if buf == nil {
		return s, nil
	}
	return string(buf), nil
}

// IndexSpace returns the byte index of the first Unicode white space, or -1.
func IndexSpace(s string) int {
	return strings.IndexFunc(s, unicode.IsSpace)
}
