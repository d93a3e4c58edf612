package plain

import "unicode/utf8"

// Host byte classes used by the fast host scanner.
const (
	HostInvalid   uint8 = iota // needs the general host parser
	HostLower                  // a-z 0-9 - .
	HostUpper                  // A-Z, folded on copy
	HostDelimiter              // : / ?
)

// HostTable classifies a byte inside the authority of an http(s) URL.
var HostTable = func() (t [256]uint8) {
	for b := 'a'; b <= 'z'; b++ {
		t[b] = HostLower
	}
	for b := '0'; b <= '9'; b++ {
		t[b] = HostLower
	}
	t['-'], t['.'] = HostLower, HostLower
	for b := 'A'; b <= 'Z'; b++ {
		t[b] = HostUpper
	}
	t[':'], t['/'], t['?'] = HostDelimiter, HostDelimiter, HostDelimiter
	return
}()

func IsAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func IsUpper(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func IsAlnum(b byte) bool {
	return IsAlpha(b) || IsDigit(b)
}

func IsHexDigit(b byte) bool {
	return IsDigit(b) || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

// HexValue returns the numeric value of a hex digit; the caller checks IsHexDigit.
func HexValue(b byte) byte {
	switch {
	case b <= '9':
		return b - '0'
	case b >= 'a':
		return b - 'a' + 10
	}
	return b - 'A' + 10
}

// IsSchemeByte reports whether b may appear after the first letter of a scheme.
func IsSchemeByte(b byte) bool {
	return IsAlnum(b) || b == '+' || b == '-' || b == '.'
}

// IsControlOrSpace reports C0 controls and space.
func IsControlOrSpace(b byte) bool {
	return b <= ' '
}

func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func AllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}
