package percent

const upperHex = "0123456789ABCDEF"

// Index returns the position of the first byte of s that set encodes, or -1.
func Index(s string, set *Set) int {
	for i := 0; i < len(s); i++ {
		if set.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// Append writes s to dst, replacing every byte in set with its %XX form.
func Append(dst []byte, s string, set *Set) []byte {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if set.Contains(b) {
			dst = append(dst, '%', upperHex[b>>4], upperHex[b&15])
		} else {
			dst = append(dst, b)
		}
	}
	return dst
}

// Encode returns s unchanged when nothing in it belongs to set.
func Encode(s string, set *Set) string {
	i := Index(s, set)
	if i < 0 {
		return s
	}
	buf := make([]byte, 0, len(s)+16)
	buf = append(buf, s[:i]...)
	return string(Append(buf, s[i:], set))
}

// AppendForm is Append with the form-urlencoded set, writing space as '+'.
func AppendForm(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == ' ':
			dst = append(dst, '+')
		case FormURLEncoded.Contains(b):
			dst = append(dst, '%', upperHex[b>>4], upperHex[b&15])
		default:
			dst = append(dst, b)
		}
	}
	return dst
}
