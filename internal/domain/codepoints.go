package domain

// IsForbiddenHost reports the bytes an opaque host may not contain.
func IsForbiddenHost(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return false
}

// IsForbiddenDomain extends IsForbiddenHost with C0 controls, '%' and DEL.
func IsForbiddenDomain(b byte) bool {
	return b <= 0x1F || b == '%' || b == 0x7F || IsForbiddenHost(b)
}

// IndexForbidden returns the index of the first forbidden domain byte, or -1.
func IndexForbidden(s string) int {
	for i := 0; i < len(s); i++ {
		if IsForbiddenDomain(s[i]) {
			return i
		}
	}
	return -1
}
