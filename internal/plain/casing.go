package plain

// LowerCase folds ASCII upper-case letters to lower case and leaves every
// other byte alone. The input is returned as is when nothing changes.
func LowerCase(content string) string {
	for i := 0; i < len(content); i++ {
		if IsUpper(content[i]) {
			return string(LowerCaseBytes([]byte(content)))
		}
	}
	return content
}

func LowerCaseBytes(input []byte) []byte {
	for i, b := range input {
		if 'A' <= b && b <= 'Z' {
			input[i] = b + 32 // to lowercase
		}
	}
	return input
}

// AppendLower appends content to dst with ASCII letters lower-cased.
func AppendLower(dst []byte, content string) []byte {
	for i := 0; i < len(content); i++ {
		b := content[i]
		if 'A' <= b && b <= 'Z' {
			b += 32
		}
		dst = append(dst, b)
	}
	return dst
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		x, y := a[i], b[i]
		if IsUpper(x) {
			x += 32
		}
		if IsUpper(y) {
			y += 32
		}
		if x != y {
			return false
		}
	}
	return true
}
