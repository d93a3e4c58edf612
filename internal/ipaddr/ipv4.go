package ipaddr

import (
	"errors"
	"strconv"
	"strings"

	"github.com/oesand/weburl/internal/plain"
)

var ErrInvalidIPv4 = errors.New("ipaddr: invalid ipv4 address")

// tooBig saturates number parsing so no part can overflow.
const tooBig = 1 << 33

// EndsInNumber reports whether a host must be handed to the IPv4 parser:
// its last dot-separated label, ignoring one trailing dot, is decimal or a
// 0x-prefixed hex number.
func EndsInNumber(host string) bool {
	if host == "" {
		return false
	}
	host = strings.TrimSuffix(host, ".")
	last := host[strings.LastIndexByte(host, '.')+1:]
	if last == "" {
		return false
	}
	if plain.AllDigits(last) {
		return true
	}
	_, ok := parseNumber(last)
	return ok
}

// ParseIPv4 parses one to four dot-separated numbers. Each may be decimal,
// octal with a leading zero or hex with a 0x prefix; the last one fills all
// remaining bytes of the address.
func ParseIPv4(host string) (uint32, error) {
	if host == "" {
		return 0, ErrInvalidIPv4
	}
	if host[len(host)-1] == '.' && len(host) > 1 {
		host = host[:len(host)-1]
	}

	var numbers [4]uint64
	count := 0
	for rest, done := host, false; !done; {
		part := rest
		if dot := strings.IndexByte(rest, '.'); dot >= 0 {
			part, rest = rest[:dot], rest[dot+1:]
		} else {
			done = true
		}
		if count == len(numbers) {
			return 0, ErrInvalidIPv4
		}
		n, ok := parseNumber(part)
		if !ok {
			return 0, ErrInvalidIPv4
		}
		numbers[count] = n
		count++
	}

	for i := 0; i < count-1; i++ {
		if numbers[i] > 255 {
			return 0, ErrInvalidIPv4
		}
	}
	last := numbers[count-1]
	if last >= 1<<(8*(5-count)) {
		return 0, ErrInvalidIPv4
	}

	addr := last
	for i := 0; i < count-1; i++ {
		addr += numbers[i] << (8 * (3 - i))
	}
	return uint32(addr), nil
}

func parseNumber(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	radix := uint64(10)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		radix, s = 16, s[2:]
	} else if len(s) >= 2 && s[0] == '0' {
		radix, s = 8, s[1:]
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		b := s[i]
		var d uint64
		switch {
		case radix == 16 && plain.IsHexDigit(b):
			d = uint64(plain.HexValue(b))
		case radix == 10 && plain.IsDigit(b):
			d = uint64(b - '0')
		case radix == 8 && '0' <= b && b <= '7':
			d = uint64(b - '0')
		default:
			return 0, false
		}
		if n < tooBig {
			n = n*radix + d
		}
	}
	return n, true
}

// AppendIPv4 writes addr in dotted-decimal form.
func AppendIPv4(dst []byte, addr uint32) []byte {
	for i := 3; i >= 0; i-- {
		dst = strconv.AppendUint(dst, uint64(addr>>(8*i)&0xFF), 10)
		if i != 0 {
			dst = append(dst, '.')
		}
	}
	return dst
}

func SerializeIPv4(addr uint32) string {
	return string(AppendIPv4(make([]byte, 0, 15), addr))
}
