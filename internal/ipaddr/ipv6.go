package ipaddr

import (
	"errors"
	"strconv"

	"github.com/oesand/weburl/internal/plain"
)

var ErrInvalidIPv6 = errors.New("ipaddr: invalid ipv6 address")

// IPv6 holds the eight 16-bit pieces of an address.
type IPv6 [8]uint16

// ParseIPv6 parses the text between the brackets of an IPv6 host. Zone
// identifiers are not accepted.
func ParseIPv6(s string) (IPv6, error) {
	var addr IPv6
	piece, compress := 0, -1
	i := 0

	if i < len(s) && s[i] == ':' {
		if len(s) < 2 || s[1] != ':' {
			return addr, ErrInvalidIPv6
		}
		i += 2
		piece++
		compress = piece
	}

	for i < len(s) {
		if piece == len(addr) {
			return addr, ErrInvalidIPv6
		}
		if s[i] == ':' {
			if compress != -1 {
				return addr, ErrInvalidIPv6
			}
			i++
			piece++
			compress = piece
			continue
		}

		value, length := uint16(0), 0
		for length < 4 && i < len(s) && plain.IsHexDigit(s[i]) {
			value = value<<4 | uint16(plain.HexValue(s[i]))
			i++
			length++
		}

		if i < len(s) && s[i] == '.' {
			if length == 0 || piece > 6 {
				return addr, ErrInvalidIPv6
			}
			i -= length
			if err := parseEmbeddedIPv4(s[i:], &addr, piece); err != nil {
				return addr, err
			}
			piece += 2
			i = len(s)
			break
		}

		if i < len(s) {
			if s[i] != ':' {
				return addr, ErrInvalidIPv6
			}
			i++
			if i == len(s) {
				return addr, ErrInvalidIPv6
			}
		}
		addr[piece] = value
		piece++
	}

	if compress != -1 {
		swaps := piece - compress
		piece = len(addr) - 1
		for piece != 0 && swaps > 0 {
			addr[piece], addr[compress+swaps-1] = addr[compress+swaps-1], addr[piece]
			piece--
			swaps--
		}
	} else if piece != len(addr) {
		return addr, ErrInvalidIPv6
	}
	return addr, nil
}

// parseEmbeddedIPv4 reads exactly four decimal octets without leading zeros
// into pieces at and after the given index.
func parseEmbeddedIPv4(s string, addr *IPv6, piece int) error {
	seen, i := 0, 0
	for i < len(s) {
		if seen > 0 {
			if s[i] != '.' || seen == 4 {
				return ErrInvalidIPv6
			}
			i++
		}
		if i == len(s) || !plain.IsDigit(s[i]) {
			return ErrInvalidIPv6
		}
		octet := -1
		for i < len(s) && plain.IsDigit(s[i]) {
			n := int(s[i] - '0')
			switch octet {
			case -1:
				octet = n
			case 0:
				return ErrInvalidIPv6
			default:
				octet = octet*10 + n
			}
			if octet > 255 {
				return ErrInvalidIPv6
			}
			i++
		}
		addr[piece] = addr[piece]<<8 | uint16(octet)
		seen++
		if seen == 2 {
			piece++
		}
	}
	if seen != 4 {
		return ErrInvalidIPv6
	}
	return nil
}

// AppendIPv6 writes the canonical text form without brackets: lowercase hex,
// no leading zeros, and the first longest run of two or more zero pieces
// replaced by "::".
func AppendIPv6(dst []byte, addr IPv6) []byte {
	compress := longestZeroRun(addr)
	ignoreZero := false
	for i, p := range addr {
		if ignoreZero && p == 0 {
			continue
		}
		ignoreZero = false
		if i == compress {
			if i == 0 {
				dst = append(dst, "::"...)
			} else {
				dst = append(dst, ':')
			}
			ignoreZero = true
			continue
		}
		dst = strconv.AppendUint(dst, uint64(p), 16)
		if i != len(addr)-1 {
			dst = append(dst, ':')
		}
	}
	return dst
}

func longestZeroRun(addr IPv6) int {
	start, best := -1, 1
	for i := 0; i < len(addr); {
		if addr[i] != 0 {
			i++
			continue
		}
		j := i
		for j < len(addr) && addr[j] == 0 {
			j++
		}
		if j-i > best {
			start, best = i, j-i
		}
		i = j
	}
	return start
}
