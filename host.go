package weburl

import (
	"errors"
	"strconv"
	"strings"

	"github.com/oesand/weburl/internal/domain"
	"github.com/oesand/weburl/internal/ipaddr"
	"github.com/oesand/weburl/internal/percent"
	"github.com/oesand/weburl/internal/plain"
	"github.com/oesand/weburl/internal/scheme"
)

// parseHost returns the serialized form of a host. Special schemes get
// domain, IPv4 and IPv6 handling; other schemes get an opaque host. An
// empty input is only valid for non-special schemes and yields "".
func parseHost(input string, typ scheme.Type) (string, error) {
	if strings.HasPrefix(input, "[") {
		if len(input) < 2 || input[len(input)-1] != ']' {
			return "", ErrInvalidIPv6
		}
		addr, err := ipaddr.ParseIPv6(input[1 : len(input)-1])
		if err != nil {
			return "", ErrInvalidIPv6
		}
		buf := append(make([]byte, 0, 41), '[')
		buf = ipaddr.AppendIPv6(buf, addr)
		return string(append(buf, ']')), nil
	}

	if !typ.IsSpecial() {
		return parseOpaqueHost(input)
	}
	if input == "" {
		return "", ErrInvalidHost
	}

	// A full-width percent sign would decode into a literal one.
	if strings.ContainsRune(input, '\uFF05') {
		return "", ErrInvalidHost
	}
	decoded, err := percent.Decode(input)
	if err != nil {
		return "", ErrInvalidPercentEncoding
	}

	ascii, err := domain.ToASCII(decoded)
	switch {
	case errors.Is(err, domain.ErrIDNA):
		return "", ErrIDNA
	case err != nil:
		return "", ErrInvalidDomainCharacter
	}

	if ipaddr.EndsInNumber(ascii) {
		addr, err := ipaddr.ParseIPv4(ascii)
		if err != nil {
			return "", ErrInvalidIPv4
		}
		return ipaddr.SerializeIPv4(addr), nil
	}

	if typ == scheme.File && ascii == "localhost" {
		return "", nil
	}
	return ascii, nil
}

// parseOpaqueHost keeps the host as written, encoding only controls and
// non-ASCII bytes.
func parseOpaqueHost(input string) (string, error) {
	for i := 0; i < len(input); i++ {
		if domain.IsForbiddenHost(input[i]) {
			return "", ErrInvalidHost
		}
	}
	return percent.Encode(input, &percent.C0Control), nil
}

// splitHostPort splits at the first ':' outside brackets.
func splitHostPort(s string) (host, port string, ok bool) {
	inside := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			inside = true
		case ']':
			inside = false
		case ':':
			if !inside {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

// parsePort accepts only ASCII digits up to 65535. Empty means no port.
func parsePort(s string) (int, error) {
	if s == "" {
		return NoPort, nil
	}
	if !plain.AllDigits(s) {
		return 0, ErrInvalidPort
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
		if n > 65535 {
			return 0, ErrInvalidPort
		}
	}
	return n, nil
}

// appendPort writes ":port" unless the port is absent or the default.
func appendPort(dst []byte, port int, typ scheme.Type) []byte {
	if port == NoPort || port == typ.DefaultPort() {
		return dst
	}
	dst = append(dst, ':')
	return strconv.AppendInt(dst, int64(port), 10)
}
