package weburl

import (
	"strings"

	"github.com/oesand/weburl/internal/domain"
	"github.com/oesand/weburl/internal/ipaddr"
	"github.com/oesand/weburl/internal/percent"
	"github.com/oesand/weburl/internal/plain"
	"github.com/oesand/weburl/internal/scheme"
)

// fast parses the common "http(s)://host[:port][/path][?query]" shape in a
// single pass. It gives up, leaving m untouched, on anything the general
// state machine would treat specially: credentials, IP-like or punycode
// hosts, dot segments and backslashes. Output is identical to the state
// machine for every input it accepts.
func (m *machine) fast() bool {
	in := m.input
	var typ scheme.Type
	switch {
	case strings.HasPrefix(in, "http://"):
		typ = scheme.HTTP
	case strings.HasPrefix(in, "https://"):
		typ = scheme.HTTPS
	default:
		return false
	}

	protocolEnd := len(typ.String()) + 1
	i := protocolEnd + 2
	buf := make([]byte, 0, len(in)+len(m.fragment)+2)
	buf = append(buf, in[:i]...)
	c := Components{
		ProtocolEnd: protocolEnd,
		UsernameEnd: i,
		PasswordEnd: i,
		HostStart:   i,
		Port:        NoPort,
	}

	for ; i < len(in); i++ {
		b := in[i]
		switch plain.HostTable[b] {
		case plain.HostLower:
			buf = append(buf, b)
			continue
		case plain.HostUpper:
			buf = append(buf, b+32)
			continue
		case plain.HostInvalid:
			return false
		}
		break
	}
	host := plain.BufferToString(buf[c.HostStart:])
	if host == "" || ipaddr.EndsInNumber(host) || domain.HasPunycode(host) {
		return false
	}
	c.HostEnd = len(buf)

	if i < len(in) && in[i] == ':' {
		j := i + 1
		for j < len(in) && plain.IsDigit(in[j]) {
			j++
		}
		if j == i+1 || j < len(in) && in[j] != '/' && in[j] != '?' {
			return false
		}
		port, err := parsePort(in[i+1 : j])
		if err != nil {
			return false
		}
		c.Port = port
		buf = appendPort(buf, port, typ)
		i = j
	}
	c.PathnameStart = len(buf)

	end := strings.IndexByte(in[i:], '?')
	if end < 0 {
		end = len(in)
	} else {
		end += i
	}
	path := in[i:end]
	if path == "" {
		buf = append(buf, '/')
	} else {
		if strings.IndexByte(path, '\\') >= 0 || hasDotSegmentHint(path) {
			return false
		}
		buf = percent.Append(buf, path, &percent.Path)
	}

	if end < len(in) {
		c.SearchStart = len(buf)
		buf = append(buf, '?')
		buf = percent.Append(buf, in[end+1:], &percent.SpecialQuery)
	}

	m.buf, m.c, m.scheme = buf, c, typ
	return true
}

// hasDotSegmentHint is a conservative test for segments the path parser
// would resolve.
func hasDotSegmentHint(path string) bool {
	if strings.Contains(path, "/.") {
		return true
	}
	for i := strings.IndexByte(path, '%'); i >= 0 && i+2 < len(path); {
		if path[i+1] == '2' && (path[i+2] == 'e' || path[i+2] == 'E') {
			return true
		}
		next := strings.IndexByte(path[i+1:], '%')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return false
}
