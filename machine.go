package weburl

import (
	"bytes"
	"slices"
	"strings"

	"github.com/oesand/weburl/internal/percent"
	"github.com/oesand/weburl/internal/plain"
	"github.com/oesand/weburl/internal/scheme"
)

type parseState uint8

const (
	stateSchemeStart parseState = iota
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
)

// machine writes a URL into buf while it walks input. The fragment is cut
// off before parsing starts and appended by finish.
type machine struct {
	*Parser
	raw   string
	input string
	pos   int
	base  *URL

	buf    []byte
	c      Components
	scheme scheme.Type
	state  parseState

	fragment    string
	hasFragment bool
}

func (m *machine) run() error {
	for {
		var err error
		switch m.state {
		case stateSchemeStart:
			m.schemeStart()
		case stateNoScheme:
			err = m.noScheme()
		case stateSpecialRelativeOrAuthority:
			m.specialRelativeOrAuthority()
		case statePathOrAuthority:
			m.pathOrAuthority()
		case stateRelative:
			m.relative()
		case stateRelativeSlash:
			m.relativeSlash()
		case stateSpecialAuthoritySlashes:
			m.specialAuthoritySlashes()
		case stateSpecialAuthorityIgnoreSlashes:
			m.specialAuthorityIgnoreSlashes()
		case stateAuthority:
			err = m.authority()
		case stateFile:
			m.file()
		case stateFileSlash:
			m.fileSlash()
		case stateFileHost:
			err = m.fileHost()
		case statePathStart:
			m.pathStart()
		case statePath:
			m.path()
		case stateOpaquePath:
			m.opaquePath()
		case stateQuery:
			m.query()
		case stateFragment:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *machine) rest() string {
	return m.input[m.pos:]
}

// isSlash reports '/' and, for special schemes, '\'.
func (m *machine) isSlash(b byte) bool {
	if b == '\\' && m.scheme.IsSpecial() {
		m.report(InvalidReverseSolidus, m.raw)
		return true
	}
	return b == '/'
}

func (m *machine) startsWithSlash() bool {
	rest := m.rest()
	return rest != "" && m.isSlash(rest[0])
}

func (m *machine) schemeStart() {
	in := m.input
	if in == "" || !plain.IsAlpha(in[0]) {
		m.state = stateNoScheme
		return
	}
	i := 1
	for i < len(in) && plain.IsSchemeByte(in[i]) {
		i++
	}
	if i == len(in) || in[i] != ':' {
		m.state = stateNoScheme
		return
	}

	m.buf = plain.AppendLower(m.buf, in[:i])
	m.scheme = scheme.Classify(plain.BufferToString(m.buf[:i]))
	m.buf = append(m.buf, ':')
	m.c.ProtocolEnd = len(m.buf)
	m.pos = i + 1

	rest := m.rest()
	switch {
	case m.scheme == scheme.File:
		if !strings.HasPrefix(rest, "//") {
			m.report(SpecialSchemeMissingFollowingSolidus, m.raw)
		}
		m.state = stateFile
	case m.scheme.IsSpecial() && m.base != nil && m.base.scheme == m.scheme:
		m.state = stateSpecialRelativeOrAuthority
	case m.scheme.IsSpecial():
		m.state = stateSpecialAuthoritySlashes
	case strings.HasPrefix(rest, "/"):
		m.pos++
		m.state = statePathOrAuthority
	default:
		m.state = stateOpaquePath
	}
}

func (m *machine) noScheme() error {
	if m.base == nil {
		m.report(MissingSchemeNonRelativeURL, m.raw)
		if i := strings.IndexAny(m.input, ":/?"); i > 0 && m.input[i] == ':' {
			return ErrInvalidScheme
		}
		return ErrRelativeURLWithoutBase
	}

	if m.base.HasOpaquePath() {
		if m.input != "" || !m.hasFragment {
			m.report(MissingSchemeNonRelativeURL, m.raw)
			return ErrRelativeURLWithoutBase
		}
		end := len(m.base.href)
		if m.base.c.HashStart != 0 {
			end = m.base.c.HashStart
		}
		m.buf = append(m.buf, m.base.href[:end]...)
		m.c = m.base.c
		m.c.HashStart = 0
		m.scheme = m.base.scheme
		m.state = stateFragment
		return nil
	}

	if m.base.scheme == scheme.File {
		m.state = stateFile
	} else {
		m.state = stateRelative
	}
	return nil
}

func (m *machine) specialRelativeOrAuthority() {
	if strings.HasPrefix(m.rest(), "//") {
		m.pos += 2
		m.state = stateSpecialAuthorityIgnoreSlashes
		return
	}
	m.report(SpecialSchemeMissingFollowingSolidus, m.raw)
	m.state = stateRelative
}

func (m *machine) pathOrAuthority() {
	if strings.HasPrefix(m.rest(), "/") {
		m.pos++
		m.state = stateAuthority
		return
	}
	m.noAuthority()
	m.state = statePath
}

func (m *machine) relative() {
	if m.c.ProtocolEnd == 0 {
		m.buf = append(m.buf, m.base.Protocol()...)
		m.c.ProtocolEnd = len(m.buf)
		m.scheme = m.base.scheme
	}

	if m.startsWithSlash() {
		m.pos++
		m.state = stateRelativeSlash
		return
	}

	m.copyAuthority(m.base)
	m.buf = append(m.buf, m.base.Pathname()...)
	rest := m.rest()
	switch {
	case rest == "":
		m.copyQuery(m.base)
		m.state = stateFragment
	case rest[0] == '?':
		m.pos++
		m.state = stateQuery
	default:
		m.buf = shortenPath(m.buf, m.c.PathnameStart, m.scheme)
		m.state = statePath
	}
}

func (m *machine) relativeSlash() {
	if m.scheme.IsSpecial() && m.startsWithSlash() {
		m.pos++
		m.state = stateSpecialAuthorityIgnoreSlashes
		return
	}
	if strings.HasPrefix(m.rest(), "/") {
		m.pos++
		m.state = stateAuthority
		return
	}
	m.copyAuthority(m.base)
	m.state = statePath
}

func (m *machine) specialAuthoritySlashes() {
	if strings.HasPrefix(m.rest(), "//") {
		m.pos += 2
	} else {
		m.report(SpecialSchemeMissingFollowingSolidus, m.raw)
	}
	m.state = stateSpecialAuthorityIgnoreSlashes
}

func (m *machine) specialAuthorityIgnoreSlashes() {
	start := m.pos
	for m.pos < len(m.input) && (m.input[m.pos] == '/' || m.input[m.pos] == '\\') {
		m.pos++
	}
	if m.pos != start {
		m.report(SpecialSchemeMissingFollowingSolidus, m.raw)
	}
	m.state = stateAuthority
}

func (m *machine) authority() error {
	m.buf = append(m.buf, "//"...)
	start := len(m.buf)

	rest := m.rest()
	end := m.authorityEnd(rest)
	hostport := rest[:end]
	m.pos += end

	if at := strings.LastIndexByte(hostport, '@'); at >= 0 {
		m.report(InvalidCredentials, m.raw)
		username, password, _ := strings.Cut(hostport[:at], ":")
		hostport = hostport[at+1:]

		m.buf = percent.Append(m.buf, username, &percent.Userinfo)
		m.c.UsernameEnd = len(m.buf)
		if password != "" {
			m.buf = append(m.buf, ':')
			m.buf = percent.Append(m.buf, password, &percent.Userinfo)
		}
		m.c.PasswordEnd = len(m.buf)
		if len(m.buf) > start {
			m.buf = append(m.buf, '@')
		}
		if hostport == "" {
			m.report(HostMissing, m.raw)
			return ErrInvalidHost
		}
	} else {
		m.c.UsernameEnd, m.c.PasswordEnd = start, start
	}
	m.c.HostStart = len(m.buf)

	hostname, port, hasPort := splitHostPort(hostport)
	if hostname == "" && (hasPort || m.scheme.IsSpecial()) {
		m.report(HostMissing, m.raw)
		return ErrInvalidHost
	}
	host, err := parseHost(hostname, m.scheme)
	if err != nil {
		return err
	}
	m.buf = append(m.buf, host...)
	m.c.HostEnd = len(m.buf)

	if hasPort {
		n, err := parsePort(port)
		if err != nil {
			return err
		}
		m.c.Port = n
		m.buf = appendPort(m.buf, n, m.scheme)
	}
	m.c.PathnameStart = len(m.buf)
	m.state = statePathStart
	return nil
}

// authorityEnd returns the length of the authority at the start of rest.
func (m *machine) authorityEnd(rest string) int {
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '/', '?':
			return i
		case '\\':
			if m.scheme.IsSpecial() {
				return i
			}
		}
	}
	return len(rest)
}

func (m *machine) file() {
	if m.c.ProtocolEnd == 0 {
		m.buf = append(m.buf, "file:"...)
		m.c.ProtocolEnd = len(m.buf)
	}
	m.scheme = scheme.File
	m.buf = append(m.buf, "//"...)
	m.c.UsernameEnd, m.c.PasswordEnd, m.c.HostStart = len(m.buf), len(m.buf), len(m.buf)

	if m.startsWithSlash() {
		m.pos++
		m.state = stateFileSlash
		return
	}

	if m.base != nil && m.base.scheme == scheme.File {
		m.setFileHost(m.base.Hostname())
		m.buf = append(m.buf, m.base.Pathname()...)
		rest := m.rest()
		switch {
		case rest == "":
			m.copyQuery(m.base)
			m.state = stateFragment
			return
		case rest[0] == '?':
			m.pos++
			m.state = stateQuery
			return
		case startsWithWindowsDriveLetter(rest):
			m.report(FileInvalidWindowsDriveLetter, m.raw)
			m.buf = m.buf[:m.c.PathnameStart]
		default:
			m.buf = shortenPath(m.buf, m.c.PathnameStart, scheme.File)
		}
		m.state = statePath
		return
	}

	m.setFileHost("")
	m.state = statePath
}

func (m *machine) fileSlash() {
	if m.startsWithSlash() {
		m.pos++
		m.state = stateFileHost
		return
	}

	if m.base != nil && m.base.scheme == scheme.File {
		m.setFileHost(m.base.Hostname())
		if !startsWithWindowsDriveLetter(m.rest()) {
			first, _, _ := strings.Cut(strings.TrimPrefix(m.base.Pathname(), "/"), "/")
			if isNormalizedWindowsDriveLetter(first) {
				m.buf = append(m.buf, '/')
				m.buf = append(m.buf, first...)
			}
		}
	} else {
		m.setFileHost("")
	}
	m.state = statePath
}

func (m *machine) fileHost() error {
	rest := m.rest()
	end := strings.IndexAny(rest, "/\\?")
	if end < 0 {
		end = len(rest)
	}
	hostport := rest[:end]

	if isWindowsDriveLetter(hostport) {
		m.report(FileInvalidWindowsDriveLetterHost, m.raw)
		m.setFileHost("")
		m.state = statePath
		return nil
	}

	host := ""
	if hostport != "" {
		if _, _, hasPort := splitHostPort(hostport); hasPort {
			return ErrInvalidPort
		}
		var err error
		if host, err = parseHost(hostport, scheme.File); err != nil {
			return err
		}
	}
	m.setFileHost(host)
	m.pos += end
	m.state = statePathStart
	return nil
}

func (m *machine) setFileHost(host string) {
	m.buf = append(m.buf, host...)
	m.c.HostEnd = len(m.buf)
	m.c.PathnameStart = len(m.buf)
}

func (m *machine) pathStart() {
	if m.scheme.IsSpecial() {
		if m.startsWithSlash() {
			m.pos++
		}
		m.state = statePath
		return
	}

	rest := m.rest()
	switch {
	case rest == "":
		m.state = stateFragment
	case rest[0] == '?':
		m.pos++
		m.state = stateQuery
	default:
		if rest[0] == '/' {
			m.pos++
		}
		m.state = statePath
	}
}

func (m *machine) path() {
	rest := m.rest()
	end := strings.IndexByte(rest, '?')
	if end < 0 {
		end = len(rest)
	}
	m.buf = appendPath(m.buf, m.c.PathnameStart, rest[:end], m.scheme)
	m.pos += end

	if m.pos < len(m.input) {
		m.pos++
		m.state = stateQuery
	} else {
		m.state = stateFragment
	}
}

// opaquePath copies the path verbatim apart from encoding. A space right
// before a query or fragment is encoded so it cannot be lost later.
func (m *machine) opaquePath() {
	m.noAuthority()
	rest := m.rest()
	end := strings.IndexByte(rest, '?')
	if end < 0 {
		end = len(rest)
	}
	segment := rest[:end]
	followed := end < len(rest) || m.hasFragment

	if followed && strings.HasSuffix(segment, " ") {
		m.buf = percent.Append(m.buf, segment[:len(segment)-1], &percent.C0Control)
		m.buf = append(m.buf, "%20"...)
	} else {
		m.buf = percent.Append(m.buf, segment, &percent.C0Control)
	}
	m.pos += end

	if m.pos < len(m.input) {
		m.pos++
		m.state = stateQuery
	} else {
		m.state = stateFragment
	}
}

func (m *machine) query() {
	set := &percent.Query
	if m.scheme.IsSpecial() {
		set = &percent.SpecialQuery
	}
	m.c.SearchStart = len(m.buf)
	m.buf = append(m.buf, '?')
	m.buf = percent.Append(m.buf, m.rest(), set)
	m.pos = len(m.input)
	m.state = stateFragment
}

// noAuthority points every authority offset at the end of the protocol.
func (m *machine) noAuthority() {
	n := len(m.buf)
	m.c.UsernameEnd, m.c.PasswordEnd = n, n
	m.c.HostStart, m.c.HostEnd = n, n
	m.c.PathnameStart = n
	m.c.Port = NoPort
}

// copyAuthority copies credentials, host and port of base.
func (m *machine) copyAuthority(base *URL) {
	if !base.hasAuthority() {
		m.noAuthority()
		return
	}
	start := len(m.buf)
	m.buf = append(m.buf, base.href[base.c.ProtocolEnd:base.c.PathnameStart]...)
	delta := start - base.c.ProtocolEnd
	m.c.UsernameEnd = base.c.UsernameEnd + delta
	m.c.PasswordEnd = base.c.PasswordEnd + delta
	m.c.HostStart = base.c.HostStart + delta
	m.c.HostEnd = base.c.HostEnd + delta
	m.c.Port = base.c.Port
	m.c.PathnameStart = len(m.buf)
}

func (m *machine) copyQuery(base *URL) {
	if base.c.SearchStart == 0 {
		return
	}
	m.c.SearchStart = len(m.buf)
	m.buf = append(m.buf, base.href[base.c.SearchStart:base.searchEnd()]...)
}

// finish applies the "/." path marker, appends the fragment and freezes
// the buffer into a URL.
func (m *machine) finish() *URL {
	if !m.scheme.IsSpecial() && m.c.HostStart == m.c.ProtocolEnd &&
		bytes.HasPrefix(m.buf[m.c.PathnameStart:], []byte("//")) {
		m.buf = slices.Insert(m.buf, m.c.PathnameStart, '/', '.')
		m.c.PathnameStart += 2
		if m.c.SearchStart != 0 {
			m.c.SearchStart += 2
		}
	}

	if m.hasFragment {
		m.c.HashStart = len(m.buf)
		m.buf = append(m.buf, '#')
		m.buf = percent.Append(m.buf, m.fragment, &percent.Fragment)
	}

	return &URL{
		href:   plain.BufferToString(m.buf),
		c:      m.c,
		scheme: m.scheme,
	}
}
