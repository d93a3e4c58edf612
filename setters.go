package weburl

import (
	"strconv"
	"strings"

	"github.com/oesand/weburl/internal/percent"
	"github.com/oesand/weburl/internal/plain"
	"github.com/oesand/weburl/internal/scheme"
)

// SetHref replaces the whole URL. On error the URL is left unchanged.
func (u *URL) SetHref(input string) error {
	v, err := Parse(input)
	if err != nil {
		return err
	}
	*u = *v
	return nil
}

// SetProtocol changes the scheme. Anything after the first ':' is ignored.
// The change is refused when it would turn a special URL into a
// non-special one or back, or when file is on either side.
func (u *URL) SetProtocol(input string) bool {
	input, _ = plain.RemoveTabAndNewline(input)
	if input == "" || !plain.IsAlpha(input[0]) {
		return false
	}
	i := 1
	for i < len(input) && plain.IsSchemeByte(input[i]) {
		i++
	}
	if i < len(input) && input[i] != ':' {
		return false
	}

	name := plain.LowerCase(input[:i])
	typ := scheme.Classify(name)
	if typ.IsSpecial() != u.scheme.IsSpecial() || typ == scheme.File || u.scheme == scheme.File {
		return false
	}

	if u.HasPort() {
		if u.c.Port == typ.DefaultPort() {
			u.replaceRange(u.c.HostEnd, u.c.PathnameStart, "")
		}
	} else {
		u.c.Port = NoPort
	}
	u.replaceRange(0, u.c.ProtocolEnd-1, name)
	u.scheme = typ
	return true
}

// SetUsername replaces the username. URLs without a host and file URLs
// cannot carry credentials.
func (u *URL) SetUsername(input string) bool {
	if !u.canHaveCredentials() {
		return false
	}
	u.setCredentials(percent.Encode(input, &percent.Userinfo), u.Password())
	return true
}

func (u *URL) SetPassword(input string) bool {
	if !u.canHaveCredentials() {
		return false
	}
	u.setCredentials(u.Username(), percent.Encode(input, &percent.Userinfo))
	return true
}

// setCredentials rewrites the whole userinfo section from encoded parts.
func (u *URL) setCredentials(username, password string) {
	info := username
	if password != "" {
		info += ":" + password
	}
	if info != "" {
		info += "@"
	}

	start := u.c.ProtocolEnd + 2
	u.replaceRange(start, u.c.HostStart, info)
	u.c.UsernameEnd = start + len(username)
	u.c.PasswordEnd = u.c.UsernameEnd
	if password != "" {
		u.c.PasswordEnd += 1 + len(password)
	}
	u.c.HostStart = start + len(info)
}

// SetHost replaces the hostname and, when the input carries one, the port.
func (u *URL) SetHost(input string) bool {
	return u.setHost(input, true)
}

// SetHostname replaces the hostname; input with a port is refused.
func (u *URL) SetHostname(input string) bool {
	return u.setHost(input, false)
}

func (u *URL) setHost(input string, withPort bool) bool {
	if !u.scheme.IsSpecial() && !u.hasAuthority() {
		return false
	}
	input, _ = plain.RemoveTabAndNewline(input)
	end := strings.IndexAny(input, "/?#")
	if u.scheme.IsSpecial() {
		end = strings.IndexAny(input, "/?#\\")
	}
	if end >= 0 {
		input = input[:end]
	}

	hostname, port, hasPort := splitHostPort(input)
	if hasPort && (!withPort || hostname == "") {
		return false
	}

	if u.scheme == scheme.File {
		if hasPort {
			return false
		}
		host := ""
		if hostname != "" {
			var err error
			if host, err = parseHost(hostname, scheme.File); err != nil {
				return false
			}
		}
		u.replaceHost(host)
		return true
	}

	if hostname == "" {
		if u.scheme.IsSpecial() || u.HasCredentials() || u.HasPort() {
			return false
		}
	}
	host, err := parseHost(hostname, u.scheme)
	if err != nil {
		return false
	}
	u.replaceHost(host)
	if hasPort {
		u.applyPort(port)
	}
	return true
}

// replaceHost writes host over the hostname span. An empty span has the
// port, path, query and fragment offsets sitting on it when those are empty
// too, so they follow the inserted text.
func (u *URL) replaceHost(host string) {
	u.splice(u.c.HostStart, u.c.HostEnd, host, &u.c.HostEnd, &u.c.PathnameStart, &u.c.SearchStart, &u.c.HashStart)
	u.c.HostEnd = u.c.HostStart + len(host)
}

// SetPort replaces the port. An empty input removes it; input that does not
// start with a digit is ignored, and trailing non-digits are dropped.
func (u *URL) SetPort(input string) bool {
	if !u.canHaveCredentials() {
		return false
	}
	input, _ = plain.RemoveTabAndNewline(input)
	if input == "" {
		u.writePort(NoPort)
		return true
	}
	return u.applyPort(input)
}

func (u *URL) applyPort(input string) bool {
	i := 0
	for i < len(input) && plain.IsDigit(input[i]) {
		i++
	}
	if i == 0 {
		return false
	}
	port, err := parsePort(input[:i])
	if err != nil {
		return false
	}
	u.writePort(port)
	return true
}

// writePort stores the port and writes it unless it is the default.
func (u *URL) writePort(port int) {
	text := ""
	if port != NoPort && port != u.scheme.DefaultPort() {
		text = ":" + strconv.Itoa(port)
	}
	u.splice(u.c.HostEnd, u.c.PathnameStart, text, &u.c.PathnameStart, &u.c.SearchStart, &u.c.HashStart)
	u.c.PathnameStart = u.c.HostEnd + len(text)
	u.c.Port = port
}

// SetPathname replaces the path. URLs with an opaque path refuse it.
func (u *URL) SetPathname(input string) bool {
	if u.HasOpaquePath() {
		return false
	}
	input, _ = plain.RemoveTabAndNewline(input)

	var path []byte
	switch {
	case u.scheme.IsSpecial():
		if input != "" && (input[0] == '/' || input[0] == '\\') {
			input = input[1:]
		}
		path = appendPath(nil, 0, input, u.scheme)
	case input == "":
		if !u.hasAuthority() {
			path = []byte{'/'}
		}
	default:
		path = appendPath(nil, 0, strings.TrimPrefix(input, "/"), u.scheme)
	}

	u.splice(u.c.PathnameStart, u.pathnameEnd(), string(path), &u.c.SearchStart, &u.c.HashStart)
	u.fixPathMarker()
	return true
}

// fixPathMarker keeps the "/." marker that separates a path starting with
// "//" from the protocol of a URL without authority.
func (u *URL) fixPathMarker() {
	if u.scheme.IsSpecial() || u.hasAuthority() {
		return
	}
	marked := u.c.PathnameStart == u.c.HostEnd+2
	needed := strings.HasPrefix(u.Pathname(), "//")
	switch {
	case needed && !marked:
		u.splice(u.c.PathnameStart, u.c.PathnameStart, "/.", &u.c.PathnameStart, &u.c.SearchStart, &u.c.HashStart)
	case marked && !needed:
		u.replaceRange(u.c.PathnameStart-2, u.c.PathnameStart, "")
	}
}

// ensurePathname gives a special URL with an empty path the path "/".
func (u *URL) ensurePathname() {
	if u.scheme.IsSpecial() && u.c.PathnameStart == u.pathnameEnd() {
		u.splice(u.c.PathnameStart, u.c.PathnameStart, "/", &u.c.SearchStart, &u.c.HashStart)
	}
}

// SetSearch replaces the query; an empty input removes it. A leading '?'
// is optional.
func (u *URL) SetSearch(input string) {
	input, _ = plain.RemoveTabAndNewline(input)
	if input == "" {
		if u.c.SearchStart != 0 {
			u.replaceRange(u.c.SearchStart, u.searchEnd(), "")
			u.c.SearchStart = 0
		}
		return
	}
	u.ensurePathname()

	set := &percent.Query
	if u.scheme.IsSpecial() {
		set = &percent.SpecialQuery
	}
	text := "?" + percent.Encode(strings.TrimPrefix(input, "?"), set)

	start := u.c.SearchStart
	if start == 0 {
		start = u.pathnameEnd()
	}
	u.splice(start, u.searchEnd(), text, &u.c.HashStart)
	u.c.SearchStart = start
}

// SetHash replaces the fragment; an empty input removes it. A leading '#'
// is optional.
func (u *URL) SetHash(input string) {
	input, _ = plain.RemoveTabAndNewline(input)
	if input == "" {
		if u.c.HashStart != 0 {
			u.href = u.href[:u.c.HashStart]
			u.c.HashStart = 0
		}
		return
	}
	u.ensurePathname()

	text := "#" + percent.Encode(strings.TrimPrefix(input, "#"), &percent.Fragment)
	start := u.c.HashStart
	if start == 0 {
		start = len(u.href)
	}
	u.replaceRange(start, len(u.href), text)
	u.c.HashStart = start
}
