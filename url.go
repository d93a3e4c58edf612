package weburl

import (
	"strings"

	"github.com/oesand/weburl/internal/scheme"
	"github.com/oesand/weburl/query"
)

// URL is a parsed WHATWG URL stored as its serialized form plus the
// offsets of every component. Getters slice the href and never allocate.
//
// A URL is not safe for concurrent mutation; copy it with Clone to share.
type URL struct {
	href   string
	c      Components
	scheme scheme.Type
}

// MustParse is a helper function that parses a URL string and panics if it fails.
func MustParse(input string) *URL {
	u, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return u
}

// Resolve parses ref relative to u.
func (u *URL) Resolve(ref string) (*URL, error) {
	return defaultParser.Resolve(ref, u)
}

func (u *URL) Clone() *URL {
	v := *u
	return &v
}

// Components returns a copy of the offset record.
func (u *URL) Components() Components {
	return u.c
}

func (u *URL) String() string {
	return u.href
}

func (u *URL) Href() string {
	return u.href
}

// Protocol returns the scheme followed by ':'.
func (u *URL) Protocol() string {
	return u.get(0, u.c.ProtocolEnd)
}

// IsSpecial reports whether the scheme is http, https, ws, wss, ftp or file.
func (u *URL) IsSpecial() bool {
	return u.scheme.IsSpecial()
}

func (u *URL) Username() string {
	return u.get(u.usernameStart(), u.c.UsernameEnd)
}

func (u *URL) Password() string {
	if u.c.PasswordEnd > u.c.UsernameEnd {
		return u.get(u.c.UsernameEnd+1, u.c.PasswordEnd)
	}
	return ""
}

// Host returns the hostname and, when it is not the default, the port.
func (u *URL) Host() string {
	if !u.hasAuthority() {
		return ""
	}
	return u.get(u.c.HostStart, u.c.PathnameStart)
}

func (u *URL) Hostname() string {
	return u.get(u.c.HostStart, u.c.HostEnd)
}

// Port returns the port digits, empty when absent or equal to the default.
func (u *URL) Port() string {
	if !u.HasPort() {
		return ""
	}
	return u.get(u.c.HostEnd+1, u.c.PathnameStart)
}

func (u *URL) Pathname() string {
	return u.get(u.c.PathnameStart, u.pathnameEnd())
}

// Search returns the query with its leading '?', or "" when it is empty.
func (u *URL) Search() string {
	if u.c.SearchStart == 0 {
		return ""
	}
	end := u.searchEnd()
	if end-u.c.SearchStart <= 1 {
		return ""
	}
	return u.get(u.c.SearchStart, end)
}

// Hash returns the fragment with its leading '#', or "" when it is empty.
func (u *URL) Hash() string {
	if u.c.HashStart == 0 || u.c.HashStart == len(u.href)-1 {
		return ""
	}
	return u.get(u.c.HashStart, len(u.href))
}

// SearchParams decodes the query as application/x-www-form-urlencoded pairs.
func (u *URL) SearchParams() *query.Params {
	return query.Parse(u.Search())
}

// SetSearchParams replaces the query with the serialized params.
func (u *URL) SetSearchParams(params *query.Params) {
	u.SetSearch(params.String())
}

func (u *URL) HasCredentials() bool {
	return u.c.PasswordEnd > u.usernameStart()
}

// HasHostname reports whether the URL has an authority, even with an empty host.
func (u *URL) HasHostname() bool {
	return u.hasAuthority()
}

func (u *URL) HasEmptyHostname() bool {
	return u.hasAuthority() && u.c.HostStart == u.c.HostEnd
}

// HasPort reports a port that differs from the scheme default.
func (u *URL) HasPort() bool {
	return u.hasAuthority() && u.c.HostEnd < u.c.PathnameStart
}

// HasSearch is true even for a bare '?'.
func (u *URL) HasSearch() bool {
	return u.c.SearchStart != 0
}

func (u *URL) HasHash() bool {
	return u.c.HashStart != 0
}

// HasOpaquePath reports a non-special URL without authority whose path does
// not start with '/', such as "mailto:someone@example.com".
func (u *URL) HasOpaquePath() bool {
	return !u.scheme.IsSpecial() && !u.hasAuthority() && !strings.HasPrefix(u.Pathname(), "/")
}

func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.href), nil
}

func (u *URL) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = *v
	return nil
}

// get returns href[start:end], or "" when the span is empty or out of range.
func (u *URL) get(start, end int) string {
	if start < 0 || end > len(u.href) || start >= end {
		return ""
	}
	return u.href[start:end]
}

func (u *URL) hasAuthority() bool {
	return u.c.HostStart > u.c.ProtocolEnd
}

func (u *URL) usernameStart() int {
	if u.hasAuthority() {
		return u.c.ProtocolEnd + 2
	}
	return u.c.ProtocolEnd
}

func (u *URL) pathnameEnd() int {
	if u.c.SearchStart != 0 {
		return u.c.SearchStart
	}
	if u.c.HashStart != 0 {
		return u.c.HashStart
	}
	return len(u.href)
}

func (u *URL) searchEnd() int {
	if u.c.HashStart != 0 {
		return u.c.HashStart
	}
	return len(u.href)
}

// canHaveCredentials is false for URLs without a host and for file URLs,
// which also rules out a port.
func (u *URL) canHaveCredentials() bool {
	return u.hasAuthority() && u.c.HostStart < u.c.HostEnd && u.scheme != scheme.File
}
