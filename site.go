package weburl

import (
	"strings"

	"github.com/oesand/weburl/internal/ipaddr"
	"golang.org/x/net/publicsuffix"
)

// PublicSuffix returns the public suffix of a domain host, such as "co.uk"
// for "www.example.co.uk". A trailing dot on the host is kept. IP
// addresses, opaque and empty hosts have none.
func (u *URL) PublicSuffix() string {
	host, dot := u.domain()
	if host == "" {
		return ""
	}
	suffix, _ := publicsuffix.PublicSuffix(host)
	return suffix + dot
}

// RegistrableDomain returns the public suffix plus one label, or "" when
// the host is itself a public suffix or not a domain.
func (u *URL) RegistrableDomain() string {
	host, dot := u.domain()
	if host == "" {
		return ""
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return registrable + dot
}

// domain returns the hostname without its trailing dot when it is a domain.
func (u *URL) domain() (string, string) {
	if !u.scheme.IsSpecial() || !u.hasAuthority() {
		return "", ""
	}
	host := u.Hostname()
	if host == "" || host[0] == '[' || ipaddr.EndsInNumber(host) {
		return "", ""
	}
	if trimmed, ok := strings.CutSuffix(host, "."); ok {
		return trimmed, "."
	}
	return host, ""
}
