package weburl

import "github.com/oesand/weburl/internal/scheme"

// Origin returns the ASCII serialization of the URL's origin: scheme, host
// and non-default port for http(s), ws(s) and ftp URLs, the origin of the
// embedded URL for blob URLs wrapping http(s), and "null" otherwise.
func (u *URL) Origin() string {
	switch u.scheme {
	case scheme.HTTP, scheme.HTTPS, scheme.WS, scheme.WSS, scheme.FTP:
		return u.Protocol() + "//" + u.Host()
	case scheme.File:
		return "null"
	}

	if u.Protocol() == "blob:" {
		inner, err := Parse(u.Pathname())
		if err == nil && (inner.scheme == scheme.HTTP || inner.scheme == scheme.HTTPS) {
			return inner.Origin()
		}
	}
	return "null"
}
