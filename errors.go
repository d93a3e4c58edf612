package weburl

// ErrorKind names the reason a URL could not be parsed.
type ErrorKind uint8

const (
	InvalidScheme ErrorKind = iota + 1
	InvalidHost
	InvalidPort
	InvalidIPv4
	InvalidIPv6
	InvalidDomainCharacter
	InvalidPercentEncoding
	IDNAError
	InvalidURL
	RelativeURLWithoutBase
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidScheme:
		return "invalid scheme"
	case InvalidHost:
		return "invalid host"
	case InvalidPort:
		return "invalid port"
	case InvalidIPv4:
		return "invalid ipv4 address"
	case InvalidIPv6:
		return "invalid ipv6 address"
	case InvalidDomainCharacter:
		return "invalid domain character"
	case InvalidPercentEncoding:
		return "invalid percent encoding"
	case IDNAError:
		return "idna conversion failed"
	case InvalidURL:
		return "invalid url"
	case RelativeURLWithoutBase:
		return "relative url without a base"
	}
	return "unknown error"
}

// ParseError is returned for every input that is not a valid URL.
type ParseError struct {
	Kind ErrorKind
}

func (e *ParseError) Error() string {
	return "weburl: " + e.Kind.String()
}

// Is matches any ParseError of the same kind, so errors.Is works against
// the sentinels below.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidScheme          = &ParseError{Kind: InvalidScheme}
	ErrInvalidHost            = &ParseError{Kind: InvalidHost}
	ErrInvalidPort            = &ParseError{Kind: InvalidPort}
	ErrInvalidIPv4            = &ParseError{Kind: InvalidIPv4}
	ErrInvalidIPv6            = &ParseError{Kind: InvalidIPv6}
	ErrInvalidDomainCharacter = &ParseError{Kind: InvalidDomainCharacter}
	ErrInvalidPercentEncoding = &ParseError{Kind: InvalidPercentEncoding}
	ErrIDNA                   = &ParseError{Kind: IDNAError}
	ErrInvalidURL             = &ParseError{Kind: InvalidURL}
	ErrRelativeURLWithoutBase = &ParseError{Kind: RelativeURLWithoutBase}
)
