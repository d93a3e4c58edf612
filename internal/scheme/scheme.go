package scheme

// Type is the category of a URL scheme. Everything that is not one of the
// six special schemes collapses into NotSpecial.
type Type uint8

const (
	NotSpecial Type = iota
	HTTP
	HTTPS
	WS
	WSS
	FTP
	File
)

// NoPort is returned by DefaultPort for schemes without a default port.
const NoPort = -1

// Classify returns the category of a lowercase scheme name given without
// the trailing colon.
func Classify(name string) Type {
	if len(name) < 2 || len(name) > 5 {
		return NotSpecial
	}

	switch len(name) {
	case 2:
		if name == "ws" {
			return WS
		}
	case 3:
		switch name[0] {
		case 'w':
			if name == "wss" {
				return WSS
			}
		case 'f':
			if name == "ftp" {
				return FTP
			}
		}
	case 4:
		switch name[0] {
		case 'h':
			if name == "http" {
				return HTTP
			}
		case 'f':
			if name == "file" {
				return File
			}
		}
	case 5:
		if name == "https" {
			return HTTPS
		}
	}
	return NotSpecial
}

func (t Type) IsSpecial() bool {
	return t != NotSpecial
}

// DefaultPort returns the well-known port of the scheme, or NoPort.
func (t Type) DefaultPort() int {
	switch t {
	case HTTP, WS:
		return 80
	case HTTPS, WSS:
		return 443
	case FTP:
		return 21
	}
	return NoPort
}

// String returns the canonical scheme name, empty for NotSpecial.
func (t Type) String() string {
	switch t {
	case HTTP:
		return "http"
	case HTTPS:
		return "https"
	case WS:
		return "ws"
	case WSS:
		return "wss"
	case FTP:
		return "ftp"
	case File:
		return "file"
	}
	return ""
}
