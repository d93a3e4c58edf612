package weburl

import "go.uber.org/zap"

// ValidationError names a non-fatal problem found while parsing. Parsing
// goes on; the parser only reports it to its logger.
type ValidationError string

const (
	InvalidURLUnit                       ValidationError = "invalid-URL-unit"
	SpecialSchemeMissingFollowingSolidus ValidationError = "special-scheme-missing-following-solidus"
	InvalidReverseSolidus                ValidationError = "invalid-reverse-solidus"
	InvalidCredentials                   ValidationError = "invalid-credentials"
	MissingSchemeNonRelativeURL          ValidationError = "missing-scheme-non-relative-URL"
	HostMissing                          ValidationError = "host-missing"
	FileInvalidWindowsDriveLetter        ValidationError = "file-invalid-Windows-drive-letter"
	FileInvalidWindowsDriveLetterHost    ValidationError = "file-invalid-Windows-drive-letter-host"
)

func (e ValidationError) String() string {
	return string(e)
}

func (p *Parser) report(kind ValidationError, input string) {
	if ce := p.log.Check(zap.DebugLevel, "validation error"); ce != nil {
		ce.Write(zap.Stringer("kind", kind), zap.String("input", input))
	}
}
