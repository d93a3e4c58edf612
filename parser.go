package weburl

import (
	"strings"
	"unicode/utf8"

	"github.com/oesand/weburl/internal/plain"
	"go.uber.org/zap"
)

// Parser parses URLs and reports validation errors to its logger.
// A Parser holds no per-call state and may be shared between goroutines.
type Parser struct {
	log      *zap.Logger
	fastPath bool
}

type Option func(*Parser)

// WithLogger sends validation errors to log at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log.Named("weburl")
		}
	}
}

// WithoutFastPath routes every input through the general state machine.
func WithoutFastPath() Option {
	return func(p *Parser) {
		p.fastPath = false
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		log:      zap.NewNop(),
		fastPath: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses an absolute URL.
func Parse(input string) (*URL, error) {
	return defaultParser.Parse(input)
}

// ParseWithBase parses input relative to base. A base that fails to parse
// fails the whole call.
func ParseWithBase(input, base string) (*URL, error) {
	return defaultParser.ParseWithBase(input, base)
}

func CanParse(input string) bool {
	return defaultParser.CanParse(input)
}

func CanParseWithBase(input, base string) bool {
	return defaultParser.CanParseWithBase(input, base)
}

func (p *Parser) Parse(input string) (*URL, error) {
	return p.parse(input, nil)
}

func (p *Parser) ParseWithBase(input, base string) (*URL, error) {
	b, err := p.parse(base, nil)
	if err != nil {
		return nil, err
	}
	return p.parse(input, b)
}

// Resolve parses ref relative to an already parsed base. A nil base
// makes it the same as Parse.
func (p *Parser) Resolve(ref string, base *URL) (*URL, error) {
	return p.parse(ref, base)
}

// CanParse reports whether Parse would succeed. Inputs that cannot start
// with a scheme are rejected without running the parser.
func (p *Parser) CanParse(input string) bool {
	trimmed, _ := plain.TrimControlAndSpace(input)
	if trimmed == "" || !plain.IsAlpha(trimmed[0]) || strings.IndexByte(trimmed, ':') < 0 {
		return false
	}
	_, err := p.parse(input, nil)
	return err == nil
}

func (p *Parser) CanParseWithBase(input, base string) bool {
	_, err := p.ParseWithBase(input, base)
	return err == nil
}

func (p *Parser) parse(input string, base *URL) (*URL, error) {
	raw := input
	if !utf8.ValidString(input) {
		input = strings.ToValidUTF8(input, "\uFFFD")
	}
	input, trimmed := plain.TrimControlAndSpace(input)
	input, removed := plain.RemoveTabAndNewline(input)
	if trimmed || removed {
		p.report(InvalidURLUnit, raw)
	}

	m := &machine{
		Parser: p,
		raw:    raw,
		base:   base,
	}
	m.input, m.fragment, m.hasFragment = strings.Cut(input, "#")
	m.c.Port = NoPort

	if base != nil || !p.fastPath || !m.fast() {
		m.buf = make([]byte, 0, len(input)+8)
		if err := m.run(); err != nil {
			return nil, err
		}
	}
	return m.finish(), nil
}
