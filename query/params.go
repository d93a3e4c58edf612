package query

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/oesand/weburl/internal/percent"
	"github.com/oesand/weburl/internal/plain"
)

type Pair struct {
	Name  string
	Value string
}

// Params is an ordered list of application/x-www-form-urlencoded pairs.
// Names may repeat. The zero value is an empty list ready to use.
type Params struct {
	pairs []Pair
}

// Parse decodes a query string. A leading '?' is skipped, empty sequences
// between '&' are ignored and '+' decodes to a space.
func Parse(query string) *Params {
	p := &Params{}
	query = strings.TrimPrefix(query, "?")
	for query != "" {
		var seq string
		seq, query, _ = strings.Cut(query, "&")
		if seq == "" {
			continue
		}
		name, value, _ := strings.Cut(seq, "=")
		p.pairs = append(p.pairs, Pair{Name: decode(name), Value: decode(value)})
	}
	return p
}

func decode(s string) string {
	s = percent.DecodeLenient(strings.ReplaceAll(s, "+", " "))
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	return s
}

func (p *Params) Size() int {
	return len(p.pairs)
}

func (p *Params) Any() bool {
	return p != nil && len(p.pairs) > 0
}

func (p *Params) Append(name, value string) {
	p.pairs = append(p.pairs, Pair{Name: name, Value: value})
}

// Set replaces the first pair named name and removes the others, or appends
// a new pair when there is none.
func (p *Params) Set(name, value string) {
	i := slices.IndexFunc(p.pairs, func(pair Pair) bool { return pair.Name == name })
	if i < 0 {
		p.Append(name, value)
		return
	}
	p.pairs[i].Value = value
	kept := p.pairs[:i+1]
	for _, pair := range p.pairs[i+1:] {
		if pair.Name != name {
			kept = append(kept, pair)
		}
	}
	p.pairs = kept
}

func (p *Params) Delete(name string) {
	p.pairs = slices.DeleteFunc(p.pairs, func(pair Pair) bool { return pair.Name == name })
}

// DeleteValue removes only the pairs matching both name and value.
func (p *Params) DeleteValue(name, value string) {
	p.pairs = slices.DeleteFunc(p.pairs, func(pair Pair) bool { return pair.Name == name && pair.Value == value })
}

// Get returns the value of the first pair named name.
func (p *Params) Get(name string) (string, bool) {
	for _, pair := range p.pairs {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return "", false
}

func (p *Params) GetAll(name string) []string {
	var values []string
	for _, pair := range p.pairs {
		if pair.Name == name {
			values = append(values, pair.Value)
		}
	}
	return values
}

func (p *Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

func (p *Params) HasValue(name, value string) bool {
	return slices.Contains(p.pairs, Pair{Name: name, Value: value})
}

// Sort orders pairs by name, comparing UTF-16 code units, and keeps the
// relative order of pairs with equal names.
func (p *Params) Sort() {
	slices.SortStableFunc(p.pairs, func(a, b Pair) int {
		return compareUTF16(a.Name, b.Name)
	})
}

func compareUTF16(a, b string) int {
	if plain.IsASCII(a) && plain.IsASCII(b) {
		return strings.Compare(a, b)
	}
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

// All iterates over the pairs in order.
func (p *Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range p.pairs {
			if !yield(pair.Name, pair.Value) {
				return
			}
		}
	}
}

func (p *Params) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pair := range p.pairs {
			if !yield(pair.Name) {
				return
			}
		}
	}
}

// String serializes the pairs without a leading '?'.
func (p *Params) String() string {
	if !p.Any() {
		return ""
	}
	var buf []byte
	for i, pair := range p.pairs {
		if i > 0 {
			buf = append(buf, '&')
		}
		buf = percent.AppendForm(buf, pair.Name)
		buf = append(buf, '=')
		buf = percent.AppendForm(buf, pair.Value)
	}
	return string(buf)
}

// Search is String with a leading '?', or "" when there are no pairs.
func (p *Params) Search() string {
	if !p.Any() {
		return ""
	}
	return "?" + p.String()
}
