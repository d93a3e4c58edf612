package percent

import (
	"errors"
	"testing"
)

func Test_SetsNest(t *testing.T) {
	chain := []struct {
		name string
		set  *Set
	}{
		{"c0", &C0Control},
		{"query", &Query},
		{"path", &Path},
		{"userinfo", &Userinfo},
		{"component", &Component},
		{"form", &FormURLEncoded},
	}
	for i := 1; i < len(chain); i++ {
		sub, super := chain[i-1], chain[i]
		for b := 0; b < 256; b++ {
			if sub.set.Contains(byte(b)) && !super.set.Contains(byte(b)) {
				t.Errorf("%s encodes %#x but %s does not", sub.name, b, super.name)
			}
		}
	}
	for b := 0; b < 256; b++ {
		if C0Control.Contains(byte(b)) && !Fragment.Contains(byte(b)) {
			t.Errorf("fragment set misses %#x", b)
		}
		if Query.Contains(byte(b)) && !SpecialQuery.Contains(byte(b)) {
			t.Errorf("special-query set misses %#x", b)
		}
	}
}

func Test_SetMembers(t *testing.T) {
	tests := []struct {
		name string
		set  *Set
		in   string
		out  string
	}{
		{"c0", &C0Control, "\x00\x1f\x7f\x80\xff", " !\"#%/?~"},
		{"fragment", &Fragment, " \"<>`", "#?^{}'"},
		{"query", &Query, " \"#<>", "'?^`{}"},
		{"special-query", &SpecialQuery, "'", "?^`{}"},
		{"path", &Path, "?^`{}#", "/:@[]|%'"},
		{"userinfo", &Userinfo, "/:;=@[\\]^|", "!$&'()*+,-._~%"},
		{"form", &FormURLEncoded, "!'()~$%&+,", "*-._"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.in); i++ {
				if !tt.set.Contains(tt.in[i]) {
					t.Errorf("want %q encoded", tt.in[i])
				}
			}
			for i := 0; i < len(tt.out); i++ {
				if tt.set.Contains(tt.out[i]) {
					t.Errorf("want %q kept", tt.out[i])
				}
			}
		})
	}
}

func Test_Encode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		set   *Set
		want  string
	}{
		{"untouched", "abc/def", &Path, "abc/def"},
		{"space in path", "a b", &Path, "a%20b"},
		{"utf-8 bytes", "é", &Path, "%C3%A9"},
		{"query keeps quote", "a'b", &Query, "a'b"},
		{"special query encodes quote", "a'b", &SpecialQuery, "a%27b"},
		{"userinfo", "us:er@x", &Userinfo, "us%3Aer%40x"},
		{"percent kept", "%zz", &Path, "%zz"},
		{"fragment backtick", "a`b", &Fragment, "a%60b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.input, tt.set); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_AppendForm(t *testing.T) {
	got := string(AppendForm(nil, "a b&c=d~*"))
	if want := "a+b%26c%3Dd%7E*"; got != want {
		t.Errorf("AppendForm() = %q, want %q", got, want)
	}
}

func Test_Decode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain", "abc", "abc", nil},
		{"upper", "%41%42", "AB", nil},
		{"lower hex", "%c3%a9", "é", nil},
		{"truncated", "%4", "", ErrInvalidEncoding},
		{"not hex", "%zz", "", ErrInvalidEncoding},
		{"bare percent at end", "abc%", "", ErrInvalidEncoding},
		{"invalid utf-8", "%FF", "", ErrInvalidUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_DecodeLenient(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"%41%zz%4", "A%zz%4"},
		{"%%41", "%A"},
		{"%FF", "\xff"},
		{"none", "none"},
	}
	for _, tt := range tests {
		if got := DecodeLenient(tt.input); got != tt.want {
			t.Errorf("DecodeLenient(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
