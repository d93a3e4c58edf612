package plain

import (
	"reflect"
	"testing"
)

func Test_LowerCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already lower", "example.com", "example.com"},
		{"upper host", "EXAMPLE.COM", "example.com"},
		{"mixed scheme", "HtTpS", "https"},
		{"digits and symbols", "A1-B2.C3_", "a1-b2.c3_"},
		{"non ascii untouched", "ÉCOLE", "École"},
		{"boundary letters", "@AZ[`az{", "@az[`az{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowerCase(tt.input); got != tt.want {
				t.Errorf("LowerCase() = %v, want %v", got, tt.want)
			}
			if got := AppendLower(nil, tt.input); !reflect.DeepEqual(got, []byte(tt.want)) && tt.want != "" {
				t.Errorf("AppendLower() = %v, want %v", string(got), tt.want)
			}
		})
	}
}

func Test_EqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"localhost", "LOCALHOST", true},
		{"LocalHost", "localhost", true},
		{"localhost", "localhos", false},
		{"%2e", "%2E", true},
		{"a", "b", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := EqualFold(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
