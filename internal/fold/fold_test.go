package fold

import "testing"

func TestLower(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Harvard University", "harvard university"},
		{"Université de Montréal", "universite de montreal"},
		{"ZÜRICH", "zurich"},
		{"São Paulo", "sao paulo"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Lower(tt.in); got != tt.want {
				t.Errorf("Lower(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAlnum(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"california, los angeles", "california los angeles"},
		{"texas a&m", "texas am"},
		{"st. john's", "st johns"},
		{"tab\there", "tab here"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Alnum(tt.in); got != tt.want {
				t.Errorf("Alnum(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John", "john"},
		{"O'Brien", "obrien"},
		{"José", "jose"},
		{"Mary Ann", "maryann"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Token(tt.in); got != tt.want {
				t.Errorf("Token(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
