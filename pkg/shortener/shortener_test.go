package shortener

import "testing"

func TestIsKnownHost(t *testing.T) {
	tests := []struct {
		name string
		host string
		want bool
	}{
		{name: "exact match", host: "bit.ly", want: true},
		{name: "subdomain of a shortener", host: "sub.bit.ly", want: true},
		{name: "deep subdomain of a shortener", host: "a.b.tinyurl.com", want: true},
		{name: "bare substring must not match", host: "notbit.ly", want: false},
		{name: "unrelated host", host: "example.com", want: false},
		{name: "empty host", host: "", want: false},
		{name: "another exact entry", host: "t.co", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKnownHost(tt.host); got != tt.want {
				t.Errorf("IsKnownHost(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestIsKnown(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "shortener URL", url: "https://bit.ly/3xyzzy", want: true},
		{name: "shortener with port", url: "https://bit.ly:443/x", want: true},
		{name: "uppercase host", url: "https://BIT.LY/x", want: true},
		{name: "ordinary URL", url: "https://example.com/bit.ly", want: false},
		{name: "no host", url: "https://", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKnown(tt.url); got != tt.want {
				t.Errorf("IsKnown(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}
