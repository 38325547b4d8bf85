package analyzer

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare domain gets https scheme",
			input:    "example.com",
			expected: "https://example.com",
		},
		{
			name:     "absolute http URL unchanged",
			input:    "http://example.com",
			expected: "http://example.com",
		},
		{
			name:     "absolute https URL unchanged",
			input:    "https://example.com/path?q=1",
			expected: "https://example.com/path?q=1",
		},
		{
			name:     "domain with path gets scheme",
			input:    "bit.ly/xyz",
			expected: "https://bit.ly/xyz",
		},
		{
			name:     "host with port looks like a scheme and is prefixed",
			input:    "localhost:8080",
			expected: "https://localhost:8080",
		},
		{
			name:     "garbage passes through with prefix",
			input:    "not a url",
			expected: "https://not a url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "bare domain",
			input: "example.com",
			want:  true,
		},
		{
			name:  "absolute http URL",
			input: "http://example.com",
			want:  true,
		},
		{
			name:  "non-http scheme rejected",
			input: "ftp://example.com/file",
			want:  false,
		},
		{
			name:  "unparseable after prefixing",
			input: "http\n://bad",
			want:  false,
		},
		{
			name:  "oversized input rejected regardless of content",
			input: "https://example.com/" + strings.Repeat("a", MaxURLLength),
			want:  false,
		},
		{
			name:  "exactly at the length cap is admitted",
			input: "https://example.com/" + strings.Repeat("a", MaxURLLength-len("https://example.com/")),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
