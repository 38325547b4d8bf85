package analyzer

import "net/url"

// MaxURLLength caps the size of raw input admitted for analysis.
const MaxURLLength = 2048

// Normalize canonicalizes a raw string into an absolute URL, supplying a
// default https scheme when the input does not already parse as one.
// Normalize never fails: garbage passes through as best-effort and is
// rejected by IsValid, not here.
func Normalize(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		return raw
	}

	return "https://" + raw
}

// IsValid is the single admission gate applied before any analysis runs.
// Input is rejected when it exceeds MaxURLLength or when normalization does
// not yield a parseable http or https URL.
func IsValid(raw string) bool {
	if len(raw) > MaxURLLength {
		return false
	}

	u, err := url.Parse(Normalize(raw))
	if err != nil {
		return false
	}

	return u.Scheme == "http" || u.Scheme == "https"
}
