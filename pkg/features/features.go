// Package features derives boolean lexical and structural signals from a
// normalized URL. Each signal is computed independently; one failing check
// never suppresses the others.
package features

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// Feature names present in a Set. Domain-derived features are absent when
// the URL has no extractable host, and callers must treat absent as false.
const (
	SuspiciousTLD      = "has_suspicious_tld"
	DashInDomain       = "has_dash_in_domain"
	MultipleSubdomains = "has_multiple_subdomains"
	IPAddress          = "has_ip_address"
	AtSymbol           = "has_at_symbol"
	DoubleSlash        = "has_double_slash"
)

// Set maps feature names to whether the signal fired.
type Set map[string]bool

// Has reports whether a feature fired, treating absent keys as false.
func (s Set) Has(name string) bool { return s[name] }

// suspiciousTLDs lists top-level domains disproportionately represented in
// phishing campaigns. Process-wide constant, loaded once.
var suspiciousTLDs = map[string]bool{
	"xyz":    true,
	"top":    true,
	"club":   true,
	"online": true,
	"site":   true,
	"info":   true,
	"biz":    true,
	"tk":     true,
	"ml":     true,
	"ga":     true,
	"cf":     true,
	"gq":     true,
	"click":  true,
	"loan":   true,
	"work":   true,
	"rest":   true,
}

// schemePrefixLen is the number of leading characters skipped before looking
// for an embedded "//", long enough to cover the "https://" prefix.
const schemePrefixLen = 8

// Extract computes the feature set for a normalized URL.
func Extract(normalized string) Set {
	set := make(Set, 6)

	// The IP check deliberately runs over the full URL text rather than the
	// parsed host; a bare literal IP only ever parses as a whole string.
	set[IPAddress] = net.ParseIP(normalized) != nil
	set[AtSymbol] = strings.Contains(normalized, "@")
	set[DoubleSlash] = len(normalized) > schemePrefixLen &&
		strings.Contains(normalized[schemePrefixLen:], "//")

	host := CanonicalHost(normalized)
	if host == "" {
		// No extractable domain: the domain-derived keys stay absent.
		return set
	}

	labels := strings.Split(host, ".")
	if len(labels) > 1 {
		set[SuspiciousTLD] = suspiciousTLDs[labels[len(labels)-1]]
	}

	set[DashInDomain] = strings.Contains(registrableDomain(host), "-")
	set[MultipleSubdomains] = strings.Count(host, ".") > 2

	return set
}

// CanonicalHost extracts the lowercased, IDNA-ASCII form of the URL's host,
// so unicode domains are judged on their wire representation. Returns ""
// when the URL has no host.
func CanonicalHost(normalized string) string {
	u, err := url.Parse(normalized)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}

	if ascii, err := idna.Lookup.ToASCII(host); err == nil && ascii != "" {
		host = ascii
	}

	return host
}

// registrableDomain resolves the eTLD+1 for a host, falling back to the host
// itself when the public-suffix lookup fails (e.g. IP literals).
func registrableDomain(host string) string {
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}

	return domain
}
