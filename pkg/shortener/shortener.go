// Package shortener detects hosts belonging to known link-shortening
// services via a static membership test. No network lookups are performed.
package shortener

import (
	"strings"

	"github.com/linkvet/linkvet/pkg/features"
)

// knownHosts lists well-known URL shortening services. Process-wide
// constant; a match means the destination of the link is obscured.
var knownHosts = map[string]bool{
	"bit.ly":            true,
	"tinyurl.com":       true,
	"goo.gl":            true,
	"t.co":              true,
	"ow.ly":             true,
	"is.gd":             true,
	"buff.ly":           true,
	"adf.ly":            true,
	"bit.do":            true,
	"mcaf.ee":           true,
	"su.pr":             true,
	"rebrand.ly":        true,
	"tiny.cc":           true,
	"shorte.st":         true,
	"cutt.ly":           true,
	"t.ly":              true,
	"v.gd":              true,
	"qr.ae":             true,
	"bl.ink":            true,
	"snip.ly":           true,
	"lnkd.in":           true,
	"db.tt":             true,
	"soo.gd":            true,
	"clicky.me":         true,
	"budurl.com":        true,
	"bc.vc":             true,
	"ity.im":            true,
	"q.gs":              true,
	"po.st":             true,
	"bee.pw":            true,
	"x.co":              true,
	"prettylinkpro.com": true,
	"scrnch.me":         true,
	"filoops.info":      true,
	"vzturl.com":        true,
	"qr.net":            true,
	"1url.com":          true,
	"tweezr.com":        true,
	"u.to":              true,
	"j.mp":              true,
	"cli.gs":            true,
	"yfrog.com":         true,
	"migre.me":          true,
	"ff.im":             true,
	"tiny.pl":           true,
	"url4.eu":           true,
	"tr.im":             true,
	"twit.ac":           true,
	"zz.gd":             true,
	"short.to":          true,
	"budurl.me":         true,
	"ping.fm":           true,
	"shorturl.at":       true,
	"rb.gy":             true,
	"tny.im":            true,
	"shorturl.com":      true,
}

// IsKnown reports whether the normalized URL's host belongs to a known
// shortener service.
func IsKnown(normalized string) bool {
	return IsKnownHost(features.CanonicalHost(normalized))
}

// IsKnownHost reports whether a canonical (lowercase, ASCII) host belongs to
// a known shortener service. Subdomains of a shortener match too, but only
// on a full-label suffix: "sub.bit.ly" matches, "notbit.ly" does not.
func IsKnownHost(host string) bool {
	if host == "" {
		return false
	}

	if knownHosts[host] {
		return true
	}

	for service := range knownHosts {
		if strings.HasSuffix(host, "."+service) {
			return true
		}
	}

	return false
}
