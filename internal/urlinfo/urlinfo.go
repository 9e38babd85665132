// Package urlinfo derives display metadata from page URLs.
// All derivations fail soft: an unparseable URL yields a fallback
// value, never an error.
package urlinfo

import (
	"net/url"
	"strings"
)

// faviconEndpoint serves best-effort page icons keyed by origin.
const faviconEndpoint = "https://www.google.com/s2/favicons"

// Domain returns the bare hostname of a page URL with any leading
// "www." stripped. Invalid URLs return the raw input unchanged.
func Domain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// FaviconURL returns a favicon-service URL for the page's origin, or
// the empty string when the URL cannot be parsed.
func FaviconURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	origin := u.Scheme + "://" + u.Host
	return faviconEndpoint + "?domain=" + url.QueryEscape(origin) + "&sz=32"
}
