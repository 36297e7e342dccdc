package fetchlib

import (
	"fmt"
	"net/http"
	"net/url"
)

// DefaultMaxRedirects is the maximum number of redirect hops a task
// follows before giving up. Matches Go's default http.Client behavior.
// A limit of 0 disables the bound, reproducing the legacy behavior of
// following arbitrarily long chains; a misconfigured or malicious server
// can then loop the client forever, so the bound should stay on.
const DefaultMaxRedirects = 10

// IsRedirect reports whether the status code is a redirect the engine
// follows. Only 301 and 302 are meaningfully interpreted; other 3xx
// codes are terminal statuses.
func IsRedirect(code int) bool {
	return code == http.StatusMovedPermanently || code == http.StatusFound
}

// ResolveRedirect resolves the Location header of a redirect response
// against the URL the response came from, yielding the absolute URL of
// the next hop.
func ResolveRedirect(current string, header http.Header) (string, error) {
	loc := header.Get("Location")
	if loc == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingLocation, current)
	}
	base, err := url.Parse(current)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(loc)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
