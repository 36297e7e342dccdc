// Package scrape harvests downloadable links from an HTML page.
package scrape

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// LinkKind distinguishes what kind of reference a link came from.
type LinkKind int

const (
	// KindHref is an anchor href target.
	KindHref LinkKind = iota
	// KindSrc is an embedded resource (img/script/source src).
	KindSrc
)

// Link is one harvested reference, resolved to an absolute URL.
type Link struct {
	URL  string
	Kind LinkKind
}

// ExtractLinks tokenizes the HTML document in r and returns every
// http/https link found in a[href] and img/script/source[src]
// attributes, resolved against base and de-duplicated in document
// order. Parse errors short of EOF abort with the tokenizer error.
func ExtractLinks(r io.Reader, base *url.URL) ([]Link, error) {
	z := html.NewTokenizer(r)

	var links []Link
	seen := make(map[string]struct{})

	add := func(ref string, kind LinkKind) {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return
		}
		u, err := url.Parse(ref)
		if err != nil {
			return
		}
		abs := base.ResolveReference(u)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return
		}
		abs.Fragment = ""
		s := abs.String()
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		links = append(links, Link{URL: s, Kind: kind})
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return links, nil
			}
			return links, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if !hasAttr {
				continue
			}
			tag := string(name)
			for {
				key, val, more := z.TagAttr()
				switch {
				case tag == "a" && string(key) == "href":
					add(string(val), KindHref)
				case (tag == "img" || tag == "script" || tag == "source") && string(key) == "src":
					add(string(val), KindSrc)
				}
				if !more {
					break
				}
			}
		}
	}
}
