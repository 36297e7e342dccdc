package scrape

import (
	"net/url"
	"strings"
	"testing"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestExtractLinks(t *testing.T) {
	base := mustParse(t, "http://example.com/page/")

	t.Run("anchors and embedded resources", func(t *testing.T) {
		doc := `<html><body>
			<a href="http://example.com/file.zip">file</a>
			<a href="relative/doc.pdf">doc</a>
			<img src="/images/pic.png">
			<script src="https://cdn.example.com/app.js"></script>
			<source src="clip.mp4">
		</body></html>`

		links, err := ExtractLinks(strings.NewReader(doc), base)
		if err != nil {
			t.Fatalf("ExtractLinks: %v", err)
		}
		want := []Link{
			{URL: "http://example.com/file.zip", Kind: KindHref},
			{URL: "http://example.com/page/relative/doc.pdf", Kind: KindHref},
			{URL: "http://example.com/images/pic.png", Kind: KindSrc},
			{URL: "https://cdn.example.com/app.js", Kind: KindSrc},
			{URL: "http://example.com/page/clip.mp4", Kind: KindSrc},
		}
		if len(links) != len(want) {
			t.Fatalf("links = %+v", links)
		}
		for i := range want {
			if links[i] != want[i] {
				t.Errorf("links[%d] = %+v, want %+v", i, links[i], want[i])
			}
		}
	})

	t.Run("non-http schemes excluded", func(t *testing.T) {
		doc := `<a href="mailto:x@example.com">mail</a>
			<a href="ftp://example.com/f">ftp</a>
			<a href="javascript:void(0)">js</a>
			<a href="http://example.com/keep">keep</a>`

		links, err := ExtractLinks(strings.NewReader(doc), base)
		if err != nil {
			t.Fatalf("ExtractLinks: %v", err)
		}
		if len(links) != 1 || links[0].URL != "http://example.com/keep" {
			t.Errorf("links = %+v", links)
		}
	})

	t.Run("duplicates and fragments collapse", func(t *testing.T) {
		doc := `<a href="http://example.com/a">1</a>
			<a href="http://example.com/a">2</a>
			<a href="http://example.com/a#section">3</a>`

		links, err := ExtractLinks(strings.NewReader(doc), base)
		if err != nil {
			t.Fatalf("ExtractLinks: %v", err)
		}
		if len(links) != 1 {
			t.Errorf("links = %+v, want single deduped entry", links)
		}
	})

	t.Run("empty and whitespace hrefs ignored", func(t *testing.T) {
		doc := `<a href="">x</a><a href="   ">y</a><a>no href</a>`
		links, err := ExtractLinks(strings.NewReader(doc), base)
		if err != nil {
			t.Fatalf("ExtractLinks: %v", err)
		}
		if len(links) != 0 {
			t.Errorf("links = %+v, want none", links)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		links, err := ExtractLinks(strings.NewReader(""), base)
		if err != nil {
			t.Fatalf("ExtractLinks: %v", err)
		}
		if len(links) != 0 {
			t.Errorf("links = %+v", links)
		}
	})
}
