package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"time"
)

// SitemapPaths lists the pages published in the site map.
var SitemapPaths = []string{"/", "/episodes", "/about", "/faq"}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// BuildSitemap renders the sitemap for the site's pages. A zero lastmod is
// omitted from every entry.
func BuildSitemap(base *url.URL, lastmod time.Time) ([]byte, error) {
	if base == nil || base.Host == "" {
		return nil, fmt.Errorf("sitemap base URL must be absolute")
	}

	var mod string
	if !lastmod.IsZero() {
		mod = lastmod.UTC().Format(time.DateOnly)
	}

	set := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range SitemapPaths {
		loc := *base
		loc.Path = p
		loc.RawQuery = ""
		loc.Fragment = ""
		set.URLs = append(set.URLs, sitemapURL{Loc: loc.String(), LastMod: mod})
	}

	output, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), output...), nil
}
