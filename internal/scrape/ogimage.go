// Package scrape fetches a product page and extracts its Open Graph image,
// used to fill in an item's image when only a link was provided. Scraping is
// strictly best-effort: any failure yields an empty result, never an error.
package scrape

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	userAgent      = "Mozilla/5.0 (compatible; WishlistBot/1.0)"
	defaultTimeout = 5 * time.Second
	maxBodySize    = 2 << 20 // 2MB of HTML is plenty for the <head>
)

type Scraper struct {
	client  *http.Client
	timeout time.Duration
}

func New(client *http.Client, timeout time.Duration) *Scraper {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Scraper{client: client, timeout: timeout}
}

// OgImage returns the page's og:image URL, or "" when the page cannot be
// fetched or carries no such meta tag.
func (s *Scraper) OgImage(ctx context.Context, pageURL string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	return findOgImage(io.LimitReader(resp.Body, maxBodySize))
}

func findOgImage(r io.Reader) string {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "meta" || !hasAttr {
				continue
			}
			var property, content string
			for {
				key, val, more := z.TagAttr()
				switch string(key) {
				case "property":
					property = string(val)
				case "content":
					content = string(val)
				}
				if !more {
					break
				}
			}
			if property == "og:image" && strings.TrimSpace(content) != "" {
				return content
			}
		}
	}
}
