package base

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/carma-scraper/config"
)

// BaseScraper handles common fetching logic for site scrapers
type BaseScraper struct {
	Client           *http.Client
	UserAgent        string
	FetchMode        string
	ChromeDriverPath string
}

// NewBaseScraper creates a new BaseScraper instance from the run configuration
func NewBaseScraper(cfg config.Config) *BaseScraper {
	return &BaseScraper{
		Client:           NewHTTPClient(cfg.Timeout),
		UserAgent:        cfg.UserAgent,
		FetchMode:        cfg.FetchMode,
		ChromeDriverPath: cfg.ChromeDriverPath,
	}
}

// NewHTTPClient returns the client shared by page fetches and image downloads
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ForceAttemptHTTP2:     false,
			TLSNextProto:          make(map[string]func(string, *tls.Conn) http.RoundTripper),
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// FetchDocument fetches the URL once using the configured strategy.
// There is no fallback between strategies.
func (b *BaseScraper) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	switch b.FetchMode {
	case "", config.FetchModeHTTP:
		return b.FetchDocumentHTTP(ctx, url)
	case config.FetchModeChromeDP:
		log.Printf("[BaseScraper] Rendering with ChromeDP: %s", url)
		return b.FetchDocumentChromeDP(ctx, url)
	case config.FetchModeSelenium:
		log.Printf("[BaseScraper] Rendering with Selenium: %s", url)
		return b.FetchDocumentSelenium(ctx, url)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s", b.FetchMode)
	}
}

// FetchDocumentHTTP fetches the URL and returns a GoQuery document via standard HTTP
func (b *BaseScraper) FetchDocumentHTTP(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	// Some listing sites reject requests without a browser User-Agent
	SetBrowserHeaders(req, b.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")

	res, err := b.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("status code error: %s", res.Status)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, err
	}
	// Lets callers resolve relative links found in the markup
	doc.Url = res.Request.URL

	return doc, nil
}

// SetBrowserHeaders sets the headers that make a request look like it came from a desktop browser
func SetBrowserHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}
