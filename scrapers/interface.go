package scrapers

import (
	"context"

	"github.com/raushankrgupta/carma-scraper/models"
)

// Scraper defines the interface for all listing scrapers
type Scraper interface {
	// CanScrape checks if the scraper can handle the given URL
	CanScrape(url string) bool
	// ScrapeListings fetches the page and returns up to limit listings in document order
	ScrapeListings(ctx context.Context, url string, limit int) ([]models.Listing, error)
	// Downloaded maps image file name -> local path for images saved by the last scrape
	Downloaded() map[string]string
}
