package scrapers

import (
	"fmt"

	"github.com/raushankrgupta/carma-scraper/config"
	"github.com/raushankrgupta/carma-scraper/scrapers/carma"
)

// GetScraper returns the scraper registered for the URL
func GetScraper(url string, cfg config.Config) (Scraper, error) {
	// Register scrapers here
	scrapers := []Scraper{
		carma.NewCarmaScraper(cfg),
	}

	for _, s := range scrapers {
		if s.CanScrape(url) {
			return s, nil
		}
	}

	return nil, fmt.Errorf("no scraper found for url: %s", url)
}
