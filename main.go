package main

import (
	"context"
	"log"

	"github.com/raushankrgupta/carma-scraper/config"
	"github.com/raushankrgupta/carma-scraper/scrapers"
)

func main() {
	cfg := config.LoadConfig()

	scraper, err := scrapers.GetScraper(cfg.URL, cfg)
	if err != nil {
		log.Fatalf("Failed to get scraper for %s: %v", cfg.URL, err)
	}

	if err := run(context.Background(), cfg, scraper); err != nil {
		log.Fatalf("Failed to save scraped data: %v", err)
	}
}
