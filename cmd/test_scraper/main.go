package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/raushankrgupta/carma-scraper/config"
	"github.com/raushankrgupta/carma-scraper/scrapers/carma"
)

// Prints what the card selectors pick up on live pages, without downloading images.
func main() {
	cfg := config.LoadConfig()

	urls := []string{
		"https://carma.com.au/",
		"https://carma.com.au/buy/cars",
	}

	s := carma.NewCarmaScraper(cfg)
	for _, u := range urls {
		fmt.Printf("Testing URL: %s\n", u)

		doc, err := s.FetchDocument(context.Background(), u)
		if err != nil {
			log.Printf("Failed to fetch %s: %v\n", u, err)
			continue
		}

		listings, jobs := carma.ParseListings(doc, cfg.Count)
		b, _ := json.MarshalIndent(listings, "", "  ")
		fmt.Printf("Listings: %s\n", string(b))
		fmt.Printf("Images to download: %d\n", len(jobs))
		fmt.Println("--------------------------------------------------")
	}
}
