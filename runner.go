package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/raushankrgupta/carma-scraper/config"
	"github.com/raushankrgupta/carma-scraper/models"
	"github.com/raushankrgupta/carma-scraper/scrapers"
	"github.com/raushankrgupta/carma-scraper/utils"
)

// run performs one scrape of cfg.URL. Fetch problems are only logged;
// the returned error is reserved for failing to write the output file.
func run(ctx context.Context, cfg config.Config, scraper scrapers.Scraper) error {
	listings, err := scraper.ScrapeListings(ctx, cfg.URL, cfg.Count)
	if err != nil {
		log.Println(err)
	}

	if len(listings) == 0 {
		log.Println("No data was scraped.")
		return nil
	}

	fmt.Println("Scraped Data:")
	for _, l := range listings {
		b, err := json.Marshal(l)
		if err != nil {
			log.Printf("Failed to print listing: %v", err)
			continue
		}
		fmt.Println(string(b))
	}

	if err := utils.WriteJSON(cfg.OutputFile, listings); err != nil {
		return err
	}
	log.Printf("Scraped data saved to %s", cfg.OutputFile)

	persist(ctx, cfg, listings, scraper.Downloaded())
	return nil
}

// persist mirrors the run to MongoDB and S3 when they are configured. Failures are logged only.
func persist(ctx context.Context, cfg config.Config, listings []models.Listing, downloaded map[string]string) {
	if cfg.MongoURI != "" {
		client, err := utils.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Printf("Skipping MongoDB: %v", err)
		} else {
			coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
			runID, err := utils.SaveListings(ctx, coll, listings, cfg.URL)
			if err != nil {
				log.Printf("Failed to save listings to MongoDB: %v", err)
			} else {
				log.Printf("Saved %d listings to MongoDB (run %s)", len(listings), runID)
			}
			if err := client.Disconnect(ctx); err != nil {
				log.Printf("Failed to disconnect from MongoDB: %v", err)
			}
		}
	}

	if cfg.AWSBucketName != "" {
		mirror, err := utils.NewS3Mirror(ctx, cfg)
		if err != nil {
			log.Printf("Skipping S3: %v", err)
			return
		}
		paths := append(downloadedImagePaths(listings, downloaded), cfg.OutputFile)
		uploaded := mirror.UploadAll(ctx, paths)
		log.Printf("Uploaded %d/%d files to s3://%s", uploaded, len(paths), cfg.AWSBucketName)
	}
}

// downloadedImagePaths lists, in listing order, the images this run actually saved
func downloadedImagePaths(listings []models.Listing, downloaded map[string]string) []string {
	var paths []string
	for _, l := range listings {
		if l.ImageFile == nil {
			continue
		}
		if p, ok := downloaded[*l.ImageFile]; ok {
			paths = append(paths, p)
		}
	}
	return paths
}
