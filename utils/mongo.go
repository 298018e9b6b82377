package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/raushankrgupta/carma-scraper/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens and pings a MongoDB connection
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return client, nil
}

// NewListingRecords tags listings from one run with their position and source
func NewListingRecords(listings []models.Listing, runID, sourceURL string, scrapedAt time.Time) []models.ListingRecord {
	records := make([]models.ListingRecord, 0, len(listings))
	for i, l := range listings {
		records = append(records, models.ListingRecord{
			Listing:   l,
			RunID:     runID,
			SourceURL: sourceURL,
			Position:  i + 1,
			ScrapedAt: scrapedAt,
		})
	}
	return records
}

// SaveListings inserts one document per listing into coll and returns the run id used
func SaveListings(ctx context.Context, coll *mongo.Collection, listings []models.Listing, sourceURL string) (string, error) {
	runID := primitive.NewObjectID().Hex()
	if len(listings) == 0 {
		return runID, nil
	}

	records := NewListingRecords(listings, runID, sourceURL, time.Now().UTC())
	docs := make([]interface{}, len(records))
	for i := range records {
		docs[i] = records[i]
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return "", fmt.Errorf("failed to insert listings: %w", err)
	}
	return runID, nil
}
