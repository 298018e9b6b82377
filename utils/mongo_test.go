package utils

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/raushankrgupta/carma-scraper/models"
)

func TestNewListingRecords(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	listings := []models.Listing{
		{Title: models.StringPtr("first")},
		{Title: models.StringPtr("second")},
	}

	got := NewListingRecords(listings, "run-1", "https://carma.com.au/", now)

	want := []models.ListingRecord{
		{Listing: listings[0], RunID: "run-1", SourceURL: "https://carma.com.au/", Position: 1, ScrapedAt: now},
		{Listing: listings[1], RunID: "run-1", SourceURL: "https://carma.com.au/", Position: 2, ScrapedAt: now},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewListingRecords() mismatch (-want +got):\n%s", diff)
	}
}
