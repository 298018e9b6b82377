package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing represents the fields scraped from a single product card.
// Every field is nullable: a card missing an element serializes that field as null.
type Listing struct {
	ImageURL      *string `json:"image_url" bson:"image_url"`
	ImageFile     *string `json:"image_file" bson:"image_file"` // card_image_<position>.jpg
	Title         *string `json:"title" bson:"title"`
	Variant       *string `json:"variant" bson:"variant"`
	Distance      *string `json:"distance" bson:"distance"`
	Transmission  *string `json:"transmission" bson:"transmission"`
	Price         *string `json:"price" bson:"price"`
	RepaymentInfo *string `json:"repayment_info" bson:"repayment_info"`
}

// ListingRecord is a Listing as persisted to MongoDB for one run
type ListingRecord struct {
	Listing `bson:",inline"`

	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RunID     string             `bson:"run_id" json:"run_id"`
	SourceURL string             `bson:"source_url" json:"source_url"`
	Position  int                `bson:"position" json:"position"` // 1-based
	ScrapedAt time.Time          `bson:"scraped_at" json:"scraped_at"`
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// Deref returns the pointed-to string or "" for nil
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
