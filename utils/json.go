package utils

import (
	"encoding/json"
	"os"

	"github.com/raushankrgupta/carma-scraper/models"
)

// WriteJSON writes listings to filename as an indented JSON array, replacing any previous file.
// Non-ASCII text and HTML characters are written as-is.
func WriteJSON(filename string, listings []models.Listing) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if listings == nil {
		listings = []models.Listing{}
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(listings); err != nil {
		return err
	}

	return f.Close()
}
