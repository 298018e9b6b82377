package carma

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/carma-scraper/config"
	"github.com/raushankrgupta/carma-scraper/models"
	"github.com/raushankrgupta/carma-scraper/scrapers/base"
	"github.com/raushankrgupta/carma-scraper/utils"
	"golang.org/x/net/html"
)

type CarmaScraper struct {
	*base.BaseScraper
	Downloader *utils.Downloader

	// image file name -> local path, for images saved by the last ScrapeListings call
	downloaded map[string]string
}

func NewCarmaScraper(cfg config.Config) *CarmaScraper {
	b := base.NewBaseScraper(cfg)
	return &CarmaScraper{
		BaseScraper: b,
		Downloader:  utils.NewDownloader(b.Client, cfg),
	}
}

func (s *CarmaScraper) CanScrape(url string) bool {
	return strings.Contains(url, "carma.com.au")
}

// ScrapeListings fetches the page once and returns up to limit cards in document order.
// Every card with an image source gets its photo downloaded before the listings are returned.
func (s *CarmaScraper) ScrapeListings(ctx context.Context, url string, limit int) ([]models.Listing, error) {
	s.downloaded = map[string]string{}

	doc, err := s.FetchDocument(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", url, err)
	}

	listings, jobs := ParseListings(doc, limit)
	if len(listings) == 0 {
		return listings, nil
	}

	// img src may be relative to the page
	for i := range jobs {
		jobs[i].URL = utils.ResolveURL(doc.Url, jobs[i].URL)
	}
	s.downloaded = s.Downloader.DownloadImages(ctx, jobs)

	return listings, nil
}

// Downloaded returns the images written by the last ScrapeListings call.
// Files left over from earlier runs are never included.
func (s *CarmaScraper) Downloaded() map[string]string {
	return s.downloaded
}

// ParseListings extracts the first limit cards from doc without touching the network.
// It also returns one download job per card that carries an image source.
func ParseListings(doc *goquery.Document, limit int) ([]models.Listing, []utils.ImageJob) {
	listings := []models.Listing{}
	var jobs []utils.ImageJob

	cards := doc.Find(CardSelector)
	if cards.Length() == 0 {
		log.Println("[Carma] No product cards found.")
		return listings, nil
	}
	if limit <= 0 {
		return listings, nil
	}
	if cards.Length() > limit {
		cards = cards.Slice(0, limit)
	}

	cards.Each(func(i int, card *goquery.Selection) {
		position := i + 1
		listing := parseCard(card)

		if src, ok := card.Find(ImageSelector).First().Attr("src"); ok {
			filename := fmt.Sprintf(ImageFilePattern, position)
			listing.ImageURL = models.StringPtr(src)
			listing.ImageFile = models.StringPtr(filename)
			jobs = append(jobs, utils.ImageJob{URL: src, Filename: filename})
		}

		listings = append(listings, listing)
	})

	return listings, jobs
}

func parseCard(card *goquery.Selection) models.Listing {
	values := make(map[string]*string, len(Selectors))
	for _, field := range Selectors {
		values[field.Name] = fieldText(card, field)
	}

	return models.Listing{
		Title:         values["title"],
		Variant:       values["variant"],
		Distance:      values["distance"],
		Transmission:  values["transmission"],
		Price:         values["price"],
		RepaymentInfo: values["repayment_info"],
	}
}

// fieldText returns nil when the card has no element for the field
func fieldText(card *goquery.Selection, field Field) *string {
	el := card.Find(field.Selector()).First()
	if el.Length() == 0 {
		return nil
	}
	text := strippedText(el)
	return &text
}

// strippedText joins every descendant text node with surrounding whitespace removed,
// so "<b> 12 </b> km" reads "12km".
func strippedText(sel *goquery.Selection) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return sb.String()
}
