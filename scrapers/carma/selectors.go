package carma

// CardSelector matches the root element of every product card
const CardSelector = "div.ProductCard_root__mO63j"

// ImageSelector matches the card photo, looked up inside each card
const ImageSelector = "img"

// ImageFilePattern names downloaded photos by 1-based card position
const ImageFilePattern = "card_image_%d.jpg"

// Field names a text field of a card and the data-testid that carries it
type Field struct {
	Name   string
	TestID string
}

// Selectors lists every text field in extraction order.
// Markup changes on the site should only need edits here.
var Selectors = []Field{
	{Name: "title", TestID: "ProductCard-component-titleText"},
	{Name: "variant", TestID: "ProductCard-component-variantText"},
	{Name: "distance", TestID: "ProductCard-component-distanceText"},
	{Name: "transmission", TestID: "ProductCard-component-transmissionText"},
	{Name: "price", TestID: "ProductCard-component-priceText"},
	{Name: "repayment_info", TestID: "ProductCard-component-repaymentText"},
}

// Selector returns the CSS selector for the field
func (f Field) Selector() string {
	return `[data-testid="` + f.TestID + `"]`
}
