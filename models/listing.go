package models

// Placeholder is written in place of any optional field whose lookup failed.
const Placeholder = "N/A"

// Listing holds the extracted fields for one property card.
// All values are kept as the raw text shown on the page.
type Listing struct {
	Status  string
	Price   string
	Beds    string
	Baths   string
	Sqft    string
	LotSize string
	Address string
	URL     string
}

// FieldNames returns the CSV column names in first-seen field order.
func FieldNames() []string {
	return []string{"Property Status", "Price", "Bed", "Bath", "Sqft", "Lot Size", "Address", "Link"}
}

// Row returns the listing's values in the same order as FieldNames.
func (l Listing) Row() []string {
	return []string{l.Status, l.Price, l.Beds, l.Baths, l.Sqft, l.LotSize, l.Address, l.URL}
}
