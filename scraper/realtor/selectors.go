package realtor

// CSS selectors for the Realtor.com search results page.
// Centralised so a markup change is a one-file fix.
const (
	// ListContainerSelector marks the results page as rendered.
	ListContainerSelector = `section[class*="PropertiesList_propertiesContainer"]`

	// CardSelector matches one listing card.
	CardSelector = `div[data-search-rank]`

	// Per-card field selectors, applied inside a single card.
	LinkSelector    = `div[class*="card-content"] a`
	StatusSelector  = `div[data-testid="card-description"] > div`
	PriceSelector   = `div[data-testid="card-price"] span`
	BedsSelector    = `ul li[data-testid="property-meta-beds"] span`
	BathsSelector   = `ul li[data-testid="property-meta-baths"] span`
	SqftSelector    = `ul li[data-testid="property-meta-sqft"] span`
	LotSizeSelector = `ul li[data-testid="property-meta-lot-size"] span`
	AddressSelector = `div[class*="card-address"]`
)
