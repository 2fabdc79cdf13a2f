package realtor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/crstnhllg/realtor-scraper/models"
)

const siteHost = "https://www.realtor.com"

// parseCard extracts one listing from a card's HTML snapshot.
//
// Status, price, address and link are required: a card missing any of them
// is rejected and the caller skips it. The meta fields (beds, baths, sqft,
// lot size) degrade to the placeholder when absent.
func parseCard(cardHTML string) (models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cardHTML))
	if err != nil {
		return models.Listing{}, fmt.Errorf("parse card html: %w", err)
	}

	link, ok := doc.Find(LinkSelector).First().Attr("href")
	if !ok || strings.TrimSpace(link) == "" {
		return models.Listing{}, fmt.Errorf("missing link")
	}

	status, err := requiredText(doc, StatusSelector, "status")
	if err != nil {
		return models.Listing{}, err
	}

	price, err := requiredText(doc, PriceSelector, "price")
	if err != nil {
		return models.Listing{}, err
	}

	address, err := requiredText(doc, AddressSelector, "address")
	if err != nil {
		return models.Listing{}, err
	}

	return models.Listing{
		Status:  status,
		Price:   price,
		Beds:    optionalText(doc, BedsSelector),
		Baths:   optionalText(doc, BathsSelector),
		Sqft:    optionalText(doc, SqftSelector),
		LotSize: optionalText(doc, LotSizeSelector),
		Address: address,
		URL:     absoluteURL(link),
	}, nil
}

func requiredText(doc *goquery.Document, selector, name string) (string, error) {
	text := cleanText(doc.Find(selector).First().Text())
	if text == "" {
		return "", fmt.Errorf("missing %s", name)
	}
	return text, nil
}

func optionalText(doc *goquery.Document, selector string) string {
	text := cleanText(doc.Find(selector).First().Text())
	if text == "" {
		return models.Placeholder
	}
	return text
}

// cleanText collapses runs of whitespace; card markup nests line breaks
// inside address and price nodes.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func absoluteURL(href string) string {
	if strings.HasPrefix(href, "/") {
		return siteHost + href
	}
	return href
}
