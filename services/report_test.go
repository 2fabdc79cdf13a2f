package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crstnhllg/realtor-scraper/models"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"$525,000", 525000, true},
		{"$1,249,900", 1249900, true},
		{"From $310,000", 310000, true},
		{"Contact for price", 0, false},
		{"", 0, false},
		{models.Placeholder, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParsePrice(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateReportEmpty(t *testing.T) {
	report := GenerateReport(nil)

	assert.Equal(t, 0, report.TotalListings)
	assert.Equal(t, 0, report.PricedCount)
	assert.Empty(t, report.ByStatus)
}

func TestGenerateReport(t *testing.T) {
	listings := []models.Listing{
		{Status: "House for sale", Price: "$400,000"},
		{Status: "House for sale", Price: "$600,000"},
		{Status: "Land for sale", Price: "Contact for price"},
		{Status: "", Price: "$200,000"},
	}

	report := GenerateReport(listings)

	assert.Equal(t, 4, report.TotalListings)
	assert.Equal(t, 3, report.PricedCount)
	assert.Equal(t, 2, report.ByStatus["House for sale"])
	assert.Equal(t, 1, report.ByStatus["Land for sale"])
	assert.Equal(t, 1, report.ByStatus["Unknown"])
	assert.InDelta(t, 400000, report.AveragePrice, 0.01)
	assert.Equal(t, 200000.0, report.MinPrice)
	assert.Equal(t, 600000.0, report.MaxPrice)
}
