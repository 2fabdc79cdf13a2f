package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/crstnhllg/realtor-scraper/models"
)

// Report summarises one scrape run. Price stats only cover listings whose
// price text parses as a currency amount; "Contact for price" style values
// are counted but excluded from the stats.
type Report struct {
	TotalListings int
	ByStatus      map[string]int
	PricedCount   int
	AveragePrice  float64
	MinPrice      float64
	MaxPrice      float64
}

func GenerateReport(listings []models.Listing) Report {
	report := Report{
		TotalListings: len(listings),
		ByStatus:      make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	var (
		priceSum float64
		minPrice = math.MaxFloat64
		maxPrice = -1.0
	)

	for _, l := range listings {
		report.ByStatus[normalizeStatus(l.Status)]++

		price, ok := ParsePrice(l.Price)
		if !ok {
			continue
		}
		report.PricedCount++
		priceSum += price
		if price < minPrice {
			minPrice = price
		}
		if price > maxPrice {
			maxPrice = price
		}
	}

	if report.PricedCount > 0 {
		report.AveragePrice = priceSum / float64(report.PricedCount)
		report.MinPrice = minPrice
		report.MaxPrice = maxPrice
	}

	return report
}

func PrintReport(report Report) {
	fmt.Println()
	fmt.Println("┌───────────────────────────────┬──────────────────────────────┐")
	fmt.Printf("│ %-29s │ %-28d │\n", "Total Listings", report.TotalListings)
	fmt.Printf("│ %-29s │ %-28d │\n", "Listings With Price", report.PricedCount)
	fmt.Printf("│ %-29s │ %-28.0f │\n", "Average Price", report.AveragePrice)
	fmt.Printf("│ %-29s │ %-28.0f │\n", "Minimum Price", report.MinPrice)
	fmt.Printf("│ %-29s │ %-28.0f │\n", "Maximum Price", report.MaxPrice)
	fmt.Println("└───────────────────────────────┴──────────────────────────────┘")

	fmt.Println()
	fmt.Println("┌──────────────────────────────────────────────┬───────────────┐")
	fmt.Println("│ Listings per Status                          │ Count         │")
	fmt.Println("├──────────────────────────────────────────────┼───────────────┤")
	for _, status := range sortedStatuses(report.ByStatus) {
		fmt.Printf("│ %-44s │ %-13d │\n", status, report.ByStatus[status])
	}
	fmt.Println("└──────────────────────────────────────────────┴───────────────┘")
}

// ParsePrice reads a currency amount out of text like "$525,000" or
// "From $1,200,000". Returns false when no usable number is present.
func ParsePrice(raw string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)

	for _, part := range strings.Fields(cleaned) {
		v, err := strconv.ParseFloat(part, 64)
		if err == nil && v > 0 {
			return v, true
		}
	}
	return 0, false
}

func normalizeStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return "Unknown"
	}
	return status
}

func sortedStatuses(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
