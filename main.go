package main

import (
	"os"
	"strconv"

	"github.com/crstnhllg/realtor-scraper/config"
	"github.com/crstnhllg/realtor-scraper/models"
	"github.com/crstnhllg/realtor-scraper/scraper/realtor"
	"github.com/crstnhllg/realtor-scraper/services"
	"github.com/crstnhllg/realtor-scraper/storage"
	"github.com/crstnhllg/realtor-scraper/utils"
)

func main() {
	cfg := config.Load()
	utils.SetDebug(cfg.Debug)

	if len(os.Args) > 1 {
		zipcode, err := strconv.Atoi(os.Args[1])
		if err != nil {
			utils.Error("Usage: %s [zipcode] — %q is not a valid ZIP code", os.Args[0], os.Args[1])
			os.Exit(1)
		}
		cfg.Zipcode = zipcode
	}

	utils.Info("Starting scraper for ZIP code: %d | pages=%d retries=%d",
		cfg.Zipcode, cfg.MaxPages, cfg.MaxRetries)

	scraper, err := realtor.NewScraper(cfg)
	if err != nil {
		utils.Error("Could not start scraper: %v", err)
		os.Exit(1)
	}

	listings := run(scraper)

	if len(listings) == 0 {
		utils.Warn("No data was scraped.")
		return
	}

	writer := storage.NewCSVWriter(cfg.CSVPath)
	if err := writer.Write(listings); err != nil {
		utils.Error("Failed to save CSV: %v", err)
	} else {
		utils.Success("Scraping complete. %d properties collected and saved to CSV.", len(listings))
	}

	if cfg.DatabaseURL != "" {
		saveToPostgres(cfg.DatabaseURL, listings)
	}

	services.PrintReport(services.GenerateReport(listings))
}

// run executes the page loop and guarantees the browser is released before
// any output is written, whatever happens during scraping.
func run(scraper *realtor.Scraper) []models.Listing {
	defer scraper.Close()
	return scraper.Run()
}

// saveToPostgres mirrors the CSV output into PostgreSQL. Failures here are
// logged only; the CSV on disk is already the run's result.
func saveToPostgres(databaseURL string, listings []models.Listing) {
	pgWriter, err := storage.NewPostgresWriter(databaseURL)
	if err != nil {
		utils.Error("Failed to connect PostgreSQL: %v", err)
		return
	}
	defer pgWriter.Close()

	if err := pgWriter.EnsureSchema(); err != nil {
		utils.Error("Failed to ensure PostgreSQL schema: %v", err)
		return
	}

	if err := pgWriter.WriteBatch(listings); err != nil {
		utils.Error("Failed to save listings to PostgreSQL: %v", err)
		return
	}

	utils.Success("Saved %d listings to PostgreSQL", len(listings))
}
