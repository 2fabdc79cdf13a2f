package realtor

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/crstnhllg/realtor-scraper/config"
	"github.com/crstnhllg/realtor-scraper/models"
	"github.com/crstnhllg/realtor-scraper/utils"
)

// Scraper owns the browser session and the accumulator of extracted
// listings. One instance, one Chrome process, one tab, pages visited
// strictly in sequence.
type Scraper struct {
	cfg *config.Config

	allocCtx    context.Context
	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc

	listings []models.Listing
}

func NewScraper(cfg *config.Config) (*Scraper, error) {
	utils.Info("Launching Chrome browser...")

	allocCtx, allocCancel := chromedp.NewExecAllocator(
		context.Background(),
		utils.StealthOpts(cfg.Headless)...,
	)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	utils.Success("Browser ready")
	return &Scraper{
		cfg:         cfg,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
	}, nil
}

// Close releases the tab and the browser process. Safe on every exit path;
// main defers it so the session never outlives the run.
func (s *Scraper) Close() {
	utils.Info("Closing browser...")
	s.tabCancel()
	s.allocCancel()
}

// PageURL builds the search URL for a ZIP code and result page.
func PageURL(baseURL string, zipcode, page int) string {
	return fmt.Sprintf("%s/%d/pg-%d", baseURL, zipcode, page)
}

// LoadPage navigates to the given results page, retrying up to
// cfg.MaxRetries times with a randomized delay before each attempt. The
// page counts as loaded once the properties-list container is present.
// Returns whether the page loaded; the caller decides whether to continue.
func (s *Scraper) LoadPage(page int) bool {
	url := PageURL(s.cfg.BaseURL, s.cfg.Zipcode, page)

	err := utils.Retry(s.cfg.MaxRetries, s.cfg.MinDelay, s.cfg.MaxDelay, func() error {
		ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.WaitTimeout)
		defer cancel()

		return chromedp.Run(ctx,
			chromedp.Navigate(url),
			utils.HideWebDriver(),
			chromedp.WaitReady(ListContainerSelector, chromedp.ByQuery),
		)
	})
	if err != nil {
		utils.Error("Loading page %d failed: %v", page, err)
		return false
	}

	return true
}

// ExtractListings reads every listing card on the current page and appends
// the successfully parsed ones to the accumulator. Cards are scrolled into
// view one at a time with a short randomized pause, then snapshotted and
// parsed from their HTML. A bad card is logged and skipped; this method
// never fails the run.
func (s *Scraper) ExtractListings(page int) {
	count, err := s.cardCount()
	if err != nil {
		utils.Debug("No properties found on page %d: %v", page, err)
		return
	}

	utils.Info("Scraping data for %d properties, page %d", count, page)

	for i := 0; i < count; i++ {
		cardHTML, err := s.snapshotCard(i)
		if err != nil {
			utils.Debug("Error fetching card %d: %v", i, err)
			continue
		}

		listing, err := parseCard(cardHTML)
		if err != nil {
			utils.Debug("Skipping card %d: %v", i, err)
			continue
		}

		s.listings = append(s.listings, listing)
	}
}

// Run walks result pages 1..MaxPages. A load failure ends the loop; data
// collected so far is kept and returned.
func (s *Scraper) Run() []models.Listing {
	for page := 1; page <= s.cfg.MaxPages; page++ {
		if !s.LoadPage(page) {
			break
		}
		s.ExtractListings(page)
	}
	return s.listings
}

func (s *Scraper) cardCount() (int, error) {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.WaitTimeout)
	defer cancel()

	var count int
	err := chromedp.Run(ctx, chromedp.Evaluate(
		fmt.Sprintf(`document.querySelectorAll(%q).length`, CardSelector),
		&count,
	))
	return count, err
}

// snapshotCard scrolls card i into view, pauses, and returns its outer HTML.
func (s *Scraper) snapshotCard(i int) (string, error) {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.WaitTimeout)
	defer cancel()

	scrollJS := fmt.Sprintf(`(() => {
		const el = document.querySelectorAll(%q)[%d];
		if (el) el.scrollIntoView({behavior: 'smooth', block: 'center'});
	})()`, CardSelector, i)

	if err := chromedp.Run(ctx, chromedp.Evaluate(scrollJS, nil)); err != nil {
		return "", fmt.Errorf("scroll card %d: %w", i, err)
	}

	utils.RandomDelay(s.cfg.MinScrollDelay, s.cfg.MaxScrollDelay)

	htmlJS := fmt.Sprintf(`(() => {
		const el = document.querySelectorAll(%q)[%d];
		return el ? el.outerHTML : '';
	})()`, CardSelector, i)

	var cardHTML string
	if err := chromedp.Run(ctx, chromedp.Evaluate(htmlJS, &cardHTML)); err != nil {
		return "", fmt.Errorf("read card %d: %w", i, err)
	}
	if cardHTML == "" {
		return "", fmt.Errorf("card %d not found", i)
	}

	return cardHTML, nil
}
