package immobiliare

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"immo-scanner/models"
)

// ExtractListings parses the agency index page into listing summaries,
// in document order. Cards without a title link are empty placeholders
// and are skipped; cards whose link does not point at a property detail
// page are filtered out. Duplicate URLs are passed through untouched;
// the scan pipeline decides what to do with them.
func ExtractListings(html, pageURL string) ([]models.ListingSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse listing page: %w", err)
	}

	origin := pageOrigin(pageURL)

	var listings []models.ListingSummary
	doc.Find(ListingCardSelector).Each(func(_ int, card *goquery.Selection) {
		link := card.Find(titleLinkSelector).First()
		if link.Length() == 0 {
			return
		}

		href, ok := link.Attr("href")
		if !ok || href == "" {
			return
		}

		price := strings.TrimSpace(card.Find(cardPriceSpanSelector).First().Text())
		if price == "" {
			price = strings.TrimSpace(card.Find(cardPriceSelector).First().Text())
		}

		if strings.HasPrefix(href, "/") {
			href = origin + href
		}
		if !strings.Contains(href, ListingPathMarker) {
			return
		}

		listings = append(listings, models.ListingSummary{URL: href, Price: price})
	})

	return listings, nil
}

func pageOrigin(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
