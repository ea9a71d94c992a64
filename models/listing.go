package models

import "time"

// ListingSummary is one property advertisement scraped from the agency
// index page. URL is the canonical detail-page link and serves as the
// identity key; Price keeps the raw display text (e.g. "€ 1.300").
type ListingSummary struct {
	URL   string `json:"url"`
	Price string `json:"price"`
}

// StoredListing is a ListingSummary as persisted, together with the
// timestamp of the scan that last observed it. ScrapedAt is used for
// display ordering only.
type StoredListing struct {
	URL       string    `json:"url"`
	Price     string    `json:"price"`
	ScrapedAt time.Time `json:"scrapedAt"`
}

// KeyValue is one labelled entry from a property detail page, used for
// both the features and the costs sections.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PropertyDetail holds the structured fields extracted from a single
// property detail page. Scalar fields degrade to "N/A" when no selector
// strategy matches; collections stay empty but are never null in JSON.
type PropertyDetail struct {
	Price         string     `json:"price"`
	Address       string     `json:"address"`
	Surface       string     `json:"surface"`
	Description   string     `json:"description"`
	Features      []KeyValue `json:"features"`
	OtherFeatures []string   `json:"otherFeatures"`
	Costs         []KeyValue `json:"costs"`
}
