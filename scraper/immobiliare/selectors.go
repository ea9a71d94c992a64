package immobiliare

// Fixed targets for the agency's public pages. The site's markup is not
// under our control and has changed across revisions, so every detail
// field is resolved through a cascade of selectors tried newest-first.
const (
	// VendorURL is the agency listing index page that scans fetch.
	VendorURL = "https://www.immobiliare.it/agenzie-immobiliari/12328/nicoletta-zaggia-padova/"

	// ListingPathMarker distinguishes genuine property-detail links from
	// navigation and sponsored cards sharing the same container class.
	ListingPathMarker = "immobiliare.it/annunci/"

	// PropertyURLPrefix is required of any detail-page URL handed to the
	// detail endpoint.
	PropertyURLPrefix = "https://www.immobiliare.it/annunci/"

	// ListingCardSelector matches one listing card on the index page. The
	// headless fetcher also waits on it before reading rendered HTML.
	ListingCardSelector = "li.nd-list__item"

	titleLinkSelector = "a.in-listingCardTitle"

	cardPriceSpanSelector = "div.in-listingCardPrice span"
	cardPriceSelector     = "div.in-listingCardPrice"

	fieldMissing = "N/A"
)

var (
	priceSelectors = []string{
		`[data-testid="price-value"]`,
		".in-price__value",
		".im-priceDetail__price",
	}

	addressSelectors = []string{
		`[data-testid="address"]`,
		".in-location span",
	}

	surfaceSelectors = []string{
		`[data-testid="surface-value"]`,
		".ld-surfaceElement",
	}

	featureListSelectors = []string{
		`[data-testid="features"] dl.im-features__list`,
		"dl.in-features__list",
		"dl.nd-list--features",
	}

	otherFeatureSelectors = []string{
		`[data-testid="features-others"] .im-features__tag`,
		"li.ld-featuresBadges__badge span",
	}

	costHeadingWords = []string{"Costi", "Spese"}
)
