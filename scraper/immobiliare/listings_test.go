package immobiliare

import "testing"

const listingPageFixture = `<!DOCTYPE html>
<html><body>
<ul class="nd-list">
  <li class="nd-list__item">
    <a class="in-listingCardTitle" href="/annunci/12345/">Trilocale via Roma</a>
    <div class="in-listingCardPrice"><span>€ 1.300</span></div>
  </li>
  <li class="nd-list__item">
    <a class="in-listingCardTitle" href="https://www.immobiliare.it/annunci/67890/">Bilocale centro</a>
    <div class="in-listingCardPrice">€ 900</div>
  </li>
  <li class="nd-list__item">
    <a class="in-listingCardTitle" href="https://ads.example.com/sponsored">Sponsored card</a>
    <div class="in-listingCardPrice"><span>€ 2.000</span></div>
  </li>
  <li class="nd-list__item">
    <div class="in-listingCardPrice"><span>€ 750</span></div>
  </li>
</ul>
</body></html>`

func TestExtractListingsOrderAndFiltering(t *testing.T) {
	listings, err := ExtractListings(listingPageFixture, VendorURL)
	if err != nil {
		t.Fatalf("ExtractListings: %v", err)
	}

	// The sponsored card and the link-less card must be excluded; the
	// two genuine listings come back in document order.
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	if listings[0].URL != "https://www.immobiliare.it/annunci/12345/" {
		t.Errorf("listing 0 URL = %q; relative href not resolved against page origin", listings[0].URL)
	}
	if listings[0].Price != "€ 1.300" {
		t.Errorf("listing 0 price = %q; want %q", listings[0].Price, "€ 1.300")
	}

	if listings[1].URL != "https://www.immobiliare.it/annunci/67890/" {
		t.Errorf("listing 1 URL = %q; absolute href must pass through unchanged", listings[1].URL)
	}
	if listings[1].Price != "€ 900" {
		t.Errorf("listing 1 price = %q; want %q", listings[1].Price, "€ 900")
	}
}

func TestExtractListingsMissingPriceKeepsEntry(t *testing.T) {
	html := `<li class="nd-list__item">
		<a class="in-listingCardTitle" href="/annunci/1/">No price shown</a>
	</li>`

	listings, err := ExtractListings(html, VendorURL)
	if err != nil {
		t.Fatalf("ExtractListings: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("got %d listings, want 1; a missing price is not a reason to skip", len(listings))
	}
	if listings[0].Price != "" {
		t.Errorf("price = %q; want empty string", listings[0].Price)
	}
}

func TestExtractListingsKeepsDuplicates(t *testing.T) {
	html := `<li class="nd-list__item"><a class="in-listingCardTitle" href="/annunci/1/">A</a></li>
	<li class="nd-list__item"><a class="in-listingCardTitle" href="/annunci/1/">A again</a></li>`

	listings, err := ExtractListings(html, VendorURL)
	if err != nil {
		t.Fatalf("ExtractListings: %v", err)
	}
	// De-duplication is the scan pipeline's decision, not the extractor's.
	if len(listings) != 2 {
		t.Errorf("got %d listings, want 2", len(listings))
	}
}

func TestExtractListingsEmptyDocument(t *testing.T) {
	listings, err := ExtractListings("<html><body></body></html>", VendorURL)
	if err != nil {
		t.Fatalf("ExtractListings: %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("got %d listings, want 0", len(listings))
	}
}
