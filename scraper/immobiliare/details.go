package immobiliare

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"immo-scanner/models"
)

// ExtractDetail parses a property detail page into a structured record.
// Each field is resolved through its cascade of selector strategies;
// missing fields degrade to "N/A" (scalars) or stay empty (collections)
// rather than failing. The only error is structurally unparseable HTML.
func ExtractDetail(html string) (*models.PropertyDetail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse detail page: %w", err)
	}

	d := &models.PropertyDetail{
		Features:      []models.KeyValue{},
		OtherFeatures: []string{},
		Costs:         []models.KeyValue{},
	}

	d.Price = firstText(doc, priceSelectors)
	d.Address = firstText(doc, addressSelectors)
	d.Description = extractDescription(doc)
	d.Features = extractFeatures(doc)
	d.OtherFeatures = extractOtherFeatures(doc)
	d.Surface = extractSurface(doc, d.Features)
	d.Costs = extractCosts(doc)

	return d, nil
}

// firstText evaluates the selectors left to right and returns the first
// non-empty trimmed text, or "N/A" when every strategy comes up empty.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return fieldMissing
}

func extractDescription(doc *goquery.Document) string {
	container := doc.Find(".in-readAll").First()
	if container.Length() > 0 {
		text := strings.TrimSpace(container.ChildrenFiltered("div").First().Text())
		if text == "" {
			text = strings.TrimSpace(container.Find(`div[class*="description"]`).First().Text())
		}
		if text == "" {
			return fieldMissing
		}
		return text
	}

	if text := strings.TrimSpace(doc.Find(`[data-testid="description"]`).Text()); text != "" {
		return text
	}
	return fieldMissing
}

func extractFeatures(doc *goquery.Document) []models.KeyValue {
	features := pairTerms(doc.Find(strings.Join(featureListSelectors, ", ")))
	if len(features) > 0 {
		return features
	}

	// Older markup generation: flat dt/dd pairs outside a shared list.
	doc.Find("dt.ld-featuresItem__title").Each(func(_ int, dt *goquery.Selection) {
		key := strings.TrimSpace(dt.Text())
		value := strings.TrimSpace(dt.NextFiltered("dd.ld-featuresItem__description").Text())
		if key != "" && value != "" {
			features = append(features, models.KeyValue{Key: key, Value: value})
		}
	})
	if features == nil {
		features = []models.KeyValue{}
	}
	return features
}

// pairTerms walks a definition list's direct children in order, pairing
// each dt label with the dd immediately following it. Pairs with an
// empty side are dropped.
func pairTerms(list *goquery.Selection) []models.KeyValue {
	pairs := []models.KeyValue{}
	list.Children().Each(func(_ int, el *goquery.Selection) {
		if !el.Is("dt") {
			return
		}
		key := strings.TrimSpace(el.Text())
		value := strings.TrimSpace(el.NextFiltered("dd").Text())
		if key != "" && value != "" {
			pairs = append(pairs, models.KeyValue{Key: key, Value: value})
		}
	})
	return pairs
}

func extractOtherFeatures(doc *goquery.Document) []string {
	tags := []string{}
	for _, sel := range otherFeatureSelectors {
		doc.Find(sel).Each(func(_ int, el *goquery.Selection) {
			tags = append(tags, strings.TrimSpace(el.Text()))
		})
		if len(tags) > 0 {
			break
		}
	}
	return tags
}

// extractSurface prefers the feature pair whose label mentions surface
// area, then falls back to the dedicated surface selectors.
func extractSurface(doc *goquery.Document, features []models.KeyValue) string {
	for _, f := range features {
		if strings.Contains(strings.ToLower(f.Key), "superficie") {
			return f.Value
		}
	}
	for _, sel := range surfaceSelectors {
		if text := strings.TrimSpace(doc.Find(sel).Text()); text != "" {
			return text
		}
	}
	return fieldMissing
}

func extractCosts(doc *goquery.Document) []models.KeyValue {
	var heading *goquery.Selection
	doc.Find("h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		text := h.Text()
		for _, word := range costHeadingWords {
			if strings.Contains(text, word) {
				heading = h
				return false
			}
		}
		return true
	})

	costs := []models.KeyValue{}
	if heading != nil {
		costs = pairTerms(heading.NextFiltered("dl"))
	}
	if len(costs) == 0 {
		costs = pairTerms(doc.Find("dl.in-detailFeatures").First())
	}
	return costs
}
