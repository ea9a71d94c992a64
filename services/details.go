package services

import (
	"context"
	"fmt"
	"strings"

	"immo-scanner/fetcher"
	"immo-scanner/models"
	"immo-scanner/scraper/immobiliare"
	"immo-scanner/utils"
)

// DetailService fetches and extracts a single property detail page.
// Results are never persisted; each request is independent.
type DetailService struct {
	fetch  fetcher.Fetcher
	logger *utils.Logger
}

// NewDetailService creates a DetailService using the given fetcher,
// which should carry the longer detail-page timeout.
func NewDetailService(fetch fetcher.Fetcher, logger *utils.Logger) *DetailService {
	return &DetailService{fetch: fetch, logger: logger}
}

// FetchDetail validates the property URL, fetches the page and extracts
// its detail record. URLs outside the vendor's property path are
// rejected with ErrInvalidURL before any fetch.
func (s *DetailService) FetchDetail(ctx context.Context, propertyURL string) (*models.PropertyDetail, error) {
	if !strings.HasPrefix(propertyURL, immobiliare.PropertyURLPrefix) {
		return nil, ErrInvalidURL
	}

	html, err := s.fetch.Fetch(ctx, propertyURL)
	if err != nil {
		return nil, fmt.Errorf("fetch detail page: %w", err)
	}

	detail, err := immobiliare.ExtractDetail(html)
	if err != nil {
		return nil, err
	}

	s.logger.Info("[details] extracted detail record for %s", propertyURL)
	return detail, nil
}
