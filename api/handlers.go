package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"immo-scanner/models"
	"immo-scanner/services"
	"immo-scanner/storage"
	"immo-scanner/utils"
)

// Handlers bundles the HTTP surface over the scan pipeline, the detail
// service and the listing store.
type Handlers struct {
	scanner *services.Scanner
	details *services.DetailService
	store   storage.ListingStore
	logger  *utils.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(scanner *services.Scanner, details *services.DetailService, store storage.ListingStore, logger *utils.Logger) *Handlers {
	return &Handlers{scanner: scanner, details: details, store: store, logger: logger}
}

// Router builds the route table. Wrong-method requests get a JSON 405.
func (h *Handlers) Router(corsOrigin string) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware(corsOrigin))

	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/scan", h.handleScan).Methods(http.MethodPost)
	r.HandleFunc("/listings", h.handleListListings).Methods(http.MethodGet)
	r.HandleFunc("/listings", h.handleClearListings).Methods(http.MethodDelete)
	r.HandleFunc("/details", h.handleDetails).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"message": fmt.Sprintf("Method %s Not Allowed", r.Method),
		})
	})

	return r
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) handleScan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MinPrice string `json:"minPrice"`
	}
	// An empty or absent body simply means no price filter.
	_ = json.NewDecoder(r.Body).Decode(&body)

	h.logger.Info("[api] scan requested (minPrice=%q)", body.MinPrice)

	newListings, err := h.scanner.Scan(r.Context(), body.MinPrice)
	if err != nil {
		h.logger.Error("[api] scan failed: %v", err)
		respondError(w, err, nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"newListings": newListings})
}

func (h *Handlers) handleListListings(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.FetchAll(r.Context())
	if err != nil {
		h.logger.Error("[api] listing fetch failed: %v", err)
		respondError(w, &services.StorageError{Op: "read listings", Err: err}, nil)
		return
	}

	listings := make([]models.ListingSummary, 0, len(records))
	for _, rec := range records {
		listings = append(listings, models.ListingSummary{URL: rec.URL, Price: rec.Price})
	}
	respondJSON(w, http.StatusOK, map[string]any{"listings": listings})
}

func (h *Handlers) handleClearListings(w http.ResponseWriter, r *http.Request) {
	removed, err := h.store.Clear(r.Context())
	if err != nil {
		h.logger.Error("[api] clearing listings failed: %v", err)
		respondError(w, &services.StorageError{Op: "clear listings", Err: err}, nil)
		return
	}

	h.logger.Info("[api] deleted %d listings", removed)
	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Successfully deleted %d listings.", removed),
	})
}

func (h *Handlers) handleDetails(w http.ResponseWriter, r *http.Request) {
	propertyURL := r.URL.Query().Get("url")

	detail, err := h.details.FetchDetail(r.Context(), propertyURL)
	if err != nil {
		h.logger.Error("[api] detail scrape failed for %q: %v", propertyURL, err)
		respondError(w, err, map[string]string{"url": propertyURL})
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func corsMiddleware(origin string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
