package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"immo-scanner/fetcher"
	"immo-scanner/services"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError classifies err and writes the matching JSON response:
// invalid input is 400, an upstream status is propagated as-is, no
// response at all is 504, storage failures are 500 with a database
// message, anything else is a generic 500. extra fields are merged
// into the body.
func respondError(w http.ResponseWriter, err error, extra map[string]string) {
	var statusErr *fetcher.StatusError
	var unreachable *fetcher.UnreachableError
	var storageErr *services.StorageError

	var status int
	var message string
	switch {
	case errors.Is(err, services.ErrInvalidURL):
		status = http.StatusBadRequest
		message = "Valid 'url' query parameter pointing at a property detail page is required."
	case errors.As(err, &statusErr):
		status = statusErr.Code
		message = fmt.Sprintf("Failed to fetch or parse the page. Status: %d", statusErr.Code)
	case errors.As(err, &unreachable):
		status = http.StatusGatewayTimeout
		message = "No response received from target server."
	case errors.As(err, &storageErr):
		status = http.StatusInternalServerError
		message = "Error accessing database."
	default:
		status = http.StatusInternalServerError
		message = "An internal server error occurred."
	}

	body := map[string]string{
		"message": message,
		"error":   err.Error(),
	}
	for k, v := range extra {
		body[k] = v
	}
	respondJSON(w, status, body)
}
