package services

import (
	"errors"
	"fmt"

	"immo-scanner/scraper/immobiliare"
)

// ErrInvalidURL rejects detail requests whose URL is not a property
// detail page of the vendor. No fetch is attempted for such requests.
var ErrInvalidURL = errors.New("url must start with " + immobiliare.PropertyURLPrefix)

// StorageError wraps a persistence-layer failure so the API boundary
// can report it as a database problem.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
