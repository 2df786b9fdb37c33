// Package catalog defines the page-record collaborator interface used
// by the relevance index and the zombie detector, with in-memory and
// sqlite implementations.
package catalog

import (
	"context"
	"time"
)

// PageData is one catalog page record. URL is the unique key.
type PageData struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Category    string    `json:"category"`
	Language    string    `json:"language"`
	LastUpdated time.Time `json:"lastUpdated"`
	Authority   float64   `json:"authority"`
	Available   bool      `json:"available"`
}

// Store is the catalog collaborator interface.
type Store interface {
	Close() error

	UpsertPage(ctx context.Context, p PageData) error
	GetPage(ctx context.Context, url string) (PageData, bool, error)
	ListPages(ctx context.Context) ([]PageData, error)
	SetAvailability(ctx context.Context, url string, available bool) error
}
