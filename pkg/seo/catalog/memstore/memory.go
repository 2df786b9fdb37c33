// Package memstore is an in-memory catalog.Store used by tests and
// small deployments.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cranemast/seo/pkg/seo/catalog"
	"github.com/cranemast/seo/pkg/seo/internalerr"
)

// Store is an in-memory implementation of catalog.Store.
type Store struct {
	mu    sync.RWMutex
	pages map[string]catalog.PageData
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{pages: make(map[string]catalog.PageData)}
}

// Close implements catalog.Store.
func (s *Store) Close() error { return nil }

// UpsertPage inserts or replaces a page, keyed by URL.
func (s *Store) UpsertPage(ctx context.Context, p catalog.PageData) error {
	if p.URL == "" {
		return internalerr.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[p.URL] = copyPage(p)
	return nil
}

// GetPage returns a page by URL.
func (s *Store) GetPage(ctx context.Context, url string) (catalog.PageData, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.pages[url]; ok {
		return copyPage(p), true, nil
	}
	return catalog.PageData{}, false, nil
}

// ListPages returns all pages ordered by URL for determinism.
func (s *Store) ListPages(ctx context.Context) ([]catalog.PageData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.PageData, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, copyPage(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URL < out[j].URL })
	return out, nil
}

// SetAvailability flags a page active or inactive.
func (s *Store) SetAvailability(ctx context.Context, url string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pages[url]
	if !ok {
		return internalerr.ErrNotFound
	}
	p.Available = available
	s.pages[url] = p
	return nil
}

func copyPage(p catalog.PageData) catalog.PageData {
	out := p
	out.Keywords = append([]string(nil), p.Keywords...)
	return out
}
