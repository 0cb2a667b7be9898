package store

import (
	"context"
	"fmt"
)

// LoadDocuments returns every document, including hidden and soft-deleted ones.
func (s *Store) LoadDocuments(ctx context.Context) Result[[]Document] {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := load(ctx, s, CollectionDocuments, defaultDocuments, true)
	if r.Value == nil {
		r.Value = []Document{}
	}
	return r
}

// Documents is the admin console's unfiltered view.
func (s *Store) Documents(ctx context.Context) []Document {
	return s.LoadDocuments(ctx).Value
}

// VisibleDocuments is the public gallery's view: only status visible.
func (s *Store) VisibleDocuments(ctx context.Context) []Document {
	all := s.Documents(ctx)
	out := make([]Document, 0, len(all))
	for _, d := range all {
		if d.Status == StatusVisible {
			out = append(out, d)
		}
	}
	return out
}

// AddDocument stores a new visible document at the front of the gallery.
func (s *Store) AddDocument(ctx context.Context, n NewDocument) (Document, error) {
	if err := n.Validate(); err != nil {
		return Document{}, err
	}
	if n.Category == "" {
		n.Category = CategoryDiploma
	}
	if !n.Category.Valid() {
		return Document{}, fmt.Errorf("%w: %q", ErrInvalidCategory, n.Category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var created Document
	_, err := mutateRecords(ctx, s, CollectionDocuments, defaultDocuments, func(recs records) (records, bool, error) {
		created = Document{
			ID:          recs.newID(s.newID),
			Title:       n.Title,
			Description: n.Description,
			ImageURL:    n.ImageURL,
			Category:    n.Category,
			Status:      StatusVisible,
			CreatedAt:   s.now().UnixMilli(),
		}
		next, err := recs.prepend(created)
		return next, err == nil, err
	})
	if err != nil {
		return Document{}, err
	}
	return created, nil
}

// UpdateDocument merges p into the document with the given id. It reports
// false without error when no document has that id.
func (s *Store) UpdateDocument(ctx context.Context, id string, p DocumentPatch) (bool, error) {
	if p.Category != nil && !p.Category.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidCategory, *p.Category)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return mutateRecords(ctx, s, CollectionDocuments, defaultDocuments, func(recs records) (records, bool, error) {
		return recs.update(id, p.fields())
	})
}

// SetDocumentStatus moves a document between visible, hidden and deleted.
// Nothing but the status changes.
func (s *Store) SetDocumentStatus(ctx context.Context, id string, status Status) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return mutateRecords(ctx, s, CollectionDocuments, defaultDocuments, func(recs records) (records, bool, error) {
		return recs.update(id, []field{{"status", status}})
	})
}

// HardDeleteDocument purges a document permanently.
func (s *Store) HardDeleteDocument(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mutateRecords(ctx, s, CollectionDocuments, defaultDocuments, func(recs records) (records, bool, error) {
		next, ok := recs.remove(id)
		return next, ok, nil
	})
}
