package store

import "context"

// LoadServices returns the service list and how it was read.
func (s *Store) LoadServices(ctx context.Context) Result[[]Service] {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := load(ctx, s, CollectionServices, defaultServices, true)
	if r.Value == nil {
		r.Value = []Service{}
	}
	return r
}

// Services lists every service; services have no visibility state.
func (s *Store) Services(ctx context.Context) []Service {
	return s.LoadServices(ctx).Value
}

// AddService stores a new service at the front of the list.
func (s *Store) AddService(ctx context.Context, n NewService) (Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var created Service
	_, err := mutateRecords(ctx, s, CollectionServices, defaultServices, func(recs records) (records, bool, error) {
		highlights := append([]string{}, n.Highlights...)
		created = Service{
			ID:          recs.newID(s.newID),
			Title:       n.Title,
			Description: n.Description,
			Highlights:  highlights,
			CreatedAt:   s.now().UnixMilli(),
		}
		next, err := recs.prepend(created)
		return next, err == nil, err
	})
	if err != nil {
		return Service{}, err
	}
	return created, nil
}

// UpdateService merges p into the service with the given id; unknown ids are a no-op.
func (s *Store) UpdateService(ctx context.Context, id string, p ServicePatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mutateRecords(ctx, s, CollectionServices, defaultServices, func(recs records) (records, bool, error) {
		return recs.update(id, p.fields())
	})
}

// DeleteService removes a service permanently.
func (s *Store) DeleteService(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mutateRecords(ctx, s, CollectionServices, defaultServices, func(recs records) (records, bool, error) {
		next, ok := recs.remove(id)
		return next, ok, nil
	})
}
