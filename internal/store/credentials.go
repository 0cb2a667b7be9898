package store

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/isebirbax/portfolio/pkg/logger"
)

// LoadCredentials returns the stored admin pair. When none is stored the
// built-in DefaultCredentials are returned and nothing is written, so the
// default stays a fallback rather than becoming stored data.
func (s *Store) LoadCredentials(ctx context.Context) Result[Credentials] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(ctx, s, CollectionCredentials, defaultCredentials, false)
}

// Credentials returns the admin pair, falling back to DefaultCredentials.
func (s *Store) Credentials(ctx context.Context) Credentials {
	return s.LoadCredentials(ctx).Value
}

// CheckCredentials compares a login attempt against the admin pair in constant time.
// It only checks against a pair that was actually read: when the stored value
// is unreadable or corrupt every attempt is rejected, so the built-in default
// never unlocks an account whose owner set their own pair.
func (s *Store) CheckCredentials(ctx context.Context, username, password string) bool {
	r := s.LoadCredentials(ctx)
	if r.Fallback != "" {
		logger.Warnf("store: rejecting login, credentials %s: %v", r.Fallback, r.Err)
		return false
	}
	c := r.Value
	u := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	return u&p == 1 && c.Username != ""
}

// UpdateCredentials stores a new admin pair.
func (s *Store) UpdateCredentials(ctx context.Context, c Credentials) error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return ErrInvalidCredentials
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return save(ctx, s, CollectionCredentials, c)
}
