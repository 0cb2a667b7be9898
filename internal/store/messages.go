package store

import (
	"context"
	"fmt"
)

// LoadMessages returns the inbox and how it was read.
func (s *Store) LoadMessages(ctx context.Context) Result[[]Message] {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := load(ctx, s, CollectionMessages, defaultMessages, true)
	if r.Value == nil {
		r.Value = []Message{}
	}
	return r
}

// Messages lists the inbox, newest first.
func (s *Store) Messages(ctx context.Context) []Message {
	return s.LoadMessages(ctx).Value
}

// UnreadCount is the number of messages still marked unread.
func (s *Store) UnreadCount(ctx context.Context) int {
	n := 0
	for _, m := range s.Messages(ctx) {
		if m.Status == MessageUnread {
			n++
		}
	}
	return n
}

// AddMessage records a contact-form submission as unread.
func (s *Store) AddMessage(ctx context.Context, n NewMessage) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var created Message
	_, err := mutateRecords(ctx, s, CollectionMessages, defaultMessages, func(recs records) (records, bool, error) {
		created = Message{
			ID:        recs.newID(s.newID),
			Name:      n.Name,
			Email:     n.Email,
			Phone:     n.Phone,
			Subject:   n.Subject,
			Body:      n.Body,
			Status:    MessageUnread,
			CreatedAt: s.now().UnixMilli(),
		}
		next, err := recs.prepend(created)
		return next, err == nil, err
	})
	if err != nil {
		return Message{}, err
	}
	return created, nil
}

// SetMessageStatus marks a message read or unread.
func (s *Store) SetMessageStatus(ctx context.Context, id string, status MessageStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return mutateRecords(ctx, s, CollectionMessages, defaultMessages, func(recs records) (records, bool, error) {
		return recs.update(id, []field{{"status", status}})
	})
}

// DeleteMessage removes a message permanently.
func (s *Store) DeleteMessage(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mutateRecords(ctx, s, CollectionMessages, defaultMessages, func(recs records) (records, bool, error) {
		next, ok := recs.remove(id)
		return next, ok, nil
	})
}
