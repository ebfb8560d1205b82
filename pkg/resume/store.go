package resume

import (
	"context"
	"fmt"
	"sync"
)

// Store is the shared resume state form components bind to.
type Store interface {
	// Snapshot returns a copy of the current resume.
	Snapshot(ctx context.Context) (Resume, error)
	// GetField reads the current value of one field.
	GetField(ctx context.Context, name FieldName) (string, error)
	// SetField replaces exactly one field, leaving all others untouched.
	SetField(ctx context.Context, name FieldName, value string) error
	// Subscribe registers fn for change notifications. The returned function
	// cancels the subscription.
	Subscribe(fn func(Change)) (cancel func())
}

// Change describes one applied field update.
type Change struct {
	Field    FieldName
	Previous string
	Value    string
}

// Normalizer rewrites a value before it is stored.
type Normalizer func(name FieldName, value string) string

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithInitial seeds the store with an existing resume.
func WithInitial(initial Resume) StoreOption {
	return func(s *MemoryStore) {
		s.current = initial
	}
}

// WithNormalizer installs a value normalizer applied on every SetField.
func WithNormalizer(fn Normalizer) StoreOption {
	return func(s *MemoryStore) {
		s.normalize = fn
	}
}

// MemoryStore is a process-local Store guarded by a read/write mutex.
// Subscribers run after the lock is released, in subscription order.
type MemoryStore struct {
	mu        sync.RWMutex
	current   Resume
	normalize Normalizer

	subMu       sync.Mutex
	nextID      int
	subscribers []subscriber
}

type subscriber struct {
	id int
	fn func(Change)
}

// Ensure MemoryStore satisfies Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty store applying any options.
func NewMemoryStore(options ...StoreOption) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the stored resume.
func (s *MemoryStore) Snapshot(ctx context.Context) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

// GetField reads one personal info field.
func (s *MemoryStore) GetField(ctx context.Context, name FieldName) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Personal.Get(name)
}

// SetField applies a partial update of one field. Subscribers are only
// notified when the stored value actually changes.
func (s *MemoryStore) SetField(ctx context.Context, name FieldName, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !name.Valid() {
		return fmt.Errorf("resume: set field: %w", unknownField(name))
	}
	if s.normalize != nil {
		value = s.normalize(name, value)
	}

	s.mu.Lock()
	previous, err := s.current.Personal.Get(name)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("resume: set field: %w", err)
	}
	updated, err := s.current.Personal.With(name, value)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("resume: set field: %w", err)
	}
	s.current.Personal = updated
	s.mu.Unlock()

	if previous == value {
		return nil
	}
	s.notify(Change{Field: name, Previous: previous, Value: value})
	return nil
}

// Subscribe registers fn for change notifications.
func (s *MemoryStore) Subscribe(fn func(Change)) func() {
	if fn == nil {
		return func() {}
	}
	s.subMu.Lock()
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *MemoryStore) notify(change Change) {
	s.subMu.Lock()
	subs := append([]subscriber(nil), s.subscribers...)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(change)
	}
}
