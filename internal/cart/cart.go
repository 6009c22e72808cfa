// Package cart implements the per-session shopping cart: an ordered list of
// lines with add/set-quantity/remove operations, derived pricing, and
// write-through persistence to a key-value store.
package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"

	"github.com/yourusername/cookstore/pkg/errors"
	"github.com/yourusername/cookstore/pkg/kv"
	"github.com/yourusername/cookstore/pkg/money"
)

const (
	// cartKey holds the serialized line list.
	cartKey = "cart"
	// countKey holds the cached sum of line quantities, kept denormalized
	// so callers can render a badge without decoding the full list.
	countKey = "cartCount"
)

// Line is a single cart entry. UnitPrice is a snapshot captured when the
// line was added; it is not re-derived from the catalog. ID may be a
// product id or a variant id.
type Line struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	UnitPrice money.Cents `json:"price"`
	Quantity  int         `json:"quantity"`
	Image     string      `json:"image"`
	Variant   string      `json:"variant,omitempty"`
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix namespaces the persisted keys, so multiple carts can share
// one storage backend (one prefix per session).
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) { s.keyPrefix = prefix }
}

// Store owns the cart state for one client session. Lines keep insertion
// order, at most one line exists per id, and every line has quantity >= 1.
// All mutations persist the line list and the cached item count before
// returning; on persistence failure the write is retried once and the
// in-memory state stays authoritative.
type Store struct {
	mu        sync.Mutex
	kv        kv.Store
	keyPrefix string
	lines     []Line
}

// New creates an empty cart backed by store. Call Load to pick up any
// previously persisted state.
func New(store kv.Store, opts ...Option) *Store {
	s := &Store{kv: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory lines with the persisted list. A missing key
// leaves the cart empty; a corrupt value is treated the same way rather
// than failing, so a damaged record never blocks the session.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, s.keyPrefix+cartKey)
	if err != nil {
		return err
	}
	if !ok {
		s.lines = nil
		return nil
	}
	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		slog.Warn("cart_state_corrupt", "key", s.keyPrefix+cartKey, "error", err)
		s.lines = nil
		return nil
	}
	// Drop anything a buggy writer may have left behind.
	sane := lines[:0]
	for _, l := range lines {
		if l.ID != "" && l.Quantity >= 1 {
			sane = append(sane, l)
		}
	}
	s.lines = sane
	return nil
}

// Add inserts a new line or increments the quantity of the existing line
// with the same id. A delta below one counts as one.
func (s *Store) Add(ctx context.Context, line Line) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.lines {
		if s.lines[i].ID == line.ID {
			s.lines[i].Quantity += line.Quantity
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, line)
	}
	return s.persist(ctx)
}

// SetQuantity sets the line's quantity to an absolute value. A value of
// zero or below removes the line, matching the remove semantics exactly.
func (s *Store) SetQuantity(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}
	return s.persist(ctx)
}

// Remove deletes the line with the given id. Removing an absent id is a
// no-op, not an error.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	removed := false
	for _, l := range s.lines {
		if l.ID == id {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return nil
	}
	s.lines = kept
	return s.persist(ctx)
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count returns the sum of all line quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countOf(s.lines)
}

func countOf(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// persist writes the line list and the cached count. Callers must hold
// s.mu. Each write is retried once; a persistent failure is reported but
// the in-memory state is kept.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.lines)
	if err != nil {
		return errors.NewKeyError(s.keyPrefix+cartKey, errors.ErrSerializationFailed)
	}
	if err := s.setWithRetry(ctx, s.keyPrefix+cartKey, string(data)); err != nil {
		return err
	}
	return s.setWithRetry(ctx, s.keyPrefix+countKey, strconv.Itoa(countOf(s.lines)))
}

func (s *Store) setWithRetry(ctx context.Context, key, value string) error {
	err := s.kv.Set(ctx, key, value)
	if err == nil {
		return nil
	}
	slog.Warn("cart_persist_retry", "key", key, "error", err)
	if err = s.kv.Set(ctx, key, value); err != nil {
		slog.Warn("cart_persist_failed", "key", key, "error", err)
		return err
	}
	return nil
}
