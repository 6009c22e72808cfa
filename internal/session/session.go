// Package session ties client sessions to their carts. Each session is
// identified by an opaque cookie value; the registry hands out the cart
// store owning that session's state, creating and loading it on first use.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yourusername/cookstore/internal/cart"
	"github.com/yourusername/cookstore/pkg/kv"
)

const (
	// CookieName carries the session id between requests.
	CookieName = "cookstore_session"
	// cookieMaxAge keeps carts around for 30 days of inactivity.
	cookieMaxAge = 30 * 24 * 60 * 60

	ctxKeySessionID = "session_id"
)

// Registry maps session ids to cart stores. Carts are created lazily and
// persisted in the shared backend under a per-session key prefix, so two
// sessions never see each other's lines.
type Registry struct {
	mu        sync.Mutex
	kv        kv.Store
	carts     map[string]*cart.Store
	lastSeen  map[string]time.Time
	closeChan chan struct{}
	closeOnce sync.Once
}

// NewRegistry creates a registry persisting carts in store.
func NewRegistry(store kv.Store) *Registry {
	return &Registry{
		kv:        store,
		carts:     make(map[string]*cart.Store),
		lastSeen:  make(map[string]time.Time),
		closeChan: make(chan struct{}),
	}
}

// Cart returns the cart store for the given session id, creating it and
// loading persisted state on first access.
func (r *Registry) Cart(ctx context.Context, sessionID string) (*cart.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.carts[sessionID]; ok {
		r.lastSeen[sessionID] = time.Now()
		return c, nil
	}
	c := cart.New(r.kv, cart.WithKeyPrefix(sessionID+":"))
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	r.carts[sessionID] = c
	r.lastSeen[sessionID] = time.Now()
	return c, nil
}

// StartEvictor launches a background goroutine that drops in-memory cart
// stores for sessions idle longer than maxIdle. Persisted state in the
// backend is untouched; an evicted session's cart is reloaded from there
// on its next request. Stop terminates the goroutine.
func (r *Registry) StartEvictor(interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.evictIdle(maxIdle)
			case <-r.closeChan:
				return
			}
		}
	}()
}

// Stop terminates the evictor goroutine. It is safe to call more than once
// and without a prior StartEvictor.
func (r *Registry) Stop() {
	r.closeOnce.Do(func() { close(r.closeChan) })
}

func (r *Registry) evictIdle(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for sid, seen := range r.lastSeen {
		if seen.Before(cutoff) {
			delete(r.carts, sid)
			delete(r.lastSeen, sid)
			evicted++
		}
	}
	if evicted > 0 {
		slog.Debug("session_carts_evicted", "count", evicted, "resident", len(r.carts))
	}
}

// Middleware assigns a session id cookie to requests that lack one and
// exposes the id on the request context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(CookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(CookieName, sid, cookieMaxAge, "/", "", false, true)
		}
		c.Set(ctxKeySessionID, sid)
		c.Next()
	}
}

// IDFromContext returns the session id assigned by Middleware.
func IDFromContext(c *gin.Context) string {
	return c.GetString(ctxKeySessionID)
}
