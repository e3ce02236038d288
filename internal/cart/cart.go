package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/areeba-ilyas/E-commerce-App/internal/catalog"
)

// Line is one cart entry: the product as it looked when it was added, plus
// the quantity. Identity is the product id; the ledger keeps at most one
// line per product.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// DefaultKey is the storage key used when the caller does not namespace the
// ledger (single-session deployments).
const DefaultKey = "cart"

// Ledger is the mutable, ordered collection of cart lines for one session.
// It is the sole writer of its state: every mutation rewrites the full
// snapshot to the store and returns the new line list. Lines keep insertion
// order for display.
type Ledger struct {
	mu    sync.RWMutex
	store Store
	key   string
	log   *zap.Logger
	lines []Line
}

// NewLedger restores prior state from the store. Missing or unreadable
// state starts the ledger empty; a failed restore is logged, never
// propagated.
func NewLedger(ctx context.Context, store Store, key string, log *zap.Logger) *Ledger {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = zap.NewNop()
	}

	l := &Ledger{store: store, key: key, log: log}

	lines, err := store.Load(ctx, key)
	if err != nil {
		log.Warn("cart restore failed, starting empty", zap.String("key", key), zap.Error(err))
		return l
	}
	l.lines = lines
	return l
}

// Add merges qty into an existing line for the product or appends a new one
// at the end. Quantities below one count as one. Stock is advisory only and
// not checked here.
func (l *Ledger) Add(ctx context.Context, p catalog.Product, qty int) []Line {
	if qty < 1 {
		qty = 1
	}

	l.mu.Lock()
	if i := l.index(p.ID); i >= 0 {
		l.lines[i].Quantity += qty
	} else {
		l.lines = append(l.lines, Line{Product: p, Quantity: qty})
	}
	l.mu.Unlock()

	return l.persist(ctx)
}

// SetQuantity replaces a line's quantity. Anything below one removes the
// line. An unknown id is a no-op that still rewrites the snapshot.
func (l *Ledger) SetQuantity(ctx context.Context, productID, qty int) []Line {
	if qty < 1 {
		return l.Remove(ctx, productID)
	}

	l.mu.Lock()
	if i := l.index(productID); i >= 0 {
		l.lines[i].Quantity = qty
	}
	l.mu.Unlock()

	return l.persist(ctx)
}

// Remove deletes the line if present. Unknown ids are a no-op.
func (l *Ledger) Remove(ctx context.Context, productID int) []Line {
	l.mu.Lock()
	if i := l.index(productID); i >= 0 {
		l.lines = append(l.lines[:i], l.lines[i+1:]...)
	}
	l.mu.Unlock()

	return l.persist(ctx)
}

func (l *Ledger) Clear(ctx context.Context) []Line {
	l.mu.Lock()
	l.lines = nil
	l.mu.Unlock()

	return l.persist(ctx)
}

// Lines returns a copy of the current state in insertion order.
func (l *Ledger) Lines() []Line {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot()
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.lines)
}

// index returns the position of the line for productID, or -1. Callers hold
// the lock.
func (l *Ledger) index(productID int) int {
	for i, ln := range l.lines {
		if ln.ID == productID {
			return i
		}
	}
	return -1
}

func (l *Ledger) snapshot() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// persist writes the full state through to the store. A failed write keeps
// the in-memory mutation and is logged only.
func (l *Ledger) persist(ctx context.Context) []Line {
	l.mu.RLock()
	lines := l.snapshot()
	l.mu.RUnlock()

	if err := l.store.Save(ctx, l.key, lines); err != nil {
		l.log.Warn("cart persist failed", zap.String("key", l.key), zap.Error(err))
	}
	return lines
}
