package cart

import "context"

// Store persists the full ledger state under a key. A missing key is an
// empty ledger, reported as (nil, nil); an error means the state exists but
// could not be read or decoded.
type Store interface {
	Load(ctx context.Context, key string) ([]Line, error)
	Save(ctx context.Context, key string, lines []Line) error
	Ping(ctx context.Context) error
}
