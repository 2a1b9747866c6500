package editsession

import "context"

// KV is the persistent key/value facility backing the mailbox. Implementations
// must survive across process invocations (the client backs it with SQLite).
// Get returns (nil, nil) for an absent key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
