package lock

import "context"

// KeyLock provides short-lived mutual exclusion per business key. It is used
// to serialize webhook reconciliations per payment id: the gateway retries
// notifications on its own, so a contended TryAcquire is answered with a
// conflict response instead of waiting.
//
// The lock is advisory. The reconcile transaction is the actual correctness
// boundary; the lock only prevents duplicate work and duplicate
// notifications from concurrent deliveries.
type KeyLock interface {
	// TryAcquire attempts to take the lock for key without blocking. On
	// success it returns an opaque token identifying this acquisition;
	// ok is false immediately when the key is already held.
	TryAcquire(ctx context.Context, key string) (token string, ok bool, err error)

	// Release frees the lock for key, but only while token still matches
	// the current holder. A stale token (the entry expired and someone else
	// re-acquired the key) is a no-op: a holder that outlived its TTL must
	// never free the new holder's lock.
	Release(ctx context.Context, key, token string) error
}
