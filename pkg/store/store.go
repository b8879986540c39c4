package store

import (
	"context"

	"github.com/dmitrymomot/entitykit/pkg/entity"
)

// Store is the persistence abstraction over a single entity type.
// Implementations must be safe for concurrent use.
//
// The context parameter allows implementations to respect cancellation during
// blocking operations. The in-memory implementation does not use it but keeps
// it for interface consistency across implementations.
type Store[T entity.Storable] interface {
	// Save inserts or overwrites the entry for the entity's identifier.
	// It touches the entity's update timestamp in place before storing and
	// fails only when the identifier is empty.
	Save(ctx context.Context, e T) error

	// Get returns the stored entity for the identifier.
	// Absence is not an error; the second return value reports presence.
	Get(ctx context.Context, id string) (T, bool)

	// Delete removes the entry if present. Deleting an absent identifier
	// is a no-op, so Delete is idempotent.
	Delete(ctx context.Context, id string) error

	// List returns a snapshot of the current entries. The returned slice
	// does not alias internal state, so later store mutations never change
	// a previously returned snapshot.
	List(ctx context.Context) []T
}
