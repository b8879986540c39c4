// Package store provides a generic, thread-safe repository abstraction keyed
// by entity identifier.
//
// The Store interface is parameterized over the concrete entity type, so each
// call site works with typed values instead of untyped storage. The in-memory
// implementation guards its mapping with a single lock held for the duration
// of each operation, which rules out lost updates and torn reads under
// concurrent callers.
//
// Basic usage:
//
//	s := store.NewMemory[*User]()
//
//	_ = s.Save(ctx, &User{Record: entity.NewRecord("1"), Name: "Alice"})
//
//	u, ok := s.Get(ctx, "1")
//	if !ok {
//		// absence is a regular outcome, not an error
//	}
//
// Save refreshes the entity's update timestamp in place before storing, and
// List returns a snapshot that never aliases the live mapping.
package store
