package entity

import "time"

// Storable is the capability an entity must provide to be managed by a store.
// Implementations are expected to embed Record, which satisfies the interface.
type Storable interface {
	// EntityID returns the unique identifier of the entity.
	// The identifier is immutable after creation.
	EntityID() string

	// Touch refreshes the entity's last-update timestamp.
	// Stores call it on every successful save.
	Touch()
}

// Record holds the attributes shared by all stored entities.
// Embed it in concrete entity types:
//
//	type User struct {
//		entity.Record
//		Name  string
//		Email string
//	}
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecord creates a record with both timestamps set to the current time,
// so UpdatedAt >= CreatedAt holds from the start.
func NewRecord(id string) Record {
	now := time.Now()
	return Record{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EntityID returns the unique identifier of the entity.
func (r *Record) EntityID() string {
	return r.ID
}

// Touch sets UpdatedAt to the current time.
func (r *Record) Touch() {
	r.UpdatedAt = time.Now()
}
