// Package entity defines the base record type shared by all stored entities.
//
// A Record carries the identifier and creation/update timestamps; concrete
// domain types embed it and automatically satisfy the Storable capability
// required by pkg/store:
//
//	type User struct {
//		entity.Record
//		Name  string
//		Email string
//	}
//
//	u := &User{Record: entity.NewRecord("user-1"), Name: "Alice"}
package entity
