// Package storage provides the durable key-value store each collection is
// persisted in, plus the codec used to serialize collections to store values.
// Every collection lives as one JSON value under one string key.
package storage

import "context"

// Keys under which the collections are persisted.
const (
	UsersKey       = "users"
	CurrentUserKey = "currentUser"
	RecipesKey     = "recipes"
	FavoritesKey   = "favorites"
	PreferencesKey = "preferences"
)

// UpdateFunc receives the current value of a key (found reports whether the
// key exists) and returns the value to write in its place. Returning an error
// aborts the update and propagates the error unchanged to the caller.
type UpdateFunc func(current string, found bool) (string, error)

// KeyValueStore is a durable string-keyed store. Get reports absence through
// its found return rather than an error. Update applies a read-modify-write
// atomically with respect to other Update calls on the same key, which is
// what keeps concurrent whole-collection rewrites from losing data.
//
// Backend failures are wrapped in common.ErrStoreUnavailable.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
