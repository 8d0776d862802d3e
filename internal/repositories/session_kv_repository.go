package repositories

import (
	"context"

	"recipebox/internal/models"
	"recipebox/internal/storage"
)

// KVSessionRepository persists the current session as one JSON object under
// the "currentUser" key.
type KVSessionRepository struct {
	store storage.KeyValueStore
}

// NewKVSessionRepository creates a new instance of KVSessionRepository.
func NewKVSessionRepository(store storage.KeyValueStore) *KVSessionRepository {
	return &KVSessionRepository{store: store}
}

// Current returns the last-set session, or nil if none was set or the
// stored value is not decodable.
func (r *KVSessionRepository) Current(ctx context.Context) (*models.SessionUser, error) {
	value, found, err := r.store.Get(ctx, storage.CurrentUserKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	user, err := storage.DecodeObject[models.SessionUser](value)
	if err != nil {
		return nil, nil
	}
	return &user, nil
}

// SetCurrent overwrites the session unconditionally.
func (r *KVSessionRepository) SetCurrent(ctx context.Context, user models.SessionUser) error {
	value, err := storage.EncodeObject(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.CurrentUserKey, value)
}

// Clear removes the session. Clearing an absent session is a no-op.
func (r *KVSessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.CurrentUserKey)
}
