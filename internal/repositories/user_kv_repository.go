package repositories

import (
	"context"
	"fmt"

	"recipebox/internal/common"
	"recipebox/internal/models"
	"recipebox/internal/storage"
)

// KVUserRepository persists the users collection as one JSON array under the
// "users" key of a KeyValueStore.
type KVUserRepository struct {
	store storage.KeyValueStore
}

// NewKVUserRepository creates a new instance of KVUserRepository.
func NewKVUserRepository(store storage.KeyValueStore) *KVUserRepository {
	return &KVUserRepository{store: store}
}

// GetAll returns every registered user in stored order. Absent or malformed
// data reads as the empty collection.
func (r *KVUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	value, _, err := r.store.Get(ctx, storage.UsersKey)
	if err != nil {
		return nil, err
	}
	return storage.DecodeLenient[models.User](value), nil
}

// FindByEmail returns the user with the given email, matched exactly.
func (r *KVUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("%w: user with email %s", common.ErrNotFound, email)
}

// Create appends a new user. The duplicate-email check runs inside the same
// atomic update that writes the collection, so two concurrent registrations
// with the same email cannot both succeed.
func (r *KVUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.store.Update(ctx, storage.UsersKey, func(current string, _ bool) (string, error) {
		users, err := storage.Decode[models.User](current)
		if err != nil {
			return "", err
		}
		for _, existing := range users {
			if existing.Email == user.Email {
				return "", fmt.Errorf("%w: %s", common.ErrDuplicateEmail, user.Email)
			}
		}
		users = append(users, *user)
		return storage.Encode(users)
	})
}

// UpdatePassword replaces the password of the user with the given email in
// place and persists the collection.
func (r *KVUserRepository) UpdatePassword(ctx context.Context, email, password string) error {
	return r.store.Update(ctx, storage.UsersKey, func(current string, _ bool) (string, error) {
		users, err := storage.Decode[models.User](current)
		if err != nil {
			return "", err
		}
		for i := range users {
			if users[i].Email == email {
				users[i].Password = password
				return storage.Encode(users)
			}
		}
		return "", fmt.Errorf("%w: user with email %s", common.ErrNotFound, email)
	})
}
