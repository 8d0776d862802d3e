package repositories

import (
	"context"

	"recipebox/internal/models"
	"recipebox/internal/storage"
)

// KVPreferenceRepository persists display preferences as one JSON object
// under the "preferences" key.
type KVPreferenceRepository struct {
	store storage.KeyValueStore
}

// NewKVPreferenceRepository creates a new instance of KVPreferenceRepository.
func NewKVPreferenceRepository(store storage.KeyValueStore) *KVPreferenceRepository {
	return &KVPreferenceRepository{store: store}
}

// Get returns the saved preferences, or the defaults when nothing was saved
// or the stored value is not decodable.
func (r *KVPreferenceRepository) Get(ctx context.Context) (models.Preferences, error) {
	value, found, err := r.store.Get(ctx, storage.PreferencesKey)
	if err != nil {
		return models.Preferences{}, err
	}
	if !found {
		return models.DefaultPreferences(), nil
	}
	prefs, err := storage.DecodeObject[models.Preferences](value)
	if err != nil {
		return models.DefaultPreferences(), nil
	}
	return prefs, nil
}

// Save overwrites the stored preferences.
func (r *KVPreferenceRepository) Save(ctx context.Context, prefs models.Preferences) error {
	value, err := storage.EncodeObject(prefs)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.PreferencesKey, value)
}
