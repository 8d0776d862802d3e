package repositories

import (
	"context"

	"recipebox/internal/models"
)

// PreferenceRepository defines the interface for display-preference access.
type PreferenceRepository interface {
	Get(ctx context.Context) (models.Preferences, error)
	Save(ctx context.Context, prefs models.Preferences) error
}
