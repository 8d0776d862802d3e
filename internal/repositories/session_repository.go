package repositories

import (
	"context"

	"recipebox/internal/models"
)

// SessionRepository tracks the single currently-authenticated user. Absence
// of a session means "logged out".
type SessionRepository interface {
	Current(ctx context.Context) (*models.SessionUser, error)
	SetCurrent(ctx context.Context, user models.SessionUser) error
	Clear(ctx context.Context) error
}
