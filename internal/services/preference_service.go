package services

import (
	"context"
	"fmt"

	"recipebox/internal/common"
	"recipebox/internal/models"
	"recipebox/internal/repositories"
)

// allowedFontFamilies mirrors the two families the preferences screen
// toggles between.
var allowedFontFamilies = map[string]bool{
	"System": true,
	"Arial":  true,
}

// PreferenceService handles business logic for display preferences.
type PreferenceService struct {
	repo repositories.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(repo repositories.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// Get returns the saved preferences, or defaults when none were saved.
func (s *PreferenceService) Get(ctx context.Context) (models.Preferences, error) {
	return s.repo.Get(ctx)
}

// Save normalizes and persists the preferences. Font sizes below the floor
// are clamped to it; unknown font families are rejected.
func (s *PreferenceService) Save(ctx context.Context, prefs models.Preferences) (models.Preferences, error) {
	if prefs.FontSize < models.MinFontSize {
		prefs.FontSize = models.MinFontSize
	}
	if prefs.FontFamily == "" {
		prefs.FontFamily = models.DefaultFontFamily
	}
	if !allowedFontFamilies[prefs.FontFamily] {
		return models.Preferences{}, fmt.Errorf("%w: unsupported font family %q", common.ErrValidation, prefs.FontFamily)
	}

	if err := s.repo.Save(ctx, prefs); err != nil {
		return models.Preferences{}, err
	}
	return prefs, nil
}
