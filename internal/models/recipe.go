package models

// Recipe represents a single recipe. The image field is an opaque string:
// empty, a base64 data URI, or a picked-file URI. It is never inspected.
type Recipe struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
}

// Favorite is a snapshot copy of a Recipe taken at favorite-time. It keeps
// the source recipe's id but is never synced with later edits.
type Favorite = Recipe
