package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity types shown in type-specific displays. Other values coming from the
// sync provider are stored as-is but left out of type breakdowns.
const (
	ActivityTypeRun  = "Run"
	ActivityTypeWalk = "Walk"
	ActivityTypeHike = "Hike"
)

type Activity struct {
	ID           int64     `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	ActivityType string    `json:"type" db:"activity_type"`
	Distance     float64   `json:"distance" db:"distance"`
	Duration     float64   `json:"duration" db:"duration"`
	ActivityDate string    `json:"date" db:"activity_date"`
	Pace         *float64  `json:"pace,omitempty" db:"pace"`
	Elevation    *float64  `json:"elevation,omitempty" db:"elevation"`
	Calories     *float64  `json:"calories,omitempty" db:"calories"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type CreateActivityRequest struct {
	Name      string   `json:"name" validate:"required,lte=255"`
	Type      string   `json:"type" validate:"required,lte=50"`
	Distance  float64  `json:"distance" validate:"gte=0"`
	Duration  float64  `json:"duration" validate:"gte=0"`
	Date      string   `json:"date" validate:"required"`
	Pace      *float64 `json:"pace,omitempty"`
	Elevation *float64 `json:"elevation,omitempty"`
	Calories  *float64 `json:"calories,omitempty"`
}

// UpdateActivityRequest carries the user-editable fields. Nil means keep the
// stored value.
type UpdateActivityRequest struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type"`
	Distance  *float64 `json:"distance"`
	Duration  *float64 `json:"duration"`
	Pace      *float64 `json:"pace"`
	Elevation *float64 `json:"elevation"`
	Calories  *float64 `json:"calories"`
}
