package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	GoalTypeMonthly  = "monthly"
	GoalTypeSeasonal = "seasonal"
)

// Goal is a per-period mileage target. The key is deterministic
// (monthly_{year}_{month} or seasonal_{year}_{season}) so at most one goal row
// exists per user per period. Current and IsCompleted are populated at creation
// and never rewritten by the progress engine; the percentages on Progress are
// the authoritative signal for goal completion.
type Goal struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	GoalKey     string    `json:"goal_key" db:"goal_key"`
	GoalType    string    `json:"goal_type" db:"goal_type"`
	Target      float64   `json:"target" db:"target"`
	Current     float64   `json:"current" db:"current"`
	StartDate   string    `json:"start_date" db:"start_date"`
	EndDate     string    `json:"end_date" db:"end_date"`
	IsCompleted bool      `json:"is_completed" db:"is_completed"`
	Month       int       `json:"month,omitempty" db:"month"`
	Year        int       `json:"year" db:"year"`
	Season      string    `json:"season,omitempty" db:"season"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateGoalTargetRequest struct {
	Target float64 `json:"target" validate:"required,gt=0"`
}
