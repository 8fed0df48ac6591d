package models

import (
	"time"

	"github.com/google/uuid"
)

// Progress is the derived snapshot of a user's period-scoped and all-time
// aggregates against the current goals. It is fully recomputed and overwritten
// on every update; it carries no state of its own.
type Progress struct {
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	MonthlyMileage   float64   `json:"monthly_mileage" db:"monthly_mileage"`
	SeasonalMileage  float64   `json:"seasonal_mileage" db:"seasonal_mileage"`
	MonthlyGoal      float64   `json:"monthly_goal" db:"monthly_goal"`
	SeasonalGoal     float64   `json:"seasonal_goal" db:"seasonal_goal"`
	MonthlyProgress  float64   `json:"monthly_progress" db:"monthly_progress"`
	SeasonalProgress float64   `json:"seasonal_progress" db:"seasonal_progress"`
	TotalActivities  int       `json:"total_activities" db:"total_activities"`
	AveragePace      float64   `json:"average_pace" db:"average_pace"`
	LongestRun       float64   `json:"longest_run" db:"longest_run"`
	LastUpdated      time.Time `json:"last_updated" db:"last_updated"`
}
