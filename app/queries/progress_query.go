package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/paceline/paceline-backend/app/models"
)

type ProgressQueries struct {
	DB *sql.DB
}

// GetProgress returns the stored snapshot for a user, if any.
func (q *ProgressQueries) GetProgress(userID uuid.UUID) (models.Progress, bool, error) {
	var p models.Progress
	query := `SELECT user_id, monthly_mileage, seasonal_mileage, monthly_goal, seasonal_goal, monthly_progress, seasonal_progress, total_activities, average_pace, longest_run, last_updated
			  FROM progress WHERE user_id = $1`
	err := q.DB.QueryRow(query, userID).Scan(&p.UserID, &p.MonthlyMileage, &p.SeasonalMileage, &p.MonthlyGoal, &p.SeasonalGoal, &p.MonthlyProgress, &p.SeasonalProgress, &p.TotalActivities, &p.AveragePace, &p.LongestRun, &p.LastUpdated)
	if err != nil {
		if err == sql.ErrNoRows {
			return p, false, nil
		}
		return p, false, errors.New("unable to get progress, DB error")
	}
	return p, true, nil
}

// UpsertProgress overwrites the user's snapshot in full; there is no partial
// update and no history.
func (q *ProgressQueries) UpsertProgress(p *models.Progress) error {
	query := `INSERT INTO progress (user_id, monthly_mileage, seasonal_mileage, monthly_goal, seasonal_goal, monthly_progress, seasonal_progress, total_activities, average_pace, longest_run, last_updated)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (user_id) DO UPDATE SET
				monthly_mileage = EXCLUDED.monthly_mileage,
				seasonal_mileage = EXCLUDED.seasonal_mileage,
				monthly_goal = EXCLUDED.monthly_goal,
				seasonal_goal = EXCLUDED.seasonal_goal,
				monthly_progress = EXCLUDED.monthly_progress,
				seasonal_progress = EXCLUDED.seasonal_progress,
				total_activities = EXCLUDED.total_activities,
				average_pace = EXCLUDED.average_pace,
				longest_run = EXCLUDED.longest_run,
				last_updated = EXCLUDED.last_updated`
	_, err := q.DB.Exec(query, p.UserID, p.MonthlyMileage, p.SeasonalMileage, p.MonthlyGoal, p.SeasonalGoal, p.MonthlyProgress, p.SeasonalProgress, p.TotalActivities, p.AveragePace, p.LongestRun, p.LastUpdated)
	if err != nil {
		return errors.New("unable to upsert progress, DB error")
	}
	return nil
}
