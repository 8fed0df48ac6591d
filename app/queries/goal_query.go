package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/paceline/paceline-backend/app/models"
)

type GoalQueries struct {
	DB *sql.DB
}

const goalColumns = `user_id, goal_key, goal_type, target, current, start_date, end_date, is_completed, month, year, season, created_at, updated_at`

func scanGoal(row interface{ Scan(...interface{}) error }) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.UserID, &g.GoalKey, &g.GoalType, &g.Target, &g.Current, &g.StartDate, &g.EndDate, &g.IsCompleted, &g.Month, &g.Year, &g.Season, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// GetGoalByKey looks up the goal for a deterministic period key. The boolean
// reports whether a row exists; absence is not an error.
func (q *GoalQueries) GetGoalByKey(userID uuid.UUID, key string) (models.Goal, bool, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 AND goal_key = $2`
	g, err := scanGoal(q.DB.QueryRow(query, userID, key))
	if err != nil {
		if err == sql.ErrNoRows {
			return g, false, nil
		}
		return g, false, errors.New("unable to get goal, DB error")
	}
	return g, true, nil
}

// InsertGoal creates the goal row if none exists for the key. Concurrent
// creates for the same key collapse into one row; callers re-read after
// inserting to pick up whichever write won.
func (q *GoalQueries) InsertGoal(g *models.Goal) error {
	query := `INSERT INTO goals (user_id, goal_key, goal_type, target, current, start_date, end_date, is_completed, month, year, season, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			  ON CONFLICT (user_id, goal_key) DO NOTHING`
	_, err := q.DB.Exec(query, g.UserID, g.GoalKey, g.GoalType, g.Target, g.Current, g.StartDate, g.EndDate, g.IsCompleted, g.Month, g.Year, g.Season, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return errors.New("unable to insert goal, DB error")
	}
	return nil
}

func (q *GoalQueries) ListGoalsByUser(userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return goals, errors.New("unable to query goals, DB error")
	}
	defer rows.Close()
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return goals, errors.New("error scanning goal row")
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return goals, errors.New("error iterating goal rows")
	}
	return goals, nil
}

// UpdateGoalTarget changes the target for an existing period goal. Current and
// is_completed are left untouched.
func (q *GoalQueries) UpdateGoalTarget(userID uuid.UUID, key string, target float64) error {
	query := `UPDATE goals SET target = $1, updated_at = now() WHERE user_id = $2 AND goal_key = $3`
	res, err := q.DB.Exec(query, target, userID, key)
	if err != nil {
		return errors.New("unable to update goal target, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("goal not found")
	}
	return nil
}
