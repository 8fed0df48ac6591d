package queries

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paceline/paceline-backend/app/models"
)

type ActivityQueries struct {
	DB *sql.DB
}

const activityColumns = `id, user_id, name, activity_type, distance, duration, activity_date, pace, elevation, calories, created_at, updated_at`

func scanActivity(row interface{ Scan(...interface{}) error }) (models.Activity, error) {
	var a models.Activity
	var pace, elevation, calories sql.NullFloat64
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.ActivityType, &a.Distance, &a.Duration, &a.ActivityDate, &pace, &elevation, &calories, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return a, err
	}
	if pace.Valid {
		a.Pace = &pace.Float64
	}
	if elevation.Valid {
		a.Elevation = &elevation.Float64
	}
	if calories.Valid {
		a.Calories = &calories.Float64
	}
	return a, nil
}

// ListActivitiesByUser returns the user's full activity set, newest first.
func (q *ActivityQueries) ListActivitiesByUser(userID uuid.UUID) ([]models.Activity, error) {
	var activities []models.Activity
	query := `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 ORDER BY activity_date DESC`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return activities, errors.New("unable to query activities, DB error")
	}
	defer rows.Close()
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return activities, errors.New("error scanning activity row")
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return activities, errors.New("error iterating activity rows")
	}
	return activities, nil
}

func (q *ActivityQueries) ListActivitiesPage(userID uuid.UUID, limit, offset int) ([]models.Activity, error) {
	var activities []models.Activity
	query := `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 ORDER BY activity_date DESC LIMIT $2 OFFSET $3`
	rows, err := q.DB.Query(query, userID, limit, offset)
	if err != nil {
		return activities, errors.New("unable to query activities, DB error")
	}
	defer rows.Close()
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return activities, errors.New("error scanning activity row")
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return activities, errors.New("error iterating activity rows")
	}
	return activities, nil
}

func (q *ActivityQueries) CountActivitiesByUser(userID uuid.UUID) (int, error) {
	var cnt int
	query := `SELECT count(*) FROM activities WHERE user_id = $1`
	if err := q.DB.QueryRow(query, userID).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count activities")
	}
	return cnt, nil
}

func (q *ActivityQueries) GetActivityByID(userID uuid.UUID, id int64) (models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 AND id = $2`
	a, err := scanActivity(q.DB.QueryRow(query, userID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return a, errors.New("activity not found")
		}
		return a, errors.New("unable to get activity, DB error")
	}
	return a, nil
}

func (q *ActivityQueries) CreateActivity(a *models.Activity) error {
	query := `INSERT INTO activities (id, user_id, name, activity_type, distance, duration, activity_date, pace, elevation, calories, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := q.DB.Exec(query, a.ID, a.UserID, a.Name, a.ActivityType, a.Distance, a.Duration, a.ActivityDate, a.Pace, a.Elevation, a.Calories, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return errors.New("unable to create activity, DB error")
	}
	return nil
}

// UpsertActivity writes a synced activity keyed by its source-assigned id.
// Re-syncing the same activity refreshes the synced fields in place.
func (q *ActivityQueries) UpsertActivity(a *models.Activity) error {
	query := `INSERT INTO activities (id, user_id, name, activity_type, distance, duration, activity_date, pace, elevation, calories, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  ON CONFLICT (user_id, id) DO UPDATE SET
				name = EXCLUDED.name,
				activity_type = EXCLUDED.activity_type,
				distance = EXCLUDED.distance,
				duration = EXCLUDED.duration,
				activity_date = EXCLUDED.activity_date,
				pace = EXCLUDED.pace,
				elevation = EXCLUDED.elevation,
				calories = EXCLUDED.calories,
				updated_at = EXCLUDED.updated_at`
	_, err := q.DB.Exec(query, a.ID, a.UserID, a.Name, a.ActivityType, a.Distance, a.Duration, a.ActivityDate, a.Pace, a.Elevation, a.Calories, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return errors.New("unable to upsert activity, DB error")
	}
	return nil
}

func (q *ActivityQueries) UpdateActivity(userID uuid.UUID, id int64, req *models.UpdateActivityRequest) error {
	setClauses := []string{}
	args := []interface{}{}
	argID := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *req.Name)
		argID++
	}
	if req.Type != nil {
		setClauses = append(setClauses, fmt.Sprintf("activity_type = $%d", argID))
		args = append(args, *req.Type)
		argID++
	}
	if req.Distance != nil {
		setClauses = append(setClauses, fmt.Sprintf("distance = $%d", argID))
		args = append(args, *req.Distance)
		argID++
	}
	if req.Duration != nil {
		setClauses = append(setClauses, fmt.Sprintf("duration = $%d", argID))
		args = append(args, *req.Duration)
		argID++
	}
	if req.Pace != nil {
		setClauses = append(setClauses, fmt.Sprintf("pace = $%d", argID))
		args = append(args, *req.Pace)
		argID++
	}
	if req.Elevation != nil {
		setClauses = append(setClauses, fmt.Sprintf("elevation = $%d", argID))
		args = append(args, *req.Elevation)
		argID++
	}
	if req.Calories != nil {
		setClauses = append(setClauses, fmt.Sprintf("calories = $%d", argID))
		args = append(args, *req.Calories)
		argID++
	}

	if len(setClauses) == 0 {
		return errors.New("no fields to update")
	}

	setClauses = append(setClauses, "updated_at = now()")
	query := fmt.Sprintf(`UPDATE activities SET %s WHERE user_id = $%d AND id = $%d`, strings.Join(setClauses, ", "), argID, argID+1)
	args = append(args, userID, id)

	res, err := q.DB.Exec(query, args...)
	if err != nil {
		return errors.New("unable to update activity, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no activity updated")
	}
	return nil
}

func (q *ActivityQueries) DeleteActivity(userID uuid.UUID, id int64) error {
	query := `DELETE FROM activities WHERE user_id = $1 AND id = $2`
	res, err := q.DB.Exec(query, userID, id)
	if err != nil {
		return errors.New("unable to delete activity, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no activity deleted")
	}
	return nil
}

func (q *ActivityQueries) CountAllActivities() (int, error) {
	var cnt int
	if err := q.DB.QueryRow(`SELECT count(*) FROM activities`).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count activities")
	}
	return cnt, nil
}

func (q *ActivityQueries) TotalMiles() (float64, error) {
	var total sql.NullFloat64
	if err := q.DB.QueryRow(`SELECT sum(distance) FROM activities`).Scan(&total); err != nil {
		return 0, errors.New("unable to sum activity distance")
	}
	return total.Float64, nil
}

func (q *ActivityQueries) CountActivitiesSince(since time.Time) (int, error) {
	var cnt int
	query := `SELECT count(*) FROM activities WHERE created_at >= $1`
	if err := q.DB.QueryRow(query, since).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count recent activities")
	}
	return cnt, nil
}
