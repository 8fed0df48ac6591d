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

type UserQueries struct {
	DB *sql.DB
}

const userColumns = `uid, username, user_role, email, phone_number, avatar, password_hash, verified, strava_athlete_id, strava_access_token, strava_refresh_token, strava_token_expiry, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (models.User, error) {
	var u models.User
	var athleteID, access, refresh sql.NullString
	var expiry sql.NullTime
	err := row.Scan(&u.ID, &u.Username, &u.UserRole, &u.Email, &u.PhoneNumber, &u.Avatar, &u.PasswordHash, &u.Verified, &athleteID, &access, &refresh, &expiry, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return u, err
	}
	u.StravaAthleteID = athleteID.String
	u.StravaAccessToken = access.String
	u.StravaRefreshToken = refresh.String
	if expiry.Valid {
		u.StravaTokenExpiry = expiry.Time
	}
	return u, nil
}

func (q *UserQueries) GetUserByID(id uuid.UUID) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`
	user, err := scanUser(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return user, errors.New("user not found")
		}
		return user, errors.New("unable to get user, DB error")
	}
	return user, nil
}

func (q *UserQueries) GetUserByEmail(email string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(q.DB.QueryRow(query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return user, errors.New("user not found")
		}
		return user, errors.New("unable to get user, DB error")
	}
	return user, nil
}

func (q *UserQueries) GetUserByUsername(username string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	user, err := scanUser(q.DB.QueryRow(query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return user, errors.New("user not found")
		}
		return user, errors.New("unable to get user, DB error")
	}
	return user, nil
}

func (q *UserQueries) CreateUser(u *models.User) error {
	query := `INSERT INTO users (uid, username, user_role, email, password_hash, phone_number, verified, created_at, updated_at, otp, avatar)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := q.DB.Exec(query,
		u.ID,
		u.Username,
		u.UserRole,
		u.Email,
		u.PasswordHash,
		u.PhoneNumber,
		u.Verified,
		u.CreatedAt,
		u.UpdatedAt,
		u.OTP,
		u.Avatar,
	)
	if err != nil {
		return errors.New("unable to create user, DB error")
	}
	return nil
}

func (q *UserQueries) VerifyOTPByEmail(email string, otp string) error {
	query := `UPDATE users SET verified = TRUE, updated_at = now() WHERE email = $1 AND otp = $2 AND verified = FALSE`
	res, err := q.DB.Exec(query, email, otp)
	if err != nil {
		return errors.New("unable to verify OTP, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("invalid otp or already verified")
	}
	return nil
}

func (q *UserQueries) UpdateOTPByEmail(email string, otp string) error {
	query := `UPDATE users SET otp = $1, updated_at = now() WHERE email = $2`
	res, err := q.DB.Exec(query, otp, email)
	if err != nil {
		return errors.New("unable to update otp, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) UpdateUser(userID uuid.UUID, req *models.UpdateUserRequest) error {
	setClauses := []string{}
	args := []interface{}{}
	argID := 1

	if req.Username != nil {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", argID))
		args = append(args, *req.Username)
		argID++
	}
	if req.PhoneNumber != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone_number = $%d", argID))
		args = append(args, *req.PhoneNumber)
		argID++
	}
	if req.Avatar != nil {
		setClauses = append(setClauses, fmt.Sprintf("avatar = $%d", argID))
		args = append(args, *req.Avatar)
		argID++
	}

	if len(setClauses) == 0 {
		return errors.New("no fields to update")
	}

	setClauses = append(setClauses, "updated_at = now()")
	query := fmt.Sprintf(`UPDATE users SET %s WHERE uid = $%d`, strings.Join(setClauses, ", "), argID)
	args = append(args, userID)

	res, err := q.DB.Exec(query, args...)
	if err != nil {
		return errors.New("unable to update user, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) DeleteUser(id uuid.UUID) error {
	query := `DELETE FROM users WHERE uid = $1`
	res, err := q.DB.Exec(query, id)
	if err != nil {
		return errors.New("unable to delete user, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no user deleted")
	}
	return nil
}

func (q *UserQueries) ListUsers() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := q.DB.Query(query)
	if err != nil {
		return users, errors.New("unable to get users, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return users, errors.New("error scanning user row")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return users, errors.New("error iterating user rows")
	}
	return users, nil
}

// SaveStravaConnection stores the athlete id and token pair issued by the
// OAuth provider for a user.
func (q *UserQueries) SaveStravaConnection(userID uuid.UUID, athleteID, accessToken, refreshToken string, expiry time.Time) error {
	query := `UPDATE users SET strava_athlete_id = $1, strava_access_token = $2, strava_refresh_token = $3, strava_token_expiry = $4, updated_at = now() WHERE uid = $5`
	res, err := q.DB.Exec(query, athleteID, accessToken, refreshToken, expiry, userID)
	if err != nil {
		return errors.New("unable to save strava connection, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

// ListStravaConnectedUsers returns users with a stored Strava token, for the
// scheduled sync job.
func (q *UserQueries) ListStravaConnectedUsers() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE strava_access_token IS NOT NULL AND strava_access_token <> ''`
	rows, err := q.DB.Query(query)
	if err != nil {
		return users, errors.New("unable to get strava users, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return users, errors.New("error scanning user row")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return users, errors.New("error iterating user rows")
	}
	return users, nil
}

func (q *UserQueries) CountUsers() (int, error) {
	var cnt int
	if err := q.DB.QueryRow(`SELECT count(*) FROM users`).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count users")
	}
	return cnt, nil
}
