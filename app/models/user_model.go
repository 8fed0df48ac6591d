package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"uid"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	Verified     bool      `json:"verified"`
	OTP          string    `json:"-"`
	UserRole     string    `json:"user_role"`

	StravaAthleteID    string    `json:"strava_athlete_id,omitempty"`
	StravaAccessToken  string    `json:"-"`
	StravaRefreshToken string    `json:"-"`
	StravaTokenExpiry  time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateUserRequest struct {
	Username    *string `json:"username"`
	PhoneNumber *string `json:"phone_number"`
	Avatar      *string `json:"avatar"`
}
