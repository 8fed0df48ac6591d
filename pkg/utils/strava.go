package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/paceline/paceline-backend/app/models"
	"golang.org/x/oauth2"
)

const (
	metersPerMile = 1609.344
	feetPerMeter  = 3.28084

	stravaActivitiesURL = "https://www.strava.com/api/v3/athlete/activities"
)

var stravaEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.strava.com/oauth/authorize",
	TokenURL: "https://www.strava.com/oauth/token",
}

// StravaOAuthConfig builds the OAuth2 config for the Strava provider from env.
func StravaOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("STRAVA_CLIENT_ID"),
		ClientSecret: os.Getenv("STRAVA_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("STRAVA_REDIRECT_URL"),
		Scopes:       []string{"read,activity:read_all"},
		Endpoint:     stravaEndpoint,
	}
}

// StravaActivity is the provider's wire shape: metric units, seconds, and a
// full timestamp.
type StravaActivity struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	Distance           float64   `json:"distance"`
	MovingTime         int       `json:"moving_time"`
	StartDate          time.Time `json:"start_date"`
	TotalElevationGain float64   `json:"total_elevation_gain"`
	Calories           float64   `json:"calories"`
}

// FetchStravaActivities pulls one page of the athlete's activities using the
// stored token.
func FetchStravaActivities(ctx context.Context, token *oauth2.Token, page, perPage int) ([]StravaActivity, error) {
	client := StravaOAuthConfig().Client(ctx, token)
	url := fmt.Sprintf("%s?page=%d&per_page=%d", stravaActivitiesURL, page, perPage)
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("strava request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("strava returned status " + resp.Status)
	}

	var activities []StravaActivity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("decode strava response: %w", err)
	}
	return activities, nil
}

// NormalizeStravaActivity converts a provider activity into the stored model:
// miles, minutes, feet, and a derived pace in minutes per mile. Pace is left
// unset for zero-distance activities.
func NormalizeStravaActivity(userID uuid.UUID, sa StravaActivity, now time.Time) models.Activity {
	distance := sa.Distance / metersPerMile
	duration := float64(sa.MovingTime) / 60.0

	a := models.Activity{
		ID:           sa.ID,
		UserID:       userID,
		Name:         sa.Name,
		ActivityType: sa.Type,
		Distance:     distance,
		Duration:     duration,
		ActivityDate: sa.StartDate.UTC().Format(time.RFC3339),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if distance > 0 {
		pace := duration / distance
		a.Pace = &pace
	}
	if sa.TotalElevationGain > 0 {
		elevation := sa.TotalElevationGain * feetPerMeter
		a.Elevation = &elevation
	}
	if sa.Calories > 0 {
		calories := sa.Calories
		a.Calories = &calories
	}
	return a
}
