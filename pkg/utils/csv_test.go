package utils

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/paceline/paceline-backend/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteActivitiesCSV(t *testing.T) {
	pace := 8.5
	activities := []models.Activity{
		{
			ID:           1,
			UserID:       uuid.New(),
			Name:         "Morning Run",
			ActivityType: models.ActivityTypeRun,
			Distance:     5,
			Duration:     42.5,
			ActivityDate: "2024-06-10",
			Pace:         &pace,
		},
		{
			ID:           2,
			Name:         "Evening Walk",
			ActivityType: models.ActivityTypeWalk,
			Distance:     2.25,
			Duration:     40,
			ActivityDate: "2024-06-11",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteActivitiesCSV(&buf, activities))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"id", "name", "type", "distance_miles", "duration_minutes", "date", "pace_min_per_mile", "elevation_feet", "calories"}, rows[0])
	assert.Equal(t, []string{"1", "Morning Run", "Run", "5.00", "42.50", "2024-06-10", "8.50", "", ""}, rows[1])
	assert.Equal(t, []string{"2", "Evening Walk", "Walk", "2.25", "40.00", "2024-06-11", "", "", ""}, rows[2])
}

func TestWriteActivitiesCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteActivitiesCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
