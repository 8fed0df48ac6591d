package utils

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/paceline/paceline-backend/app/models"
)

// WriteActivitiesCSV writes the export format consumed by the web client:
// one row per activity, optional fields left blank.
func WriteActivitiesCSV(w io.Writer, activities []models.Activity) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "type", "distance_miles", "duration_minutes", "date", "pace_min_per_mile", "elevation_feet", "calories"}); err != nil {
		return err
	}

	for _, a := range activities {
		row := []string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			a.ActivityType,
			strconv.FormatFloat(a.Distance, 'f', 2, 64),
			strconv.FormatFloat(a.Duration, 'f', 2, 64),
			a.ActivityDate,
			formatOptional(a.Pace),
			formatOptional(a.Elevation),
			formatOptional(a.Calories),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
