package models

// AdminStats is the admin dashboard counter set.
type AdminStats struct {
	TotalUsers         int     `json:"total_users"`
	TotalActivities    int     `json:"total_activities"`
	TotalMiles         float64 `json:"total_miles"`
	ActivitiesLastWeek int     `json:"activities_last_week"`
}
