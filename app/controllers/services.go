package controllers

import (
	"github.com/paceline/paceline-backend/app/queries"
	"github.com/paceline/paceline-backend/app/services"
	"github.com/paceline/paceline-backend/pkg/database"
)

var progressService *services.ProgressService

// InitServices wires the progress engine to the database-backed stores. Call
// after database.InitDB.
func InitServices() {
	progressService = services.NewProgressService(
		&queries.ActivityQueries{DB: database.DB},
		&queries.GoalQueries{DB: database.DB},
		&queries.ProgressQueries{DB: database.DB},
	)
}
