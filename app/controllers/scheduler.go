package controllers

import (
	"context"
	"log"
	"time"

	"github.com/paceline/paceline-backend/app/queries"
	"github.com/paceline/paceline-backend/pkg/database"
	"github.com/paceline/paceline-backend/pkg/utils"
	"github.com/robfig/cron"
)

// StartScheduler runs the nightly Strava sync and the hourly cleanup of
// expired refresh tokens. Spec strings use the six-field format with seconds.
func StartScheduler() {
	c := cron.New()

	if err := c.AddFunc("0 0 2 * * *", syncAllConnectedUsers); err != nil {
		log.Fatalf("failed to schedule nightly sync: %v", err)
	}
	if err := c.AddFunc("0 0 * * * *", cleanupExpiredTokens); err != nil {
		log.Fatalf("failed to schedule token cleanup: %v", err)
	}

	c.Start()
	log.Println("event=scheduler_started")
}

// syncAllConnectedUsers walks every Strava-connected user, pulls their
// activities, and recomputes progress. One user failing does not stop the run.
func syncAllConnectedUsers() {
	userQueries := queries.UserQueries{DB: database.DB}
	users, err := userQueries.ListStravaConnectedUsers()
	if err != nil {
		log.Printf("event=nightly_sync_failed error=%v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	for _, user := range users {
		synced, err := syncUserActivities(ctx, user)
		if err != nil {
			log.Printf("event=user_sync_failed user=%s error=%v", user.ID.String(), err)
			continue
		}
		progress, err := progressService.UpdateProgress(user.ID, time.Now())
		if err != nil {
			log.Printf("event=progress_update_failed user=%s error=%v", user.ID.String(), err)
			continue
		}
		log.Printf("event=user_synced user=%s activities=%d", user.ID.String(), synced)

		if monthlyBehindPace(progress.MonthlyProgress, time.Now()) {
			if err := utils.SendGoalReminderEmail(user.Email, progress.MonthlyProgress); err != nil {
				log.Printf("event=goal_reminder_failed user=%s error=%v", user.ID.String(), err)
			}
		}
	}
}

// monthlyBehindPace reports whether a monthly progress percentage trails the
// share of the month already elapsed. A user at 40% on the 15th of a 30-day
// month is on pace; at 40% on the 20th they are behind.
func monthlyBehindPace(monthlyProgress float64, now time.Time) bool {
	if monthlyProgress >= 100 {
		return false
	}
	daysInMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	expected := float64(now.Day()) / float64(daysInMonth) * 100
	return monthlyProgress < expected
}

func cleanupExpiredTokens() {
	tokenQueries := queries.RefreshTokenQueries{DB: database.DB}
	deleted, err := tokenQueries.DeleteExpiredRefreshTokens(time.Now())
	if err != nil {
		log.Printf("event=token_cleanup_failed error=%v", err)
		return
	}
	if deleted > 0 {
		log.Printf("event=expired_tokens_removed count=%d", deleted)
	}
}
