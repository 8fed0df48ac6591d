package controllers

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/paceline/paceline-backend/app/models"
	"github.com/paceline/paceline-backend/app/queries"
	"github.com/paceline/paceline-backend/pkg/database"
	"github.com/paceline/paceline-backend/pkg/utils"
	"golang.org/x/oauth2"
)

const defaultPageSize = 20

func CreateActivity(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CreateActivityRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	a := &models.Activity{
		ID:           manualActivityID(),
		UserID:       userID,
		Name:         req.Name,
		ActivityType: req.Type,
		Distance:     req.Distance,
		Duration:     req.Duration,
		ActivityDate: req.Date,
		Pace:         req.Pace,
		Elevation:    req.Elevation,
		Calories:     req.Calories,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	aq := queries.ActivityQueries{DB: database.DB}
	if err := aq.CreateActivity(a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create activity"})
	}

	if _, err := progressService.UpdateProgress(userID, time.Now()); err != nil {
		log.Printf("event=progress_update_failed user=%s error=%v", userID.String(), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Activity created", "activity": a})
}

func GetActivities(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultPageSize)
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	aq := queries.ActivityQueries{DB: database.DB}
	total, err := aq.CountActivitiesByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count activities"})
	}
	activities, err := aq.ListActivitiesPage(userID, limit, (page-1)*limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get activities"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"activities": activities,
		"page":       page,
		"limit":      limit,
		"total":      total,
	})
}

func GetActivity(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity id"})
	}

	aq := queries.ActivityQueries{DB: database.DB}
	a, err := aq.GetActivityByID(userID, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Activity not found"})
	}

	return c.Status(fiber.StatusOK).JSON(a)
}

func UpdateActivity(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity id"})
	}

	req := &models.UpdateActivityRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	aq := queries.ActivityQueries{DB: database.DB}
	if err := aq.UpdateActivity(userID, id, req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := progressService.UpdateProgress(userID, time.Now()); err != nil {
		log.Printf("event=progress_update_failed user=%s error=%v", userID.String(), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Activity updated"})
}

func DeleteActivity(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity id"})
	}

	aq := queries.ActivityQueries{DB: database.DB}
	if err := aq.DeleteActivity(userID, id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Activity not found"})
	}

	if _, err := progressService.UpdateProgress(userID, time.Now()); err != nil {
		log.Printf("event=progress_update_failed user=%s error=%v", userID.String(), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Activity deleted"})
}

func ExportActivitiesCSV(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	aq := queries.ActivityQueries{DB: database.DB}
	activities, err := aq.ListActivitiesByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get activities"})
	}

	var buf bytes.Buffer
	if err := utils.WriteActivitiesCSV(&buf, activities); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build CSV export"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="activities.csv"`)
	return c.Send(buf.Bytes())
}

// SyncActivities pulls the connected athlete's recent activities from Strava,
// upserts them by source id, and recomputes progress.
func SyncActivities(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if user.StravaAccessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No Strava account connected"})
	}

	synced, err := syncUserActivities(context.Background(), user)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to sync activities"})
	}

	progress, err := progressService.UpdateProgress(userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Sync complete",
		"synced":   synced,
		"progress": progress,
	})
}

// syncUserActivities fetches and stores all pages for one user. Shared with
// the nightly job.
func syncUserActivities(ctx context.Context, user models.User) (int, error) {
	token := &oauth2.Token{
		AccessToken:  user.StravaAccessToken,
		RefreshToken: user.StravaRefreshToken,
		Expiry:       user.StravaTokenExpiry,
	}

	aq := queries.ActivityQueries{DB: database.DB}
	synced := 0
	perPage := 100
	for page := 1; ; page++ {
		batch, err := utils.FetchStravaActivities(ctx, token, page, perPage)
		if err != nil {
			return synced, err
		}
		if len(batch) == 0 {
			break
		}
		for _, sa := range batch {
			a := utils.NormalizeStravaActivity(user.ID, sa, time.Now())
			if err := aq.UpsertActivity(&a); err != nil {
				return synced, err
			}
			synced++
		}
		if len(batch) < perPage {
			break
		}
	}
	return synced, nil
}

// manualActivityID generates an id for manually entered activities outside
// the range Strava assigns, so a later sync cannot collide with it.
func manualActivityID() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]) & (1<<62 - 1))
}
