package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/paceline/paceline-backend/app/models"
)

// Default mileage targets applied when a period goal is first created.
// Already-created goals keep their target even if these change.
const (
	DefaultMonthlyTarget  = 26.2
	DefaultSeasonalTarget = 78.6
)

var (
	ErrEmptyUserID  = errors.New("user id is required")
	ErrUpdateFailed = errors.New("failed to update progress")
	ErrGetFailed    = errors.New("failed to get progress")
)

// ActivityStore is the read side of the activity collection.
type ActivityStore interface {
	ListActivitiesByUser(userID uuid.UUID) ([]models.Activity, error)
}

// GoalStore reads and creates per-period goal documents keyed by the
// deterministic period key.
type GoalStore interface {
	GetGoalByKey(userID uuid.UUID, key string) (models.Goal, bool, error)
	InsertGoal(g *models.Goal) error
}

// ProgressStore holds the single overwritable snapshot per user.
type ProgressStore interface {
	GetProgress(userID uuid.UUID) (models.Progress, bool, error)
	UpsertProgress(p *models.Progress) error
}

// ProgressService computes and persists a user's progress snapshot and makes
// sure the goal rows for the current month and season exist. It is stateless;
// one instance is built at startup and shared by handlers and jobs.
type ProgressService struct {
	Activities ActivityStore
	Goals      GoalStore
	Progress   ProgressStore
}

func NewProgressService(activities ActivityStore, goals GoalStore, progress ProgressStore) *ProgressService {
	return &ProgressService{Activities: activities, Goals: goals, Progress: progress}
}

// UpdateProgress recomputes the snapshot for userID from the full activity set
// as of now and overwrites the stored one. The multi-step write sequence is
// not transactional: a failure partway through can leave fresh goal rows with
// a stale snapshot, which the next call repairs by recomputing from scratch.
func (s *ProgressService) UpdateProgress(userID uuid.UUID, now time.Time) (models.Progress, error) {
	if userID == uuid.Nil {
		return models.Progress{}, ErrEmptyUserID
	}

	activities, err := s.Activities.ListActivitiesByUser(userID)
	if err != nil {
		return models.Progress{}, ErrUpdateFailed
	}

	month := now.Month()
	year := now.Year()
	season := SeasonForMonth(month)
	seasonYear := SeasonYear(now)
	seasonStart, seasonEnd := SeasonRange(season, seasonYear)

	var monthlyMileage, seasonalMileage float64
	var paceSum float64
	var paceCount int
	var longestRun float64

	for _, a := range activities {
		if a.Distance > longestRun {
			longestRun = a.Distance
		}
		if a.Pace != nil {
			paceSum += *a.Pace
			paceCount++
		}

		d, ok := parseActivityDate(a.ActivityDate)
		if !ok {
			continue
		}
		d = date(d.Year(), d.Month(), d.Day())
		if d.Year() == year && d.Month() == month {
			monthlyMileage += a.Distance
		}
		if !d.Before(seasonStart) && !d.After(seasonEnd) {
			seasonalMileage += a.Distance
		}
	}

	averagePace := 0.0
	if paceCount > 0 {
		averagePace = paceSum / float64(paceCount)
	}

	monthlyGoal, err := s.GetOrCreateMonthlyGoal(userID, month, year, now)
	if err != nil {
		return models.Progress{}, ErrUpdateFailed
	}
	seasonalGoal, err := s.GetOrCreateSeasonalGoal(userID, season, seasonYear, now)
	if err != nil {
		return models.Progress{}, ErrUpdateFailed
	}

	progress := models.Progress{
		UserID:           userID,
		MonthlyMileage:   monthlyMileage,
		SeasonalMileage:  seasonalMileage,
		MonthlyGoal:      monthlyGoal.Target,
		SeasonalGoal:     seasonalGoal.Target,
		MonthlyProgress:  progressPercent(monthlyMileage, monthlyGoal.Target),
		SeasonalProgress: progressPercent(seasonalMileage, seasonalGoal.Target),
		TotalActivities:  len(activities),
		AveragePace:      averagePace,
		LongestRun:       longestRun,
		LastUpdated:      now,
	}

	if err := s.Progress.UpsertProgress(&progress); err != nil {
		return models.Progress{}, ErrUpdateFailed
	}
	return progress, nil
}

// GetProgress returns the stored snapshot, computing one on demand when the
// user has none yet.
func (s *ProgressService) GetProgress(userID uuid.UUID, now time.Time) (models.Progress, error) {
	if userID == uuid.Nil {
		return models.Progress{}, ErrEmptyUserID
	}
	p, found, err := s.Progress.GetProgress(userID)
	if err != nil {
		return models.Progress{}, ErrGetFailed
	}
	if found {
		return p, nil
	}
	return s.UpdateProgress(userID, now)
}

// GetOrCreateMonthlyGoal returns the goal for (userID, month, year), creating
// it with the default target on first access. An existing goal is returned
// as-is even if the default has changed since it was created.
func (s *ProgressService) GetOrCreateMonthlyGoal(userID uuid.UUID, month time.Month, year int, now time.Time) (models.Goal, error) {
	key := MonthlyGoalKey(year, month)
	if g, found, err := s.Goals.GetGoalByKey(userID, key); err != nil {
		return models.Goal{}, err
	} else if found {
		return g, nil
	}

	start, end := MonthRange(year, month)
	g := models.Goal{
		UserID:    userID,
		GoalKey:   key,
		GoalType:  models.GoalTypeMonthly,
		Target:    DefaultMonthlyTarget,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Month:     int(month),
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.createGoal(userID, key, g)
}

// GetOrCreateSeasonalGoal is the seasonal counterpart; year is the season
// year, which for Winter is the year of its December start.
func (s *ProgressService) GetOrCreateSeasonalGoal(userID uuid.UUID, season string, year int, now time.Time) (models.Goal, error) {
	key := SeasonalGoalKey(year, season)
	if g, found, err := s.Goals.GetGoalByKey(userID, key); err != nil {
		return models.Goal{}, err
	} else if found {
		return g, nil
	}

	start, end := SeasonRange(season, year)
	g := models.Goal{
		UserID:    userID,
		GoalKey:   key,
		GoalType:  models.GoalTypeSeasonal,
		Target:    DefaultSeasonalTarget,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Season:    season,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.createGoal(userID, key, g)
}

// createGoal inserts and re-reads so concurrent creates for the same key
// converge on one row. Defaults are constant, so whichever write wins carries
// the same target.
func (s *ProgressService) createGoal(userID uuid.UUID, key string, g models.Goal) (models.Goal, error) {
	if err := s.Goals.InsertGoal(&g); err != nil {
		return models.Goal{}, err
	}
	if stored, found, err := s.Goals.GetGoalByKey(userID, key); err == nil && found {
		return stored, nil
	}
	return g, nil
}

func progressPercent(mileage, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return mileage / target * 100
}

// parseActivityDate accepts the ISO-8601 date strings the sync writes
// (full timestamps) as well as plain dates from manual entry. Activities with
// unparseable dates still count toward the all-time aggregates but cannot be
// placed in a period.
func parseActivityDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
