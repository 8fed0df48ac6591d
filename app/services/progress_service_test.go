package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paceline/paceline-backend/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStores struct {
	activities []models.Activity
	listErr    error

	goals       map[string]models.Goal
	goalInserts int

	progress       map[uuid.UUID]models.Progress
	upsertCount    int
	upsertErr      error
	getProgressErr error
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		goals:    map[string]models.Goal{},
		progress: map[uuid.UUID]models.Progress{},
	}
}

func (f *fakeStores) ListActivitiesByUser(userID uuid.UUID) ([]models.Activity, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.activities, nil
}

func (f *fakeStores) GetGoalByKey(userID uuid.UUID, key string) (models.Goal, bool, error) {
	g, ok := f.goals[key]
	return g, ok, nil
}

func (f *fakeStores) InsertGoal(g *models.Goal) error {
	f.goalInserts++
	if _, ok := f.goals[g.GoalKey]; ok {
		return nil // conflict, first writer wins
	}
	f.goals[g.GoalKey] = *g
	return nil
}

func (f *fakeStores) GetProgress(userID uuid.UUID) (models.Progress, bool, error) {
	if f.getProgressErr != nil {
		return models.Progress{}, false, f.getProgressErr
	}
	p, ok := f.progress[userID]
	return p, ok, nil
}

func (f *fakeStores) UpsertProgress(p *models.Progress) error {
	f.upsertCount++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.progress[p.UserID] = *p
	return nil
}

func newTestService(f *fakeStores) *ProgressService {
	return NewProgressService(f, f, f)
}

func ptr(v float64) *float64 { return &v }

func activity(id int64, userID uuid.UUID, distance float64, date string) models.Activity {
	return models.Activity{
		ID:           id,
		UserID:       userID,
		Name:         "Morning Run",
		ActivityType: models.ActivityTypeRun,
		Distance:     distance,
		ActivityDate: date,
	}
}

func TestUpdateProgressEmptyUserID(t *testing.T) {
	svc := newTestService(newFakeStores())
	_, err := svc.UpdateProgress(uuid.Nil, time.Now())
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestUpdateProgressNoActivities(t *testing.T) {
	f := newFakeStores()
	svc := newTestService(f)
	userID := uuid.New()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	p, err := svc.UpdateProgress(userID, now)
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.MonthlyMileage)
	assert.Equal(t, 0.0, p.SeasonalMileage)
	assert.Equal(t, 0.0, p.MonthlyProgress)
	assert.Equal(t, 0.0, p.SeasonalProgress)
	assert.Equal(t, 0, p.TotalActivities)
	assert.Equal(t, 0.0, p.AveragePace)
	assert.Equal(t, 0.0, p.LongestRun)
	assert.Equal(t, DefaultMonthlyTarget, p.MonthlyGoal)
	assert.Equal(t, DefaultSeasonalTarget, p.SeasonalGoal)
}

func TestUpdateProgressScenario(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	f.activities = []models.Activity{
		activity(1, userID, 5.0, "2024-06-10"),
		activity(2, userID, 3.0, "2024-06-12"),
	}
	svc := newTestService(f)
	now := time.Date(2024, time.June, 15, 8, 30, 0, 0, time.UTC)

	p, err := svc.UpdateProgress(userID, now)
	require.NoError(t, err)

	assert.Equal(t, 8.0, p.MonthlyMileage)
	assert.Equal(t, 8.0, p.SeasonalMileage)
	assert.InDelta(t, 30.53, p.MonthlyProgress, 0.01)
	assert.InDelta(t, 10.17, p.SeasonalProgress, 0.01)
	assert.Equal(t, 2, p.TotalActivities)
	assert.Equal(t, 5.0, p.LongestRun)
}

func TestUpdateProgressPeriodPartition(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	f.activities = []models.Activity{
		activity(1, userID, 10.0, "2024-01-15"),
		activity(2, userID, 7.0, "2024-02-20"),
		activity(3, userID, 4.0, "2024-03-10"),
	}
	svc := newTestService(f)
	// March 2024: only the March activity is in the month, and only the March
	// activity is in Spring. January and February belong to Winter 2023.
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	p, err := svc.UpdateProgress(userID, now)
	require.NoError(t, err)

	assert.Equal(t, 4.0, p.MonthlyMileage)
	assert.Equal(t, 4.0, p.SeasonalMileage)
	assert.Equal(t, 3, p.TotalActivities)
	assert.Equal(t, 10.0, p.LongestRun)
}

func TestUpdateProgressWinterRollover(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	f.activities = []models.Activity{
		activity(1, userID, 6.0, "2024-12-20"),
		activity(2, userID, 2.0, "2025-01-10"),
	}
	svc := newTestService(f)
	// January 2025 is part of Winter 2024, so the December run still counts
	// toward the season but not toward the month.
	now := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	p, err := svc.UpdateProgress(userID, now)
	require.NoError(t, err)

	assert.Equal(t, 2.0, p.MonthlyMileage)
	assert.Equal(t, 8.0, p.SeasonalMileage)

	_, found, err := f.GetGoalByKey(userID, "seasonal_2024_Winter")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestUpdateProgressSeasonLastDay(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	// Full timestamp on the season's last day still falls inside the season.
	f.activities = []models.Activity{
		activity(1, userID, 3.0, "2024-08-31T18:45:00Z"),
	}
	svc := newTestService(f)
	now := time.Date(2024, time.August, 31, 23, 0, 0, 0, time.UTC)

	p, err := svc.UpdateProgress(userID, now)
	require.NoError(t, err)

	assert.Equal(t, 3.0, p.MonthlyMileage)
	assert.Equal(t, 3.0, p.SeasonalMileage)
}

func TestUpdateProgressUnparseableDate(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	bad := activity(1, userID, 12.0, "not-a-date")
	bad.Pace = ptr(9.0)
	f.activities = []models.Activity{
		bad,
		activity(2, userID, 5.0, "2024-06-10"),
	}
	svc := newTestService(f)
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	p, err := svc.UpdateProgress(userID, now)
	require.NoError(t, err)

	// Excluded from the period sums but still counted in the aggregates.
	assert.Equal(t, 5.0, p.MonthlyMileage)
	assert.Equal(t, 5.0, p.SeasonalMileage)
	assert.Equal(t, 2, p.TotalActivities)
	assert.Equal(t, 12.0, p.LongestRun)
	assert.Equal(t, 9.0, p.AveragePace)
}

func TestUpdateProgressAveragePaceSkipsMissing(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	a1 := activity(1, userID, 3.0, "2024-06-01")
	a1.Pace = ptr(6.0)
	a2 := activity(2, userID, 4.0, "2024-06-02")
	a3 := activity(3, userID, 5.0, "2024-06-03")
	a3.Pace = ptr(8.0)
	f.activities = []models.Activity{a1, a2, a3}
	svc := newTestService(f)

	p, err := svc.UpdateProgress(userID, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 7.0, p.AveragePace)
}

func TestUpdateProgressUncappedPercent(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	f.activities = []models.Activity{
		activity(1, userID, 30.0, "2024-06-10"),
	}
	svc := newTestService(f)

	p, err := svc.UpdateProgress(userID, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Greater(t, p.MonthlyProgress, 100.0)
	assert.InDelta(t, 114.50, p.MonthlyProgress, 0.01)
}

func TestUpdateProgressIdempotent(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	f.activities = []models.Activity{
		activity(1, userID, 5.0, "2024-06-10"),
	}
	svc := newTestService(f)
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	first, err := svc.UpdateProgress(userID, now)
	require.NoError(t, err)
	second, err := svc.UpdateProgress(userID, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, f.progress, 1)
}

func TestUpdateProgressListError(t *testing.T) {
	f := newFakeStores()
	f.listErr = errors.New("db down")
	svc := newTestService(f)

	_, err := svc.UpdateProgress(uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrUpdateFailed)
}

func TestUpdateProgressUpsertError(t *testing.T) {
	f := newFakeStores()
	f.upsertErr = errors.New("db down")
	svc := newTestService(f)

	_, err := svc.UpdateProgress(uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrUpdateFailed)
}

func TestGetProgressComputesOnFirstAccess(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	f.activities = []models.Activity{
		activity(1, userID, 5.0, "2024-06-10"),
	}
	svc := newTestService(f)
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	p, err := svc.GetProgress(userID, now)
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.MonthlyMileage)
	assert.Equal(t, 1, f.upsertCount)

	// Second read hits the stored snapshot.
	_, err = svc.GetProgress(userID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, f.upsertCount)
}

func TestGetProgressStoreError(t *testing.T) {
	f := newFakeStores()
	f.getProgressErr = errors.New("db down")
	svc := newTestService(f)

	_, err := svc.GetProgress(uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrGetFailed)
}

func TestGetOrCreateMonthlyGoalDefaults(t *testing.T) {
	f := newFakeStores()
	svc := newTestService(f)
	userID := uuid.New()
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	g, err := svc.GetOrCreateMonthlyGoal(userID, time.June, 2024, now)
	require.NoError(t, err)

	assert.Equal(t, "monthly_2024_6", g.GoalKey)
	assert.Equal(t, models.GoalTypeMonthly, g.GoalType)
	assert.Equal(t, DefaultMonthlyTarget, g.Target)
	assert.Equal(t, "2024-06-01", g.StartDate)
	assert.Equal(t, "2024-06-30", g.EndDate)
	assert.Equal(t, 6, g.Month)
	assert.Equal(t, 2024, g.Year)
}

func TestGetOrCreateMonthlyGoalIdempotent(t *testing.T) {
	f := newFakeStores()
	svc := newTestService(f)
	userID := uuid.New()
	now := time.Now()

	first, err := svc.GetOrCreateMonthlyGoal(userID, time.June, 2024, now)
	require.NoError(t, err)
	second, err := svc.GetOrCreateMonthlyGoal(userID, time.June, 2024, now)
	require.NoError(t, err)

	assert.Equal(t, first.GoalKey, second.GoalKey)
	assert.Equal(t, 1, f.goalInserts)
	assert.Len(t, f.goals, 1)
}

func TestGetOrCreateMonthlyGoalKeepsExistingTarget(t *testing.T) {
	f := newFakeStores()
	userID := uuid.New()
	f.goals["monthly_2024_6"] = models.Goal{
		UserID:  userID,
		GoalKey: "monthly_2024_6",
		Target:  50.0,
	}
	svc := newTestService(f)

	g, err := svc.GetOrCreateMonthlyGoal(userID, time.June, 2024, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 50.0, g.Target)
	assert.Equal(t, 0, f.goalInserts)
}

func TestGetOrCreateSeasonalGoalWinter(t *testing.T) {
	f := newFakeStores()
	svc := newTestService(f)
	userID := uuid.New()

	g, err := svc.GetOrCreateSeasonalGoal(userID, SeasonWinter, 2024, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "seasonal_2024_Winter", g.GoalKey)
	assert.Equal(t, models.GoalTypeSeasonal, g.GoalType)
	assert.Equal(t, DefaultSeasonalTarget, g.Target)
	assert.Equal(t, "2024-12-01", g.StartDate)
	assert.Equal(t, "2025-02-28", g.EndDate)
	assert.Equal(t, SeasonWinter, g.Season)
}

func TestProgressPercentZeroTarget(t *testing.T) {
	assert.Equal(t, 0.0, progressPercent(10.0, 0))
	assert.Equal(t, 0.0, progressPercent(10.0, -1))
}
