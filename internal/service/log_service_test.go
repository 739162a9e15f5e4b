package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogService(t *testing.T) {
	catalog := &catalogRepoMock{
		foods:    []entity.Food{{ID: 1, Name: "Oatmeal", Calories: 150}},
		workouts: []entity.Workout{{ID: 2, Name: "Plank", Equipment: "None", Difficulty: "Medium"}},
	}
	logs := &logsRepoMock{}
	s := service.NewLogService(catalog, logs)
	ctx := context.Background()
	uid := uuid.New()

	t.Run("catalog listed", func(t *testing.T) {
		foods, err := s.ListFoods(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog.foods, foods)
		workouts, err := s.ListWorkouts(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog.workouts, workouts)
	})
	t.Run("food logged today by default", func(t *testing.T) {
		err := s.LogFood(ctx, uid, &service.FoodLogRequest{FoodID: 1, CalorieGoal: 350, TotalWeightLost: 1.5})
		require.NoError(t, err)
		assert.Equal(t, uid, logs.insertedF.UserID)
		assert.Equal(t, 350.0, logs.insertedF.CalorieGoal)
		y, m, d := time.Now().Date()
		ly, lm, ld := logs.insertedF.LogDate.Date()
		assert.Equal(t, []int{y, int(m), d}, []int{ly, int(lm), ld})
	})
	t.Run("workout logged on given date", func(t *testing.T) {
		date := time.Date(2025, time.May, 1, 18, 0, 0, 0, time.UTC)
		err := s.LogWorkout(ctx, uid, &service.WorkoutLogRequest{
			WorkoutID:      2,
			WorkoutStreak:  3,
			CaloriesBurned: 120,
			HeartRate:      140,
			LogDate:        date,
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), logs.insertedW.LogDate)
		assert.Equal(t, 3, logs.insertedW.WorkoutStreak)
	})
	t.Run("validation", func(t *testing.T) {
		assert.ErrorIs(t, s.LogFood(ctx, uid, &service.FoodLogRequest{}), errorvalues.ErrValidation)
		assert.ErrorIs(t, s.LogWorkout(ctx, uid, &service.WorkoutLogRequest{WorkoutID: 2, HeartRate: 400}), errorvalues.ErrValidation)
	})
	t.Run("unknown catalog entry", func(t *testing.T) {
		logs.state = stateNotFound
		err := s.LogFood(ctx, uid, &service.FoodLogRequest{FoodID: 99})
		assert.ErrorIs(t, err, errorvalues.ErrReferenceNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		logs.state = stateDBError
		catalog.state = stateDBError
		assert.ErrorIs(t, s.LogWorkout(ctx, uid, &service.WorkoutLogRequest{WorkoutID: 2}), errDB)
		_, err := s.ListFoods(ctx)
		assert.ErrorIs(t, err, errDB)
	})
}
