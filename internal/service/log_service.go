package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type LogService struct {
	catalog repository.CatalogRepositoryI
	logs    repository.LogsRepositoryI
	now     func() time.Time
}

func NewLogService(catalog repository.CatalogRepositoryI, logs repository.LogsRepositoryI) *LogService {
	if catalog == nil || logs == nil {
		log.Fatal("on log service provided nil repos")
	}
	return &LogService{
		catalog: catalog,
		logs:    logs,
		now:     time.Now,
	}
}

func (ls *LogService) ListFoods(ctx context.Context) ([]entity.Food, error) {
	foods, err := ls.catalog.ListFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog repository error: %w", err)
	}
	return foods, nil
}

func (ls *LogService) ListWorkouts(ctx context.Context) ([]entity.Workout, error) {
	workouts, err := ls.catalog.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog repository error: %w", err)
	}
	return workouts, nil
}

func (ls *LogService) LogFood(ctx context.Context, uid uuid.UUID, req *FoodLogRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	err := ls.logs.InsertFoodLog(ctx, &entity.FoodLog{
		UserID:          uid,
		FoodID:          req.FoodID,
		CalorieGoal:     req.CalorieGoal,
		TotalWeightLost: req.TotalWeightLost,
		LogDate:         ls.dateOrToday(req.LogDate),
		Completed:       req.Completed,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrReferenceNotFound) {
			return err
		}
		return fmt.Errorf("logs repository error: %w", err)
	}
	return nil
}

func (ls *LogService) LogWorkout(ctx context.Context, uid uuid.UUID, req *WorkoutLogRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	err := ls.logs.InsertWorkoutLog(ctx, &entity.WorkoutLog{
		UserID:         uid,
		WorkoutID:      req.WorkoutID,
		WorkoutStreak:  req.WorkoutStreak,
		CaloriesBurned: req.CaloriesBurned,
		HeartRate:      req.HeartRate,
		LogDate:        ls.dateOrToday(req.LogDate),
		Completed:      req.Completed,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrReferenceNotFound) {
			return err
		}
		return fmt.Errorf("logs repository error: %w", err)
	}
	return nil
}

func (ls *LogService) dateOrToday(date time.Time) time.Time {
	if date.IsZero() {
		return truncateToDay(ls.now())
	}
	return truncateToDay(date)
}
