package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

// Materializer turns an accepted plan into catalog entries and log rows.
// The whole plan is written in one transaction.
type Materializer struct {
	tx repository.TxManagerI
}

func NewMaterializer(tx repository.TxManagerI) *Materializer {
	if tx == nil {
		log.Fatal("provided nil tx manager")
	}
	return &Materializer{
		tx: tx,
	}
}

// Materialize writes plan days relative to today. Any day count and any
// offset are accepted here.
func (m *Materializer) Materialize(ctx context.Context, uid uuid.UUID, plan *entity.Plan, today time.Time) (*MaterializeResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("%w: plan is missing", errorvalues.ErrPlanStructure)
	}
	base := truncateToDay(today)
	res := &MaterializeResult{}
	err := m.tx.RunInTx(ctx, func(w repository.PlanWriter) error {
		var dailyGoal *entity.Food
		for _, day := range plan.Days {
			date := base.AddDate(0, 0, day.DayOffset)
			for _, pw := range day.Workouts {
				if strings.TrimSpace(pw.Name) == "" {
					continue
				}
				workout, err := w.FindOrCreateWorkout(ctx, InferWorkout(pw.Name))
				if err != nil {
					return fmt.Errorf("workout %q: %w", pw.Name, err)
				}
				burned := 0.0
				if pw.ApproxCalories != nil {
					burned = *pw.ApproxCalories
				}
				err = w.InsertWorkoutLog(ctx, &entity.WorkoutLog{
					UserID:         uid,
					WorkoutID:      workout.ID,
					WorkoutStreak:  0,
					CaloriesBurned: burned,
					HeartRate:      0,
					LogDate:        date,
					Completed:      false,
				})
				if err != nil {
					return fmt.Errorf("workout log: %w", err)
				}
				res.WorkoutLogs++
			}
			if day.CalorieGoal != 0 {
				if dailyGoal == nil {
					food, err := w.FindOrCreateFood(ctx, &entity.Food{Name: entity.DailyGoalFoodName})
					if err != nil {
						return fmt.Errorf("daily goal food: %w", err)
					}
					dailyGoal = food
				}
				err := w.InsertFoodLog(ctx, &entity.FoodLog{
					UserID:          uid,
					FoodID:          dailyGoal.ID,
					CalorieGoal:     day.CalorieGoal,
					TotalWeightLost: 0,
					LogDate:         date,
					Completed:       false,
				})
				if err != nil {
					return fmt.Errorf("food log: %w", err)
				}
				res.FoodLogs++
			}
			res.Days++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrPersistence, err)
	}
	return res, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
