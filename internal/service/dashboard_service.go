package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	logs repository.LogsRepositoryI
}

func NewDashboardService(logs repository.LogsRepositoryI) *DashboardService {
	if logs == nil {
		log.Fatal("provided nil logsRepo")
	}
	return &DashboardService{
		logs: logs,
	}
}

func (ds *DashboardService) Week(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.WeekSummary, error) {
	to := truncateToDay(today)
	from := to.AddDate(0, 0, -(daysInWeek - 1))
	var (
		foods    []entity.FoodLog
		workouts []entity.WorkoutLog
	)
	g, grpCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := ds.logs.FoodLogsBetween(grpCtx, uid, from, to)
		if err != nil {
			return fmt.Errorf("food logs: %w", err)
		}
		foods = rows
		return nil
	})
	g.Go(func() error {
		rows, err := ds.logs.WorkoutLogsBetween(grpCtx, uid, from, to)
		if err != nil {
			return fmt.Errorf("workout logs: %w", err)
		}
		workouts = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("logs repository error: %w", err)
	}
	return AggregateWeek(from, foods, workouts), nil
}

// AggregateWeek sums seven days starting at from. Rows of the Daily Goal food
// count toward the goal, every other food row counts toward eaten calories.
// Rows outside the window are ignored.
func AggregateWeek(from time.Time, foods []entity.FoodLog, workouts []entity.WorkoutLog) *entity.WeekSummary {
	from = truncateToDay(from)
	summary := &entity.WeekSummary{
		Days: make([]entity.DaySummary, daysInWeek),
	}
	for i := range summary.Days {
		summary.Days[i].Date = from.AddDate(0, 0, i)
	}
	index := func(date time.Time) (int, bool) {
		y, m, d := date.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, from.Location())
		for i := range summary.Days {
			if summary.Days[i].Date.Equal(day) {
				return i, true
			}
		}
		return 0, false
	}
	for _, f := range foods {
		i, ok := index(f.LogDate)
		if !ok {
			continue
		}
		if f.FoodName == entity.DailyGoalFoodName {
			summary.Days[i].Goal += f.CalorieGoal
			summary.TotalGoal += f.CalorieGoal
		} else {
			summary.Days[i].Eaten += f.CalorieGoal
			summary.TotalEaten += f.CalorieGoal
		}
	}
	for _, w := range workouts {
		i, ok := index(w.LogDate)
		if !ok {
			continue
		}
		summary.Days[i].Burned += w.CaloriesBurned
		summary.TotalBurned += w.CaloriesBurned
	}
	return summary
}
