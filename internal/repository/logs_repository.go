package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type LogsRepository struct {
	conn Querier
}

func NewLogsRepo(conn PgConnection) *LogsRepository {
	mustPing(conn, "logsRepo")
	return &LogsRepository{
		conn: conn,
	}
}

func (lr *LogsRepository) InsertFoodLog(ctx context.Context, log *entity.FoodLog) error {
	if log == nil {
		return errors.New("food log is nil")
	}
	_, err := lr.conn.Exec(ctx,
		`INSERT INTO food_log (user_id, food_id, calorie_goal, total_weight_lost, log_date, completed) VALUES ($1, $2, $3, $4, $5, $6);`,
		log.UserID,
		log.FoodID,
		log.CalorieGoal,
		log.TotalWeightLost,
		log.LogDate,
		log.Completed,
	)
	if err != nil {
		return insertLogError("food", err)
	}
	return nil
}

func (lr *LogsRepository) InsertWorkoutLog(ctx context.Context, log *entity.WorkoutLog) error {
	if log == nil {
		return errors.New("workout log is nil")
	}
	_, err := lr.conn.Exec(ctx,
		`INSERT INTO workout_log (user_id, workout_id, workout_streak, calories_burned, heart_rate, log_date, completed) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		log.UserID,
		log.WorkoutID,
		log.WorkoutStreak,
		log.CaloriesBurned,
		log.HeartRate,
		log.LogDate,
		log.Completed,
	)
	if err != nil {
		return insertLogError("workout", err)
	}
	return nil
}

func (lr *LogsRepository) FoodLogsBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.FoodLog, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT fl.id, fl.food_id, f.food_name, fl.calorie_goal, fl.total_weight_lost, fl.log_date, fl.completed
		FROM food_log fl JOIN foods f ON f.food_id = fl.food_id
		WHERE fl.user_id = $1 AND fl.log_date >= $2 AND fl.log_date <= $3 ORDER BY fl.log_date, fl.id;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting food logs for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.FoodLog, 0)
	for rows.Next() {
		l := entity.FoodLog{UserID: uid}
		err = rows.Scan(&l.ID, &l.FoodID, &l.FoodName, &l.CalorieGoal, &l.TotalWeightLost, &l.LogDate, &l.Completed)
		if err != nil {
			return nil, errors.New("food log row parsing error: " + err.Error())
		}
		result = append(result, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected food log rows error: " + err.Error())
	}
	return result, nil
}

func (lr *LogsRepository) WorkoutLogsBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutLog, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT wl.id, wl.workout_id, w.workout_name, wl.workout_streak, wl.calories_burned, wl.heart_rate, wl.log_date, wl.completed
		FROM workout_log wl JOIN workouts w ON w.workout_id = wl.workout_id
		WHERE wl.user_id = $1 AND wl.log_date >= $2 AND wl.log_date <= $3 ORDER BY wl.log_date, wl.id;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting workout logs for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.WorkoutLog, 0)
	for rows.Next() {
		l := entity.WorkoutLog{UserID: uid}
		err = rows.Scan(&l.ID, &l.WorkoutID, &l.WorkoutName, &l.WorkoutStreak, &l.CaloriesBurned, &l.HeartRate, &l.LogDate, &l.Completed)
		if err != nil {
			return nil, errors.New("workout log row parsing error: " + err.Error())
		}
		result = append(result, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout log rows error: " + err.Error())
	}
	return result, nil
}

func insertLogError(kind string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// FK violation
		case "23503":
			return errorvalues.ErrReferenceNotFound
		}
	}
	return errors.New("creating " + kind + " log error: " + err.Error())
}
