package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

// CatalogRepository works with the global foods and workouts tables.
// Both have a unique index on lower(name), so FindOrCreate* can rely on
// ON CONFLICT DO NOTHING and re-read the row another request inserted.
type CatalogRepository struct {
	conn Querier
}

func NewCatalogRepo(conn PgConnection) *CatalogRepository {
	mustPing(conn, "catalogRepo")
	return &CatalogRepository{
		conn: conn,
	}
}

func (cr *CatalogRepository) ListFoods(ctx context.Context) ([]entity.Food, error) {
	rows, err := cr.conn.Query(ctx, `SELECT food_id, food_name, calories, protein_g, carbs_g, fat_g FROM foods ORDER BY food_name;`)
	if err != nil {
		return nil, errors.New("listing foods error: " + err.Error())
	}
	defer rows.Close()
	foods := make([]entity.Food, 0)
	for rows.Next() {
		var f entity.Food
		if err = rows.Scan(&f.ID, &f.Name, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG); err != nil {
			return nil, errors.New("food row parsing error: " + err.Error())
		}
		foods = append(foods, f)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected food rows error: " + err.Error())
	}
	return foods, nil
}

func (cr *CatalogRepository) ListWorkouts(ctx context.Context) ([]entity.Workout, error) {
	rows, err := cr.conn.Query(ctx, `SELECT workout_id, workout_name, body_part, equipment, difficulty FROM workouts ORDER BY workout_name;`)
	if err != nil {
		return nil, errors.New("listing workouts error: " + err.Error())
	}
	defer rows.Close()
	workouts := make([]entity.Workout, 0)
	for rows.Next() {
		var w entity.Workout
		if err = rows.Scan(&w.ID, &w.Name, &w.BodyPart, &w.Equipment, &w.Difficulty); err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		workouts = append(workouts, w)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout rows error: " + err.Error())
	}
	return workouts, nil
}

func (cr *CatalogRepository) FindFoodByName(ctx context.Context, name string) (*entity.Food, error) {
	var f entity.Food
	row := cr.conn.QueryRow(ctx,
		`SELECT food_id, food_name, calories, protein_g, carbs_g, fat_g FROM foods WHERE lower(food_name) = lower($1);`,
		strings.TrimSpace(name),
	)
	if err := row.Scan(&f.ID, &f.Name, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFoodNotFound
		}
		return nil, errors.New("searching food by name error: " + err.Error())
	}
	return &f, nil
}

func (cr *CatalogRepository) FindWorkoutByName(ctx context.Context, name string) (*entity.Workout, error) {
	var w entity.Workout
	row := cr.conn.QueryRow(ctx,
		`SELECT workout_id, workout_name, body_part, equipment, difficulty FROM workouts WHERE lower(workout_name) = lower($1);`,
		strings.TrimSpace(name),
	)
	if err := row.Scan(&w.ID, &w.Name, &w.BodyPart, &w.Equipment, &w.Difficulty); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutNotFound
		}
		return nil, errors.New("searching workout by name error: " + err.Error())
	}
	return &w, nil
}

func (cr *CatalogRepository) FindOrCreateFood(ctx context.Context, food *entity.Food) (*entity.Food, error) {
	if food == nil {
		return nil, errors.New("food is nil")
	}
	found, err := cr.FindFoodByName(ctx, food.Name)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, errorvalues.ErrFoodNotFound) {
		return nil, err
	}
	created := *food
	created.Name = strings.TrimSpace(food.Name)
	row := cr.conn.QueryRow(ctx,
		`INSERT INTO foods (food_name, calories, protein_g, carbs_g, fat_g) VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING RETURNING food_id;`,
		created.Name,
		created.Calories,
		created.ProteinG,
		created.CarbsG,
		created.FatG,
	)
	if err = row.Scan(&created.ID); err != nil {
		// Concurrent request inserted the same name first
		if errors.Is(err, pgx.ErrNoRows) {
			return cr.FindFoodByName(ctx, food.Name)
		}
		return nil, errors.New("creating food error: " + err.Error())
	}
	return &created, nil
}

func (cr *CatalogRepository) FindOrCreateWorkout(ctx context.Context, workout *entity.Workout) (*entity.Workout, error) {
	if workout == nil {
		return nil, errors.New("workout is nil")
	}
	found, err := cr.FindWorkoutByName(ctx, workout.Name)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, errorvalues.ErrWorkoutNotFound) {
		return nil, err
	}
	created := *workout
	created.Name = strings.TrimSpace(workout.Name)
	row := cr.conn.QueryRow(ctx,
		`INSERT INTO workouts (workout_name, body_part, equipment, difficulty) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING RETURNING workout_id;`,
		created.Name,
		created.BodyPart,
		created.Equipment,
		created.Difficulty,
	)
	if err = row.Scan(&created.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cr.FindWorkoutByName(ctx, workout.Name)
		}
		return nil, errors.New("creating workout error: " + err.Error())
	}
	return &created, nil
}
