package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var (
	foodColumns    = []string{"food_id", "food_name", "calories", "protein_g", "carbs_g", "fat_g"}
	workoutColumns = []string{"workout_id", "workout_name", "body_part", "equipment", "difficulty"}

	findFoodQuery      = regexp.QuoteMeta(`SELECT food_id, food_name, calories, protein_g, carbs_g, fat_g FROM foods WHERE lower(food_name) = lower($1);`)
	insertFoodQuery    = regexp.QuoteMeta(`INSERT INTO foods (food_name, calories, protein_g, carbs_g, fat_g) VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING RETURNING food_id;`)
	findWorkoutQuery   = regexp.QuoteMeta(`SELECT workout_id, workout_name, body_part, equipment, difficulty FROM workouts WHERE lower(workout_name) = lower($1);`)
	insertWorkoutQuery = regexp.QuoteMeta(`INSERT INTO workouts (workout_name, body_part, equipment, difficulty) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING RETURNING workout_id;`)
)

func TestListCatalog(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCatalogRepo(conn)
	legs := "Legs"
	t.Run("foods", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`SELECT food_id, food_name, calories, protein_g, carbs_g, fat_g FROM foods ORDER BY food_name;`)).
			WillReturnRows(pgxmock.NewRows(foodColumns).
				AddRow(int64(1), "Daily Goal", 0.0, 0.0, 0.0, 0.0).
				AddRow(int64(2), "Oatmeal", 150.0, 5.0, 27.0, 3.0))
		foods, err := repo.ListFoods(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Food{
			{ID: 1, Name: "Daily Goal"},
			{ID: 2, Name: "Oatmeal", Calories: 150, ProteinG: 5, CarbsG: 27, FatG: 3},
		}, foods)
	})
	t.Run("workouts", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`SELECT workout_id, workout_name, body_part, equipment, difficulty FROM workouts ORDER BY workout_name;`)).
			WillReturnRows(pgxmock.NewRows(workoutColumns).
				AddRow(int64(3), "Barbell Squats", &legs, "Barbell", "Medium"))
		workouts, err := repo.ListWorkouts(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Workout{
			{ID: 3, Name: "Barbell Squats", BodyPart: &legs, Equipment: "Barbell", Difficulty: "Medium"},
		}, workouts)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM foods ORDER BY food_name;`)).WillReturnError(errors.New("db error"))
		_, err := repo.ListFoods(ctx)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindOrCreateWorkout(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCatalogRepo(conn)
	legs := "Legs"
	workout := entity.Workout{Name: "Barbell Squats", BodyPart: &legs, Equipment: "Barbell", Difficulty: "Medium"}
	t.Run("existing entry reused", func(t *testing.T) {
		conn.ExpectQuery(findWorkoutQuery).
			WithArgs("barbell squats").
			WillReturnRows(pgxmock.NewRows(workoutColumns).AddRow(int64(7), "Barbell Squats", &legs, "Barbell", "Medium"))
		result, err := repo.FindOrCreateWorkout(ctx, &entity.Workout{Name: " barbell squats "})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, "Barbell Squats", result.Name)
	})
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(findWorkoutQuery).WithArgs(workout.Name).WillReturnError(pgx.ErrNoRows)
		conn.ExpectQuery(insertWorkoutQuery).
			WithArgs(workout.Name, workout.BodyPart, workout.Equipment, workout.Difficulty).
			WillReturnRows(pgxmock.NewRows([]string{"workout_id"}).AddRow(int64(8)))
		result, err := repo.FindOrCreateWorkout(ctx, &workout)
		assert.NoError(t, err)
		assert.Equal(t, int64(8), result.ID)
		assert.Equal(t, "Legs", *result.BodyPart)
	})
	t.Run("concurrent insert wins", func(t *testing.T) {
		conn.ExpectQuery(findWorkoutQuery).WithArgs(workout.Name).WillReturnError(pgx.ErrNoRows)
		conn.ExpectQuery(insertWorkoutQuery).
			WithArgs(workout.Name, workout.BodyPart, workout.Equipment, workout.Difficulty).
			WillReturnError(pgx.ErrNoRows)
		conn.ExpectQuery(findWorkoutQuery).
			WithArgs(workout.Name).
			WillReturnRows(pgxmock.NewRows(workoutColumns).AddRow(int64(9), "BARBELL SQUATS", &legs, "Barbell", "Medium"))
		result, err := repo.FindOrCreateWorkout(ctx, &workout)
		assert.NoError(t, err)
		assert.Equal(t, int64(9), result.ID)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(findWorkoutQuery).WithArgs(workout.Name).WillReturnError(errors.New("db error"))
		_, err := repo.FindOrCreateWorkout(ctx, &workout)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrWorkoutNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindOrCreateFood(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCatalogRepo(conn)
	goal := entity.Food{Name: entity.DailyGoalFoodName}
	t.Run("existing entry reused", func(t *testing.T) {
		conn.ExpectQuery(findFoodQuery).
			WithArgs(entity.DailyGoalFoodName).
			WillReturnRows(pgxmock.NewRows(foodColumns).AddRow(int64(1), entity.DailyGoalFoodName, 0.0, 0.0, 0.0, 0.0))
		result, err := repo.FindOrCreateFood(ctx, &goal)
		assert.NoError(t, err)
		assert.Equal(t, entity.Food{ID: 1, Name: entity.DailyGoalFoodName}, *result)
	})
	t.Run("created with zero nutrition", func(t *testing.T) {
		conn.ExpectQuery(findFoodQuery).WithArgs(entity.DailyGoalFoodName).WillReturnError(pgx.ErrNoRows)
		conn.ExpectQuery(insertFoodQuery).
			WithArgs(entity.DailyGoalFoodName, 0.0, 0.0, 0.0, 0.0).
			WillReturnRows(pgxmock.NewRows([]string{"food_id"}).AddRow(int64(2)))
		result, err := repo.FindOrCreateFood(ctx, &goal)
		assert.NoError(t, err)
		assert.Equal(t, entity.Food{ID: 2, Name: entity.DailyGoalFoodName}, *result)
	})
	t.Run("insert error", func(t *testing.T) {
		conn.ExpectQuery(findFoodQuery).WithArgs(entity.DailyGoalFoodName).WillReturnError(pgx.ErrNoRows)
		conn.ExpectQuery(insertFoodQuery).
			WithArgs(entity.DailyGoalFoodName, 0.0, 0.0, 0.0, 0.0).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindOrCreateFood(ctx, &goal)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
