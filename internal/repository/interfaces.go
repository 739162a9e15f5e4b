package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/limbo/fittrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and returns its generated id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists every account ordered by username
	List(ctx context.Context) ([]*entity.User, error)
	// Sets access level of user
	UpdateLevel(ctx context.Context, uid uuid.UUID, level string) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ProfilesRepositoryI interface {
	FindProfile(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *entity.UserProfile) error
}

type QuestionnairesRepositoryI interface {
	FindQuestionnaire(ctx context.Context, uid uuid.UUID) (*entity.Questionnaire, error)
	// Inserts questionnaire or updates the existing one, one row per user
	UpsertQuestionnaire(ctx context.Context, q *entity.Questionnaire) error
}

type CatalogRepositoryI interface {
	ListFoods(ctx context.Context) ([]entity.Food, error)
	ListWorkouts(ctx context.Context) ([]entity.Workout, error)
	// Case-insensitive exact match on name
	FindFoodByName(ctx context.Context, name string) (*entity.Food, error)
	// Case-insensitive exact match on name
	FindWorkoutByName(ctx context.Context, name string) (*entity.Workout, error)
	CatalogWriter
}

// CatalogWriter creates catalog entries lazily. Implementations never create
// a second row for a name that already exists in any letter case.
type CatalogWriter interface {
	FindOrCreateFood(ctx context.Context, food *entity.Food) (*entity.Food, error)
	FindOrCreateWorkout(ctx context.Context, workout *entity.Workout) (*entity.Workout, error)
}

type LogsRepositoryI interface {
	LogWriter
	// Food logs of user with dates in [from, to], joined with food names
	FoodLogsBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.FoodLog, error)
	// Workout logs of user with dates in [from, to], joined with workout names
	WorkoutLogsBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutLog, error)
}

type LogWriter interface {
	InsertFoodLog(ctx context.Context, log *entity.FoodLog) error
	InsertWorkoutLog(ctx context.Context, log *entity.WorkoutLog) error
}

// PlanWriter is everything plan saving touches, bound to one transaction.
type PlanWriter interface {
	CatalogWriter
	LogWriter
}

type TxManagerI interface {
	// Runs fn inside a transaction. Commits when fn returns nil, rolls back otherwise
	RunInTx(ctx context.Context, fn func(w PlanWriter) error) error
}

type DBConfig interface {
	ConnString() string
}

// Querier is satisfied by both pool connections and pgx.Tx
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
