package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/pkg/completion"
	"github.com/limbo/fittrack/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type CreateUserRequest struct {
	Username  string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password  string `validate:"required,min=8,max=72"`
	FirstName string `validate:"max=100"`
	LastName  string `validate:"max=100"`
	Level     string `validate:"required,level"`
}

type UpdateProfileRequest struct {
	Age         *int       `validate:"omitempty,gte=1,lte=120"`
	WeightKg    *float64   `validate:"omitempty,gt=0,lte=500"`
	HeightCm    *float64   `validate:"omitempty,gt=0,lte=300"`
	Gender      *string    `validate:"omitempty,max=30"`
	DateOfBirth *time.Time `validate:"omitempty"`
}

type QuestionnaireRequest struct {
	Goals          string `validate:"required,max=500"`
	FitnessLevel   string `validate:"required,max=50"`
	DietPreference string `validate:"required,max=100"`
	Equipment      string `validate:"required,max=500"`
	MinutesPerDay  int    `validate:"required,gte=5,lte=600"`
}

type WorkoutLogRequest struct {
	WorkoutID      int64   `validate:"required,gt=0"`
	WorkoutStreak  int     `validate:"gte=0"`
	CaloriesBurned float64 `validate:"gte=0"`
	HeartRate      int     `validate:"gte=0,lte=250"`
	// Zero date means today
	LogDate   time.Time
	Completed bool
}

type FoodLogRequest struct {
	FoodID          int64   `validate:"required,gt=0"`
	CalorieGoal     float64 `validate:"gte=0"`
	TotalWeightLost float64
	// Zero date means today
	LogDate   time.Time
	Completed bool
}

type FoodInfoRequest struct {
	Query string `validate:"required,max=500"`
}

// MaterializeResult counts the rows one plan save produced
type MaterializeResult struct {
	Days        int `json:"days"`
	WorkoutLogs int `json:"workout_logs"`
	FoodLogs    int `json:"food_logs"`
}

type CompletionClientI interface {
	// Returns raw text of the first choice, wraps ErrCompletionUnavailable on any failure
	Complete(ctx context.Context, prompt string, opts completion.Options) (string, error)
}

type UserServiceI interface {
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Manager operations
	CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	ChangeLevel(ctx context.Context, actorID, uid uuid.UUID, level string) error
	DeleteUser(ctx context.Context, actorID, uid uuid.UUID) error
}

type ProfileServiceI interface {
	// Returns empty profile when user never filled it
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) error
	// Returns ErrQuestionnaireNotFound when user never filled it
	GetQuestionnaire(ctx context.Context, uid uuid.UUID) (*entity.Questionnaire, error)
	SaveQuestionnaire(ctx context.Context, uid uuid.UUID, req *QuestionnaireRequest) error
}

type LogServiceI interface {
	ListFoods(ctx context.Context) ([]entity.Food, error)
	ListWorkouts(ctx context.Context) ([]entity.Workout, error)
	LogFood(ctx context.Context, uid uuid.UUID, req *FoodLogRequest) error
	LogWorkout(ctx context.Context, uid uuid.UUID, req *WorkoutLogRequest) error
}

type DashboardServiceI interface {
	// Seven days ending with today
	Week(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.WeekSummary, error)
}

type PlanServiceI interface {
	GeneratePlan(ctx context.Context, uid uuid.UUID) (*entity.Plan, error)
	SavePlan(ctx context.Context, uid uuid.UUID, plan *entity.Plan) (*MaterializeResult, error)
	FoodInfo(ctx context.Context, req *FoodInfoRequest) (*entity.FoodInfo, error)
}
