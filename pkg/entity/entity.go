package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	LevelUser    = "user"
	LevelManager = "manager"
)

// DailyGoalFoodName names the zero-nutrition catalog food that carries a day's calorie target.
const DailyGoalFoodName = "Daily Goal"

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Level        string    `json:"level"`
}

func (u *User) IsManager() bool {
	return u.Level == LevelManager
}

// UserProfile fields are nullable, nil means the user never filled them.
type UserProfile struct {
	UserID      uuid.UUID  `json:"uid"`
	Age         *int       `json:"age,omitempty"`
	WeightKg    *float64   `json:"weight_kg,omitempty"`
	HeightCm    *float64   `json:"height_cm,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

type Questionnaire struct {
	UserID         uuid.UUID `json:"uid"`
	Goals          string    `json:"goals"`
	FitnessLevel   string    `json:"fitness_level"`
	DietPreference string    `json:"diet_preference"`
	Equipment      string    `json:"equipment"`
	MinutesPerDay  int       `json:"minutes_per_day"`
}

type Food struct {
	ID       int64   `json:"food_id"`
	Name     string  `json:"food_name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type Workout struct {
	ID         int64   `json:"workout_id"`
	Name       string  `json:"workout_name"`
	BodyPart   *string `json:"body_part,omitempty"`
	Equipment  string  `json:"equipment"`
	Difficulty string  `json:"difficulty"`
}

type FoodLog struct {
	ID              int64     `json:"id"`
	UserID          uuid.UUID `json:"uid"`
	FoodID          int64     `json:"food_id"`
	FoodName        string    `json:"food_name,omitempty"`
	CalorieGoal     float64   `json:"calorie_goal"`
	TotalWeightLost float64   `json:"total_weight_lost"`
	LogDate         time.Time `json:"log_date"`
	Completed       bool      `json:"completed"`
}

type WorkoutLog struct {
	ID             int64     `json:"id"`
	UserID         uuid.UUID `json:"uid"`
	WorkoutID      int64     `json:"workout_id"`
	WorkoutName    string    `json:"workout_name,omitempty"`
	WorkoutStreak  int       `json:"workout_streak"`
	CaloriesBurned float64   `json:"calories_burned"`
	HeartRate      int       `json:"heart_rate"`
	LogDate        time.Time `json:"log_date"`
	Completed      bool      `json:"completed"`
}

type DaySummary struct {
	Date   time.Time `json:"date"`
	Eaten  float64   `json:"eaten"`
	Goal   float64   `json:"goal"`
	Burned float64   `json:"burned"`
}

type WeekSummary struct {
	Days        []DaySummary `json:"days"`
	TotalEaten  float64      `json:"total_eaten"`
	TotalGoal   float64      `json:"total_goal"`
	TotalBurned float64      `json:"total_burned"`
}

// Plan is the weekly suggestion returned by the completion service.
// It is never stored as is, saving it turns days into log rows.
type Plan struct {
	Days []PlanDay `json:"days" validate:"required,min=1,dive"`
}

type PlanDay struct {
	DayOffset    int           `json:"dayOffset"`
	Label        string        `json:"label" validate:"max=100"`
	CalorieGoal  float64       `json:"calorie_goal" validate:"gte=0"`
	ProteinGoalG float64       `json:"protein_goal_g" validate:"gte=0"`
	Notes        string        `json:"notes" validate:"max=2000"`
	Workouts     []PlanWorkout `json:"workouts" validate:"dive"`
}

type PlanWorkout struct {
	Name           string   `json:"name" validate:"max=200"`
	TimeBlock      string   `json:"time_block" validate:"max=100"`
	ApproxCalories *float64 `json:"approx_calories,omitempty" validate:"omitempty,gte=0"`
}

type FoodInfo struct {
	Items   []FoodInfoItem `json:"items"`
	Summary string         `json:"summary"`
}

type FoodInfoItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}
