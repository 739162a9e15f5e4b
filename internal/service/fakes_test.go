package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateNotFound
)

var errDB = errors.New("db error")

// memStore keeps catalog and log rows in memory. RunInTx works on a copy and
// publishes it only when fn succeeds.
type memStore struct {
	mu          sync.Mutex
	nextID      int64
	foods       []entity.Food
	workouts    []entity.Workout
	foodLogs    []entity.FoodLog
	workoutLogs []entity.WorkoutLog
	// Name of the PlanWriter method that fails, empty for none
	failOn string
	// Fail only after that many successful calls of failOn
	failAfter int
}

type memTx struct {
	store       *memStore
	nextID      int64
	foods       []entity.Food
	workouts    []entity.Workout
	foodLogs    []entity.FoodLog
	workoutLogs []entity.WorkoutLog
	calls       map[string]int
}

func (s *memStore) RunInTx(ctx context.Context, fn func(w repository.PlanWriter) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &memTx{
		store:       s,
		nextID:      s.nextID,
		foods:       append([]entity.Food(nil), s.foods...),
		workouts:    append([]entity.Workout(nil), s.workouts...),
		foodLogs:    append([]entity.FoodLog(nil), s.foodLogs...),
		workoutLogs: append([]entity.WorkoutLog(nil), s.workoutLogs...),
		calls:       map[string]int{},
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.nextID = tx.nextID
	s.foods = tx.foods
	s.workouts = tx.workouts
	s.foodLogs = tx.foodLogs
	s.workoutLogs = tx.workoutLogs
	return nil
}

func (tx *memTx) fail(method string) bool {
	if tx.store.failOn != method {
		return false
	}
	tx.calls[method]++
	return tx.calls[method] > tx.store.failAfter
}

func (tx *memTx) FindOrCreateFood(ctx context.Context, food *entity.Food) (*entity.Food, error) {
	if tx.fail("FindOrCreateFood") {
		return nil, errDB
	}
	for _, f := range tx.foods {
		if strings.EqualFold(f.Name, strings.TrimSpace(food.Name)) {
			return &f, nil
		}
	}
	tx.nextID++
	created := *food
	created.ID = tx.nextID
	created.Name = strings.TrimSpace(food.Name)
	tx.foods = append(tx.foods, created)
	return &created, nil
}

func (tx *memTx) FindOrCreateWorkout(ctx context.Context, workout *entity.Workout) (*entity.Workout, error) {
	if tx.fail("FindOrCreateWorkout") {
		return nil, errDB
	}
	for _, w := range tx.workouts {
		if strings.EqualFold(w.Name, strings.TrimSpace(workout.Name)) {
			return &w, nil
		}
	}
	tx.nextID++
	created := *workout
	created.ID = tx.nextID
	created.Name = strings.TrimSpace(workout.Name)
	tx.workouts = append(tx.workouts, created)
	return &created, nil
}

func (tx *memTx) InsertFoodLog(ctx context.Context, log *entity.FoodLog) error {
	if tx.fail("InsertFoodLog") {
		return errDB
	}
	tx.nextID++
	row := *log
	row.ID = tx.nextID
	tx.foodLogs = append(tx.foodLogs, row)
	return nil
}

func (tx *memTx) InsertWorkoutLog(ctx context.Context, log *entity.WorkoutLog) error {
	if tx.fail("InsertWorkoutLog") {
		return errDB
	}
	tx.nextID++
	row := *log
	row.ID = tx.nextID
	tx.workoutLogs = append(tx.workoutLogs, row)
	return nil
}

func (s *memStore) foodName(id int64) string {
	for _, f := range s.foods {
		if f.ID == id {
			return f.Name
		}
	}
	return ""
}

type profileRepoMock struct {
	state   mockState
	profile *entity.UserProfile
	saved   *entity.UserProfile
}

func (m *profileRepoMock) FindProfile(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error) {
	switch m.state {
	case stateDBError:
		return nil, errDB
	case stateNotFound:
		return nil, errorvalues.ErrProfileNotFound
	default:
		return m.profile, nil
	}
}

func (m *profileRepoMock) UpsertProfile(ctx context.Context, profile *entity.UserProfile) error {
	switch m.state {
	case stateDBError:
		return errDB
	case stateNotFound:
		return errorvalues.ErrUserNotFound
	default:
		m.saved = profile
		return nil
	}
}

type questionnaireRepoMock struct {
	state mockState
	q     *entity.Questionnaire
	saved *entity.Questionnaire
}

func (m *questionnaireRepoMock) FindQuestionnaire(ctx context.Context, uid uuid.UUID) (*entity.Questionnaire, error) {
	switch m.state {
	case stateDBError:
		return nil, errDB
	case stateNotFound:
		return nil, errorvalues.ErrQuestionnaireNotFound
	default:
		return m.q, nil
	}
}

func (m *questionnaireRepoMock) UpsertQuestionnaire(ctx context.Context, q *entity.Questionnaire) error {
	switch m.state {
	case stateDBError:
		return errDB
	case stateNotFound:
		return errorvalues.ErrUserNotFound
	default:
		m.saved = q
		return nil
	}
}

type logsRepoMock struct {
	state       mockState
	foodLogs    []entity.FoodLog
	workoutLogs []entity.WorkoutLog
	from, to    time.Time
	insertedF   *entity.FoodLog
	insertedW   *entity.WorkoutLog
}

func (m *logsRepoMock) InsertFoodLog(ctx context.Context, log *entity.FoodLog) error {
	switch m.state {
	case stateDBError:
		return errDB
	case stateNotFound:
		return errorvalues.ErrReferenceNotFound
	default:
		m.insertedF = log
		return nil
	}
}

func (m *logsRepoMock) InsertWorkoutLog(ctx context.Context, log *entity.WorkoutLog) error {
	switch m.state {
	case stateDBError:
		return errDB
	case stateNotFound:
		return errorvalues.ErrReferenceNotFound
	default:
		m.insertedW = log
		return nil
	}
}

func (m *logsRepoMock) FoodLogsBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.FoodLog, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	m.from, m.to = from, to
	return m.foodLogs, nil
}

func (m *logsRepoMock) WorkoutLogsBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutLog, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return m.workoutLogs, nil
}

type catalogRepoMock struct {
	state    mockState
	foods    []entity.Food
	workouts []entity.Workout
}

func (m *catalogRepoMock) ListFoods(ctx context.Context) ([]entity.Food, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return m.foods, nil
}

func (m *catalogRepoMock) ListWorkouts(ctx context.Context) ([]entity.Workout, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return m.workouts, nil
}

func (m *catalogRepoMock) FindFoodByName(ctx context.Context, name string) (*entity.Food, error) {
	return nil, errorvalues.ErrFoodNotFound
}

func (m *catalogRepoMock) FindWorkoutByName(ctx context.Context, name string) (*entity.Workout, error) {
	return nil, errorvalues.ErrWorkoutNotFound
}

func (m *catalogRepoMock) FindOrCreateFood(ctx context.Context, food *entity.Food) (*entity.Food, error) {
	return food, nil
}

func (m *catalogRepoMock) FindOrCreateWorkout(ctx context.Context, workout *entity.Workout) (*entity.Workout, error) {
	return workout, nil
}

type usersRepoMock struct {
	state mockState
	users map[string]*entity.User
}

func newUsersRepoMock() *usersRepoMock {
	return &usersRepoMock{users: map[string]*entity.User{}}
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if m.state == stateDBError {
		return uuid.UUID{}, errDB
	}
	if _, ok := m.users[user.Username]; ok {
		return uuid.UUID{}, errorvalues.ErrUserExists
	}
	stored := *user
	stored.ID = uuid.New()
	m.users[user.Username] = &stored
	return stored.ID, nil
}

func (m *usersRepoMock) FindByName(ctx context.Context, name string) (*entity.User, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	user, ok := m.users[name]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return user, nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	for _, user := range m.users {
		if user.ID == uid {
			return user, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (m *usersRepoMock) List(ctx context.Context) ([]*entity.User, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	users := make([]*entity.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func (m *usersRepoMock) UpdateLevel(ctx context.Context, uid uuid.UUID, level string) error {
	if m.state == stateDBError {
		return errDB
	}
	user, err := m.FindByID(ctx, uid)
	if err != nil {
		return err
	}
	user.Level = level
	return nil
}

func (m *usersRepoMock) Delete(ctx context.Context, uid uuid.UUID) error {
	if m.state == stateDBError {
		return errDB
	}
	user, err := m.FindByID(ctx, uid)
	if err != nil {
		return err
	}
	delete(m.users, user.Username)
	return nil
}
