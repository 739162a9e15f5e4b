package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
)

type logFormPage struct {
	Foods    []entity.Food
	Workouts []entity.Workout
	Today    string
}

const msgPageFailure = "Something went wrong, please try again"

func (s *Server) DashboardPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	week, err := s.dashboardService.Week(ctx, uid, time.Now())
	if err != nil {
		logger.Error("dashboard page error", slog.String("error", err.Error()))
		s.renderStatus(w, r, http.StatusInternalServerError, msgPageFailure)
		return
	}
	s.render(w, r, http.StatusOK, "dashboard", pageData{Data: week})
}

func (s *Server) WorkoutLogPage(w http.ResponseWriter, r *http.Request) {
	s.renderWorkoutLog(w, r, http.StatusOK, "")
}

func (s *Server) renderWorkoutLog(w http.ResponseWriter, r *http.Request, status int, formErr string) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	workouts, err := s.logService.ListWorkouts(ctx)
	if err != nil {
		logger.Error("workout log page error", slog.String("error", err.Error()))
		s.renderStatus(w, r, http.StatusInternalServerError, msgPageFailure)
		return
	}
	s.render(w, r, status, "workout_log", pageData{
		Error: formErr,
		Data:  logFormPage{Workouts: workouts, Today: time.Now().Format(time.DateOnly)},
	})
}

func (s *Server) SubmitWorkoutLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	if err := r.ParseForm(); err != nil {
		s.renderWorkoutLog(w, r, http.StatusBadRequest, "Invalid form")
		return
	}
	form := newFormReader(r.PostForm)
	req := &service.WorkoutLogRequest{
		WorkoutID:      form.Int64("workout_id"),
		WorkoutStreak:  form.Int("workout_streak"),
		CaloriesBurned: form.Float("calories_burned"),
		HeartRate:      form.Int("heart_rate"),
		LogDate:        form.Date("log_date"),
		Completed:      form.Bool("completed"),
	}
	if err := form.Err(); err != nil {
		s.renderWorkoutLog(w, r, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.logService.LogWorkout(ctx, uid, req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Warn("workout log error: invalid form", slog.String("error", err.Error()))
			s.renderWorkoutLog(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, errorvalues.ErrReferenceNotFound):
			logger.Warn("workout log error: unknown workout")
			s.renderWorkoutLog(w, r, http.StatusBadRequest, "Unknown workout")
		default:
			logger.Error("workout log error: service error", slog.String("error", err.Error()))
			s.renderWorkoutLog(w, r, http.StatusInternalServerError, msgPageFailure)
		}
		return
	}
	logger.Info("workout logged")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) FoodLogPage(w http.ResponseWriter, r *http.Request) {
	s.renderFoodLog(w, r, http.StatusOK, "")
}

func (s *Server) renderFoodLog(w http.ResponseWriter, r *http.Request, status int, formErr string) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	foods, err := s.logService.ListFoods(ctx)
	if err != nil {
		logger.Error("food log page error", slog.String("error", err.Error()))
		s.renderStatus(w, r, http.StatusInternalServerError, msgPageFailure)
		return
	}
	s.render(w, r, status, "food_log", pageData{
		Error: formErr,
		Data:  logFormPage{Foods: foods, Today: time.Now().Format(time.DateOnly)},
	})
}

func (s *Server) SubmitFoodLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	if err := r.ParseForm(); err != nil {
		s.renderFoodLog(w, r, http.StatusBadRequest, "Invalid form")
		return
	}
	form := newFormReader(r.PostForm)
	req := &service.FoodLogRequest{
		FoodID:          form.Int64("food_id"),
		CalorieGoal:     form.Float("calorie_goal"),
		TotalWeightLost: form.Float("total_weight_lost"),
		LogDate:         form.Date("log_date"),
		Completed:       form.Bool("completed"),
	}
	if err := form.Err(); err != nil {
		s.renderFoodLog(w, r, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.logService.LogFood(ctx, uid, req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Warn("food log error: invalid form", slog.String("error", err.Error()))
			s.renderFoodLog(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, errorvalues.ErrReferenceNotFound):
			logger.Warn("food log error: unknown food")
			s.renderFoodLog(w, r, http.StatusBadRequest, "Unknown food")
		default:
			logger.Error("food log error: service error", slog.String("error", err.Error()))
			s.renderFoodLog(w, r, http.StatusInternalServerError, msgPageFailure)
		}
		return
	}
	logger.Info("food logged")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) QuestionnairePage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	q, err := s.profileService.GetQuestionnaire(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrQuestionnaireNotFound) {
			logger.Error("questionnaire page error", slog.String("error", err.Error()))
			s.renderStatus(w, r, http.StatusInternalServerError, msgPageFailure)
			return
		}
		q = &entity.Questionnaire{UserID: uid}
	}
	s.render(w, r, http.StatusOK, "questionnaire", pageData{Data: q})
}

func (s *Server) SubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "questionnaire", pageData{Error: "Invalid form", Data: &entity.Questionnaire{}})
		return
	}
	form := newFormReader(r.PostForm)
	req := &service.QuestionnaireRequest{
		Goals:          form.String("goals"),
		FitnessLevel:   form.String("fitness_level"),
		DietPreference: form.String("diet_preference"),
		Equipment:      form.String("equipment"),
		MinutesPerDay:  form.Int("minutes_per_day"),
	}
	filled := &entity.Questionnaire{
		UserID:         uid,
		Goals:          req.Goals,
		FitnessLevel:   req.FitnessLevel,
		DietPreference: req.DietPreference,
		Equipment:      req.Equipment,
		MinutesPerDay:  req.MinutesPerDay,
	}
	if err := form.Err(); err != nil {
		s.render(w, r, http.StatusBadRequest, "questionnaire", pageData{Error: err.Error(), Data: filled})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.profileService.SaveQuestionnaire(ctx, uid, req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Warn("questionnaire error: invalid form", slog.String("error", err.Error()))
			s.render(w, r, http.StatusBadRequest, "questionnaire", pageData{Error: err.Error(), Data: filled})
			return
		}
		logger.Error("questionnaire error: service error", slog.String("error", err.Error()))
		s.render(w, r, http.StatusInternalServerError, "questionnaire", pageData{Error: msgPageFailure, Data: filled})
		return
	}
	logger.Info("questionnaire saved")
	http.Redirect(w, r, "/plan", http.StatusSeeOther)
}

func (s *Server) ProfilePage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.profileService.GetProfile(ctx, uid)
	if err != nil {
		logger.Error("profile page error", slog.String("error", err.Error()))
		s.renderStatus(w, r, http.StatusInternalServerError, msgPageFailure)
		return
	}
	s.render(w, r, http.StatusOK, "profile", pageData{Data: profile})
}

func (s *Server) SubmitProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "profile", pageData{Error: "Invalid form", Data: &entity.UserProfile{}})
		return
	}
	form := newFormReader(r.PostForm)
	req := &service.UpdateProfileRequest{
		Age:         form.OptionalInt("age"),
		WeightKg:    form.OptionalFloat("weight_kg"),
		HeightCm:    form.OptionalFloat("height_cm"),
		Gender:      form.OptionalString("gender"),
		DateOfBirth: form.OptionalDate("date_of_birth"),
	}
	filled := &entity.UserProfile{
		UserID:      uid,
		Age:         req.Age,
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	}
	if err := form.Err(); err != nil {
		s.render(w, r, http.StatusBadRequest, "profile", pageData{Error: err.Error(), Data: filled})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.profileService.UpdateProfile(ctx, uid, req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Warn("profile error: invalid form", slog.String("error", err.Error()))
			s.render(w, r, http.StatusBadRequest, "profile", pageData{Error: err.Error(), Data: filled})
			return
		}
		logger.Error("profile error: service error", slog.String("error", err.Error()))
		s.render(w, r, http.StatusInternalServerError, "profile", pageData{Error: msgPageFailure, Data: filled})
		return
	}
	logger.Info("profile updated")
	s.render(w, r, http.StatusOK, "profile", pageData{Message: "Profile saved", Data: filled})
}

// PlanPage only hosts the script, generation and saving go through the JSON api
func (s *Server) PlanPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "plan", pageData{})
}
