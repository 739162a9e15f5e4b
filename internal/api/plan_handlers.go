package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type PlanResponse struct {
	Plan *entity.Plan `json:"plan"`
}

type SavePlanRequest struct {
	Plan *entity.Plan `json:"plan"`
}

type SavePlanResponse struct {
	Message string                     `json:"message"`
	Result  *service.MaterializeResult `json:"result,omitempty"`
}

type FoodInfoRequest struct {
	Query string `json:"query"`
}

// maxJSONBody caps request bodies of the JSON api, a saved week is far below it
const maxJSONBody = 1 << 20

const (
	msgPrecondition = "Please fill out the questionnaire first"
	msgCompletion   = "AI is having trouble right now, please try again"
	msgPersistence  = "Could not save plan"
)

// planError maps plan pipeline failures to a status and the message shown to the user.
// A broken structure is the model's fault on generate and the caller's on save.
func planError(err error, structureStatus int) (int, string) {
	switch {
	case errors.Is(err, errorvalues.ErrPreconditionMissing):
		return http.StatusBadRequest, msgPrecondition
	case errors.Is(err, errorvalues.ErrCompletionUnavailable):
		return http.StatusBadGateway, msgCompletion
	case errors.Is(err, errorvalues.ErrPlanFormat):
		return http.StatusBadGateway, errorvalues.ErrPlanFormat.Error()
	case errors.Is(err, errorvalues.ErrPlanStructure):
		return structureStatus, errorvalues.ErrPlanStructure.Error()
	case errors.Is(err, errorvalues.ErrAIFormat):
		return http.StatusBadGateway, errorvalues.ErrAIFormat.Error()
	case errors.Is(err, errorvalues.ErrAIStructure):
		return http.StatusBadGateway, errorvalues.ErrAIStructure.Error()
	case errors.Is(err, errorvalues.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errorvalues.ErrPersistence):
		return http.StatusInternalServerError, msgPersistence
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func logRejectedOutput(logger *slog.Logger, err error) {
	var rejected *errorvalues.RejectedOutputError
	if errors.As(err, &rejected) {
		logger.Error("rejected model output",
			slog.String("error", rejected.Err.Error()),
			slog.String("raw", rejected.Raw),
		)
	}
}

func (s *Server) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("generate plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	plan, err := s.planService.GeneratePlan(r.Context(), uid)
	if err != nil {
		status, msg := planError(err, http.StatusBadGateway)
		logger.Error("generate plan error", slog.String("error", err.Error()))
		logRejectedOutput(logger, err)
		httputil.WriteErrorResponse(w, status, msg)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, PlanResponse{Plan: plan})
	logger.Info("plan generated", slog.Int("days", len(plan.Days)))
}

func (s *Server) SavePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	var req SavePlanRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Plan == nil {
		logger.Error("save plan error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "No plan provided")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	res, err := s.planService.SavePlan(ctx, uid, req.Plan)
	if err != nil {
		status, msg := planError(err, http.StatusBadRequest)
		logger.Error("save plan error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, msg)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, SavePlanResponse{
		Message: "Plan saved to your logs",
		Result:  res,
	})
	logger.Info("plan saved", slog.Int("workout_logs", res.WorkoutLogs), slog.Int("food_logs", res.FoodLogs))
}

func (s *Server) FoodInfo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req FoodInfoRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("food info error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	info, err := s.planService.FoodInfo(r.Context(), &service.FoodInfoRequest{Query: req.Query})
	if err != nil {
		status, msg := planError(err, http.StatusBadGateway)
		logger.Error("food info error", slog.String("error", err.Error()))
		logRejectedOutput(logger, err)
		httputil.WriteErrorResponse(w, status, msg)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, info)
	logger.Info("food info provided")
}

func (s *Server) DashboardWeek(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("dashboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	week, err := s.dashboardService.Week(ctx, uid, time.Now())
	if err != nil {
		logger.Error("dashboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while loading dashboard")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, week)
	logger.Info("dashboard provided")
}
