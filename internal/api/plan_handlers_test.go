package api_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/api"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/internal/service/mocks"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID = uuid.New()
)

func withUserID(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
}

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, sonic.ConfigDefault.NewDecoder(body).Decode(&resp))
	return resp["error"]
}

func testPlan() *entity.Plan {
	calories := 300.0
	plan := &entity.Plan{}
	for i := 0; i < 7; i++ {
		plan.Days = append(plan.Days, entity.PlanDay{
			DayOffset:    i,
			Label:        fmt.Sprintf("Day %d", i+1),
			CalorieGoal:  2200,
			ProteinGoalG: 120,
			Workouts: []entity.PlanWorkout{
				{Name: "Barbell Squats", TimeBlock: "Morning", ApproxCalories: &calories},
			},
		})
	}
	return plan
}

// oversizedBody is valid JSON that does not fit into one api request
func oversizedBody(field string) []byte {
	return []byte(`{"` + field + `": "` + strings.Repeat("a", 1<<20) + `"}`)
}

func TestGeneratePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockPlanServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		PlanService: pService,
	})
	plan := testPlan()

	testCases := []struct {
		Name          string
		ExpectedCode  int
		ExpectedError string
		MockPrepFunc  func()
	}{
		{
			Name:         "generated",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				pService.EXPECT().GeneratePlan(gomock.Any(), userID).Return(plan, nil)
			},
		},
		{
			Name:          "no questionnaire",
			ExpectedCode:  http.StatusBadRequest,
			ExpectedError: "Please fill out the questionnaire first",
			MockPrepFunc: func() {
				pService.EXPECT().GeneratePlan(gomock.Any(), userID).Return(nil, errorvalues.ErrPreconditionMissing)
			},
		},
		{
			Name:          "completion unavailable",
			ExpectedCode:  http.StatusBadGateway,
			ExpectedError: "AI is having trouble right now, please try again",
			MockPrepFunc: func() {
				pService.EXPECT().GeneratePlan(gomock.Any(), userID).
					Return(nil, fmt.Errorf("%w: status 503", errorvalues.ErrCompletionUnavailable))
			},
		},
		{
			Name:          "not json",
			ExpectedCode:  http.StatusBadGateway,
			ExpectedError: "AI did not return valid JSON",
			MockPrepFunc: func() {
				pService.EXPECT().GeneratePlan(gomock.Any(), userID).
					Return(nil, fmt.Errorf("%w: no object", errorvalues.ErrPlanFormat))
			},
		},
		{
			Name:          "bad structure",
			ExpectedCode:  http.StatusBadGateway,
			ExpectedError: "AI returned an invalid plan structure",
			MockPrepFunc: func() {
				pService.EXPECT().GeneratePlan(gomock.Any(), userID).
					Return(nil, fmt.Errorf("%w: days is empty", errorvalues.ErrPlanStructure))
			},
		},
		{
			Name:          "service error",
			ExpectedCode:  http.StatusInternalServerError,
			ExpectedError: "internal error",
			MockPrepFunc: func() {
				pService.EXPECT().GeneratePlan(gomock.Any(), userID).Return(nil, errors.New("db is down"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := withUserID(httptest.NewRequest(http.MethodPost, "/api/v1/plan/generate", bytes.NewReader([]byte("{}"))))
			serv.GeneratePlan(rr, r)
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedError != "" {
				assert.Equal(t, tc.ExpectedError, decodeError(t, rr.Result().Body))
				return
			}
			var resp api.PlanResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
			assert.Equal(t, plan, resp.Plan)
		})
	}

	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GeneratePlan(rr, httptest.NewRequest(http.MethodPost, "/api/v1/plan/generate", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestSavePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockPlanServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		PlanService: pService,
	})
	plan := testPlan()
	body, err := sonic.ConfigDefault.Marshal(api.SavePlanRequest{Plan: plan})
	require.NoError(t, err)

	testCases := []struct {
		Name          string
		ExpectedCode  int
		ExpectedError string
		MockPrepFunc  func()
		Body          []byte
	}{
		{
			Name:         "saved",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				pService.EXPECT().SavePlan(gomock.Any(), userID, plan).
					Return(&service.MaterializeResult{Days: 7, WorkoutLogs: 7, FoodLogs: 7}, nil)
			},
			Body: body,
		},
		{
			Name:          "invalid structure is caller's fault",
			ExpectedCode:  http.StatusBadRequest,
			ExpectedError: "AI returned an invalid plan structure",
			MockPrepFunc: func() {
				pService.EXPECT().SavePlan(gomock.Any(), userID, plan).
					Return(nil, fmt.Errorf("%w: expected 7 days", errorvalues.ErrPlanStructure))
			},
			Body: body,
		},
		{
			Name:          "persistence error",
			ExpectedCode:  http.StatusInternalServerError,
			ExpectedError: "Could not save plan",
			MockPrepFunc: func() {
				pService.EXPECT().SavePlan(gomock.Any(), userID, plan).
					Return(nil, fmt.Errorf("%w: insert failed", errorvalues.ErrPersistence))
			},
			Body: body,
		},
		{
			Name:          "no plan",
			ExpectedCode:  http.StatusBadRequest,
			ExpectedError: "No plan provided",
			MockPrepFunc:  func() {},
			Body:          []byte(`{}`),
		},
		{
			Name:          "corrupted body",
			ExpectedCode:  http.StatusBadRequest,
			ExpectedError: "No plan provided",
			MockPrepFunc:  func() {},
			Body:          []byte("corrupted"),
		},
		{
			Name:          "body too large",
			ExpectedCode:  http.StatusBadRequest,
			ExpectedError: "No plan provided",
			MockPrepFunc:  func() {},
			Body:          oversizedBody("plan"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := withUserID(httptest.NewRequest(http.MethodPost, "/api/v1/plan/save", bytes.NewReader(tc.Body)))
			serv.SavePlan(rr, r)
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedError != "" {
				assert.Equal(t, tc.ExpectedError, decodeError(t, rr.Result().Body))
				return
			}
			var resp api.SavePlanResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
			assert.NotEmpty(t, resp.Message)
			assert.Equal(t, 7, resp.Result.FoodLogs)
		})
	}
}

func TestFoodInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockPlanServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		PlanService: pService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.FoodInfoRequest{Query: "two eggs"})
	require.NoError(t, err)
	info := &entity.FoodInfo{
		Items:   []entity.FoodInfoItem{{Name: "Egg", Calories: 155, ProteinG: 13, CarbsG: 1.1, FatG: 11}},
		Summary: "High protein",
	}

	testCases := []struct {
		Name          string
		ExpectedCode  int
		ExpectedError string
		MockPrepFunc  func()
		Body          []byte
	}{
		{
			Name:         "answered",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				pService.EXPECT().FoodInfo(gomock.Any(), &service.FoodInfoRequest{Query: "two eggs"}).Return(info, nil)
			},
			Body: body,
		},
		{
			Name:          "empty query",
			ExpectedCode:  http.StatusBadRequest,
			ExpectedError: "validation error: Query is required",
			MockPrepFunc: func() {
				pService.EXPECT().FoodInfo(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: Query is required", errorvalues.ErrValidation))
			},
			Body: []byte(`{"query": ""}`),
		},
		{
			Name:          "not json",
			ExpectedCode:  http.StatusBadGateway,
			ExpectedError: "AI did not return valid JSON",
			MockPrepFunc: func() {
				pService.EXPECT().FoodInfo(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrAIFormat)
			},
			Body: body,
		},
		{
			Name:          "no items",
			ExpectedCode:  http.StatusBadGateway,
			ExpectedError: "AI returned an invalid food info structure",
			MockPrepFunc: func() {
				pService.EXPECT().FoodInfo(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrAIStructure)
			},
			Body: body,
		},
		{
			Name:          "completion unavailable",
			ExpectedCode:  http.StatusBadGateway,
			ExpectedError: "AI is having trouble right now, please try again",
			MockPrepFunc: func() {
				pService.EXPECT().FoodInfo(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrCompletionUnavailable)
			},
			Body: body,
		},
		{
			Name:          "corrupted body",
			ExpectedCode:  http.StatusBadRequest,
			ExpectedError: "invalid request body",
			MockPrepFunc:  func() {},
			Body:          []byte("corrupted"),
		},
		{
			Name:          "body too large",
			ExpectedCode:  http.StatusBadRequest,
			ExpectedError: "invalid request body",
			MockPrepFunc:  func() {},
			Body:          oversizedBody("query"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := withUserID(httptest.NewRequest(http.MethodPost, "/api/v1/food-info", bytes.NewReader(tc.Body)))
			serv.FoodInfo(rr, r)
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedError != "" {
				assert.Equal(t, tc.ExpectedError, decodeError(t, rr.Result().Body))
				return
			}
			var resp entity.FoodInfo
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
			assert.Equal(t, *info, resp)
		})
	}
}

// logRecords decodes JSON log lines written by a slog.JSONHandler
func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, sonic.UnmarshalString(line, &rec))
		records = append(records, rec)
	}
	return records
}

func TestRejectedOutputLogging(t *testing.T) {
	var buf bytes.Buffer
	defaultLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(defaultLogger)

	ctrl := gomock.NewController(t)
	pService := mocks.NewMockPlanServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		PlanService: pService,
	})
	rejected := &errorvalues.RejectedOutputError{
		Raw: "I cannot help with that",
		Err: fmt.Errorf("%w: no json object in output", errorvalues.ErrPlanFormat),
	}

	testCases := []struct {
		Name         string
		Path         string
		Handler      http.HandlerFunc
		MockPrepFunc func()
	}{
		{
			Name:    "generate plan",
			Path:    "/api/v1/plan/generate",
			Handler: serv.GeneratePlan,
			MockPrepFunc: func() {
				pService.EXPECT().GeneratePlan(gomock.Any(), userID).Return(nil, rejected)
			},
		},
		{
			Name:    "food info",
			Path:    "/api/v1/food-info",
			Handler: serv.FoodInfo,
			MockPrepFunc: func() {
				pService.EXPECT().FoodInfo(gomock.Any(), gomock.Any()).Return(nil, rejected)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			buf.Reset()
			tc.MockPrepFunc()
			handler := serv.RequestIDMiddleware(serv.SettingUpLoggerMiddleware(tc.Handler))
			rr := httptest.NewRecorder()
			r := withUserID(httptest.NewRequest(http.MethodPost, tc.Path, strings.NewReader(`{"query": "apple"}`)))
			handler.ServeHTTP(rr, r)
			require.Equal(t, http.StatusBadGateway, rr.Result().StatusCode)

			reqID := rr.Result().Header.Get("X-Request-ID")
			require.NotEmpty(t, reqID)
			var found bool
			for _, rec := range logRecords(t, &buf) {
				if rec["msg"] != "rejected model output" {
					continue
				}
				found = true
				assert.Equal(t, reqID, rec["request_id"])
				assert.Equal(t, "I cannot help with that", rec["raw"])
			}
			assert.True(t, found, buf.String())
		})
	}
}

func TestDashboardWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	dService := mocks.NewMockDashboardServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		DashboardService: dService,
	})
	week := &entity.WeekSummary{
		Days:       []entity.DaySummary{{Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), Eaten: 450, Goal: 2200}},
		TotalEaten: 450,
		TotalGoal:  2200,
	}
	t.Run("provided", func(t *testing.T) {
		dService.EXPECT().Week(gomock.Any(), userID, gomock.Any()).Return(week, nil)
		rr := httptest.NewRecorder()
		serv.DashboardWeek(rr, withUserID(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/week", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp entity.WeekSummary
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
		assert.Equal(t, 2200.0, resp.TotalGoal)
		assert.Equal(t, 450.0, resp.TotalEaten)
	})
	t.Run("service error", func(t *testing.T) {
		dService.EXPECT().Week(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("db is down"))
		rr := httptest.NewRecorder()
		serv.DashboardWeek(rr, withUserID(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/week", nil)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}
