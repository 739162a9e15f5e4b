package api

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/cleanup"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	profileService   service.ProfileServiceI
	logService       service.LogServiceI
	dashboardService service.DashboardServiceI
	planService      service.PlanServiceI
	jwtService       JWTServiceI
	health           HealthCheckerI
	sessions         sessions.Store
	pages            map[string]*template.Template
}

type ServicesList struct {
	UserService      service.UserServiceI
	ProfileService   service.ProfileServiceI
	LogService       service.LogServiceI
	DashboardService service.DashboardServiceI
	PlanService      service.PlanServiceI
	JwtService       JWTServiceI
	Health           HealthCheckerI
	// Optional, a store with a random key is used when nil
	SessionStore sessions.Store
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		profileService:   servicesOptions.ProfileService,
		logService:       servicesOptions.LogService,
		dashboardService: servicesOptions.DashboardService,
		planService:      servicesOptions.PlanService,
		jwtService:       servicesOptions.JwtService,
		health:           servicesOptions.Health,
		sessions:         servicesOptions.SessionStore,
		pages:            mustParsePages(),
	}
	if s.sessions == nil {
		s.sessions = NewSessionStore("", false)
	}
	s.routes()
	return s
}

// ServeHTTP makes Server usable with httptest
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.RecoverMiddleware)
	s.mx.Use(middleware.RealIP)
	s.mx.Use(middleware.CleanPath)

	s.mx.Get("/health", s.Health)
	s.mx.Get("/", s.IndexPage)
	s.mx.Post("/login", s.PageLogin)
	s.mx.Get("/logout", s.Logout)

	s.mx.Group(func(r chi.Router) {
		r.Use(s.PageAuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)
		r.Get("/dashboard", s.DashboardPage)
		r.Get("/workout-log", s.WorkoutLogPage)
		r.Post("/workout-log", s.SubmitWorkoutLog)
		r.Get("/food-log", s.FoodLogPage)
		r.Post("/food-log", s.SubmitFoodLog)
		r.Get("/questionnaire", s.QuestionnairePage)
		r.Post("/questionnaire", s.SubmitQuestionnaire)
		r.Get("/profile", s.ProfilePage)
		r.Post("/profile", s.SubmitProfile)
		r.Get("/plan", s.PlanPage)
		r.Route("/admin/users", func(r chi.Router) {
			r.Use(s.ManagerOnlyMiddleware)
			r.Get("/", s.AdminUsersPage)
			r.Post("/", s.AdminCreateUser)
			r.Post("/{id}/level", s.AdminChangeLevel)
			r.Post("/{id}/delete", s.AdminDeleteUser)
		})
	})

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Post("/plan/generate", s.GeneratePlan)
			r.Post("/plan/save", s.SavePlan)
			r.Post("/food-info", s.FoodInfo)
			r.Get("/dashboard/week", s.DashboardWeek)
		})
	})
}

func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(s.mx, "fittrack"),
		ReadHeaderTimeout: 10 * time.Second,
		// Plan generation waits for the completion service
		WriteTimeout: 2 * time.Minute,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("server started", slog.String("address", addr))
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
