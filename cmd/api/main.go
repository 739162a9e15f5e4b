package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/limbo/fittrack/internal/api"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/limbo/fittrack/pkg/completion"
	"github.com/limbo/fittrack/pkg/config"
	jwtservice "github.com/limbo/fittrack/pkg/jwt_service"
	"github.com/limbo/fittrack/pkg/logging"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if err := repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal(err)
	}
	pool := repository.NewPool(&dbCfg)

	pgHandler := logging.NewPGHandler(pool)
	logging.Setup(pgHandler)
	cleanup.Register(&cleanup.Job{Name: "flushing system logs", F: pgHandler.Stop})
	done := make(chan struct{})
	logging.StartCleanup(pool, done)
	cleanup.Register(&cleanup.Job{
		Name: "stopping log cleanup",
		F: func() error {
			close(done)
			return nil
		},
	})

	if dsn := cfg.GetString("SENTRY_DSN"); dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: cfg.GetStringOr("APP_ENV", "development"),
		})
		if err != nil {
			slog.Error("sentry init error", slog.String("error", err.Error()))
		} else {
			cleanup.Register(&cleanup.Job{
				Name: "flushing sentry events",
				F: func() error {
					sentry.Flush(2 * time.Second)
					return nil
				},
			})
		}
	}

	client := completion.New(completion.Config{
		APIKey:  cfg.GetString("COMPLETION_API_KEY"),
		BaseURL: cfg.GetString("COMPLETION_BASE_URL"),
		Model:   cfg.GetString("COMPLETION_MODEL"),
		Timeout: cfg.GetDuration("COMPLETION_TIMEOUT", 60*time.Second),
	})
	profilesRepo := repository.NewProfilesRepo(pool)
	questionnairesRepo := repository.NewQuestionnairesRepo(pool)
	catalogRepo := repository.NewCatalogRepo(pool)
	logsRepo := repository.NewLogsRepo(pool)

	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(repository.NewUsersRepo(pool)),
		ProfileService:   service.NewProfileService(profilesRepo, questionnairesRepo),
		LogService:       service.NewLogService(catalogRepo, logsRepo),
		DashboardService: service.NewDashboardService(logsRepo),
		PlanService: service.NewPlanService(service.PlanServiceDeps{
			Profiles:       profilesRepo,
			Questionnaires: questionnairesRepo,
			TxManager:      repository.NewTxManager(pool),
			Client:         client,
			Cache:          service.NewFoodInfoCache(cfg.GetDuration("FOOD_INFO_CACHE_TTL", time.Hour)),
		}),
		JwtService:   jwtservice.New(cfg.GetString("JWT_SECRET")),
		Health:       pool,
		SessionStore: api.NewSessionStore(cfg.GetString("SESSION_SECRET"), cfg.GetString("APP_ENV") == "production"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()
	<-ctx.Done()
	slog.Info("shutting down")
	cleanup.CleanUp()
}
