package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/completion"
	"github.com/limbo/fittrack/pkg/entity"
	"golang.org/x/sync/errgroup"
)

type PlanService struct {
	profiles       repository.ProfilesRepositoryI
	questionnaires repository.QuestionnairesRepositoryI
	client         CompletionClientI
	materializer   *Materializer
	cache          *FoodInfoCache
	now            func() time.Time
}

type PlanServiceDeps struct {
	Profiles       repository.ProfilesRepositoryI
	Questionnaires repository.QuestionnairesRepositoryI
	TxManager      repository.TxManagerI
	Client         CompletionClientI
	// Optional, nil disables food info caching
	Cache *FoodInfoCache
}

func NewPlanService(deps PlanServiceDeps) *PlanService {
	if deps.Profiles == nil || deps.Questionnaires == nil || deps.Client == nil {
		log.Fatal("provided nil dependency to plan service")
	}
	return &PlanService{
		profiles:       deps.Profiles,
		questionnaires: deps.Questionnaires,
		client:         deps.Client,
		materializer:   NewMaterializer(deps.TxManager),
		cache:          deps.Cache,
		now:            time.Now,
	}
}

// WithClock replaces the source of "today", used by tests
func (ps *PlanService) WithClock(now func() time.Time) *PlanService {
	ps.now = now
	return ps
}

func (ps *PlanService) GeneratePlan(ctx context.Context, uid uuid.UUID) (*entity.Plan, error) {
	var (
		profile *entity.UserProfile
		q       *entity.Questionnaire
	)
	g, grpCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := ps.profiles.FindProfile(grpCtx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrProfileNotFound) {
				return nil
			}
			return fmt.Errorf("profiles repository error: %w", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		found, err := ps.questionnaires.FindQuestionnaire(grpCtx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrQuestionnaireNotFound) {
				return nil
			}
			return fmt.Errorf("questionnaires repository error: %w", err)
		}
		q = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prompt, err := BuildPlanPrompt(profile, q)
	if err != nil {
		return nil, err
	}
	// The prompt already demands a bare object and ParsePlan tolerates
	// surrounding prose, so the plan request goes without json mode.
	raw, err := ps.client.Complete(ctx, prompt, completion.Options{})
	if err != nil {
		return nil, err
	}
	plan, err := ParsePlan(raw)
	if err != nil {
		return nil, &errorvalues.RejectedOutputError{Raw: raw, Err: err}
	}
	return plan, nil
}

func (ps *PlanService) SavePlan(ctx context.Context, uid uuid.UUID, plan *entity.Plan) (*MaterializeResult, error) {
	if err := ValidateWeek(plan); err != nil {
		return nil, err
	}
	return ps.materializer.Materialize(ctx, uid, plan, ps.now())
}

func (ps *PlanService) FoodInfo(ctx context.Context, req *FoodInfoRequest) (*entity.FoodInfo, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	key := normalizeFoodQuery(req.Query)
	if ps.cache != nil {
		if cached, ok := ps.cache.Get(key); ok {
			return cached, nil
		}
	}
	raw, err := ps.client.Complete(ctx, BuildFoodInfoPrompt(req.Query), completion.Options{ForceJSON: true})
	if err != nil {
		return nil, err
	}
	info, err := ParseFoodInfo(raw)
	if err != nil {
		return nil, &errorvalues.RejectedOutputError{Raw: raw, Err: err}
	}
	if ps.cache != nil {
		ps.cache.Add(key, info)
	}
	return info, nil
}
