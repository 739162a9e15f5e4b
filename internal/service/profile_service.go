package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type ProfileService struct {
	profiles       repository.ProfilesRepositoryI
	questionnaires repository.QuestionnairesRepositoryI
}

func NewProfileService(profiles repository.ProfilesRepositoryI, questionnaires repository.QuestionnairesRepositoryI) *ProfileService {
	if profiles == nil || questionnaires == nil {
		log.Fatal("on profile service provided nil repos")
	}
	return &ProfileService{
		profiles:       profiles,
		questionnaires: questionnaires,
	}
}

func (ps *ProfileService) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error) {
	profile, err := ps.profiles.FindProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return &entity.UserProfile{UserID: uid}, nil
		}
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	return profile, nil
}

func (ps *ProfileService) UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	err := ps.profiles.UpsertProfile(ctx, &entity.UserProfile{
		UserID:      uid,
		Age:         req.Age,
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("profiles repository error: %w", err)
	}
	return nil
}

func (ps *ProfileService) GetQuestionnaire(ctx context.Context, uid uuid.UUID) (*entity.Questionnaire, error) {
	q, err := ps.questionnaires.FindQuestionnaire(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrQuestionnaireNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("questionnaires repository error: %w", err)
	}
	return q, nil
}

func (ps *ProfileService) SaveQuestionnaire(ctx context.Context, uid uuid.UUID, req *QuestionnaireRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	err := ps.questionnaires.UpsertQuestionnaire(ctx, &entity.Questionnaire{
		UserID:         uid,
		Goals:          req.Goals,
		FitnessLevel:   req.FitnessLevel,
		DietPreference: req.DietPreference,
		Equipment:      req.Equipment,
		MinutesPerDay:  req.MinutesPerDay,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("questionnaires repository error: %w", err)
	}
	return nil
}
