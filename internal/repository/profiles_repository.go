package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type ProfilesRepository struct {
	conn Querier
}

func NewProfilesRepo(conn PgConnection) *ProfilesRepository {
	mustPing(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) FindProfile(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error) {
	profile := entity.UserProfile{UserID: uid}
	row := pr.conn.QueryRow(ctx,
		`SELECT age, weight_kg, height_cm, gender, date_of_birth FROM user_profiles WHERE user_id = $1;`,
		uid,
	)
	if err := row.Scan(&profile.Age, &profile.WeightKg, &profile.HeightCm, &profile.Gender, &profile.DateOfBirth); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("searching profile error: " + err.Error())
	}
	return &profile, nil
}

func (pr *ProfilesRepository) UpsertProfile(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	_, err := pr.conn.Exec(ctx,
		`INSERT INTO user_profiles (user_id, age, weight_kg, height_cm, gender, date_of_birth) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET age = EXCLUDED.age, weight_kg = EXCLUDED.weight_kg, height_cm = EXCLUDED.height_cm,
		gender = EXCLUDED.gender, date_of_birth = EXCLUDED.date_of_birth;`,
		profile.UserID,
		profile.Age,
		profile.WeightKg,
		profile.HeightCm,
		profile.Gender,
		profile.DateOfBirth,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving profile error: " + err.Error())
	}
	return nil
}

type QuestionnairesRepository struct {
	conn Querier
}

func NewQuestionnairesRepo(conn PgConnection) *QuestionnairesRepository {
	mustPing(conn, "questionnairesRepo")
	return &QuestionnairesRepository{
		conn: conn,
	}
}

func (qr *QuestionnairesRepository) FindQuestionnaire(ctx context.Context, uid uuid.UUID) (*entity.Questionnaire, error) {
	q := entity.Questionnaire{UserID: uid}
	row := qr.conn.QueryRow(ctx,
		`SELECT goals, fitness_level, diet_preference, equipment, minutes_per_day FROM questionnaires WHERE user_id = $1;`,
		uid,
	)
	if err := row.Scan(&q.Goals, &q.FitnessLevel, &q.DietPreference, &q.Equipment, &q.MinutesPerDay); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrQuestionnaireNotFound
		}
		return nil, errors.New("searching questionnaire error: " + err.Error())
	}
	return &q, nil
}

func (qr *QuestionnairesRepository) UpsertQuestionnaire(ctx context.Context, q *entity.Questionnaire) error {
	if q == nil {
		return errors.New("questionnaire is nil")
	}
	_, err := qr.conn.Exec(ctx,
		`INSERT INTO questionnaires (user_id, goals, fitness_level, diet_preference, equipment, minutes_per_day) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET goals = EXCLUDED.goals, fitness_level = EXCLUDED.fitness_level,
		diet_preference = EXCLUDED.diet_preference, equipment = EXCLUDED.equipment, minutes_per_day = EXCLUDED.minutes_per_day;`,
		q.UserID,
		q.Goals,
		q.FitnessLevel,
		q.DietPreference,
		q.Equipment,
		q.MinutesPerDay,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving questionnaire error: " + err.Error())
	}
	return nil
}
