package service

import (
	"fmt"
	"strconv"
	"strings"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

const unknownValue = "unknown"

const planPromptTemplate = `You are a certified personal trainer and nutrition coach.
Create a 7-day workout and nutrition plan for the user described below.

USER PROFILE:
- Age: %s
- Weight (kg): %s
- Height (cm): %s
- Gender: %s
- Date of birth: %s

QUESTIONNAIRE:
- Goals: %s
- Fitness level: %s
- Diet preference: %s
- Available equipment: %s
- Minutes available per day: %s

OUTPUT FORMAT:
Respond with a single JSON object and nothing else, using exactly these field names:
{ "days": [ { "dayOffset": int, "label": string, "calorie_goal": number,
  "protein_goal_g": number, "notes": string,
  "workouts": [ { "name": string, "time_block": string, "approx_calories": number } ] } ] }

EXAMPLE:
{"days":[{"dayOffset":0,"label":"Monday - Upper body","calorie_goal":2200,"protein_goal_g":140,"notes":"Drink at least 2 liters of water.","workouts":[{"name":"Dumbbell Bench Press","time_block":"Morning","approx_calories":180},{"name":"Plank","time_block":"Evening"}]}]}

RULES:
1. The plan has exactly 7 days with dayOffset values 0, 1, 2, 3, 4, 5 and 6, where 0 is today.
2. Every day must include "calorie_goal" and "protein_goal_g".
3. Every day has between 1 and 3 workouts.
4. Workout names must be realistic exercise names a gym catalog would use.
5. "approx_calories" is optional, include it only when you can estimate it.
6. Fit the workouts into the minutes available per day and the available equipment.`

// BuildPlanPrompt renders the plan request. The questionnaire is required,
// the profile and any of its fields may be missing.
func BuildPlanPrompt(profile *entity.UserProfile, q *entity.Questionnaire) (string, error) {
	if q == nil {
		return "", errorvalues.ErrPreconditionMissing
	}
	if profile == nil {
		profile = &entity.UserProfile{}
	}
	dob := unknownValue
	if profile.DateOfBirth != nil {
		dob = profile.DateOfBirth.Format("2006-01-02")
	}
	return fmt.Sprintf(planPromptTemplate,
		intOrUnknown(profile.Age),
		floatOrUnknown(profile.WeightKg),
		floatOrUnknown(profile.HeightCm),
		stringOrUnknown(profile.Gender),
		dob,
		orUnknown(q.Goals),
		orUnknown(q.FitnessLevel),
		orUnknown(q.DietPreference),
		orUnknown(q.Equipment),
		strconv.Itoa(q.MinutesPerDay),
	), nil
}

func intOrUnknown(v *int) string {
	if v == nil {
		return unknownValue
	}
	return strconv.Itoa(*v)
}

func floatOrUnknown(v *float64) string {
	if v == nil {
		return unknownValue
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func stringOrUnknown(v *string) string {
	if v == nil {
		return unknownValue
	}
	return orUnknown(*v)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknownValue
	}
	return s
}
