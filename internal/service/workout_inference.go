package service

import (
	"strings"

	"github.com/limbo/fittrack/pkg/entity"
)

const (
	defaultEquipment  = "None"
	defaultDifficulty = "Medium"
)

type keywordRule struct {
	keywords []string
	value    string
}

// Order matters, the first rule with a matching keyword wins
var bodyPartRules = []keywordRule{
	{keywords: []string{"squat", "lunge", "deadlift"}, value: "Legs"},
	{keywords: []string{"push", "bench"}, value: "Chest"},
	{keywords: []string{"row", "pull"}, value: "Back"},
	{keywords: []string{"curl", "bicep"}, value: "Arms"},
	{keywords: []string{"tricep", "dip"}, value: "Arms"},
	{keywords: []string{"shoulder", "press"}, value: "Shoulders"},
	{keywords: []string{"plank", "crunch", "core"}, value: "Core"},
	{keywords: []string{"run", "cardio", "burpee", "jump"}, value: "Cardio"},
}

var equipmentRules = []keywordRule{
	{keywords: []string{"dumbbell"}, value: "Dumbbells"},
	{keywords: []string{"barbell"}, value: "Barbell"},
	{keywords: []string{"machine"}, value: "Machine"},
	{keywords: []string{"band"}, value: "Bands"},
}

func matchRule(name string, rules []keywordRule) (string, bool) {
	lower := strings.ToLower(name)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.value, true
			}
		}
	}
	return "", false
}

// InferBodyPart returns nil when no keyword matches
func InferBodyPart(name string) *string {
	part, ok := matchRule(name, bodyPartRules)
	if !ok {
		return nil
	}
	return &part
}

func InferEquipment(name string) string {
	equipment, ok := matchRule(name, equipmentRules)
	if !ok {
		return defaultEquipment
	}
	return equipment
}

// InferWorkout builds catalog metadata for a workout known only by name
func InferWorkout(name string) *entity.Workout {
	name = strings.TrimSpace(name)
	return &entity.Workout{
		Name:       name,
		BodyPart:   InferBodyPart(name),
		Equipment:  InferEquipment(name),
		Difficulty: defaultDifficulty,
	}
}
