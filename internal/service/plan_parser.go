package service

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

const daysInWeek = 7

// ExtractJSONObject slices raw from the first '{' to the last '}'.
func ExtractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || start >= end {
		return "", false
	}
	return raw[start : end+1], true
}

// ParsePlan turns model output into a Plan. It tolerates prose and code
// fences around the object but does not repair the plan itself, a plan with
// five days is returned as is. Syntactically valid JSON of the wrong shape is
// a structure error, not a format error.
func ParsePlan(raw string) (*entity.Plan, error) {
	obj, ok := ExtractJSONObject(raw)
	if !ok {
		if trimmed := strings.TrimSpace(raw); trimmed != "" && sonic.ValidString(trimmed) {
			return nil, fmt.Errorf("%w: output is json but not an object", errorvalues.ErrPlanStructure)
		}
		return nil, fmt.Errorf("%w: no json object in output", errorvalues.ErrPlanFormat)
	}
	if !sonic.ValidString(obj) {
		return nil, fmt.Errorf("%w: malformed json object", errorvalues.ErrPlanFormat)
	}
	if err := requireArray(obj, "days"); err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrPlanStructure, err)
	}
	var plan entity.Plan
	if err := sonic.UnmarshalString(obj, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrPlanStructure, err)
	}
	if len(plan.Days) == 0 {
		return nil, fmt.Errorf("%w: days are empty", errorvalues.ErrPlanStructure)
	}
	return &plan, nil
}

// requireArray checks that doc is an object whose key holds an array.
// doc must already be valid JSON.
func requireArray(doc, key string) error {
	node, err := sonic.GetFromString(doc, key)
	if err != nil {
		return fmt.Errorf("%s is missing", key)
	}
	if node.TypeSafe() != ast.V_ARRAY {
		return fmt.Errorf("%s is not an array", key)
	}
	return nil
}

// ValidateWeek checks what a plan must satisfy before it is saved:
// field limits, exactly seven days and distinct offsets 0..6.
func ValidateWeek(plan *entity.Plan) error {
	if plan == nil {
		return fmt.Errorf("%w: plan is missing", errorvalues.ErrPlanStructure)
	}
	if err := validateStruct(plan); err != nil {
		return fmt.Errorf("%w: %v", errorvalues.ErrPlanStructure, err)
	}
	if len(plan.Days) != daysInWeek {
		return fmt.Errorf("%w: expected %d days, got %d", errorvalues.ErrPlanStructure, daysInWeek, len(plan.Days))
	}
	var seen [daysInWeek]bool
	for _, day := range plan.Days {
		if day.DayOffset < 0 || day.DayOffset >= daysInWeek {
			return fmt.Errorf("%w: day offset %d out of range", errorvalues.ErrPlanStructure, day.DayOffset)
		}
		if seen[day.DayOffset] {
			return fmt.Errorf("%w: day offset %d repeated", errorvalues.ErrPlanStructure, day.DayOffset)
		}
		seen[day.DayOffset] = true
	}
	return nil
}
