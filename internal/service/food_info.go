package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/hashicorp/golang-lru/v2/expirable"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

const foodInfoCacheSize = 256

const foodInfoPromptTemplate = `You are a nutrition assistant.
Estimate the nutrition facts of the food described below.

FOOD: %s

Respond with a single JSON object and nothing else:
{"items":[{"name":string,"calories":number,"protein_g":number,"carbs_g":number,"fat_g":number}],"summary":string}

RULES:
1. One item per distinct food in the description, with realistic portion sizes.
2. "summary" is one or two short sentences.
3. Use numbers only, no units inside the values.`

// FoodInfoCache keeps answers per normalized query
type FoodInfoCache = expirable.LRU[string, *entity.FoodInfo]

// NewFoodInfoCache returns nil for a non-positive ttl, which turns caching off
func NewFoodInfoCache(ttl time.Duration) *FoodInfoCache {
	if ttl <= 0 {
		return nil
	}
	return expirable.NewLRU[string, *entity.FoodInfo](foodInfoCacheSize, nil, ttl)
}

func BuildFoodInfoPrompt(query string) string {
	return fmt.Sprintf(foodInfoPromptTemplate, strings.TrimSpace(query))
}

func normalizeFoodQuery(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}

// ParseFoodInfo is strict, the output must be exactly one JSON object
func ParseFoodInfo(raw string) (*entity.FoodInfo, error) {
	doc := strings.TrimSpace(raw)
	if !sonic.ValidString(doc) {
		return nil, fmt.Errorf("%w: malformed json", errorvalues.ErrAIFormat)
	}
	if err := requireArray(doc, "items"); err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrAIStructure, err)
	}
	var info entity.FoodInfo
	if err := sonic.UnmarshalString(doc, &info); err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrAIStructure, err)
	}
	return &info, nil
}
