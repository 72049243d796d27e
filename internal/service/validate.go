package service

import (
	"strings"

	"github.com/skinchef/backend/internal/types"
)

var mealKeys = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
}

// ValidateProfile normalizes and validates a dietary profile in place.
// List entries are trimmed; empty entries are rejected rather than dropped
// so the caller learns about the bad field.
func ValidateProfile(p *types.DietaryProfile) error {
	if p.BudgetEURWeek < 0 {
		return &ValidationError{Field: "profile.budget_eur_week", Message: "must not be negative"}
	}
	if p.Diners < 1 {
		return &ValidationError{Field: "profile.diners", Message: "must be at least 1"}
	}
	if p.MealsPerDay < 1 {
		return &ValidationError{Field: "profile.meals_per_day", Message: "must be at least 1"}
	}
	if p.Days < 1 {
		return &ValidationError{Field: "profile.days", Message: "must be at least 1"}
	}
	p.Diet = strings.TrimSpace(p.Diet)
	if p.Diet == "" {
		return &ValidationError{Field: "profile.diet", Message: "must not be empty"}
	}
	if err := cleanTerms(p.Allergies, "profile.allergies"); err != nil {
		return err
	}
	if err := cleanTerms(p.Dislikes, "profile.dislikes"); err != nil {
		return err
	}
	return nil
}

func cleanTerms(terms []string, field string) error {
	for i, t := range terms {
		terms[i] = strings.TrimSpace(t)
		if terms[i] == "" {
			return &ValidationError{Field: field, Message: "must not contain empty entries"}
		}
	}
	return nil
}

// ValidateGenerateRequest checks a menu generation request.
func ValidateGenerateRequest(req *types.GenerateMenuRequest) error {
	if req.Days < 1 {
		return &ValidationError{Field: "days", Message: "must be at least 1"}
	}
	return ValidateProfile(&req.Profile)
}

// ValidateSwapRequest checks a meal swap request. The incoming menu must
// pass the same shape checks applied to generation output before it is
// embedded in a prompt.
func ValidateSwapRequest(req *types.SwapMealRequest) error {
	if req.DayIndex < 0 {
		return &ValidationError{Field: "day_index", Message: "must not be negative"}
	}
	if !mealKeys[req.MealKey] {
		return &ValidationError{Field: "meal_key", Message: "must be one of breakfast, lunch, dinner"}
	}
	if problem := menuOutputProblem(&req.Menu); problem != "" {
		return &ValidationError{Field: "menu", Message: problem}
	}
	return ValidateProfile(&req.Profile)
}

// ValidateSubstitutionRequest checks an ingredient substitution request.
func ValidateSubstitutionRequest(req *types.SubstitutionRequest) error {
	req.Ingredient = strings.TrimSpace(req.Ingredient)
	if req.Ingredient == "" {
		return &ValidationError{Field: "ingredient", Message: "must not be empty"}
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		return &ValidationError{Field: "reason", Message: "must not be empty"}
	}
	return ValidateProfile(&req.Profile)
}
