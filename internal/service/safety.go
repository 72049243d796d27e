package service

import (
	"strings"

	"github.com/skinchef/backend/internal/types"
)

// accentFold lowercases comparisons across the accented vowels common in
// Spanish ingredient names ("alérgeno" vs "alergeno"). Ñ is left alone.
var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u",
)

func normalizeTerm(s string) string {
	return accentFold.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// CheckMenuSafety cross-checks every ingredient and shopping item name in
// a generated menu against the profile's allergy and dislike sets. The
// prompt instructs the model to honor these rules; this is the programmatic
// backstop that rejects output the model got wrong.
func CheckMenuSafety(resp *types.MenuResponse, profile *types.DietaryProfile) error {
	for _, d := range resp.Menu.Days {
		for _, meal := range []*types.Meal{d.Meals.Breakfast, d.Meals.Lunch, d.Meals.Dinner} {
			if meal == nil {
				continue
			}
			for _, ing := range meal.Ingredients {
				if err := checkName(ing.Name, profile); err != nil {
					return err
				}
			}
		}
	}
	for _, cat := range resp.ShoppingList.Categories {
		for _, item := range cat.Items {
			if err := checkName(item.Name, profile); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckSubstitutionSafety cross-checks substitution candidates against the
// profile's exclusion sets.
func CheckSubstitutionSafety(resp *types.SubstitutionResponse, profile *types.DietaryProfile) error {
	for _, sub := range resp.Substitutions {
		if err := checkName(sub.Name, profile); err != nil {
			return err
		}
	}
	return nil
}

func checkName(name string, profile *types.DietaryProfile) error {
	normalized := normalizeTerm(name)
	for _, term := range profile.Allergies {
		if t := normalizeTerm(term); t != "" && strings.Contains(normalized, t) {
			return &SafetyError{Ingredient: name, Term: term, Rule: "allergen"}
		}
	}
	for _, term := range profile.Dislikes {
		if t := normalizeTerm(term); t != "" && strings.Contains(normalized, t) {
			return &SafetyError{Ingredient: name, Term: term, Rule: "dislike"}
		}
	}
	return nil
}
