package service

import (
	"encoding/json"
	"fmt"

	"github.com/skinchef/backend/internal/types"
)

// ParseMenuResponse parses raw model output into a MenuResponse and checks
// it against the declared schema. Parse failures and shape mismatches both
// come back as *MalformedOutputError; partial data never passes through.
func ParseMenuResponse(raw string) (*types.MenuResponse, error) {
	var out types.MenuResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &MalformedOutputError{Message: "JSON parse error", Err: err}
	}
	if problem := menuOutputProblem(&out.Menu); problem != "" {
		return nil, &MalformedOutputError{Message: problem}
	}
	if problem := shoppingListProblem(&out.ShoppingList); problem != "" {
		return nil, &MalformedOutputError{Message: problem}
	}
	return &out, nil
}

// ParseSubstitutionResponse parses raw model output into a
// SubstitutionResponse. Only the shape is enforced; the 3-5 candidate
// count is the model's responsibility.
func ParseSubstitutionResponse(raw string) (*types.SubstitutionResponse, error) {
	var out types.SubstitutionResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &MalformedOutputError{Message: "JSON parse error", Err: err}
	}
	if len(out.Substitutions) == 0 {
		return nil, &MalformedOutputError{Message: "substitutions is empty"}
	}
	for i, sub := range out.Substitutions {
		if sub.Name == "" {
			return nil, &MalformedOutputError{Message: fmt.Sprintf("substitutions[%d].name is empty", i)}
		}
		if sub.Notes == "" {
			return nil, &MalformedOutputError{Message: fmt.Sprintf("substitutions[%d].notes is empty", i)}
		}
	}
	return &out, nil
}

// menuOutputProblem returns a description of the first shape violation in
// a menu, or "" when the menu is well formed. Shared by the response
// validator and the swap request validator.
func menuOutputProblem(m *types.MenuOutput) string {
	if len(m.Days) == 0 {
		return "menu.days is empty"
	}
	for i, d := range m.Days {
		if d.Day == nil {
			return fmt.Sprintf("menu.days[%d].day is missing", i)
		}
		meals := d.Meals
		if meals.Breakfast == nil && meals.Lunch == nil && meals.Dinner == nil {
			return fmt.Sprintf("menu.days[%d] has no meals", i)
		}
		slots := []struct {
			key  string
			meal *types.Meal
		}{
			{"breakfast", meals.Breakfast},
			{"lunch", meals.Lunch},
			{"dinner", meals.Dinner},
		}
		for _, s := range slots {
			if s.meal == nil {
				continue
			}
			if problem := mealProblem(s.meal); problem != "" {
				return fmt.Sprintf("menu.days[%d].meals.%s: %s", i, s.key, problem)
			}
		}
	}
	return ""
}

func mealProblem(m *types.Meal) string {
	if m.Name == "" {
		return "name is empty"
	}
	if len(m.Ingredients) == 0 {
		return "ingredients is empty"
	}
	for i, ing := range m.Ingredients {
		if ing.Name == "" {
			return fmt.Sprintf("ingredients[%d].name is empty", i)
		}
		if ing.Qty == "" {
			return fmt.Sprintf("ingredients[%d].qty is empty", i)
		}
	}
	if len(m.Steps) == 0 {
		return "steps is empty"
	}
	if m.TimeMin == nil {
		return "time_min is missing"
	}
	if *m.TimeMin < 0 {
		return "time_min is negative"
	}
	return ""
}

func shoppingListProblem(l *types.ShoppingList) string {
	if len(l.Categories) == 0 {
		return "shopping_list.categories is empty"
	}
	for i, cat := range l.Categories {
		if cat.Name == "" {
			return fmt.Sprintf("shopping_list.categories[%d].name is empty", i)
		}
		for j, item := range cat.Items {
			if item.Name == "" {
				return fmt.Sprintf("shopping_list.categories[%d].items[%d].name is empty", i, j)
			}
			if item.Qty == "" {
				return fmt.Sprintf("shopping_list.categories[%d].items[%d].qty is empty", i, j)
			}
		}
	}
	return ""
}
