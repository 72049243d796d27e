package types

// DietaryProfile describes the constraints and preferences a menu is
// generated against. It is rebuilt from every request and never persisted.
type DietaryProfile struct {
	BudgetEURWeek float64  `json:"budget_eur_week"`
	Diners        int      `json:"diners"`
	MealsPerDay   int      `json:"meals_per_day"`
	Days          int      `json:"days"`
	Allergies     []string `json:"allergies"`
	Diet          string   `json:"diet"`
	Dislikes      []string `json:"dislikes"`
	PantryText    string   `json:"pantry_text"`
}
