package types

// GenerateMenuRequest is the request body for POST /menu/generate.
type GenerateMenuRequest struct {
	UserID  string         `json:"user_id"`
	Profile DietaryProfile `json:"profile"`
	Days    int            `json:"days"`
}

// SwapMealRequest is the request body for POST /menu/swap. The existing
// menu is typed and shape-checked before it is embedded in the prompt.
type SwapMealRequest struct {
	UserID      string         `json:"user_id"`
	Profile     DietaryProfile `json:"profile"`
	Menu        MenuOutput     `json:"menu"`
	DayIndex    int            `json:"day_index"`
	MealKey     string         `json:"meal_key"`
	Constraints string         `json:"constraints,omitempty"`
}

// SubstitutionRequest is the request body for POST /substitutions.
type SubstitutionRequest struct {
	UserID     string         `json:"user_id"`
	Profile    DietaryProfile `json:"profile"`
	Ingredient string         `json:"ingredient"`
	Reason     string         `json:"reason"`
}
