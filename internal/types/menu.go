package types

// Ingredient is a single ingredient line in a meal.
type Ingredient struct {
	Name string `json:"name"`
	Qty  string `json:"qty"`
}

// Meal is one dish: name, ingredient lines, preparation steps and an
// estimated preparation time in minutes.
type Meal struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	// Pointer so an absent time_min is distinguishable from zero.
	TimeMin *int `json:"time_min"`
}

// DayMeals holds the named meal slots of a day. Absent slots stay nil.
type DayMeals struct {
	Breakfast *Meal `json:"breakfast,omitempty"`
	Lunch     *Meal `json:"lunch,omitempty"`
	Dinner    *Meal `json:"dinner,omitempty"`
}

// DayMenu is the menu of a single day.
type DayMenu struct {
	// Pointer so an absent day number is distinguishable from zero.
	Day   *int     `json:"day"`
	Meals DayMeals `json:"meals"`
}

// MenuOutput is the ordered day-by-day plan returned by the generator.
type MenuOutput struct {
	Days []DayMenu `json:"days"`
}

// ShoppingItem is one entry of a shopping list category.
type ShoppingItem struct {
	Name string `json:"name"`
	Qty  string `json:"qty"`
}

// ShoppingCategory groups shopping items under a category name.
type ShoppingCategory struct {
	Name  string         `json:"name"`
	Items []ShoppingItem `json:"items"`
}

// ShoppingList is the aggregated shopping list derived from a menu.
type ShoppingList struct {
	Categories []ShoppingCategory `json:"categories"`
}

// MenuResponse is the payload returned by menu generation and meal swap.
type MenuResponse struct {
	Menu         MenuOutput   `json:"menu"`
	ShoppingList ShoppingList `json:"shopping_list"`
}

// Substitution is one candidate replacement for an ingredient.
type Substitution struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// SubstitutionResponse is the payload returned by the substitutions
// operation.
type SubstitutionResponse struct {
	Substitutions []Substitution `json:"substitutions"`
}
