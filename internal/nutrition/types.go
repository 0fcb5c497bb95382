package nutrition

// Macros is a nutritional estimate for one meal or one day.
type Macros struct {
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	FiberG     float64 `json:"fiber_g,omitempty"`
	Confidence string  `json:"confidence,omitempty"`
}

// Meal is one entry of a generated plan.
type Meal struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
}

// DayPlan groups the meals of one day.
type DayPlan struct {
	Day   int    `json:"day"`
	Meals []Meal `json:"meals"`
}

// Totals sums the meals of the day.
func (d DayPlan) Totals() Macros {
	var m Macros
	for _, meal := range d.Meals {
		m.Calories += meal.Calories
		m.ProteinG += meal.ProteinG
		m.CarbsG += meal.CarbsG
		m.FatG += meal.FatG
	}
	return m
}

// MealPlan is the generated plan plus the targets it was built for.
type MealPlan struct {
	Targets Targets   `json:"targets"`
	Days    []DayPlan `json:"days"`
	Notes   string    `json:"notes,omitempty"`
	Model   string    `json:"model"`
}
