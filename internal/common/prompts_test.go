package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealPlanPromptIncludesConstraints(t *testing.T) {
	p := MealPlanPrompt(MealPlanPromptInput{
		Days: 3, MealsPerDay: 4, Calories: 2100, ProteinG: 150, CarbsG: 200, FatG: 70,
		Goal: "lose", Diet: "vegetarian", Allergies: []string{"peanuts", "shellfish"}, ActivityLevel: "moderate",
	})
	assert.Contains(t, p, "3-day meal plan with 4 meals")
	assert.Contains(t, p, "2100 kcal")
	assert.Contains(t, p, "vegetarian")
	assert.Contains(t, p, "peanuts, shellfish")
	assert.Contains(t, p, MealPlanSchema)
}

func TestMealPlanPromptOmitsEmptyOptionalFields(t *testing.T) {
	p := MealPlanPrompt(MealPlanPromptInput{Days: 1, MealsPerDay: 3})
	assert.NotContains(t, p, "Dietary preference")
	assert.NotContains(t, p, "Strictly exclude")
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("  {\"a\":1} "))
}
