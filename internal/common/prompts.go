package common

import (
	"fmt"
	"strings"
)

// NutritionistSystemPrompt frames every generation call.
const NutritionistSystemPrompt = `You are a registered dietitian. Answer only with JSON that matches the requested schema.
Never include markdown fences, commentary or medical diagnoses.`

// MealPlanSchema is the JSON shape expected back from a meal plan request.
const MealPlanSchema = `{"days":[{"day":1,"meals":[{"name":"","description":"","calories":0,"protein_g":0,"carbs_g":0,"fat_g":0}]}],"notes":""}`

// MealAnalysisSchema is the JSON shape expected back from a meal analysis request.
const MealAnalysisSchema = `{"calories":0,"protein_g":0,"carbs_g":0,"fat_g":0,"fiber_g":0,"confidence":"low|medium|high"}`

// MealPlanPromptInput carries the profile facts a plan prompt needs.
type MealPlanPromptInput struct {
	Days          int
	MealsPerDay   int
	Calories      int
	ProteinG      int
	CarbsG        int
	FatG          int
	Goal          string
	Diet          string
	Allergies     []string
	ActivityLevel string
}

// MealPlanPrompt renders the user prompt for a multi-day plan.
func MealPlanPrompt(in MealPlanPromptInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day meal plan with %d meals per day.\n", in.Days, in.MealsPerDay)
	fmt.Fprintf(&b, "Daily targets: %d kcal, %dg protein, %dg carbohydrates, %dg fat.\n", in.Calories, in.ProteinG, in.CarbsG, in.FatG)
	fmt.Fprintf(&b, "Goal: %s. Activity level: %s.\n", in.Goal, in.ActivityLevel)
	if in.Diet != "" {
		fmt.Fprintf(&b, "Dietary preference: %s.\n", in.Diet)
	}
	if len(in.Allergies) > 0 {
		fmt.Fprintf(&b, "Strictly exclude: %s.\n", strings.Join(in.Allergies, ", "))
	}
	b.WriteString("Respond with JSON shaped exactly like:\n")
	b.WriteString(MealPlanSchema)
	return b.String()
}

// MealAnalysisPrompt asks for a macro estimate of a free-text meal description.
func MealAnalysisPrompt(description string) string {
	return "Estimate the nutritional content of this meal:\n" +
		strings.TrimSpace(description) +
		"\nRespond with JSON shaped exactly like:\n" + MealAnalysisSchema
}

// StripCodeFence removes a ```json fence some models add despite instructions.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
