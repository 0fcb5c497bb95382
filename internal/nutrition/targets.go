package nutrition

import "math"

const (
	minDailyCalories = 1200
	deficitKcal      = 500
	surplusKcal      = 300
	fatShare         = 0.25
)

// Targets are daily energy and macro goals.
type Targets struct {
	BMR      int `json:"bmr"`
	TDEE     int `json:"tdee"`
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// EstimateTargets uses the Mifflin-St Jeor equation scaled by activity,
// then shifts calories for the goal and splits macros.
// The profile must already be normalized and valid.
func EstimateTargets(p Profile) Targets {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	tdee := bmr * activityFactors[p.ActivityLevel]

	calories := tdee
	proteinPerKg := 1.6
	switch p.Goal {
	case GoalLose:
		calories = math.Max(tdee-deficitKcal, minDailyCalories)
		proteinPerKg = 2.0
	case GoalGain:
		calories = tdee + surplusKcal
		proteinPerKg = 1.8
	}

	protein := proteinPerKg * p.WeightKg
	fat := calories * fatShare / 9
	carbs := math.Max((calories-protein*4-fat*9)/4, 0)

	return Targets{
		BMR:      round(bmr),
		TDEE:     round(tdee),
		Calories: round(calories),
		ProteinG: round(protein),
		CarbsG:   round(carbs),
		FatG:     round(fat),
	}
}

func round(v float64) int { return int(math.Round(v)) }
