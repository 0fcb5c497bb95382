package nutrition

import (
	"fmt"
	"strings"

	apperrors "nutriplan-go/internal/errors"
)

// Activity levels accepted in a Profile.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Goals accepted in a Profile.
const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

var activityFactors = map[string]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// Profile is what the user tells us about themselves.
type Profile struct {
	Age           int      `json:"age"`
	Sex           string   `json:"sex"`
	HeightCm      float64  `json:"height_cm"`
	WeightKg      float64  `json:"weight_kg"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`
	Diet          string   `json:"diet,omitempty"`
	Allergies     []string `json:"allergies,omitempty"`
	MealsPerDay   int      `json:"meals_per_day,omitempty"`
	Days          int      `json:"days,omitempty"`
}

// Normalize lowercases enums and fills defaults for optional counts.
func (p *Profile) Normalize() {
	p.Sex = strings.ToLower(strings.TrimSpace(p.Sex))
	p.ActivityLevel = strings.ToLower(strings.TrimSpace(p.ActivityLevel))
	p.Goal = strings.ToLower(strings.TrimSpace(p.Goal))
	p.Diet = strings.TrimSpace(p.Diet)
	if p.ActivityLevel == "" {
		p.ActivityLevel = ActivityModerate
	}
	if p.Goal == "" {
		p.Goal = GoalMaintain
	}
	if p.MealsPerDay == 0 {
		p.MealsPerDay = 3
	}
	if p.Days == 0 {
		p.Days = 1
	}
	allergies := p.Allergies[:0]
	for _, a := range p.Allergies {
		if a = strings.TrimSpace(a); a != "" {
			allergies = append(allergies, a)
		}
	}
	p.Allergies = allergies
}

// Validate reports the first invalid field as a 400 APIError.
func (p Profile) Validate() error {
	switch {
	case p.Age < 14 || p.Age > 100:
		return invalidField("age", "must be between 14 and 100")
	case p.Sex != "male" && p.Sex != "female":
		return invalidField("sex", "must be male or female")
	case p.HeightCm < 100 || p.HeightCm > 250:
		return invalidField("height_cm", "must be between 100 and 250")
	case p.WeightKg < 30 || p.WeightKg > 300:
		return invalidField("weight_kg", "must be between 30 and 300")
	case activityFactors[p.ActivityLevel] == 0:
		return invalidField("activity_level", "unknown activity level")
	case p.Goal != GoalLose && p.Goal != GoalMaintain && p.Goal != GoalGain:
		return invalidField("goal", "must be lose, maintain or gain")
	case p.MealsPerDay < 1 || p.MealsPerDay > 6:
		return invalidField("meals_per_day", "must be between 1 and 6")
	case p.Days < 1 || p.Days > 7:
		return invalidField("days", "must be between 1 and 7")
	}
	return nil
}

func invalidField(field, reason string) error {
	return apperrors.BadRequest(fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetails(map[string]interface{}{"field": field})
}
