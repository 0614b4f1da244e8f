package metrics

import (
	"dietracker/internal/health"
	"dietracker/internal/profile"
)

// PURE formulas, no validation beyond what Profile.Validate already enforces.

const defaultActivityFactor = 1.2

var activityFactors = map[profile.ActivityLevel]float64{
	profile.Sedentary: 1.2,
	profile.Light:     1.375,
	profile.Moderate:  1.55,
	profile.Active:    1.725,
}

// BMR uses the Mifflin-St Jeor equation.
func BMR(weightKg, heightCm float64, age int, gender profile.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == profile.Male {
		return base + 5
	}
	return base - 161
}

// TDEE scales bmr by the activity factor. Unknown levels count as sedentary.
func TDEE(bmr float64, activity profile.ActivityLevel) float64 {
	factor, ok := activityFactors[activity]
	if !ok {
		factor = defaultActivityFactor
	}
	return bmr * factor
}

func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

func DailyTarget(tdee float64, goal profile.Goal) float64 {
	switch goal {
	case profile.WeightLoss:
		return tdee - 500
	case profile.MuscleGain:
		return tdee + 300
	default:
		return tdee
	}
}

// Derived holds every number computed from a Profile.
type Derived struct {
	BMI           float64      `json:"bmi"`
	BMIStatus     string       `json:"bmi_status"`
	SuggestedGoal profile.Goal `json:"suggested_goal"`
	BMIFeedback   string       `json:"bmi_feedback"`
	BMR           float64      `json:"bmr"`
	TDEE          float64      `json:"tdee"`
	DailyTarget   float64      `json:"daily_target"`
}

func Derive(p profile.Profile) Derived {
	bmi := BMI(p.WeightKg, p.HeightCm)
	status, suggested := health.Classify(bmi)
	bmr := BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	tdee := TDEE(bmr, p.ActivityLevel)

	return Derived{
		BMI:           bmi,
		BMIStatus:     status,
		SuggestedGoal: suggested,
		BMIFeedback:   health.FeedbackText(bmi),
		BMR:           bmr,
		TDEE:          tdee,
		DailyTarget:   DailyTarget(tdee, p.Goal),
	}
}
