package health

import "dietracker/internal/profile"

const (
	StatusNourishment  = "Focus on Nourishment"
	StatusOptimal      = "Optimal Zone"
	StatusBalance      = "Finding Balance"
	StatusPrioritizing = "Health Prioritization"
)

const (
	feedbackUnderweight = "You are slightly underweight. Focusing on nutrient-dense foods will help build strength."
	feedbackHealthy     = "Great work! You are in a healthy weight range. Keep maintaining this balance."
	feedbackAbove       = "You are slightly above the ideal range. Small adjustments to your diet can help."
	feedbackPriority    = "Your health matters. A structured plan for weight management is recommended."
)

type band int

const (
	bandUnder band = iota
	bandOptimal
	bandBalance
	bandOther
)

// bandFor keeps the historical thresholds. The optimal band ends at 24.9 and
// the next one starts at 25, so [24.9, 25) lands in bandOther.
func bandFor(bmi float64) band {
	switch {
	case bmi < 18.5:
		return bandUnder
	case bmi >= 18.5 && bmi < 24.9:
		return bandOptimal
	case bmi >= 25 && bmi < 29.9:
		return bandBalance
	default:
		return bandOther
	}
}

// Classify maps a BMI value to a status label and the goal suggested for it.
func Classify(bmi float64) (string, profile.Goal) {
	switch bandFor(bmi) {
	case bandUnder:
		return StatusNourishment, profile.MuscleGain
	case bandOptimal:
		return StatusOptimal, profile.Maintenance
	case bandBalance:
		return StatusBalance, profile.WeightLoss
	default:
		return StatusPrioritizing, profile.WeightLoss
	}
}

// FeedbackText returns the sentence shown under the BMI score.
func FeedbackText(bmi float64) string {
	switch bandFor(bmi) {
	case bandUnder:
		return feedbackUnderweight
	case bandOptimal:
		return feedbackHealthy
	case bandBalance:
		return feedbackAbove
	default:
		return feedbackPriority
	}
}
