package advisor

const (
	TipProteinBoost = "Protein Boost: This meal is low in protein. Consider adding Dal, Paneer, or Curd."
	TipMuscleFuel   = "Muscle Fuel: Excellent protein content for recovery and strength."
	TipHeartyMeal   = "Hearty Meal: This is a heavy meal. Keep your next meal light."
	TipLightSnack   = "Light Snack: Good energy boost without heaviness."
	TipOverTarget   = "Over Target: You've exceeded your goal. Maybe take a short walk?"
	TipOnTarget     = "On Target: Very close to your goal. Great consistency!"
	TipOnTrack      = "On Track: You have room left in your budget."
)

// Generate returns tips for one meal. Each rule group adds at most one tip,
// in the order protein, meal size, budget; the budget group always fires.
// remaining is the daily budget left after this meal. carbs is accepted
// for call-site compatibility and does not drive any rule.
func Generate(calories, protein, carbs, remaining float64) []string {
	tips := make([]string, 0, 3)

	if protein < 5 {
		tips = append(tips, TipProteinBoost)
	} else if protein > 25 {
		tips = append(tips, TipMuscleFuel)
	}

	if calories > 800 {
		tips = append(tips, TipHeartyMeal)
	} else if calories < 150 {
		tips = append(tips, TipLightSnack)
	}

	switch {
	case remaining < 0:
		tips = append(tips, TipOverTarget)
	case remaining < 200:
		tips = append(tips, TipOnTarget)
	default:
		tips = append(tips, TipOnTrack)
	}

	return tips
}
