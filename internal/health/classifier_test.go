package health

import (
	"testing"

	"dietracker/internal/profile"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		bmi      float64
		status   string
		goal     profile.Goal
		feedback string
	}{
		{17.0, StatusNourishment, profile.MuscleGain, feedbackUnderweight},
		{18.4999, StatusNourishment, profile.MuscleGain, feedbackUnderweight},
		{18.5, StatusOptimal, profile.Maintenance, feedbackHealthy},
		{24.22, StatusOptimal, profile.Maintenance, feedbackHealthy},
		{24.89, StatusOptimal, profile.Maintenance, feedbackHealthy},
		{25.0, StatusBalance, profile.WeightLoss, feedbackAbove},
		{29.89, StatusBalance, profile.WeightLoss, feedbackAbove},
		{29.9, StatusPrioritizing, profile.WeightLoss, feedbackPriority},
		{35.0, StatusPrioritizing, profile.WeightLoss, feedbackPriority},
	}

	for _, tc := range cases {
		status, goal := Classify(tc.bmi)
		if status != tc.status || goal != tc.goal {
			t.Errorf("Classify(%v) = (%s, %s), want (%s, %s)", tc.bmi, status, goal, tc.status, tc.goal)
		}
		if got := FeedbackText(tc.bmi); got != tc.feedback {
			t.Errorf("FeedbackText(%v) = %q, want %q", tc.bmi, got, tc.feedback)
		}
	}
}

// Values between 24.9 and 25 match neither the optimal nor the balance band
// and fall through to the last branch.
func TestClassify_GapBetweenOptimalAndBalance(t *testing.T) {
	for _, bmi := range []float64{24.9, 24.95, 24.999} {
		status, goal := Classify(bmi)
		if status != StatusPrioritizing || goal != profile.WeightLoss {
			t.Errorf("Classify(%v) = (%s, %s), want (%s, %s)", bmi, status, goal, StatusPrioritizing, profile.WeightLoss)
		}
		if FeedbackText(bmi) != feedbackPriority {
			t.Errorf("FeedbackText(%v) should use the last branch", bmi)
		}
	}
}
