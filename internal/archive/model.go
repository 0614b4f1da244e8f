package archive

import (
	"strings"
	"time"

	"dietracker/internal/ledger"
)

// DateLayout is the calendar-day format stored in Date.
const DateLayout = "2006-01-02"

type GoalStatus string

const (
	OnTrack   GoalStatus = "On Track"
	OverLimit GoalStatus = "Over Limit"
)

// DailySummary is one saved day. The field keys are the stored document keys.
type DailySummary struct {
	User          string         `json:"User" bson:"User"`
	Date          string         `json:"Date" bson:"Date"`
	TotalCalories float64        `json:"Total_Calories" bson:"Total_Calories"`
	GoalStatus    GoalStatus     `json:"Goal_Status" bson:"Goal_Status"`
	Meals         []ledger.Entry `json:"Meals" bson:"Meals"`
}

// StatusFor is On Track when total is at or below target.
func StatusFor(total, target float64) GoalStatus {
	if total <= target {
		return OnTrack
	}
	return OverLimit
}

func NewDailySummary(user string, day time.Time, meals []ledger.Entry, target float64) DailySummary {
	var total float64
	for _, m := range meals {
		total += m.Calories
	}

	copied := make([]ledger.Entry, len(meals))
	copy(copied, meals)

	return DailySummary{
		User:          user,
		Date:          day.Format(DateLayout),
		TotalCalories: total,
		GoalStatus:    StatusFor(total, target),
		Meals:         copied,
	}
}

// MealNames joins dish names with ", " for list views.
func (d DailySummary) MealNames() string {
	names := make([]string, 0, len(d.Meals))
	for _, m := range d.Meals {
		names = append(names, m.DishName)
	}
	return strings.Join(names, ", ")
}
