package profile

import (
	"errors"
	"fmt"
	"strings"
)

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type ActivityLevel string

const (
	Sedentary ActivityLevel = "Sedentary"
	Light     ActivityLevel = "Light"
	Moderate  ActivityLevel = "Moderate"
	Active    ActivityLevel = "Active"
)

type Goal string

const (
	WeightLoss  Goal = "Weight Loss"
	Maintenance Goal = "Maintenance"
	MuscleGain  Goal = "Muscle Gain"
)

var ErrInvalidProfile = errors.New("invalid profile")

// Profile is the user input collected on the setup screen.
type Profile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// Normalize trims free text so validation and display see the same value.
func (p *Profile) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
}

func (p Profile) Validate() error {
	switch {
	case p.Age < 10 || p.Age > 100:
		return invalid("age must be between 10 and 100")
	case p.WeightKg < 30 || p.WeightKg > 200:
		return invalid("weight_kg must be between 30 and 200")
	case p.HeightCm < 120 || p.HeightCm > 250:
		return invalid("height_cm must be between 120 and 250")
	}

	if p.Gender != Male && p.Gender != Female {
		return invalid(fmt.Sprintf("unknown gender %q", p.Gender))
	}

	switch p.ActivityLevel {
	case Sedentary, Light, Moderate, Active:
	default:
		return invalid(fmt.Sprintf("unknown activity_level %q", p.ActivityLevel))
	}

	switch p.Goal {
	case WeightLoss, Maintenance, MuscleGain:
	default:
		return invalid(fmt.Sprintf("unknown goal %q", p.Goal))
	}

	return nil
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidProfile, reason)
}
