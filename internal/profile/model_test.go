package profile

import (
	"errors"
	"testing"
)

func validProfile() Profile {
	return Profile{
		Name:          "Asha",
		Age:           20,
		Gender:        Female,
		WeightKg:      60,
		HeightCm:      170,
		ActivityLevel: Moderate,
		Goal:          Maintenance,
	}
}

func TestValidate_Accepts(t *testing.T) {
	p := validProfile()
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// range bounds are inclusive
	p.Age, p.WeightKg, p.HeightCm = 10, 30, 120
	if err := p.Validate(); err != nil {
		t.Fatalf("lower bounds rejected: %v", err)
	}
	p.Age, p.WeightKg, p.HeightCm = 100, 200, 250
	if err := p.Validate(); err != nil {
		t.Fatalf("upper bounds rejected: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(p *Profile){
		"young":     func(p *Profile) { p.Age = 9 },
		"old":       func(p *Profile) { p.Age = 101 },
		"light":     func(p *Profile) { p.WeightKg = 29.9 },
		"heavy":     func(p *Profile) { p.WeightKg = 200.5 },
		"short":     func(p *Profile) { p.HeightCm = 119 },
		"tall":      func(p *Profile) { p.HeightCm = 251 },
		"gender":    func(p *Profile) { p.Gender = "Other" },
		"activity":  func(p *Profile) { p.ActivityLevel = "Athlete" },
		"goal":      func(p *Profile) { p.Goal = "Bulk" },
		"emptyGoal": func(p *Profile) { p.Goal = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := validProfile()
			mutate(&p)
			err := p.Validate()
			if !errors.Is(err, ErrInvalidProfile) {
				t.Fatalf("expected ErrInvalidProfile, got %v", err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	p := validProfile()
	p.Name = "  Asha \n"
	p.Normalize()
	if p.Name != "Asha" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
}
