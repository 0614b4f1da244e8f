package food

import (
	"errors"
	"math"
	"testing"
)

func newTestEstimator(t *testing.T) *Estimator {
	t.Helper()
	model, err := DefaultModel()
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	return NewEstimator(embeddedCatalogForTest(t), model)
}

func TestFromCatalog_ScalesLinearly(t *testing.T) {
	e := newTestEstimator(t)

	est, err := e.FromCatalog("Roti", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.Calories != 200 || est.ProteinG != 6 || est.CarbsG != 40 || est.FatG != 1.0 {
		t.Errorf("unexpected macros: %+v", est)
	}
	if est.Name != "Roti" {
		t.Errorf("name = %q", est.Name)
	}
	if est.DisplayQuantity != "2.0 piece" {
		t.Errorf("display quantity = %q", est.DisplayQuantity)
	}
	if len(est.Feedback) != 0 {
		t.Errorf("catalog estimate should not carry feedback yet")
	}
}

func TestFromCatalog_DisplayQuantity(t *testing.T) {
	e := newTestEstimator(t)

	cases := map[string]struct {
		qty  float64
		want string
	}{
		"Plain Rice": {0.5, "0.5 katori"},
		"Egg Bhurji": {1.5, "1.5 2 eggs"},
		"Tea (Chai)": {10, "10.0 cup"},
	}
	for name, tc := range cases {
		est, err := e.FromCatalog(name, tc.qty)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if est.DisplayQuantity != tc.want {
			t.Errorf("%s x%v: got %q, want %q", name, tc.qty, est.DisplayQuantity, tc.want)
		}
	}
}

func TestFromCatalog_Errors(t *testing.T) {
	e := newTestEstimator(t)

	for _, qty := range []float64{0, 0.25, 1.2, 10.5, -1} {
		if _, err := e.FromCatalog("Roti", qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("qty %v: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}

	if _, err := e.FromCatalog("Pizza", 1); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("expected ErrFoodNotFound, got %v", err)
	}
}

func TestFreeFormMacros(t *testing.T) {
	cases := []struct {
		base  Base
		style Style
		size  Size
		want  Macros
	}{
		{BaseRiceGrains, StyleBoiled, SizeMedium, Macros{Protein: 2, Fat: 0.5, Carbs: 25}},
		{BaseDalLentils, StyleHomeCurry, SizeMedium, Macros{Protein: 6, Fat: 7, Carbs: 20}},
		{BasePaneer, StyleRichGravy, SizeSmall, Macros{Protein: 7.5, Fat: 20.25, Carbs: 10.5}},
		{BaseChicken, StyleDeepFried, SizeLarge, Macros{Protein: 30, Fat: 37.5, Carbs: 15}},
	}

	for _, tc := range cases {
		got, err := FreeFormMacros(tc.base, tc.style, tc.size)
		if err != nil {
			t.Fatalf("%s/%s/%s: %v", tc.base, tc.style, tc.size, err)
		}
		if got != tc.want {
			t.Errorf("%s/%s/%s = %+v, want %+v", tc.base, tc.style, tc.size, got, tc.want)
		}
	}
}

func TestPredict(t *testing.T) {
	e := newTestEstimator(t)

	est, err := e.Predict(Description{Name: " Mom's Curry ", Base: BaseChicken, Style: StyleBoiled, Size: SizeMedium})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.Name != "Mom's Curry (AI)" {
		t.Errorf("name = %q", est.Name)
	}
	if est.DisplayQuantity != string(SizeMedium) {
		t.Errorf("display quantity = %q", est.DisplayQuantity)
	}
	if est.ProteinG != 20 || est.FatG != 5 || est.CarbsG != 0 {
		t.Errorf("unexpected macros: %+v", est)
	}
	// 5.2068*20 + 8.4036*5 + 4.4699
	if math.Abs(est.Calories-150.6247) > 0.001 {
		t.Errorf("calories = %v, want ~150.62", est.Calories)
	}
}

func TestPredict_Errors(t *testing.T) {
	e := newTestEstimator(t)

	if _, err := e.Predict(Description{Name: "   ", Base: BaseEgg, Style: StyleBoiled, Size: SizeSmall}); !errors.Is(err, ErrMealNameRequired) {
		t.Errorf("expected ErrMealNameRequired, got %v", err)
	}

	bad := []Description{
		{Name: "x", Base: "Pizza", Style: StyleBoiled, Size: SizeSmall},
		{Name: "x", Base: BaseEgg, Style: "Grilled", Size: SizeSmall},
		{Name: "x", Base: BaseEgg, Style: StyleBoiled, Size: "Huge"},
	}
	for _, d := range bad {
		if _, err := e.Predict(d); !errors.Is(err, ErrUnknownOption) {
			t.Errorf("%+v: expected ErrUnknownOption, got %v", d, err)
		}
	}
}

func TestMealOptions(t *testing.T) {
	opts := MealOptions()
	if len(opts.Bases) != 7 || len(opts.Styles) != 4 || len(opts.Sizes) != 3 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	for _, b := range opts.Bases {
		if _, ok := baseMacros[b]; !ok {
			t.Errorf("base %q has no macros", b)
		}
	}

	opts.Bases[0] = "mutated"
	if MealOptions().Bases[0] != BaseRiceGrains {
		t.Error("MealOptions must return a copy")
	}
}
