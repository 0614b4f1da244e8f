package food

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be between 0.5 and 10 in steps of 0.5")
	ErrMealNameRequired = errors.New("name your meal first")
	ErrUnknownOption    = errors.New("unknown meal option")
)

const (
	MinQuantity  = 0.5
	MaxQuantity  = 10.0
	QuantityStep = 0.5
)

type Base string

const (
	BaseRiceGrains Base = "Rice/Grains"
	BaseDalLentils Base = "Dal/Lentils"
	BasePaneer     Base = "Paneer"
	BaseChicken    Base = "Chicken/Meat"
	BaseEgg        Base = "Egg"
	BaseVegetables Base = "Vegetables"
	BaseFastFood   Base = "Fast Food/Snack"
)

type Style string

const (
	StyleBoiled    Style = "Boiled / Steamed"
	StyleHomeCurry Style = "Home-Cooked Curry"
	StyleRichGravy Style = "Restaurant / Rich Gravy"
	StyleDeepFried Style = "Deep Fried"
)

type Size string

const (
	SizeSmall  Size = "Small Bowl / 1 pc"
	SizeMedium Size = "Medium Bowl / 2 pcs"
	SizeLarge  Size = "Large Bowl / 3 pcs"
)

var (
	baseOrder  = []Base{BaseRiceGrains, BaseDalLentils, BasePaneer, BaseChicken, BaseEgg, BaseVegetables, BaseFastFood}
	styleOrder = []Style{StyleBoiled, StyleHomeCurry, StyleRichGravy, StyleDeepFried}
	sizeOrder  = []Size{SizeSmall, SizeMedium, SizeLarge}

	baseMacros = map[Base]Macros{
		BaseRiceGrains: {Protein: 2, Fat: 0.5, Carbs: 25},
		BaseDalLentils: {Protein: 6, Fat: 2, Carbs: 15},
		BasePaneer:     {Protein: 10, Fat: 12, Carbs: 4},
		BaseChicken:    {Protein: 20, Fat: 5, Carbs: 0},
		BaseEgg:        {Protein: 6, Fat: 5, Carbs: 0},
		BaseVegetables: {Protein: 2, Fat: 0.2, Carbs: 8},
		BaseFastFood:   {Protein: 4, Fat: 10, Carbs: 30},
	}

	// cooking adds fat and carbs only
	styleAdjustments = map[Style]Macros{
		StyleBoiled:    {},
		StyleHomeCurry: {Fat: 5, Carbs: 5},
		StyleRichGravy: {Fat: 15, Carbs: 10},
		StyleDeepFried: {Fat: 20, Carbs: 10},
	}

	sizeMultipliers = map[Size]float64{
		SizeSmall:  0.75,
		SizeMedium: 1.0,
		SizeLarge:  1.5,
	}
)

// Options lists the free-form choices in display order.
type Options struct {
	Bases  []Base  `json:"bases"`
	Styles []Style `json:"styles"`
	Sizes  []Size  `json:"sizes"`
}

func MealOptions() Options {
	return Options{
		Bases:  append([]Base(nil), baseOrder...),
		Styles: append([]Style(nil), styleOrder...),
		Sizes:  append([]Size(nil), sizeOrder...),
	}
}

// Description is a free-form meal the catalog does not know.
type Description struct {
	Name  string `json:"name"`
	Base  Base   `json:"base"`
	Style Style  `json:"style"`
	Size  Size   `json:"size"`
}

type Estimator struct {
	catalog *Catalog
	model   *Model
}

func NewEstimator(catalog *Catalog, model *Model) *Estimator {
	return &Estimator{catalog: catalog, model: model}
}

func (e *Estimator) Catalog() *Catalog {
	return e.catalog
}

func (e *Estimator) Model() *Model {
	return e.model
}

func ValidQuantity(qty float64) bool {
	if qty < MinQuantity || qty > MaxQuantity {
		return false
	}
	steps := qty / QuantityStep
	return steps == math.Trunc(steps)
}

// FromCatalog scales a catalog serving by qty. Feedback is left empty;
// it depends on the caller's remaining budget.
func (e *Estimator) FromCatalog(name string, qty float64) (*Estimate, error) {
	if !ValidQuantity(qty) {
		return nil, ErrInvalidQuantity
	}

	item, err := e.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}

	return &Estimate{
		Name:            item.Name,
		DisplayQuantity: displayQuantity(qty, item.ServingUnit),
		Calories:        item.Calories * qty,
		ProteinG:        item.ProteinG * qty,
		CarbsG:          item.CarbsG * qty,
		FatG:            item.FatG * qty,
	}, nil
}

// FreeFormMacros synthesizes macros from the base, cooking style and size.
func FreeFormMacros(base Base, style Style, size Size) (Macros, error) {
	m, ok := baseMacros[base]
	if !ok {
		return Macros{}, fmt.Errorf("%w: base %q", ErrUnknownOption, base)
	}
	adj, ok := styleAdjustments[style]
	if !ok {
		return Macros{}, fmt.Errorf("%w: style %q", ErrUnknownOption, style)
	}
	mult, ok := sizeMultipliers[size]
	if !ok {
		return Macros{}, fmt.Errorf("%w: size %q", ErrUnknownOption, size)
	}

	m.Fat += adj.Fat
	m.Carbs += adj.Carbs
	return m.Scale(mult), nil
}

// Predict estimates a free-form meal with the regression model.
func (e *Estimator) Predict(d Description) (*Estimate, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, ErrMealNameRequired
	}

	macros, err := FreeFormMacros(d.Base, d.Style, d.Size)
	if err != nil {
		return nil, err
	}

	return &Estimate{
		Name:            name + " (AI)",
		DisplayQuantity: string(d.Size),
		Calories:        e.model.Predict(macros),
		ProteinG:        macros.Protein,
		CarbsG:          macros.Carbs,
		FatG:            macros.Fat,
	}, nil
}

// displayQuantity renders "2.0 piece" for two servings of "1 piece".
func displayQuantity(qty float64, unit string) string {
	return fmt.Sprintf("%.1f %s", qty, strings.ReplaceAll(unit, "1 ", ""))
}
