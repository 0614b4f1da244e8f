package food

// Entry is one row of the reference food catalog, per serving.
type Entry struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	Name        string  `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Calories    float64 `gorm:"not null" json:"calories"`
	ProteinG    float64 `gorm:"column:protein_g" json:"protein_g"`
	FatG        float64 `gorm:"column:fat_g" json:"fat_g"`
	CarbsG      float64 `gorm:"column:carbs_g" json:"carbs_g"`
	ServingUnit string  `gorm:"size:64" json:"serving_unit"`
}

func (Entry) TableName() string {
	return "food_items"
}

// Macros are grams of protein, fat and carbohydrate.
type Macros struct {
	Protein float64 `json:"protein_g"`
	Fat     float64 `json:"fat_g"`
	Carbs   float64 `json:"carbs_g"`
}

func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Protein: m.Protein * factor,
		Fat:     m.Fat * factor,
		Carbs:   m.Carbs * factor,
	}
}

// Estimate is a meal waiting for the user to accept or cancel it.
type Estimate struct {
	Name            string   `json:"name"`
	DisplayQuantity string   `json:"display_quantity"`
	Calories        float64  `json:"calories"`
	ProteinG        float64  `json:"protein_g"`
	CarbsG          float64  `json:"carbs_g"`
	FatG            float64  `json:"fat_g"`
	Feedback        []string `json:"feedback"`
}
