package food

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresRepository keeps the catalog in the food_items table.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Migrate() error {
	return r.db.AutoMigrate(&Entry{})
}

// All returns every row ordered by name.
func (r *PostgresRepository) All(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := r.db.WithContext(ctx).Order("name").Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return entries, nil
}

// Upsert inserts the rows, overwriting the macros of names already present.
func (r *PostgresRepository) Upsert(ctx context.Context, entries []Entry) (int64, error) {
	if len(entries) == 0 {
		return 0, ErrEmptyCatalog
	}

	rows := make([]Entry, len(entries))
	copy(rows, entries)
	for i := range rows {
		rows[i].ID = 0
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories", "protein_g", "fat_g", "carbs_g", "serving_unit"}),
	}).Create(&rows)

	return result.RowsAffected, result.Error
}
