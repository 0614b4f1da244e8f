package archive

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresArchive keeps each summary as a JSONB document in daily_logs.
type PostgresArchive struct {
	db *pgxpool.Pool
}

func NewPostgresArchive(db *pgxpool.Pool) *PostgresArchive {
	return &PostgresArchive{db: db}
}

// --------------------------------------------------
// Insert one daily summary
// --------------------------------------------------
func (a *PostgresArchive) Insert(ctx context.Context, summary DailySummary) error {
	document, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	_, err = a.db.Exec(ctx, `
		INSERT INTO daily_logs (id, document)
		VALUES ($1, $2)
	`, uuid.New().String(), document)
	return err
}

// --------------------------------------------------
// All summaries in insertion order
// --------------------------------------------------
func (a *PostgresArchive) FindAll(ctx context.Context) ([]DailySummary, error) {
	rows, err := a.db.Query(ctx, `
		SELECT document
		FROM daily_logs
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []DailySummary{}
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, err
		}

		var s DailySummary
		if err := json.Unmarshal(document, &s); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
