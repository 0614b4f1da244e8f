package archive

import "context"

// Archive stores daily summaries. Documents come back without any
// store-assigned identifier.
type Archive interface {
	Insert(ctx context.Context, summary DailySummary) error
	FindAll(ctx context.Context) ([]DailySummary, error)
}
