package archive

import (
	"context"
	"sync"

	"dietracker/internal/ledger"
)

type InMemoryArchive struct {
	mu        sync.RWMutex
	summaries []DailySummary
}

func NewInMemoryArchive() *InMemoryArchive {
	return &InMemoryArchive{}
}

func (a *InMemoryArchive) Insert(ctx context.Context, summary DailySummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	summary.Meals = append([]ledger.Entry(nil), summary.Meals...)
	a.summaries = append(a.summaries, summary)
	return nil
}

func (a *InMemoryArchive) FindAll(ctx context.Context) ([]DailySummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]DailySummary, len(a.summaries))
	for i, s := range a.summaries {
		s.Meals = append([]ledger.Entry(nil), s.Meals...)
		out[i] = s
	}
	return out, nil
}
