package food

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"dietracker/internal/config"
)

// CatalogStore is a catalog persisted outside the binary.
type CatalogStore interface {
	All(ctx context.Context) ([]Entry, error)
}

// LoadCatalog builds the catalog from source: the embedded dataset,
// the food_items table, a CSV file path, or an s3:// object.
func LoadCatalog(ctx context.Context, source string, objects ObjectFetcher, store CatalogStore) (*Catalog, error) {
	var (
		entries []Entry
		err     error
	)

	switch source {
	case "", config.SourceEmbedded:
		entries, err = EmbeddedEntries()
	case config.SourcePostgres:
		if store == nil {
			return nil, errors.New("catalog source postgres needs a database")
		}
		entries, err = store.All(ctx)
	default:
		var data []byte
		data, err = ReadSource(ctx, source, objects)
		if err == nil {
			entries, err = ParseCSV(bytes.NewReader(data))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog from %q: %w", source, err)
	}

	return NewCatalog(entries)
}

// LoadModel reads the regression artifact from the embedded copy,
// a file path, or an s3:// object.
func LoadModel(ctx context.Context, source string, objects ObjectFetcher) (*Model, error) {
	if source == "" || source == config.SourceEmbedded {
		return DefaultModel()
	}

	data, err := ReadSource(ctx, source, objects)
	if err != nil {
		return nil, fmt.Errorf("load model from %q: %w", source, err)
	}
	return ParseModel(data)
}
