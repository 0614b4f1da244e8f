package food

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed data/calorie_model.json
var embeddedModel []byte

var ErrInvalidModel = errors.New("invalid calorie model")

// Model is the offline-fitted linear regression of calories on macros.
// It is loaded once and never changed at runtime.
type Model struct {
	Version      string       `json:"version"`
	TrainedOn    string       `json:"trained_on"`
	Features     []string     `json:"features"`
	Coefficients Coefficients `json:"coefficients"`
	Intercept    float64      `json:"intercept"`
	R2           float64      `json:"r2"`
}

type Coefficients struct {
	Protein float64 `json:"protein_g"`
	Fat     float64 `json:"fat_g"`
	Carbs   float64 `json:"carbs_g"`
}

func (m *Model) Predict(macros Macros) float64 {
	return m.Coefficients.Protein*macros.Protein +
		m.Coefficients.Fat*macros.Fat +
		m.Coefficients.Carbs*macros.Carbs +
		m.Intercept
}

func ParseModel(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if m.Version == "" {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidModel)
	}
	if m.Coefficients == (Coefficients{}) {
		return nil, fmt.Errorf("%w: all coefficients are zero", ErrInvalidModel)
	}
	return &m, nil
}

// DefaultModel returns the artifact fitted on the embedded catalog.
func DefaultModel() (*Model, error) {
	return ParseModel(embeddedModel)
}

func EmbeddedModelJSON() []byte {
	return embeddedModel
}

// ObjectFetcher reads objects from the configured bucket.
type ObjectFetcher interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

const objectScheme = "s3://"

// ReadSource resolves a static-data source: "s3://<key>" goes through
// objects, anything else is read as a local file.
func ReadSource(ctx context.Context, source string, objects ObjectFetcher) ([]byte, error) {
	if key, ok := strings.CutPrefix(source, objectScheme); ok {
		if objects == nil {
			return nil, fmt.Errorf("no object storage configured for %s", source)
		}
		return objects.Download(ctx, key)
	}
	return os.ReadFile(source)
}
