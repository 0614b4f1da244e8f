package food

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

//go:embed data/indian_food_dataset.csv
var embeddedCatalog []byte

var (
	ErrFoodNotFound = errors.New("food not found in catalog")
	ErrEmptyCatalog = errors.New("food catalog is empty")
)

var catalogColumns = []string{"Food_Item", "Calories", "Protein_g", "Fat_g", "Carbs_g", "Serving_Unit"}

// Catalog is the read-only food table, keyed by exact name.
type Catalog struct {
	entries map[string]Entry
	names   []string
}

func NewCatalog(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("catalog entry without a name")
		}
		if _, dup := c.entries[e.Name]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", e.Name)
		}
		c.entries[e.Name] = e
		c.names = append(c.names, e.Name)
	}
	sort.Strings(c.names)

	return c, nil
}

func (c *Catalog) Lookup(name string) (Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrFoodNotFound, name)
	}
	return e, nil
}

// Names returns every food name in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Entries returns the catalog rows sorted by name.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.entries[n])
	}
	return out
}

// EmbeddedCSV is the reference dataset compiled into the binary.
func EmbeddedCSV() []byte {
	return embeddedCatalog
}

func EmbeddedEntries() ([]Entry, error) {
	return ParseCSV(bytes.NewReader(embeddedCatalog))
}

// ParseCSV reads the catalog format: a header row naming at least
// Food_Item, Calories, Protein_g, Fat_g, Carbs_g and Serving_Unit.
// Other columns (the ID index) are ignored.
func ParseCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range catalogColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("catalog csv: missing column %s", col)
		}
	}

	var entries []Entry
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		nums := make([]float64, 4)
		for i, col := range catalogColumns[1:5] {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx[col]]), 64)
			if err != nil {
				return nil, fmt.Errorf("catalog csv line %d: %s: %w", line, col, err)
			}
			nums[i] = v
		}

		entries = append(entries, Entry{
			Name:        strings.TrimSpace(rec[idx["Food_Item"]]),
			Calories:    nums[0],
			ProteinG:    nums[1],
			FatG:        nums[2],
			CarbsG:      nums[3],
			ServingUnit: strings.TrimSpace(rec[idx["Serving_Unit"]]),
		})
	}

	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return entries, nil
}
