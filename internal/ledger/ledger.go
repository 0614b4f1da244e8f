package ledger

import "encoding/json"

// Entry is an accepted meal. Field names match the archived document.
type Entry struct {
	DishName string  `json:"Dish Name" bson:"Dish Name"`
	Quantity string  `json:"Quantity" bson:"Quantity"`
	Calories float64 `json:"Calories" bson:"Calories"`
}

// Ledger is the append-only list of meals accepted today.
// It has no locking; the owning session serialises access.
type Ledger struct {
	entries []Entry
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(e Entry) {
	l.entries = append(l.entries, e)
}

func (l *Ledger) Total() float64 {
	var total float64
	for _, e := range l.entries {
		total += e.Calories
	}
	return total
}

func (l *Ledger) Clear() {
	l.entries = nil
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy in insertion order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Entries())
}
