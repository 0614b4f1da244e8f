package ledger

import (
	"encoding/json"
	"testing"
)

func TestLedger_AppendTotalClear(t *testing.T) {
	l := New()
	if l.Total() != 0 || l.Len() != 0 {
		t.Fatal("new ledger should be empty")
	}

	l.Append(Entry{DishName: "Roti", Quantity: "2.0 piece", Calories: 200})
	l.Append(Entry{DishName: "Dal Fry", Quantity: "1.0 katori", Calories: 150})
	l.Append(Entry{DishName: "Roti", Quantity: "2.0 piece", Calories: 200})

	if l.Total() != 550 {
		t.Errorf("total = %v, want 550", l.Total())
	}
	if l.Len() != 3 {
		t.Errorf("duplicates must be kept, len = %d", l.Len())
	}

	entries := l.Entries()
	if entries[0].DishName != "Roti" || entries[1].DishName != "Dal Fry" {
		t.Errorf("insertion order lost: %+v", entries)
	}

	l.Clear()
	if l.Total() != 0 || l.Len() != 0 {
		t.Errorf("after clear: total %v, len %d", l.Total(), l.Len())
	}
}

func TestLedger_EntriesIsACopy(t *testing.T) {
	l := New()
	l.Append(Entry{DishName: "Idli", Calories: 60})

	entries := l.Entries()
	entries[0].Calories = 1000

	if l.Total() != 60 {
		t.Fatalf("ledger mutated through Entries: %v", l.Total())
	}
}

func TestLedger_JSONShape(t *testing.T) {
	l := New()
	l.Append(Entry{DishName: "Poha", Quantity: "1.0 plate", Calories: 180})

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"Dish Name":"Poha","Quantity":"1.0 plate","Calories":180}]`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}

	empty, _ := json.Marshal(New())
	if string(empty) != "[]" {
		t.Fatalf("empty ledger = %s", empty)
	}
}
