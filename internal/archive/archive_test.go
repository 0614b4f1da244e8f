package archive

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"dietracker/internal/ledger"
)

func sampleMeals() []ledger.Entry {
	return []ledger.Entry{
		{DishName: "Roti", Quantity: "2.0 piece", Calories: 200},
		{DishName: "Dal Fry", Quantity: "1.0 katori", Calories: 150},
	}
}

func TestStatusFor(t *testing.T) {
	if StatusFor(1800, 1800) != OnTrack {
		t.Error("total equal to target should be On Track")
	}
	if StatusFor(1800.01, 1800) != OverLimit {
		t.Error("total above target should be Over Limit")
	}
	if StatusFor(0, 1800) != OnTrack {
		t.Error("zero total should be On Track")
	}
}

func TestNewDailySummary(t *testing.T) {
	day := time.Date(2024, 3, 9, 22, 15, 0, 0, time.UTC)
	meals := sampleMeals()

	s := NewDailySummary("Asha", day, meals, 300)

	if s.Date != "2024-03-09" {
		t.Errorf("date = %q", s.Date)
	}
	if s.TotalCalories != 350 {
		t.Errorf("total = %v", s.TotalCalories)
	}
	if s.GoalStatus != OverLimit {
		t.Errorf("status = %q", s.GoalStatus)
	}
	if s.MealNames() != "Roti, Dal Fry" {
		t.Errorf("meal names = %q", s.MealNames())
	}

	meals[0].Calories = 999
	if s.Meals[0].Calories != 200 {
		t.Error("summary shares the caller's slice")
	}
}

func TestDailySummary_DocumentShape(t *testing.T) {
	s := NewDailySummary("Asha", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), sampleMeals()[:1], 2000)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"User":"Asha","Date":"2024-03-09","Total_Calories":200,"Goal_Status":"On Track",` +
		`"Meals":[{"Dish Name":"Roti","Quantity":"2.0 piece","Calories":200}]}`
	if string(data) != want {
		t.Fatalf("got  %s\nwant %s", data, want)
	}
}

func TestInMemoryArchive_InsertFindAll(t *testing.T) {
	ctx := context.Background()
	a := NewInMemoryArchive()

	empty, err := a.FindAll(ctx)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty archive: %v, %v", empty, err)
	}

	first := NewDailySummary("Asha", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), sampleMeals(), 2000)
	second := NewDailySummary("Ravi", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), sampleMeals()[:1], 100)

	if err := a.Insert(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := a.Insert(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := a.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []DailySummary{first, second}) {
		t.Fatalf("unexpected documents: %+v", got)
	}

	again, _ := a.FindAll(ctx)
	if !reflect.DeepEqual(got, again) {
		t.Fatal("FindAll is not repeatable")
	}

	got[0].Meals[0].DishName = "changed"
	fresh, _ := a.FindAll(ctx)
	if fresh[0].Meals[0].DishName != "Roti" {
		t.Fatal("FindAll exposes stored documents")
	}
}

func TestInMemoryArchive_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewInMemoryArchive()
	if err := a.Insert(ctx, DailySummary{User: "x"}); err == nil {
		t.Fatal("expected error on cancelled context")
	}
	if _, err := a.FindAll(ctx); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}
