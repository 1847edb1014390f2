package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"clipchef/internal/domain"
	"clipchef/internal/logger"
	"clipchef/internal/persist"
)

func newRecipe(id, title string) *domain.Recipe {
	return &domain.Recipe{
		ID:         id,
		Title:      title,
		Category:   "Main",
		Difficulty: domain.DifficultyBasic,
		Servings:   2,
		Ingredients: []domain.Ingredient{
			{ID: id + "-i1", Name: "salt", Amount: "1", Unit: "pinch"},
		},
		Steps: []domain.Step{
			{ID: id + "-s1", Instruction: "Cook."},
		},
		Tags:      []string{"Main"},
		CreatedAt: time.Now().UnixMilli(),
	}
}

func openStore(t *testing.T) (*Store, *persist.Memory, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	mem := persist.NewMemory(log)
	store, err := Open(context.Background(), mem, log)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return store, mem, context.Background()
}

func TestAddOrdersMostRecentFirst(t *testing.T) {
	store, _, ctx := openStore(t)

	for i := 1; i <= 3; i++ {
		if err := store.Add(ctx, newRecipe(fmt.Sprintf("r%d", i), fmt.Sprintf("Recipe %d", i))); err != nil {
			t.Fatalf("add r%d: %v", i, err)
		}
	}

	got := store.List()
	want := []string{"r3", "r2", "r1"}
	for i, r := range got {
		if r.ID != want[i] {
			t.Fatalf("list[%d] = %s, want %s", i, r.ID, want[i])
		}
	}
}

func TestAddDuplicateID(t *testing.T) {
	store, _, ctx := openStore(t)

	if err := store.Add(ctx, newRecipe("r1", "One")); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := store.Add(ctx, newRecipe("r1", "Other"))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	store, _, ctx := openStore(t)

	r := newRecipe("r1", "One")
	if err := store.Add(ctx, r); err != nil {
		t.Fatalf("add: %v", err)
	}

	r.Title = "Renamed"
	r.Ingredients[0].Checked = true
	if err := store.Update(ctx, r); err != nil {
		t.Fatalf("update: %v", err)
	}
	first := store.List()

	if err := store.Update(ctx, r); err != nil {
		t.Fatalf("second update: %v", err)
	}
	second := store.List()

	if !reflect.DeepEqual(first, second) {
		t.Fatal("second identical update changed store state")
	}
	if second[0].Title != "Renamed" || !second[0].Ingredients[0].Checked {
		t.Fatalf("update not applied: %+v", second[0])
	}
}

func TestUpdateAbsent(t *testing.T) {
	store, _, ctx := openStore(t)
	err := store.Update(ctx, newRecipe("ghost", "Ghost"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteFiresHooks(t *testing.T) {
	store, _, ctx := openStore(t)

	var cleared []string
	store.OnDelete(func(id string) { cleared = append(cleared, id) })

	if err := store.Add(ctx, newRecipe("r1", "One")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Delete(ctx, "r1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(cleared) != 1 || cleared[0] != "r1" {
		t.Fatalf("hooks got %v, want [r1]", cleared)
	}
	if _, err := store.Get("r1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := store.Delete(ctx, "r1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
	if len(cleared) != 1 {
		t.Fatal("hook fired for a failed delete")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store, _, ctx := openStore(t)

	if err := store.Add(ctx, newRecipe("r1", "One")); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := store.Get("r1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Ingredients[0].Checked = true

	again, _ := store.Get("r1")
	if again.Ingredients[0].Checked {
		t.Fatal("mutating a Get result leaked into the store")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	mem := persist.NewMemory(log)
	ctx := context.Background()

	store, err := Open(ctx, mem, log)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Add(ctx, newRecipe("r1", "One")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Add(ctx, newRecipe("r2", "Two")); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A new store over the same persistence sees the same collection.
	restored, err := Open(ctx, mem, log)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := restored.List()
	if len(got) != 2 || got[0].ID != "r2" || got[1].ID != "r1" {
		t.Fatalf("restored order wrong: %v", got)
	}
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	mem := persist.NewMemory(log)
	ctx := context.Background()

	if err := mem.Save(ctx, domain.KeyRecipes, []byte(`{"definitely": "not a list"`)); err != nil {
		t.Fatalf("seed corrupt snapshot: %v", err)
	}

	store, err := Open(ctx, mem, log)
	if !errors.Is(err, domain.ErrCorruptSnapshot) {
		t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
	}
	if store == nil || store.Len() != 0 {
		t.Fatalf("store should be valid and empty, got %v", store)
	}

	// The store stays usable after recovery.
	if err := store.Add(ctx, newRecipe("r1", "One")); err != nil {
		t.Fatalf("add after recovery: %v", err)
	}
	value, ok, _ := mem.Load(ctx, domain.KeyRecipes)
	if !ok {
		t.Fatal("flush after recovery did not persist")
	}
	var recipes []*domain.Recipe
	if err := json.Unmarshal(value, &recipes); err != nil || len(recipes) != 1 {
		t.Fatalf("persisted snapshot invalid: %v %v", err, recipes)
	}
}
