package inventorystore_test

import (
	"errors"
	"testing"
	"time"

	inventorystore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/inventory"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/faults"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"github.com/lekithkishore/blood-bank-management-system/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := inventorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e, err := store.Create(ctx, models.InventoryEntry{
		Hospital:   "City General",
		BloodGroup: "O-",
		Units:      4,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e.AddedAt.IsZero() {
		t.Error("expected AddedAt to be stamped")
	}
}

func TestCreateValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := inventorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cases := []struct {
		name  string
		entry models.InventoryEntry
	}{
		{"missing hospital", models.InventoryEntry{BloodGroup: "O-", Units: 1}},
		{"bad blood group", models.InventoryEntry{Hospital: "City", BloodGroup: "Q", Units: 1}},
		{"zero units", models.InventoryEntry{Hospital: "City", BloodGroup: "O-", Units: 0}},
	}
	for _, tc := range cases {
		if _, err := store.Create(ctx, tc.entry); !faults.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := inventorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	old := time.Now().UTC().Add(-time.Hour)
	if _, err := store.Create(ctx, models.InventoryEntry{Hospital: "Old", BloodGroup: "A+", Units: 1, AddedAt: old}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.InventoryEntry{Hospital: "New", BloodGroup: "B+", Units: 2}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Hospital != "New" {
		t.Errorf("expected newest entry first, got %q", list[0].Hospital)
	}
}

func TestUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := inventorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e, err := store.Create(ctx, models.InventoryEntry{Hospital: "City", BloodGroup: "O-", Units: 4})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Update(ctx, e.ID, models.InventoryEntry{Units: 7})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Units != 7 {
		t.Errorf("units: got %d, want 7", updated.Units)
	}
	if updated.Hospital != "City" {
		t.Errorf("hospital changed unexpectedly: %q", updated.Hospital)
	}

	if _, err := store.Update(ctx, e.ID, models.InventoryEntry{BloodGroup: "Q"}); !faults.IsValidation(err) {
		t.Errorf("expected validation error for bad blood group, got %v", err)
	}
	if _, err := store.Update(ctx, e.ID, models.InventoryEntry{}); !faults.IsValidation(err) {
		t.Errorf("expected validation error for empty update, got %v", err)
	}
	if _, err := store.Update(ctx, primitive.NewObjectID(), models.InventoryEntry{Units: 1}); !errors.Is(err, faults.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := inventorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e, err := store.Create(ctx, models.InventoryEntry{Hospital: "City", BloodGroup: "O-", Units: 4})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, e.ID); !errors.Is(err, faults.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
