package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sriteja123gujjari/RentalManagement/internal/calculator"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := New()
	owners := models.MustOwnerSet("A", "B")

	unit := &models.Unit{Name: "Gym", BaseRent: decimal.NewFromInt(45000)}
	if err := store.CreateUnit(ctx, unit); err != nil {
		t.Fatalf("CreateUnit failed: %v", err)
	}

	t.Run("toggle keeps one record per unit and period", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if _, err := store.ToggleRevenueStatus(ctx, unit.ID, "2024-03", owners); err != nil {
				t.Fatalf("ToggleRevenueStatus failed: %v", err)
			}
		}
		records, _ := store.ListRevenueRecords(ctx)
		if len(records) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(records))
		}
		if !records[0].IsPaid() || records[0].CollectedBy != "A" {
			t.Errorf("Unexpected record: %+v", records[0])
		}
	})

	t.Run("SetCollector on missing record", func(t *testing.T) {
		if _, err := store.SetCollector(ctx, unit.ID, "2024-05", "B", owners); !errors.Is(err, calculator.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("returned units are copies", func(t *testing.T) {
		units, _ := store.ListUnits(ctx)
		units[0].Name = "changed"
		got, _ := store.GetUnit(ctx, unit.ID)
		if got.Name != "Gym" {
			t.Errorf("Store mutated through returned unit: %s", got.Name)
		}
	})

	t.Run("expenses", func(t *testing.T) {
		e := &models.Expense{Description: "Paint", Amount: decimal.NewFromInt(80), Period: "2024-03"}
		if err := store.CreateExpense(ctx, e); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if e.PaidBy != models.SharedPool {
			t.Errorf("PaidBy = %q, want SharedPool", e.PaidBy)
		}
		if err := store.DeleteExpense(ctx, e.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
		if err := store.DeleteExpense(ctx, e.ID); !errors.Is(err, storage.ErrExpenseNotFound) {
			t.Errorf("Expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("DeleteUnit drops records", func(t *testing.T) {
		if err := store.DeleteUnit(ctx, unit.ID); err != nil {
			t.Fatalf("DeleteUnit failed: %v", err)
		}
		records, _ := store.ListRevenueRecords(ctx)
		if len(records) != 0 {
			t.Errorf("Expected no records, got %d", len(records))
		}
	})
}
