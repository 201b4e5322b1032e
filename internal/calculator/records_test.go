package calculator

import (
	"errors"
	"testing"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

func TestToggleStatus(t *testing.T) {
	rent := d("55000")

	created := ToggleStatus(nil, "shop-1", "2024-03", rent, testOwners, 10)
	if created.Status != models.StatusPaid || !created.AmountPaid.Equal(rent) || created.CollectedBy != "A" {
		t.Fatalf("created = %+v, want Paid 55000 by A", created)
	}
	if created.UnitID != "shop-1" || created.Period != "2024-03" || created.UpdatedAt != 10 {
		t.Errorf("created keys = %+v", created)
	}

	unpaid := ToggleStatus(&created, "shop-1", "2024-03", rent, testOwners, 11)
	if unpaid.Status != models.StatusUnpaid || !unpaid.AmountPaid.IsZero() || unpaid.CollectedBy != "" {
		t.Errorf("unpaid = %+v, want Unpaid 0 with no collector", unpaid)
	}

	repaid := ToggleStatus(&unpaid, "shop-1", "2024-03", rent, testOwners, 12)
	if repaid.Status != models.StatusPaid || !repaid.AmountPaid.Equal(rent) || repaid.CollectedBy != "A" {
		t.Errorf("repaid = %+v, want Paid 55000 by A", repaid)
	}
}

func TestAssignCollector(t *testing.T) {
	record := paid("shop-1", "2024-03", "100", "A")
	unpaid := models.RevenueRecord{UnitID: "shop-1", Period: "2024-03", Status: models.StatusUnpaid}

	tests := []struct {
		name      string
		existing  *models.RevenueRecord
		collector models.Owner
		wantErr   error
	}{
		{name: "reassign paid record", existing: &record, collector: "C"},
		{name: "missing record", existing: nil, collector: "B", wantErr: ErrRecordNotFound},
		{name: "unpaid record", existing: &unpaid, collector: "B", wantErr: ErrNotPaid},
		{name: "unknown owner", existing: &record, collector: "Z", wantErr: ErrUnknownOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssignCollector(tt.existing, tt.collector, testOwners, 20)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.CollectedBy != tt.collector || !got.AmountPaid.Equal(d("100")) {
				t.Errorf("got %+v", got)
			}
		})
	}

	if record.CollectedBy != "A" {
		t.Error("AssignCollector modified its input")
	}
}

func TestRevenueBook(t *testing.T) {
	book := RevenueBook{}

	book.Toggle("shop-1", "2024-03", d("100"), testOwners, 1)
	book.Toggle("shop-1", "2024-03", d("100"), testOwners, 2)
	book.Toggle("shop-1", "2024-03", d("100"), testOwners, 3)
	book.Toggle("shop-2", "2024-03", d("200"), testOwners, 4)

	if len(book) != 2 {
		t.Fatalf("book has %d records, want 2", len(book))
	}
	r, ok := book.Get("shop-1", "2024-03")
	if !ok || !r.IsPaid() {
		t.Errorf("shop-1 = %+v, want Paid", r)
	}

	if _, err := book.AssignCollector("shop-3", "2024-03", "B", testOwners, 5); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("AssignCollector on missing record error = %v", err)
	}
	if len(book) != 2 {
		t.Error("AssignCollector created a record")
	}

	if _, err := book.AssignCollector("shop-2", "2024-03", "B", testOwners, 6); err != nil {
		t.Fatalf("AssignCollector failed: %v", err)
	}
	r, _ = book.Get("shop-2", "2024-03")
	if r.CollectedBy != "B" {
		t.Errorf("collector = %s, want B", r.CollectedBy)
	}

	book.DeleteUnit("shop-1")
	records := book.Records()
	if len(records) != 1 || records[0].UnitID != "shop-2" {
		t.Errorf("records after delete = %+v", records)
	}
}
