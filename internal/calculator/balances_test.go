package calculator

import (
	"testing"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

var testOwners = models.MustOwnerSet("A", "B", "C")

func paid(unitID, period, amount string, collector models.Owner) models.RevenueRecord {
	return models.RevenueRecord{
		UnitID:      unitID,
		Period:      period,
		Status:      models.StatusPaid,
		AmountPaid:  d(amount),
		CollectedBy: collector,
	}
}

func expense(period, amount string, payer models.Owner) models.Expense {
	return models.Expense{
		Description: "expense",
		Amount:      d(amount),
		Period:      period,
		PaidBy:      payer,
	}
}

func TestCalculateBalances(t *testing.T) {
	tests := []struct {
		name         string
		records      []models.RevenueRecord
		expenses     []models.Expense
		owners       models.OwnerSet
		validateFunc func(t *testing.T, got PeriodBalances)
	}{
		{
			name:     "one paid unit and one owner expense",
			records:  []models.RevenueRecord{paid("u1", "2024-03", "900", "A")},
			expenses: []models.Expense{expense("2024-03", "300", "B")},
			owners:   testOwners,
			validateFunc: func(t *testing.T, got PeriodBalances) {
				// received 900, expenses 300, net 600, share 200
				// holdings A=900 B=-300 C=0, balances A=700 B=-500 C=-200
				if !got.Received.Equal(d("900")) {
					t.Errorf("Received = %s, want 900", got.Received)
				}
				if !got.TotalExpenses.Equal(d("300")) {
					t.Errorf("TotalExpenses = %s, want 300", got.TotalExpenses)
				}
				if !got.Net.Equal(d("600")) {
					t.Errorf("Net = %s, want 600", got.Net)
				}
				if !got.EqualShare.Equal(d("200")) {
					t.Errorf("EqualShare = %s, want 200", got.EqualShare)
				}
				wantHolding := map[models.Owner]string{"A": "900", "B": "-300", "C": "0"}
				wantBalance := map[models.Owner]string{"A": "700", "B": "-500", "C": "-200"}
				for owner, want := range wantHolding {
					b, ok := got.Lookup(owner)
					if !ok {
						t.Fatalf("owner %s missing", owner)
					}
					if !b.Holding.Equal(d(want)) {
						t.Errorf("%s holding = %s, want %s", owner, b.Holding, want)
					}
					if !b.Balance.Equal(d(wantBalance[owner])) {
						t.Errorf("%s balance = %s, want %s", owner, b.Balance, wantBalance[owner])
					}
				}
			},
		},
		{
			name:   "unpaid records count for nothing",
			owners: testOwners,
			records: []models.RevenueRecord{
				{UnitID: "u1", Period: "2024-03", Status: models.StatusUnpaid, AmountPaid: d("500")},
			},
			validateFunc: func(t *testing.T, got PeriodBalances) {
				if !got.Received.IsZero() {
					t.Errorf("Received = %s, want 0", got.Received)
				}
			},
		},
		{
			name:     "negative net",
			owners:   testOwners,
			records:  []models.RevenueRecord{paid("u1", "2024-03", "100", "A")},
			expenses: []models.Expense{expense("2024-03", "400", "C")},
			validateFunc: func(t *testing.T, got PeriodBalances) {
				if !got.Net.Equal(d("-300")) {
					t.Errorf("Net = %s, want -300", got.Net)
				}
				if !got.EqualShare.Equal(d("-100")) {
					t.Errorf("EqualShare = %s, want -100", got.EqualShare)
				}
				c, _ := got.Lookup("C")
				if !c.Balance.Equal(d("-300")) {
					t.Errorf("C balance = %s, want -300", c.Balance)
				}
			},
		},
		{
			name:     "shared pool expense is split equally",
			owners:   testOwners,
			records:  []models.RevenueRecord{paid("u1", "2024-03", "900", "A")},
			expenses: []models.Expense{expense("2024-03", "300", models.SharedPool)},
			validateFunc: func(t *testing.T, got PeriodBalances) {
				a, _ := got.Lookup("A")
				if !a.Holding.Equal(d("900")) {
					t.Errorf("A holding = %s, want 900", a.Holding)
				}
				if !got.Pool.Equal(d("-300")) {
					t.Errorf("Pool = %s, want -300", got.Pool)
				}
				// share 200, pool share -100
				if !a.Balance.Equal(d("600")) {
					t.Errorf("A balance = %s, want 600", a.Balance)
				}
				b, _ := got.Lookup("B")
				if !b.Balance.Equal(d("-300")) {
					t.Errorf("B balance = %s, want -300", b.Balance)
				}
			},
		},
		{
			name:   "missing collector goes to the pool",
			owners: testOwners,
			records: []models.RevenueRecord{
				paid("u1", "2024-03", "300", ""),
				paid("u2", "2024-03", "300", "Stranger"),
			},
			validateFunc: func(t *testing.T, got PeriodBalances) {
				if !got.Received.Equal(d("600")) {
					t.Errorf("Received = %s, want 600", got.Received)
				}
				for _, b := range got.Owners {
					if !b.Holding.IsZero() || !b.Balance.IsZero() {
						t.Errorf("%s = %s/%s, want 0/0", b.Owner, b.Holding, b.Balance)
					}
				}
			},
		},
		{
			name:     "single owner absorbs the net",
			owners:   models.MustOwnerSet("Solo"),
			records:  []models.RevenueRecord{paid("u1", "2024-03", "1000", "Solo")},
			expenses: []models.Expense{expense("2024-03", "250", models.SharedPool)},
			validateFunc: func(t *testing.T, got PeriodBalances) {
				if !got.EqualShare.Equal(d("750")) {
					t.Errorf("EqualShare = %s, want 750", got.EqualShare)
				}
				solo, _ := got.Lookup("Solo")
				if !solo.Balance.IsZero() {
					t.Errorf("Solo balance = %s, want 0", solo.Balance)
				}
			},
		},
		{
			name:   "thirds stay within tolerance",
			owners: testOwners,
			records: []models.RevenueRecord{
				paid("u1", "2024-03", "100", "A"),
			},
			validateFunc: func(t *testing.T, got PeriodBalances) {
				sum := d("0")
				for _, b := range got.Owners {
					sum = sum.Add(b.Balance)
				}
				if !Settled(sum) {
					t.Errorf("sum of balances = %s, want ~0", sum)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBalances(tt.records, tt.expenses, tt.owners)
			if len(got.Owners) != tt.owners.Len() {
				t.Fatalf("got %d owner balances, want %d", len(got.Owners), tt.owners.Len())
			}
			for i, o := range tt.owners.List() {
				if got.Owners[i].Owner != o {
					t.Errorf("Owners[%d] = %s, want %s", i, got.Owners[i].Owner, o)
				}
			}
			tt.validateFunc(t, got)
		})
	}
}

func TestSelectPeriod(t *testing.T) {
	records := []models.RevenueRecord{
		paid("u1", "2024-03", "100", "A"),
		paid("u1", "2024-04", "100", "A"),
		paid("u2", "2024-03", "200", "B"),
	}
	expenses := []models.Expense{
		expense("2024-02", "10", "A"),
		expense("2024-03", "20", "B"),
	}

	gotRecords, gotExpenses := SelectPeriod(records, expenses, "2024-03")
	if len(gotRecords) != 2 || gotRecords[0].UnitID != "u1" || gotRecords[1].UnitID != "u2" {
		t.Errorf("records = %+v, want u1 and u2 of 2024-03", gotRecords)
	}
	if len(gotExpenses) != 1 || !gotExpenses[0].Amount.Equal(d("20")) {
		t.Errorf("expenses = %+v, want the 20 expense", gotExpenses)
	}

	noRecords, noExpenses := SelectPeriod(nil, nil, "2024-03")
	if noRecords == nil || noExpenses == nil {
		t.Error("expected empty, non-nil slices")
	}
	if len(noRecords) != 0 || len(noExpenses) != 0 {
		t.Error("expected no matches")
	}

	// Period keys match exactly, not by prefix.
	partial, _ := SelectPeriod(records, expenses, "2024")
	if len(partial) != 0 {
		t.Errorf("prefix matched %d records", len(partial))
	}
}
