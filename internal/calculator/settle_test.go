package calculator

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSimplifyDebts(t *testing.T) {
	tests := []struct {
		name     string
		balances []OwnerBalance
		want     []Transfer
	}{
		{
			name: "one debtor two creditors",
			balances: []OwnerBalance{
				{Owner: "A", Balance: d("700")},
				{Owner: "B", Balance: d("-500")},
				{Owner: "C", Balance: d("-200")},
			},
			want: []Transfer{
				{From: "A", To: "B", Amount: d("500")},
				{From: "A", To: "C", Amount: d("200")},
			},
		},
		{
			name: "two debtors one creditor, largest debt first",
			balances: []OwnerBalance{
				{Owner: "A", Balance: d("100")},
				{Owner: "B", Balance: d("300")},
				{Owner: "C", Balance: d("-400")},
			},
			want: []Transfer{
				{From: "B", To: "C", Amount: d("300")},
				{From: "A", To: "C", Amount: d("100")},
			},
		},
		{
			name: "ties keep enumeration order",
			balances: []OwnerBalance{
				{Owner: "A", Balance: d("-50")},
				{Owner: "B", Balance: d("100")},
				{Owner: "C", Balance: d("-50")},
			},
			want: []Transfer{
				{From: "B", To: "A", Amount: d("50")},
				{From: "B", To: "C", Amount: d("50")},
			},
		},
		{
			name: "balances within tolerance are settled",
			balances: []OwnerBalance{
				{Owner: "A", Balance: d("0.005")},
				{Owner: "B", Balance: d("-0.005")},
			},
			want: nil,
		},
		{
			name: "exact match advances both cursors",
			balances: []OwnerBalance{
				{Owner: "A", Balance: d("250")},
				{Owner: "B", Balance: d("150")},
				{Owner: "C", Balance: d("-250")},
				{Owner: "D", Balance: d("-150")},
			},
			want: []Transfer{
				{From: "A", To: "C", Amount: d("250")},
				{From: "B", To: "D", Amount: d("150")},
			},
		},
		{
			name:     "no balances",
			balances: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimplifyDebts(tt.balances)
			if len(got) != len(tt.want) {
				t.Fatalf("SimplifyDebts() returned %d transfers, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].From != tt.want[i].From || got[i].To != tt.want[i].To || !got[i].Amount.Equal(tt.want[i].Amount) {
					t.Errorf("transfer %d = %s -> %s %s, want %s -> %s %s", i,
						got[i].From, got[i].To, got[i].Amount,
						tt.want[i].From, tt.want[i].To, tt.want[i].Amount)
				}
			}
		})
	}
}

func TestSimplifyDebtsDoesNotModifyInput(t *testing.T) {
	balances := []OwnerBalance{
		{Owner: "A", Balance: d("700")},
		{Owner: "B", Balance: d("-700")},
	}
	SimplifyDebts(balances)
	if !balances[0].Balance.Equal(d("700")) || !balances[1].Balance.Equal(d("-700")) {
		t.Errorf("input balances modified: %+v", balances)
	}
}

// randomBalances builds n zero-sum balances in whole currency units.
func randomBalances(r *rand.Rand, n int) []OwnerBalance {
	balances := make([]OwnerBalance, n)
	sum := decimal.Zero
	for i := 0; i < n-1; i++ {
		b := decimal.NewFromInt(r.Int63n(20000) - 10000)
		balances[i] = OwnerBalance{Owner: models.Owner(string(rune('A' + i))), Balance: b}
		sum = sum.Add(b)
	}
	balances[n-1] = OwnerBalance{Owner: models.Owner(string(rune('A' + n - 1))), Balance: sum.Neg()}
	return balances
}

func TestSimplifyDebtsProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for iter := 0; iter < 500; iter++ {
		n := 1 + r.Intn(8)
		balances := randomBalances(r, n)
		transfers := SimplifyDebts(balances)

		if len(transfers) > n-1 {
			t.Fatalf("iteration %d: %d transfers for %d owners", iter, len(transfers), n)
		}

		remaining := make(map[models.Owner]decimal.Decimal, n)
		for _, b := range balances {
			remaining[b.Owner] = b.Balance
		}
		for _, tr := range transfers {
			if !tr.Amount.IsPositive() {
				t.Fatalf("iteration %d: non-positive transfer %+v", iter, tr)
			}
			if tr.From == tr.To {
				t.Fatalf("iteration %d: self transfer %+v", iter, tr)
			}
			remaining[tr.From] = remaining[tr.From].Sub(tr.Amount)
			remaining[tr.To] = remaining[tr.To].Add(tr.Amount)
		}
		for owner, bal := range remaining {
			if !Settled(bal) {
				t.Fatalf("iteration %d: owner %s left with %s", iter, owner, bal)
			}
		}
	}
}
