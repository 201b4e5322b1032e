package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

// Transfer is a payment from one owner to another.
type Transfer struct {
	From   models.Owner // Owner who pays
	To     models.Owner // Owner who receives
	Amount decimal.Decimal
}

type position struct {
	owner   models.Owner
	balance decimal.Decimal
}

// SimplifyDebts converts signed balances into a short list of transfers that
// settles every balance to within Epsilon of zero.
//
// Algorithm (greedy, largest magnitude first):
//   - debtors have balance > ε, creditors < -ε; the rest are settled
//   - debtors sorted descending, creditors ascending; ties keep input order
//   - pair the current debtor with the current creditor, transfer the smaller
//     magnitude, advance whichever side drops below ε
//
// At most len(balances)-1 transfers are produced. The inputs are not modified.
func SimplifyDebts(balances []OwnerBalance) []Transfer {
	var debtors, creditors []position
	negEpsilon := Epsilon.Neg()
	for _, b := range balances {
		switch {
		case b.Balance.GreaterThan(Epsilon):
			debtors = append(debtors, position{owner: b.Owner, balance: b.Balance})
		case b.Balance.LessThan(negEpsilon):
			creditors = append(creditors, position{owner: b.Owner, balance: b.Balance})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].balance.GreaterThan(debtors[j].balance)
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].balance.LessThan(creditors[j].balance)
	})

	transfers := make([]Transfer, 0)
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := decimal.Min(debtor.balance, creditor.balance.Abs())
		if amount.IsPositive() {
			transfers = append(transfers, Transfer{
				From:   debtor.owner,
				To:     creditor.owner,
				Amount: amount,
			})
		}

		debtor.balance = debtor.balance.Sub(amount)
		creditor.balance = creditor.balance.Add(amount)

		if debtor.balance.LessThan(Epsilon) {
			i++
		}
		if creditor.balance.Abs().LessThan(Epsilon) {
			j++
		}
	}

	return transfers
}
