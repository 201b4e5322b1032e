package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/period"
	"github.com/sriteja123gujjari/RentalManagement/internal/service"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		periodKey string
		prev      int
		next      int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a period's totals, balances and settlement plan",
		Long: `Print the ledger of one month. Without --period the current month is used;
--prev and --next step backwards or forwards from it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolvePeriod(periodKey, prev, next, time.Now())
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := service.LoadPeriod(cmd.Context(), store, a.owners, key)
			if err != nil {
				return fmt.Errorf("load period %s: %w", key, err)
			}
			return writeReport(cmd.OutOrStdout(), report, a.cfg.Currency)
		},
	}

	cmd.Flags().StringVarP(&periodKey, "period", "p", "", "Period as YYYY-MM (default: current month)")
	cmd.Flags().IntVar(&prev, "prev", 0, "Step back N months")
	cmd.Flags().IntVar(&next, "next", 0, "Step forward N months")
	cmd.MarkFlagsMutuallyExclusive("prev", "next")
	return cmd
}

// resolvePeriod picks the period a summary is printed for.
func resolvePeriod(key string, prev, next int, now time.Time) (string, error) {
	if prev < 0 || next < 0 {
		return "", fmt.Errorf("--prev and --next take a non-negative month count")
	}
	if key == "" {
		key = period.Current(now)
	}
	if err := period.Validate(key); err != nil {
		return "", err
	}
	return period.Shift(key, next-prev)
}

func money(currency string, d decimal.Decimal) string {
	return currency + " " + d.StringFixed(2)
}

// writeReport renders a period report as aligned text tables.
func writeReport(out io.Writer, report *service.PeriodReport, currency string) error {
	s := report.Summary
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Summary for %s (%s)\n\n", period.Label(s.Period), s.Period)

	records := make(map[string]models.RevenueRecord, len(report.Records))
	for _, r := range report.Records {
		records[r.UnitID] = r
	}
	fmt.Fprintln(w, "UNIT\tBASE RENT\tSTATUS\tCOLLECTED BY\tAMOUNT")
	for _, u := range report.Units {
		status, collector, amount := models.StatusUnpaid, "-", decimal.Zero
		if r, ok := records[u.ID]; ok {
			status, amount = r.Status, r.AmountPaid
			if r.CollectedBy != "" {
				collector = string(r.CollectedBy)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.Name, money(currency, u.BaseRent), status, collector, money(currency, amount))
	}
	fmt.Fprintln(w)

	if len(report.Expenses) > 0 {
		fmt.Fprintln(w, "EXPENSE\tAMOUNT\tPAID BY")
		for _, e := range report.Expenses {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Description, money(currency, e.Amount), e.PaidBy)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Received\t%s\n", money(currency, s.Received))
	fmt.Fprintf(w, "Expenses\t%s\n", money(currency, s.TotalExpenses))
	fmt.Fprintf(w, "Net\t%s\n", money(currency, s.Net))
	fmt.Fprintf(w, "Equal share\t%s\n", money(currency, s.EqualShare))
	if !s.Pool.IsZero() {
		fmt.Fprintf(w, "Shared pool\t%s\n", money(currency, s.Pool))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "OWNER\tHOLDING\tBALANCE")
	for _, b := range s.Owners {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Owner, money(currency, b.Holding), money(currency, b.Balance))
	}
	fmt.Fprintln(w)

	if len(s.Transfers) == 0 {
		fmt.Fprintln(w, "All settled.")
	} else {
		fmt.Fprintln(w, "SETTLEMENT")
		for _, t := range s.Transfers {
			fmt.Fprintf(w, "%s pays %s\t%s\n", t.From, t.To, money(currency, t.Amount))
		}
	}

	return w.Flush()
}
