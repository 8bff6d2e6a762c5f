// Package summary implements the analytics summary command.
package summary

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saicharanbm/finTrack/cmd/root"
	"github.com/saicharanbm/finTrack/internal/analytics"
	"github.com/saicharanbm/finTrack/internal/dateutils"
	"github.com/saicharanbm/finTrack/internal/models"
	"github.com/saicharanbm/finTrack/internal/store"
)

var rangeFlag string

// Cmd is the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals, category breakdown and trend for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := analytics.ParseRange(rangeFlag)
		if err != nil {
			return err
		}

		st, cleanup, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := loadWindow(cmd, st, window)
		if err != nil {
			return err
		}

		totals := analytics.Summarize(records)
		fmt.Printf("Period: %s  (%d transactions)\n", window, totals.Count)
		fmt.Printf("Income:  %s\n", models.FormatPaise(totals.IncomePaise))
		fmt.Printf("Expense: %s\n", models.FormatPaise(totals.ExpensePaise))
		fmt.Printf("Balance: %s\n\n", models.FormatPaise(totals.BalancePaise))

		breakdown := analytics.ByCategory(records, models.DirectionExpense)
		if len(breakdown) > 0 {
			fmt.Println("Expenses by category:")
			for _, slice := range breakdown {
				fmt.Printf("  %-13s %s (%d)\n", slice.Category, models.FormatPaise(slice.TotalPaise), slice.Count)
			}
			fmt.Println()
		}

		trend := analytics.Trend(records, window)
		if len(trend) > 0 {
			fmt.Println("Trend:")
			for _, point := range trend {
				fmt.Printf("  %-10s in %s / out %s\n",
					point.Bucket, models.FormatPaise(point.IncomePaise), models.FormatPaise(point.ExpensePaise))
			}
		}
		return nil
	},
}

func loadWindow(cmd *cobra.Command, st store.Store, window analytics.Range) ([]models.TransactionRecord, error) {
	anchor := dateutils.Truncate(time.Now())
	if start, bounded := window.Start(anchor); bounded {
		return st.ListByDateRange(cmd.Context(), root.Cfg.User.ID, start, anchor)
	}
	return st.List(cmd.Context(), root.Cfg.User.ID, 0, 0)
}

func init() {
	Cmd.Flags().StringVarP(&rangeFlag, "range", "r", "month", "Period: week, month, 3month, year or all")
}
