// Package add implements the manual transaction entry command.
package add

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saicharanbm/finTrack/cmd/root"
	"github.com/saicharanbm/finTrack/internal/dateutils"
	"github.com/saicharanbm/finTrack/internal/models"
)

var (
	title     string
	amount    string
	category  string
	direction string
	date      string
)

// Cmd is the add command.
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction manually",
	RunE: func(cmd *cobra.Command, args []string) error {
		paise, err := models.ParseRupees(amount)
		if err != nil {
			return err
		}

		cat := models.Category(strings.ToUpper(category))
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q", category)
		}

		dir := models.Direction(strings.ToUpper(direction))
		if !dir.Valid() {
			return fmt.Errorf("type must be INCOME or EXPENSE, got %q", direction)
		}

		when := dateutils.Truncate(time.Now())
		if date != "" {
			when, err = dateutils.Parse(date)
			if err != nil {
				return err
			}
			if dateutils.IsFuture(when, time.Now()) {
				return fmt.Errorf("date %s is in the future", date)
			}
		}

		candidate := models.CandidateTransaction{
			AmountPaise: paise,
			Category:    cat,
			Direction:   dir,
			Date:        dateutils.Format(when),
			Title:       title,
		}
		record := models.NewTransactionRecord(root.Cfg.User.ID, candidate, when)

		st, cleanup, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		if err := st.Create(cmd.Context(), &record); err != nil {
			return fmt.Errorf("saving transaction: %w", err)
		}
		fmt.Println(record.String())
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&title, "title", "t", "", "Short label for the transaction")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount in rupees, e.g. 250 or 80.50")
	Cmd.Flags().StringVarP(&category, "category", "c", "OTHER", "Transaction category")
	Cmd.Flags().StringVar(&direction, "type", "EXPENSE", "INCOME or EXPENSE")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Date as dd/mm/yyyy (default today)")
	_ = Cmd.MarkFlagRequired("title")
	_ = Cmd.MarkFlagRequired("amount")
}
