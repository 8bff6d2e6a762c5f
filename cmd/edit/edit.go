// Package edit implements editing of a recorded transaction.
package edit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saicharanbm/finTrack/cmd/root"
	"github.com/saicharanbm/finTrack/internal/dateutils"
	"github.com/saicharanbm/finTrack/internal/models"
	"github.com/saicharanbm/finTrack/internal/store"
)

var (
	title     string
	amount    string
	category  string
	direction string
	date      string
)

// changes holds the fields to rewrite. An empty field leaves the stored
// value untouched.
type changes struct {
	title     string
	amount    string
	category  string
	direction string
	date      string
}

// Cmd is the edit command.
var Cmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of a recorded transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
		}

		ch := changes{title: title, amount: amount, category: category, direction: direction, date: date}
		if ch == (changes{}) {
			return fmt.Errorf("nothing to change: pass at least one of --title, --amount, --category, --type, --date")
		}

		st, cleanup, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		record, err := editTransaction(cmd.Context(), st, root.Cfg.User.ID, id, ch)
		if err != nil {
			return err
		}
		fmt.Println(record.String())
		return nil
	},
}

// editTransaction loads the record, applies the requested changes and
// persists the result. Every changed field is validated the same way manual
// entry validates it.
func editTransaction(ctx context.Context, st store.Store, userID string, id uuid.UUID, ch changes) (*models.TransactionRecord, error) {
	record, err := st.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if ch.title != "" {
		record.Title = ch.title
	}
	if ch.amount != "" {
		paise, err := models.ParseRupees(ch.amount)
		if err != nil {
			return nil, err
		}
		record.AmountPaise = paise
	}
	if ch.category != "" {
		cat := models.Category(strings.ToUpper(ch.category))
		if !cat.Valid() {
			return nil, fmt.Errorf("unknown category %q", ch.category)
		}
		record.Category = cat
	}
	if ch.direction != "" {
		dir := models.Direction(strings.ToUpper(ch.direction))
		if !dir.Valid() {
			return nil, fmt.Errorf("type must be INCOME or EXPENSE, got %q", ch.direction)
		}
		record.Direction = dir
	}
	if ch.date != "" {
		when, err := dateutils.Parse(ch.date)
		if err != nil {
			return nil, err
		}
		if dateutils.IsFuture(when, time.Now()) {
			return nil, fmt.Errorf("date %s is in the future", ch.date)
		}
		record.Date = when
	}

	if err := st.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func init() {
	Cmd.Flags().StringVarP(&title, "title", "t", "", "New label for the transaction")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount in rupees, e.g. 250 or 80.50")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	Cmd.Flags().StringVar(&direction, "type", "", "INCOME or EXPENSE")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "New date as dd/mm/yyyy")
}
