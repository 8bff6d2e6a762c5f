// Package export implements CSV export of recorded transactions.
package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/saicharanbm/finTrack/cmd/root"
	"github.com/saicharanbm/finTrack/internal/dateutils"
	"github.com/saicharanbm/finTrack/internal/models"
)

var output string

// csvRow is the flat CSV shape of a transaction record. Amounts are written
// both as raw paise and as a rupee string so spreadsheets stay usable.
type csvRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Title       string `csv:"Title"`
	Direction   string `csv:"Type"`
	Category    string `csv:"Category"`
	AmountPaise string `csv:"AmountPaise"`
	Amount      string `csv:"Amount"`
}

// Cmd is the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transactions to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cleanup, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := st.List(cmd.Context(), root.Cfg.User.ID, 0, 0)
		if err != nil {
			return err
		}

		rows := make([]csvRow, 0, len(records))
		for _, record := range records {
			rows = append(rows, csvRow{
				ID:          record.ID.String(),
				Date:        dateutils.Format(record.Date),
				Title:       record.Title,
				Direction:   string(record.Direction),
				Category:    string(record.Category),
				AmountPaise: models.PaiseString(record.AmountPaise),
				Amount:      models.PaiseToRupees(record.AmountPaise).StringFixed(2),
			})
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()

		if err := gocsv.MarshalFile(&rows, f); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		fmt.Printf("Exported %d transaction(s) to %s\n", len(rows), output)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output CSV file")
}
