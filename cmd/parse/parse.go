// Package parse implements the natural-language parse command.
package parse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saicharanbm/finTrack/cmd/root"
	"github.com/saicharanbm/finTrack/internal/dateutils"
	"github.com/saicharanbm/finTrack/internal/models"
	"github.com/saicharanbm/finTrack/internal/parser"
)

var (
	save   bool
	asJSON bool
)

// Cmd is the parse command.
var Cmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Parse a plain-language transaction description",
	Long: `Parse sends a plain-language description like "spent 250 on lunch
yesterday" through the language model and prints the structured transactions
it resolves to. With --save, a successful parse is persisted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(root.Cfg.AI.TimeoutSeconds)*time.Second)
		defer cancel()

		capability, err := root.NewCapability(ctx)
		if err != nil {
			return err
		}

		p := parser.New(capability, root.Log)
		outcome := p.Parse(ctx, text)

		if asJSON {
			out, err := json.MarshalIndent(outcome, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		} else if outcome.IsSuccess() {
			for _, c := range outcome.Transactions {
				fmt.Printf("%s  %-7s %s  %s (%s)\n",
					c.Date, c.Direction, models.FormatPaise(c.AmountPaise), c.Title, c.Category)
			}
		} else {
			fmt.Println(outcome.Message)
		}

		if !save || !outcome.IsSuccess() {
			return nil
		}

		st, cleanup, err := root.OpenStore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		records := make([]models.TransactionRecord, 0, len(outcome.Transactions))
		for _, c := range outcome.Transactions {
			date, err := dateutils.Parse(c.Date)
			if err != nil {
				return fmt.Errorf("candidate %q has unparseable date %q: %w", c.Title, c.Date, err)
			}
			records = append(records, models.NewTransactionRecord(root.Cfg.User.ID, c, date))
		}
		if err := st.CreateBatch(ctx, records); err != nil {
			return fmt.Errorf("saving transactions: %w", err)
		}
		fmt.Printf("Saved %d transaction(s).\n", len(records))
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVarP(&save, "save", "s", false, "Persist the parsed transactions")
	Cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw outcome as JSON")
}
