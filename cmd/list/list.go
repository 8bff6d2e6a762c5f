// Package list implements the transaction listing command.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saicharanbm/finTrack/cmd/root"
)

var (
	limit int
	page  int
)

// Cmd is the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded transactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if page < 1 {
			return fmt.Errorf("page must be at least 1")
		}

		st, cleanup, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := st.List(cmd.Context(), root.Cfg.User.ID, limit, (page-1)*limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No transactions.")
			return nil
		}
		for _, record := range records {
			fmt.Printf("%s  %s\n", record.ID, record.String())
		}
		return nil
	},
}

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Number of transactions per page")
	Cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
}
