// Package remove implements deletion of a recorded transaction.
package remove

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saicharanbm/finTrack/cmd/root"
)

// Cmd is the delete command.
var Cmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a recorded transaction",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
		}

		st, cleanup, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		if err := st.Delete(cmd.Context(), id, root.Cfg.User.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted transaction %s.\n", id)
		return nil
	},
}
