// Reset command empties the task list.
package main

import "github.com/spf13/cobra"

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every task",
	Long: `Reset permanently deletes every task in the list.

Without --force the command asks for confirmation first; only a "y"
answer (case insensitive) empties the list.

Example:
  ticklist reset
  ticklist reset --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		st.Reset(resetForce)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip the confirmation prompt")
}
