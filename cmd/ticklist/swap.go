// Swap command exchanges the ids of two tasks.
package main

import "github.com/spf13/cobra"

var swapCmd = &cobra.Command{
	Use:   "swap <id1> <id2>",
	Short: "Swap the ids of two tasks",
	Long: `Swap exchanges the ids of two tasks, reordering them in the
listing. Descriptions and done states stay with their tasks.

Example:
  ticklist swap 1 4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id1, err := parseID(args[0])
		if err != nil {
			return err
		}
		id2, err := parseID(args[1])
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		st.Swap(id1, id2)
		return nil
	},
}
