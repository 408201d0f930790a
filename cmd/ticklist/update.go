// Update command rewrites a task's description.
package main

import "github.com/spf13/cobra"

var updateCmd = &cobra.Command{
	Use:   "update <id> <task>",
	Short: "Replace a task's description",
	Long: `Update replaces the description of the task with the given id.
The task keeps its id and its done state.

Example:
  ticklist update 2 "buy oat milk"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		st.Update(id, args[1])
		return nil
	},
}
