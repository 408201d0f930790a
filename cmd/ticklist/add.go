// Add command appends a new task to the list.
package main

import "github.com/spf13/cobra"

var addCmd = &cobra.Command{
	Use:   "add <task>",
	Short: "Add a task to the list",
	Long: `Add appends a new open task. The task gets the lowest id above
every id ever in use, so ids keep growing even after deletions.

Example:
  ticklist add "buy milk"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		st.Add(args[0])
		return nil
	},
}
