// Delete command removes a single task.
package main

import "github.com/spf13/cobra"

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Long: `Delete removes the task with the given id. The remaining tasks
keep their ids; the freed id is only reused once it is above every
remaining id.

Example:
  ticklist delete 3`,
	Args: cobra.ExactArgs(1),
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

		st.Delete(id)
		return nil
	},
}
