// Done and undone commands flip a task's completion state.
package main

import "github.com/spf13/cobra"

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runMark(true),
}

var undoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Mark a task as not done",
	Args:  cobra.ExactArgs(1),
	RunE:  runMark(false),
}

// runMark returns a runner that sets the task's done flag to the given
// value. Marking is idempotent.
func runMark(done bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		st.Mark(id, done)
		return nil
	}
}
