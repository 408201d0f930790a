// List command prints tasks in ascending id order.
package main

import "github.com/spf13/cobra"

var (
	listAll   bool
	listTable bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List prints open tasks in ascending id order, one per line.

Done tasks are hidden unless --all is set; they render dimmed with a
checked box. Use --table for column-aligned output.

Example:
  ticklist list
  ticklist list --all
  ticklist list --all --table`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if listTable {
			st.ListTable(listAll)
		} else {
			st.List(listAll)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include done tasks")
	listCmd.Flags().BoolVarP(&listTable, "table", "t", false, "column-aligned output")
}
