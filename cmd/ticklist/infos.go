// Infos command summarizes the task file.
package main

import "github.com/spf13/cobra"

var infosCmd = &cobra.Command{
	Use:   "infos",
	Short: "Print the task file location and task counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		st.Infos()
		return nil
	},
}
