// Version command for the ticklist CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the ticklist release version.
const version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ticklist version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ticklist", version)
	},
}
