package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version will be set at build time using -ldflags
var Version = "development"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Inkwell",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Inkwell Version:", Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
