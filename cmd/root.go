package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Inkwell: a JSON API for blog posts",
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("Error executing root command: %v", err)
	}
}
