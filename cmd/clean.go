package cmd

import (
	"fmt"
	"log"
	"os"

	"inkwell/config"

	"github.com/spf13/cobra"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the data directory and everything in it",
	Run:   clean,
}

func init() {
	RootCmd.AddCommand(cleanCmd)
}

func clean(cmd *cobra.Command, args []string) {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
		fmt.Println("Data directory is already clean (does not exist)")
		return
	}

	if !confirm("Are you sure you want to remove all post data? This cannot be undone.") {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(cfg.DataDir); err != nil {
		log.Fatalf("Failed to clean data directory: %v", err)
	}
	fmt.Println("Data directory cleaned successfully")
}
