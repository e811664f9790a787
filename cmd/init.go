package cmd

import (
	"fmt"
	"log"
	"os"

	"inkwell/app/models"
	"inkwell/config"

	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an empty data directory",
	Run:   initData,
}

func init() {
	RootCmd.AddCommand(initCmd)
}

func initData(cmd *cobra.Command, args []string) {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DataDir); err == nil {
		fmt.Println("Data directory already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	if err := st.Save([]models.Post{}); err != nil {
		log.Fatalf("Failed to initialize data directory: %v", err)
	}

	fmt.Println("Data directory initialized successfully")
}
