package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"inkwell/app/models"
	"inkwell/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a snapshot of all posts to the backup directory",
	Run:   backup,
}

func init() {
	RootCmd.AddCommand(backupCmd)
}

func backup(cmd *cobra.Command, args []string) {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
		fmt.Println("No data exists to backup")
		return
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	posts, err := st.Load()
	if err != nil {
		log.Fatalf("Failed to load posts: %v", err)
	}

	backupFile, err := writeBackup(cfg.DataDir, posts)
	if err != nil {
		log.Fatalf("Failed to write backup: %v", err)
	}

	fmt.Printf("Backed up %d posts to %s\n", len(posts), color.New(color.Bold).Sprint(backupFile))
}

// writeBackup writes the snapshot next to a checksum sidecar, so a
// restore can detect a truncated or edited file.
func writeBackup(dataDir string, posts []models.Post) (string, error) {
	backupDir := filepath.Join(dataDir, "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return "", err
	}

	backupFile := filepath.Join(backupDir, fmt.Sprintf("posts_%d.json", time.Now().Unix()))
	if err := os.WriteFile(backupFile, data, 0644); err != nil {
		return "", err
	}

	sum := blake2b.Sum256(data)
	if err := os.WriteFile(backupFile+".sum", []byte(hex.EncodeToString(sum[:])+"\n"), 0644); err != nil {
		return "", err
	}

	return backupFile, nil
}
