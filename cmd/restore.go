package cmd

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"inkwell/app/models"
	"inkwell/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [file]",
	Short: "Replace all post data with a backup snapshot",
	Args:  cobra.ExactArgs(1),
	Run:   restore,
}

func init() {
	RootCmd.AddCommand(restoreCmd)
}

func restore(cmd *cobra.Command, args []string) {
	cfg := config.Load()
	backupFile := args[0]

	data, err := os.ReadFile(backupFile)
	if err != nil {
		log.Fatalf("Failed to read backup file: %v", err)
	}

	if err := verifyChecksum(backupFile, data); err != nil {
		log.Fatalf("Backup verification failed: %v", err)
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		log.Fatalf("Backup file is not valid post data: %v", err)
	}
	for i := range posts {
		posts[i].Normalize()
	}

	if _, err := os.Stat(cfg.DataDir); err == nil {
		if !confirm("Existing data found. Do you want to replace it?") {
			fmt.Println("Operation cancelled")
			return
		}
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	if err := st.Save(posts); err != nil {
		log.Fatalf("Failed to restore posts: %v", err)
	}

	fmt.Printf("Restored %d posts from %s\n", len(posts), color.New(color.Bold).Sprint(backupFile))
}

// verifyChecksum checks the snapshot against its .sum sidecar. A missing
// sidecar is accepted so hand-written snapshots can be imported.
func verifyChecksum(backupFile string, data []byte) error {
	want, err := os.ReadFile(backupFile + ".sum")
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	sum := blake2b.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != strings.TrimSpace(string(want)) {
		return fmt.Errorf("checksum mismatch for %s", backupFile)
	}
	return nil
}
