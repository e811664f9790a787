package cmd

import (
	"fmt"
	"path/filepath"

	"inkwell/app/store"
	"inkwell/config"
)

// openStore opens the persistence backend selected by the configuration.
func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "file":
		return store.NewFileStore(filepath.Join(cfg.DataDir, "posts.json"))
	case "badger":
		return store.NewBadgerStore(filepath.Join(cfg.DataDir, "badger"))
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file or badger)", cfg.StoreBackend)
	}
}

func confirm(prompt string) bool {
	fmt.Print(prompt + " [y/N] ")
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y"
}
