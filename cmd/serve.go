package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"inkwell/app/services"
	"inkwell/config"
	"inkwell/routes"

	"github.com/spf13/cobra"
)

var servePort string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the blog API server",
	Run:   serve,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	RootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) {
	cfg := config.Load()
	if servePort != "" {
		cfg.Port = servePort
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	postService := services.NewPostService(st)
	router := routes.SetupRoutes(postService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting blog API on port %s (%s store in %s)", cfg.Port, cfg.StoreBackend, cfg.DataDir)
	if err := routes.StartServer(ctx, ":"+cfg.Port, routes.WithCORS(router)); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
