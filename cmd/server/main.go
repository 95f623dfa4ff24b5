package main

import (
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/youruser/qrgrid/internal/api"
)

func main() {
	// Best-effort .env for local runs.
	_ = godotenv.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := api.NewRouter(logger)
	logger.Info("starting server", "addr", "http://localhost:"+port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed", "error", err)
	}
}
