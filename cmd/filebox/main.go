package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/filebox/filebox_api/internal/api"
	"github.com/filebox/filebox_api/internal/config"
	"github.com/filebox/filebox_api/internal/filestore"
	"github.com/filebox/filebox_api/internal/logging"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.NewLogger(cfg)

	fileStore, err := filestore.New(cfg)
	if err != nil {
		log.Fatalf("failed to create file store: %v", err)
	}

	server := api.NewServer(cfg, fileStore, logger)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	signCh := make(chan os.Signal, 1)
	signal.Notify(signCh, os.Interrupt, syscall.SIGTERM)
	<-signCh

	log.Println("shutting down gracefully...")
	if err := server.Shutdown(); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
