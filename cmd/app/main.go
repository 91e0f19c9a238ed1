package main

import (
	"log"

	"pitchmatch/internal/config"
	"pitchmatch/internal/logger"
	"pitchmatch/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize JSON logging
	log.SetFlags(0)
	log.SetOutput(&logger.JSONLogger{Instance: cfg.InstanceName})

	log.Printf("Serving on port %s...", cfg.Port)

	// Create and start server
	srv := server.New(cfg)
	log.Fatal(srv.ListenAndServe())
}
