package main

import (
	"flag"
	"log"
	"os"

	"github.com/luiskerner/finance-newsletter/internal/di"
	"github.com/luiskerner/finance-newsletter/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	// Blocks until SIGINT/SIGTERM.
	if err := app.Run(); err != nil {
		log.Printf("newsletter service exited: %v", err)
		os.Exit(1)
	}
}
