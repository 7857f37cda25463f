package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/LeoWherle/ranker/internal/config"
	"github.com/LeoWherle/ranker/internal/element"
	"github.com/LeoWherle/ranker/internal/llm"
	"github.com/LeoWherle/ranker/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	elements, err := element.LoadFile(cfg.Elements.Path)
	if err != nil {
		log.Fatalf("Failed to load elements: %v", err)
	}

	var oracle *llm.Oracle
	if cfg.LLM.Provider != "" {
		client, err := llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize LLM client: %v", err)
		}
		oracle = llm.NewOracle(client)
	}

	srv := server.NewServer(elements, oracle, cfg.LLM.Criterion)
	r := srv.SetupRouter()

	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s with %d elements", port, len(elements))
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
