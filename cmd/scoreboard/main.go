package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dyluth/roads/internal/config"
	"github.com/dyluth/roads/internal/scoreboard"
	"github.com/dyluth/roads/pkg/feed"
)

func main() {
	// 1. Load configuration; a missing file means defaults
	configPath := os.Getenv("ROADS_CONFIG")
	if configPath == "" {
		configPath = config.DefaultFileName
	}

	cfg, found, err := config.LoadOrDefault(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load %s: %v\n", configPath, err)
		os.Exit(1)
	}
	if !found {
		fmt.Printf("No %s found, using defaults\n", configPath)
	}

	// 2. Environment overrides
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}

	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid Redis URL: %v\n", err)
		os.Exit(1)
	}

	// 3. Create feed client
	client, err := feed.NewClient(redisOpts, cfg.Table.Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to create feed client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	// 4. Verify Redis connectivity
	if err := client.Ping(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Redis not accessible: %v\n", err)
		os.Exit(1)
	}

	engine, err := scoreboard.NewEngine(client, cfg.Size(), cfg.Scoreboard.HealthAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to create scoreboard: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scoreboard starting for table '%s' (%dx%d)\n", cfg.Table.Name, cfg.Table.Height, cfg.Table.Width)

	// 5. Setup graceful shutdown
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	errCh := make(chan error, 1)
	go func() {
		errCh <- engine.Run(runCtx)
	}()

	select {
	case sig := <-sigCh:
		fmt.Printf("Received signal %v, shutting down gracefully...\n", sig)
		cancel()
		<-errCh
	case runErr := <-errCh:
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Scoreboard error: %v\n", runErr)
			os.Exit(1)
		}
	}

	fmt.Println("Scoreboard stopped")
}
