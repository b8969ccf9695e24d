package main

import (
	"flag"
	"log"
	"time"

	"snake-matrix/config"
	"snake-matrix/game"
	"snake-matrix/storage"
	"snake-matrix/ui"

	"golang.org/x/exp/rand"
)

func main() {
	envFile := flag.String("env", ".env", "Environment file to load before reading SNAKE_* variables")
	speed := flag.Int("speed", 0, "Tick delay in milliseconds (lower = faster), overrides SNAKE_TICK_MS")
	storeKind := flag.String("store", "", "High score store: memory, file or postgres, overrides SNAKE_STORE")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *speed > 0 {
		cfg.TickDelay = time.Duration(*speed) * time.Millisecond
	}
	if *storeKind != "" {
		cfg.Store = *storeKind
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
	}

	store, err := storage.Open(cfg.Store, cfg.Target())
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store, err)
	}
	defer store.Close()

	renderer := ui.NewRenderer(cfg.Scale)
	renderer.Open("Snake")
	defer renderer.Close()

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	g := game.NewGame(game.Config{
		TickDelay: cfg.TickDelay,
		IdleDelay: cfg.IdleDelay,
	}, renderer, renderer, renderer, rng, store)

	log.Printf("Press space to start, arrow keys to tilt (store: %s)", cfg.Store)
	for !renderer.Closed() {
		g.Step()
	}
}
