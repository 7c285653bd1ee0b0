package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/d1nch8g/chime/config"
	"github.com/d1nch8g/chime/engine"
	"github.com/d1nch8g/chime/synth"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	melody, err := synth.Tune(cfg.Tune)
	if err != nil {
		log.Fatalf("Failed to select tune: %v", err)
	}

	eng, err := engine.New(cfg, melody)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	// Setup signal handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Playing tune %q (%d notes) for %v. Press Ctrl-C to stop.\n",
		cfg.Tune, melody.Len(), cfg.Duration)

	if err := eng.Run(ctx); err != nil {
		log.Fatalf("Playback error: %v", err)
	}
}
