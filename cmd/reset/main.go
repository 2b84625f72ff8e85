// Command reset replaces the saved garden state with the default starting
// state. Useful after manual edits have corrupted the document, or to start
// over.
package main

import (
	"flag"
	"log"

	"github.com/osse101/StudyGarden_Go/internal/config"
	"github.com/osse101/StudyGarden_Go/internal/domain"
	"github.com/osse101/StudyGarden_Go/internal/state"
)

func main() {
	force := flag.Bool("force", false, "reset without confirmation")
	flag.Parse()

	if !*force {
		log.Fatal("This will erase the saved garden. Re-run with -force to proceed.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	data, err := state.Encode(domain.NewState())
	if err != nil {
		log.Fatalf("Failed to encode default state: %v", err)
	}
	if err := state.NewFileStore(cfg.StatePath()).Write(data); err != nil {
		log.Fatalf("Failed to write state file: %v", err)
	}

	log.Printf("Garden reset to defaults at %s", cfg.StatePath())
}
