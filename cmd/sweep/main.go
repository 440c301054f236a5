package main

import (
	"flag"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pressmill/console/internal/draftstore"
)

// main runs a one-shot retention sweep against a local draft database.
func main() {
	// Define command-line flags
	path := flag.String("db", "console.db", "Path to the local draft database")
	maxAgeDays := flag.Int("max-age-days", 7, "Delete drafts last saved more than this many days ago")
	dryRun := flag.Bool("dry-run", false, "List matching drafts without deleting them")
	flag.Parse()

	if *maxAgeDays <= 0 {
		log.Fatal("--max-age-days must be positive")
	}
	maxAge := time.Duration(*maxAgeDays) * 24 * time.Hour

	store := draftstore.Open(*path)
	defer store.Close()

	if *dryRun {
		drafts, err := store.GetAllDrafts("")
		if err != nil {
			log.Fatalf("Error listing drafts: %v", err)
		}
		cutoff := time.Now().Add(-maxAge)
		stale := 0
		for _, d := range drafts {
			if !d.LastSaved.After(cutoff) {
				log.Printf("Would delete draft %s (%q, last saved %s)", d.ID, d.Title, d.LastSaved.Format(time.RFC3339))
				stale++
			}
		}
		log.Printf("Dry run: %d of %d drafts are stale", stale, len(drafts))
		return
	}

	removed, err := store.ClearOldDrafts(maxAge)
	if err != nil {
		log.Fatalf("Error sweeping drafts: %v", err)
	}
	log.Printf("Removed %d stale drafts from %s", removed, *path)
}
