package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pressmill/console/internal/draftstore"
	"github.com/pressmill/console/internal/model"
)

// main lists the drafts held in a local draft database.
func main() {
	// Define command-line flags
	path := flag.String("db", "console.db", "Path to the local draft database")
	user := flag.String("user", "", "Only list drafts owned by this user ID")
	flag.Parse()

	if _, err := os.Stat(*path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database %s: %v\n", *path, err)
		os.Exit(1)
	}

	store := draftstore.Open(*path)
	defer store.Close()

	drafts, err := store.GetAllDrafts(model.UserID(*user))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing drafts: %v\n", err)
		os.Exit(1)
	}

	// Define Lipgloss styles
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	staleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	if len(drafts) == 0 {
		fmt.Println(staleStyle.Render("No drafts found"))
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-38s %-30s %-10s %s", "ID", "TITLE", "STATUS", "LAST SAVED")))
	staleCutoff := time.Now().Add(-draftstore.DefaultMaxAge)
	for _, d := range drafts {
		title := d.Title
		if title == "" {
			title = "(untitled)"
		}
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		line := fmt.Sprintf("%s %-30s %-10s %s",
			idStyle.Render(fmt.Sprintf("%-38s", d.ID)),
			title,
			d.Status,
			d.LastSaved.Local().Format("2006-01-02 15:04:05"),
		)
		if d.LastSaved.Before(staleCutoff) {
			line += staleStyle.Render(" (stale)")
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d drafts\n", len(drafts))
}
