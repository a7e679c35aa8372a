package main

import (
	"fmt"
	"os"
	"strings"

	"smart-library/library"
)

// import_books checks a seed catalog file before it is handed to smartlib
// --seed: it loads the file into a fresh manager and prints what would be in
// the catalog and the action log.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <catalog file>\n", os.Args[0])
		os.Exit(2)
	}
	path := os.Args[1]

	cfg, err := library.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	manager, err := library.NewLibraryManager(library.WithLimits(cfg.Limits()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating library: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Importing books from %s...\n", path)
	report, err := manager.ImportCatalogFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		os.Exit(1)
	}
	for _, e := range report.Errors {
		fmt.Printf("ERROR - %v\n", e)
	}
	for _, w := range report.Warnings {
		fmt.Printf("Warning: %v\n", w)
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d books\n", report.Added)
	fmt.Printf("Errors: %d\n", len(report.Errors))

	if report.Added > 0 {
		fmt.Println("\nImported books:")
		fmt.Printf("%-7s %-50s %-6s\n", "ID", "Title", "Copies")
		fmt.Println(strings.Repeat("-", 65))
		for _, book := range manager.ListBooks() {
			fmt.Printf("%-7d %-50s %-6d\n", book.ID, truncateString(book.Title, 50), book.AvailableCopies)
		}
		fmt.Printf("\nAction log entries: %d\n", len(manager.ListActionLog()))
	}
	if len(report.Errors) > 0 {
		os.Exit(1)
	}
}

// truncateString cuts s to at most maxLen runes.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
