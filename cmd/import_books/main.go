package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"book-catalog/config"
	"book-catalog/library"
	"book-catalog/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// seedBook is one entry of the seed file: a JSON array of objects with
// title, author, and year. IDs and statuses are assigned on import.
type seedBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <seed-file.json>\n", os.Args[0])
		os.Exit(1)
	}
	seedPath := os.Args[1]

	data, err := os.ReadFile(seedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading seed file: %v\n", err)
		os.Exit(1)
	}

	var seeds []seedBook
	if err := json.Unmarshal(data, &seeds); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing seed file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	mgr, err := library.NewManager(cfg.Catalog.File, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Importing %d books into %s...\n", len(seeds), cfg.Catalog.File)

	successCount := 0
	errorCount := 0

	for _, seed := range seeds {
		fmt.Printf("Importing: %s by %s... ", seed.Title, seed.Author)

		book, err := mgr.AddBook(seed.Title, seed.Author, seed.Year)
		if err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}

		fmt.Printf("SUCCESS (ID: %s)\n", book.ID)
		successCount++
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d books\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)
}
