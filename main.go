package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"book-catalog/config"
	"book-catalog/library"
	"book-catalog/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "book-catalog",
		Short:         "Manage a small book catalog backed by a JSON file",
		Long:          "book-catalog keeps a list of books in a flat JSON file.\nRun without arguments for the interactive shell, or use the subcommands for one-shot operations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()
			runShell(mgr)
			return nil
		},
	}

	root.AddCommand(
		newAddCmd(),
		newRemoveCmd(),
		newListCmd(),
		newSearchCmd(),
		newStatusCmd(),
	)
	return root
}

// setup wires config, logger, and the catalog manager. Loading the catalog
// happens inside NewManager; a corrupt file aborts startup here.
func setup() (*library.Manager, *zap.SugaredLogger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Logger)
	if err != nil {
		return nil, nil, err
	}
	mgr, err := library.NewManager(cfg.Catalog.File, log)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}
	return mgr, log, nil
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <author> <year>",
		Short: "Add a book to the catalog",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid year: %s", args[2])
			}
			mgr, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			book, err := mgr.AddBook(args[0], args[1], year)
			if err != nil {
				return err
			}
			fmt.Printf("Added book %q with ID %s\n", book.Title, book.ID)
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a book by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := mgr.DeleteBook(args[0]); err != nil {
				if errors.Is(err, library.ErrNotFound) {
					return fmt.Errorf("no book with ID %s", args[0])
				}
				return err
			}
			fmt.Printf("Removed book %s\n", args[0])
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			books := mgr.Books()
			if len(books) == 0 {
				fmt.Println("The catalog is empty.")
				return nil
			}
			printBooks(books)
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	var (
		byTitle  string
		byAuthor string
		byYear   int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search books by title, author, or year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			var books []library.Book
			switch {
			case byTitle != "":
				books = mgr.FindByTitle(byTitle)
			case byAuthor != "":
				books = mgr.FindByAuthor(byAuthor)
			case cmd.Flags().Changed("year"):
				books = mgr.FindByYear(byYear)
			default:
				return fmt.Errorf("specify one of --title, --author, or --year")
			}

			if len(books) == 0 {
				fmt.Println("No books found.")
				return nil
			}
			printBooks(books)
			return nil
		},
	}
	cmd.Flags().StringVar(&byTitle, "title", "", "case-insensitive title substring")
	cmd.Flags().StringVar(&byAuthor, "author", "", "case-insensitive author substring")
	cmd.Flags().IntVar(&byYear, "year", 0, "exact publication year")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <available|checked_out>",
		Short: "Change the status of a book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := mgr.ChangeStatus(args[0], library.Status(args[1])); err != nil {
				if errors.Is(err, library.ErrNotFound) {
					return fmt.Errorf("no book with ID %s", args[0])
				}
				return err
			}
			fmt.Printf("Status of book %s is now %q\n", args[0], args[1])
			return nil
		},
	}
}

func printBooks(books []library.Book) {
	fmt.Printf("%-36s %-30s %-25s %-6s %-12s\n", "ID", "Title", "Author", "Year", "Status")
	fmt.Println(strings.Repeat("-", 112))
	for _, b := range books {
		fmt.Println(library.PrettyBook(b))
	}
}
