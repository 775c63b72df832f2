package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"book-catalog/library"
)

// runShell runs the interactive menu loop until "exit" or EOF.
func runShell(mgr *library.Manager) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the book catalog!")
	fmt.Println("Available commands:")
	fmt.Println("  add     - add a new book")
	fmt.Println("  delete  - delete a book by ID")
	fmt.Println("  search  - search by title, author, or year")
	fmt.Println("  list    - show all books")
	fmt.Println("  status  - change a book's status")
	fmt.Println("  exit    - quit")

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add":
			handleAdd(scanner, mgr)
		case "delete":
			handleDelete(scanner, mgr)
		case "search":
			handleSearch(scanner, mgr)
		case "list":
			handleList(mgr)
		case "status":
			handleStatus(scanner, mgr)
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "":
			continue
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

func handleAdd(sc *bufio.Scanner, mgr *library.Manager) {
	fmt.Print("Title: ")
	if !sc.Scan() {
		return
	}
	title := strings.TrimSpace(sc.Text())

	fmt.Print("Author: ")
	if !sc.Scan() {
		return
	}
	author := strings.TrimSpace(sc.Text())

	year, ok := promptYear(sc)
	if !ok {
		return
	}

	book, err := mgr.AddBook(title, author, year)
	if err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added book %q with ID %s\n", book.Title, book.ID)
}

// promptYear keeps asking until the input parses as an integer, like the
// other prompts it gives up on EOF.
func promptYear(sc *bufio.Scanner) (int, bool) {
	for {
		fmt.Print("Year: ")
		if !sc.Scan() {
			return 0, false
		}
		year, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			fmt.Println("Invalid input. Please enter a valid year.")
			continue
		}
		return year, true
	}
}

func handleDelete(sc *bufio.Scanner, mgr *library.Manager) {
	fmt.Print("Book ID: ")
	if !sc.Scan() {
		return
	}
	id := strings.TrimSpace(sc.Text())

	if err := mgr.DeleteBook(id); err != nil {
		if errors.Is(err, library.ErrNotFound) {
			fmt.Printf("No book with ID %s\n", id)
		} else {
			fmt.Printf("Error deleting book: %v\n", err)
		}
		return
	}
	fmt.Printf("Book %s deleted.\n", id)
}

func handleSearch(sc *bufio.Scanner, mgr *library.Manager) {
	fmt.Println("Search by:")
	fmt.Println("  1. Title")
	fmt.Println("  2. Author")
	fmt.Println("  3. Year")
	fmt.Print("Criterion: ")
	if !sc.Scan() {
		return
	}
	criterion := strings.TrimSpace(sc.Text())

	fmt.Print("Query: ")
	if !sc.Scan() {
		return
	}
	query := strings.TrimSpace(sc.Text())
	if query == "" {
		fmt.Println("Query cannot be empty.")
		return
	}

	var books []library.Book
	switch criterion {
	case "1":
		books = mgr.FindByTitle(query)
	case "2":
		books = mgr.FindByAuthor(query)
	case "3":
		year, err := strconv.Atoi(query)
		if err != nil {
			fmt.Println("Invalid year. Please enter a numeric value.")
			return
		}
		books = mgr.FindByYear(year)
	default:
		fmt.Println("Invalid criterion.")
		return
	}

	if len(books) == 0 {
		fmt.Println("No books found.")
		return
	}
	printBooks(books)
}

func handleList(mgr *library.Manager) {
	books := mgr.Books()
	if len(books) == 0 {
		fmt.Println("The catalog is empty.")
		return
	}
	printBooks(books)
}

func handleStatus(sc *bufio.Scanner, mgr *library.Manager) {
	fmt.Print("Book ID: ")
	if !sc.Scan() {
		return
	}
	id := strings.TrimSpace(sc.Text())

	fmt.Printf("New status (%s/%s): ", library.StatusAvailable, library.StatusCheckedOut)
	if !sc.Scan() {
		return
	}
	status := library.Status(strings.TrimSpace(sc.Text()))

	if err := mgr.ChangeStatus(id, status); err != nil {
		switch {
		case errors.Is(err, library.ErrInvalidStatus):
			fmt.Printf("Invalid status. Use %q or %q.\n", library.StatusAvailable, library.StatusCheckedOut)
		case errors.Is(err, library.ErrNotFound):
			fmt.Printf("No book with ID %s\n", id)
		default:
			fmt.Printf("Error changing status: %v\n", err)
		}
		return
	}
	fmt.Printf("Status of book %s is now %q\n", id, status)
}
