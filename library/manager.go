package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AddBookInput is the payload for adding a book, with the validation the
// store itself deliberately skips: non-empty title and author, year within
// [1, current calendar year].
type AddBookInput struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Year   int    `validate:"gt=0,notfuture"`
}

// Manager is a thin façade over the Store, keeping CLI code simple. It owns
// input validation, so every book reaching the store is well formed.
type Manager struct {
	store    *Store
	validate *validator.Validate
	log      *zap.SugaredLogger
}

// NewManager opens the catalog at path and loads it. A corrupt file is a
// startup failure, never an empty catalog.
func NewManager(path string, log *zap.SugaredLogger) (*Manager, error) {
	store := NewStore(path, log)
	if err := store.Load(); err != nil {
		return nil, err
	}

	v := validator.New()
	if err := v.RegisterValidation("notfuture", notAfterCurrentYear); err != nil {
		return nil, fmt.Errorf("register validation: %w", err)
	}

	return &Manager{store: store, validate: v, log: log}, nil
}

func notAfterCurrentYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(time.Now().Year())
}

// ------------------ Mutations ------------------

// AddBook validates the input and adds the book with the default status.
func (m *Manager) AddBook(title, author string, year int) (Book, error) {
	in := AddBookInput{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Year:   year,
	}
	if err := m.validate.Struct(in); err != nil {
		m.log.Debugw("rejected invalid book", "title", in.Title, "author", in.Author, "year", in.Year)
		return Book{}, fmt.Errorf("invalid book: %w", err)
	}
	return m.store.Add(in.Title, in.Author, in.Year, StatusAvailable)
}

func (m *Manager) DeleteBook(id string) error { return m.store.Delete(id) }

func (m *Manager) ChangeStatus(id string, status Status) error {
	return m.store.ChangeStatus(id, status)
}

// ------------------ Queries ------------------

func (m *Manager) GetBook(id string) (Book, error) { return m.store.Get(id) }
func (m *Manager) Books() []Book                   { return m.store.Books() }
func (m *Manager) FindByTitle(q string) []Book     { return m.store.FindByTitle(q) }
func (m *Manager) FindByAuthor(q string) []Book    { return m.store.FindByAuthor(q) }
func (m *Manager) FindByYear(year int) []Book      { return m.store.FindByYear(year) }

// ------------------ Utilities ------------------

// PrettyBook formats a book for lists.
func PrettyBook(b Book) string {
	return fmt.Sprintf("%-36s %-30s %-25s %-6d %-12s", b.ID, b.Title, b.Author, b.Year, b.Status)
}
