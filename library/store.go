package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store owns the in-memory book sequence and its backing JSON file. Every
// mutation rewrites the whole file before returning success; read-only
// operations never touch it. Not safe for concurrent use: one process, one
// caller, matching the single-terminal use case.
type Store struct {
	path  string
	books []Book
	log   *zap.SugaredLogger
}

// NewStore creates a store over the JSON file at path. Call Load before any
// other operation.
func NewStore(path string, log *zap.SugaredLogger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

// Load reads the backing file and replaces the in-memory sequence. A missing
// file is not an error and yields an empty catalog. A file that exists but
// cannot be parsed as a book array yields a CorruptDataError.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.books = nil
		s.log.Debugw("catalog file absent, starting empty", "path", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read catalog file %s: %w", s.path, err)
	}

	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return &CorruptDataError{Path: s.path, Err: err}
	}
	for _, b := range books {
		if !b.Status.Valid() {
			return &CorruptDataError{Path: s.path, Err: fmt.Errorf("book %s: %w", b.ID, ErrInvalidStatus)}
		}
	}

	s.books = books
	s.log.Debugw("catalog loaded", "path", s.path, "books", len(books))
	return nil
}

// Save serializes the full sequence and replaces the backing file via a
// temp file plus atomic rename, so a crash mid-write cannot truncate the
// previous contents.
func (s *Store) Save() error {
	books := s.books
	if books == nil {
		books = []Book{} // keep the file a JSON array, never null
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".catalog-*.json")
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Add creates a book with a freshly generated id, appends it, and persists.
// Field validation of title/author/year is the caller's job (see Manager).
// An empty status defaults to StatusAvailable.
func (s *Store) Add(title, author string, year int, status Status) (Book, error) {
	if status == "" {
		status = StatusAvailable
	}
	if !status.Valid() {
		return Book{}, ErrInvalidStatus
	}

	book := Book{
		ID:     uuid.NewString(),
		Title:  title,
		Author: author,
		Year:   year,
		Status: status,
	}
	s.books = append(s.books, book)
	if err := s.Save(); err != nil {
		s.books = s.books[:len(s.books)-1]
		return Book{}, err
	}

	s.log.Infow("book added", "id", book.ID, "title", book.Title)
	return book, nil
}

// Delete removes the book with the given id and persists. Returns
// ErrNotFound when no book has that id; the sequence is left unchanged.
func (s *Store) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	prev := s.books
	rest := make([]Book, 0, len(prev)-1)
	rest = append(rest, prev[:idx]...)
	rest = append(rest, prev[idx+1:]...)
	s.books = rest
	if err := s.Save(); err != nil {
		s.books = prev
		return err
	}

	s.log.Infow("book deleted", "id", id)
	return nil
}

// ChangeStatus updates the status of the book with the given id and
// persists. Status legality is checked before the id lookup, so a bogus
// status is reported even when the id does not exist.
func (s *Store) ChangeStatus(id string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	prev := s.books[idx].Status
	s.books[idx].Status = status
	if err := s.Save(); err != nil {
		s.books[idx].Status = prev
		return err
	}

	s.log.Infow("status changed", "id", id, "status", status)
	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Get returns the book with the given id, or ErrNotFound.
func (s *Store) Get(id string) (Book, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Book{}, ErrNotFound
	}
	return s.books[idx], nil
}

// Books returns a copy of all records in store order.
func (s *Store) Books() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// FindByTitle returns all books whose title contains sub, ignoring case,
// in store order.
func (s *Store) FindByTitle(sub string) []Book {
	return s.filter(func(b Book) bool { return containsFold(b.Title, sub) })
}

// FindByAuthor returns all books whose author contains sub, ignoring case,
// in store order.
func (s *Store) FindByAuthor(sub string) []Book {
	return s.filter(func(b Book) bool { return containsFold(b.Author, sub) })
}

// FindByYear returns all books published in exactly the given year, in
// store order.
func (s *Store) FindByYear(year int) []Book {
	return s.filter(func(b Book) bool { return b.Year == year })
}

func (s *Store) filter(match func(Book) bool) []Book {
	var out []Book
	for _, b := range s.books {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) indexOf(id string) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
