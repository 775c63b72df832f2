package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	mgr, err := NewManager(filepath.Join(dir, "catalog.json"), zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	return mgr
}

func TestAddBook(t *testing.T) {
	mgr := newTestManager(t)

	book, err := mgr.AddBook("Dune", "Herbert", 1965)
	require.NoError(t, err)
	assert.NotEmpty(t, book.ID)
	assert.Equal(t, StatusAvailable, book.Status)
}

func TestAddBookTrimsWhitespace(t *testing.T) {
	mgr := newTestManager(t)

	book, err := mgr.AddBook("  Dune  ", "  Herbert  ", 1965)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Herbert", book.Author)
}

func TestAddBookValidation(t *testing.T) {
	mgr := newTestManager(t)

	tests := []struct {
		name   string
		title  string
		author string
		year   int
	}{
		{"empty title", "", "Herbert", 1965},
		{"blank title", "   ", "Herbert", 1965},
		{"empty author", "Dune", "", 1965},
		{"zero year", "Dune", "Herbert", 0},
		{"negative year", "Dune", "Herbert", -100},
		{"future year", "Dune", "Herbert", time.Now().Year() + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mgr.AddBook(tt.title, tt.author, tt.year)
			assert.Error(t, err)
			assert.Empty(t, mgr.Books())
		})
	}
}

func TestAddBookAcceptsCurrentYear(t *testing.T) {
	mgr := newTestManager(t)

	_, err := mgr.AddBook("New Release", "Somebody", time.Now().Year())
	assert.NoError(t, err)
}

func TestNewManagerFailsOnCorruptCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	_, err := NewManager(path, zaptest.NewLogger(t).Sugar())
	var corrupt *CorruptDataError
	assert.ErrorAs(t, err, &corrupt)
}

func TestManagerPassThrough(t *testing.T) {
	mgr := newTestManager(t)

	book, err := mgr.AddBook("Dune", "Herbert", 1965)
	require.NoError(t, err)

	assert.Len(t, mgr.FindByTitle("dune"), 1)
	assert.Len(t, mgr.FindByAuthor("herbert"), 1)
	assert.Len(t, mgr.FindByYear(1965), 1)

	got, err := mgr.GetBook(book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, got)

	require.NoError(t, mgr.ChangeStatus(book.ID, StatusCheckedOut))
	assert.ErrorIs(t, mgr.ChangeStatus(book.ID, Status("bogus")), ErrInvalidStatus)

	require.NoError(t, mgr.DeleteBook(book.ID))
	assert.ErrorIs(t, mgr.DeleteBook(book.ID), ErrNotFound)
}
