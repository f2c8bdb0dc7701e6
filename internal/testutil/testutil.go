package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookshelf-api/internal/db"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"gorm.io/gorm"
)

// NewTestDB returns a migrated, private in-memory SQLite database that is
// closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := db.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close(gdb)
	})

	return gdb
}

// NewBook builds a book the way the create endpoint would, with insertedAt
// offset from a fixed base so store order is deterministic.
func NewBook(t *testing.T, name, publisher string, pageCount, readPage int, reading bool, offset time.Duration) model.Book {
	t.Helper()

	id, err := model.NewBookID()
	if err != nil {
		t.Fatalf("failed to generate book id: %v", err)
	}

	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(offset)

	return model.Book{
		ID:         id,
		Name:       name,
		Year:       2020,
		Author:     "Some Author",
		Summary:    "Some summary",
		Publisher:  publisher,
		PageCount:  pageCount,
		ReadPage:   readPage,
		Reading:    reading,
		Finished:   pageCount == readPage,
		InsertedAt: at,
		UpdatedAt:  at,
	}
}

// SeedBook writes book straight into gdb.
func SeedBook(t *testing.T, gdb *gorm.DB, book model.Book) model.Book {
	t.Helper()

	if err := gdb.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", book.Name, err)
	}

	return book
}
