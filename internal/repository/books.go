package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/snnyvrz/bookshelf-api/internal/model"
)

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrDuplicateBookID = errors.New("duplicate book id")
)

// BookRepository keeps books in insertion order. Implementations return
// copies, never references into their own storage.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id string) (*model.Book, error)
	List(ctx context.Context, filter BookFilter) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id string) error
}

// Pinger is implemented by repositories backed by an external database.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BookFilter constrains List. Zero-valued members match everything.
type BookFilter struct {
	Reading  *bool
	Finished *bool
	Name     string
}

func (f BookFilter) Matches(b model.Book) bool {
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	return true
}
