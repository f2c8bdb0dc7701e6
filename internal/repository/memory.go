package repository

import (
	"context"
	"sync"

	"github.com/snnyvrz/bookshelf-api/internal/model"
)

// MemoryBookRepository is a process-local ordered list of books. Lookups are
// linear scans.
type MemoryBookRepository struct {
	mu    sync.RWMutex
	books []model.Book
}

func NewMemoryBookRepository() *MemoryBookRepository {
	return &MemoryBookRepository{}
}

func (r *MemoryBookRepository) Create(_ context.Context, book *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = append(r.books, *book)
	return nil
}

func (r *MemoryBookRepository) FindByID(_ context.Context, id string) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrBookNotFound
	}

	book := r.books[i]
	return &book, nil
}

func (r *MemoryBookRepository) List(_ context.Context, filter BookFilter) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		if filter.Matches(b) {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *MemoryBookRepository) Update(_ context.Context, book *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(book.ID)
	if i < 0 {
		return ErrBookNotFound
	}

	r.books[i] = *book
	return nil
}

func (r *MemoryBookRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrBookNotFound
	}

	r.books = append(r.books[:i], r.books[i+1:]...)
	return nil
}

// Len reports the number of stored books.
func (r *MemoryBookRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.books)
}

// indexOf must be called with r.mu held.
func (r *MemoryBookRepository) indexOf(id string) int {
	for i := range r.books {
		if r.books[i].ID == id {
			return i
		}
	}
	return -1
}
