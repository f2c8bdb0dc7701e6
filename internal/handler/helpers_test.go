package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
	"github.com/snnyvrz/bookshelf-api/internal/validation"
)

type fakeBookRepo struct {
	CreateFn   func(ctx context.Context, b *model.Book) error
	ListFn     func(ctx context.Context, filter repository.BookFilter) ([]model.Book, error)
	FindByIDFn func(ctx context.Context, id string) (*model.Book, error)
	UpdateFn   func(ctx context.Context, b *model.Book) error
	DeleteFn   func(ctx context.Context, id string) error
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) List(ctx context.Context, filter repository.BookFilter) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrBookNotFound
}

func (f *fakeBookRepo) Update(ctx context.Context, b *model.Book) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

// fakeClock returns start, then advances by step on every call.
type fakeClock struct {
	next time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.next
	c.next = c.next.Add(c.step)
	return t
}

var clockStart = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBookHandler(repo repository.BookRepository) *BookHandler {
	h := NewBookHandler(repo, discardLogger())
	clock := &fakeClock{next: clockStart, step: time.Second}
	h.now = clock.Now
	return h
}

func setupRouterWithHandler(h *BookHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h.RegisterRoutes(r.Group(""))

	return r
}

func setupBookRouterWithRepo(repo repository.BookRepository) *gin.Engine {
	return setupRouterWithHandler(newTestBookHandler(repo))
}

func setupMemoryRouter(t *testing.T) (*gin.Engine, *repository.MemoryBookRepository) {
	t.Helper()

	repo := repository.NewMemoryBookRepository()
	return setupBookRouterWithRepo(repo), repo
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, _ := http.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Status != validation.StatusFail {
		t.Errorf("expected status %q, got %q", validation.StatusFail, resp.Status)
	}
	if resp.Message != message {
		t.Errorf("expected message %q, got %q", message, resp.Message)
	}
}

func bookPayload(name string, pageCount, readPage int, reading bool) map[string]any {
	return map[string]any{
		"name":      name,
		"year":      2010,
		"author":    "John Doe",
		"summary":   "Lorem ipsum dolor sit amet",
		"publisher": "Dicoding Indonesia",
		"pageCount": pageCount,
		"readPage":  readPage,
		"reading":   reading,
	}
}

func createBook(t *testing.T, router http.Handler, payload map[string]any) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/books", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[CreateBookResponse](t, w)
	if resp.Data.BookID == "" {
		t.Fatalf("expected bookId in response, got %s", w.Body.String())
	}
	return resp.Data.BookID
}
