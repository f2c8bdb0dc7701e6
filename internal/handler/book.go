package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
	"github.com/snnyvrz/bookshelf-api/internal/validation"
)

type BookHandler struct {
	repo  repository.BookRepository
	log   *slog.Logger
	newID func() (string, error)
	now   func() time.Time
}

func NewBookHandler(repo repository.BookRepository, log *slog.Logger) *BookHandler {
	return &BookHandler{
		repo:  repo,
		log:   log,
		newID: model.NewBookID,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
		books.POST("", h.CreateBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Add a book to the shelf. finished is derived from readPage == pageCount.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BookRequest               true  "Book to create"
// @Success      201      {object}  CreateBookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Missing name, readPage > pageCount or malformed body"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if berr := validation.BindJSON(c, &req); berr != nil {
		rejectPayload(c, berr, msgCreateMissingName, msgCreateReadPage)
		return
	}

	id, err := h.newID()
	if err != nil {
		h.serverError(c, KindInternalInsertFailure, msgCreateFailed, err)
		return
	}

	now := h.now()
	book := model.Book{
		ID:         id,
		Finished:   req.PageCount == req.ReadPage,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	req.applyTo(&book)

	ctx := c.Request.Context()

	if err := h.repo.Create(ctx, &book); err != nil {
		h.serverError(c, KindInternalInsertFailure, msgCreateFailed, err)
		return
	}

	created, err := h.repo.FindByID(ctx, book.ID)
	if err != nil {
		h.serverError(c, KindInternalInsertFailure, msgCreateFailed, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookResponse{
		Status:  validation.StatusSuccess,
		Message: msgCreated,
		Data:    CreatedBook{BookID: created.ID},
	})
}

// ListBooks godoc
// @Summary      List books
// @Description  List id, name and publisher of every book. At most one filter applies: reading, then finished, then name.
// @Tags         books
// @Produce      json
// @Param        reading   query     int     false  "1 for books being read, 0 for the rest"
// @Param        finished  query     int     false  "1 for finished books, 0 for the rest"
// @Param        name      query     string  false  "Case-insensitive substring of the book name"
// @Success      200       {object}  ListBooksResponse
// @Failure      500       {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.repo.List(c.Request.Context(), listFilterFromQuery(c))
	if err != nil {
		h.serverError(c, KindInternalListFailure, msgListFailed, err)
		return
	}

	summaries := make([]BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, toBookSummary(b))
	}

	c.JSON(http.StatusOK, ListBooksResponse{
		Status: validation.StatusSuccess,
		Data:   BookList{Books: summaries},
	})
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	book, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound, KindNotFound, msgBookNotFound)
			return
		}

		h.serverError(c, KindInternalFetchFailure, msgFetchFailed, err)
		return
	}

	c.JSON(http.StatusOK, BookResponse{
		Status: validation.StatusSuccess,
		Data:   BookData{Book: toBook(*book)},
	})
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Replace every field except id, insertedAt and finished. The payload is checked before the id is looked up.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Book ID"
// @Param        payload  body      BookRequest               true  "New book fields"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  validation.ErrorResponse  "Missing name, readPage > pageCount or malformed body"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req BookRequest
	if berr := validation.BindJSON(c, &req); berr != nil {
		rejectPayload(c, berr, msgUpdateMissingName, msgUpdateReadPage)
		return
	}

	ctx := c.Request.Context()

	book, err := h.repo.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound, KindNotFound, msgUpdateNotFound)
			return
		}

		h.serverError(c, KindInternalFetchFailure, msgUpdateFailed, err)
		return
	}

	// finished keeps the value derived at creation.
	req.applyTo(book)
	book.UpdatedAt = h.now()

	if err := h.repo.Update(ctx, book); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound, KindNotFound, msgUpdateNotFound)
			return
		}

		h.serverError(c, KindInternalUpdateFailure, msgUpdateFailed, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Status:  validation.StatusSuccess,
		Message: msgUpdated,
	})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound, KindNotFound, msgDeleteNotFound)
			return
		}

		h.serverError(c, KindInternalDeleteFailure, msgDeleteFailed, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Status:  validation.StatusSuccess,
		Message: msgDeleted,
	})
}

func (h *BookHandler) serverError(c *gin.Context, kind, message string, err error) {
	h.log.Error(message,
		slog.String("kind", kind),
		slog.String("error", err.Error()),
		slog.String("request_method", c.Request.Method),
		slog.String("request_url", c.Request.URL.String()),
	)
	writeError(c, http.StatusInternalServerError, kind, message)
}
