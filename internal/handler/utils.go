package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
)

// listFilterFromQuery picks the single filter that applies to a list
// request: reading, then finished, then name.
func listFilterFromQuery(c *gin.Context) repository.BookFilter {
	if reading, ok := parseFlagQuery(c, "reading"); ok {
		return repository.BookFilter{Reading: &reading}
	}
	if finished, ok := parseFlagQuery(c, "finished"); ok {
		return repository.BookFilter{Finished: &finished}
	}
	if name := c.Query("name"); name != "" {
		return repository.BookFilter{Name: name}
	}
	return repository.BookFilter{}
}

// parseFlagQuery reads an integer-encoded flag. Only 1 is true, so any other
// integer selects the false side. ok is false when the key is absent or not an
// integer; listFilterFromQuery then moves on to the next filter rather than
// dropping filtering altogether.
func parseFlagQuery(c *gin.Context, key string) (value, ok bool) {
	s, present := c.GetQuery(key)
	if !present {
		return false, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return n == 1, true
}

func (r BookRequest) applyTo(b *model.Book) {
	b.Name = *r.Name
	b.Year = r.Year
	b.Author = r.Author
	b.Summary = r.Summary
	b.Publisher = r.Publisher
	b.PageCount = r.PageCount
	b.ReadPage = r.ReadPage
	b.Reading = r.Reading
}

func toBook(b model.Book) Book {
	return Book{
		ID:         b.ID,
		Name:       b.Name,
		Year:       b.Year,
		Author:     b.Author,
		Summary:    b.Summary,
		Publisher:  b.Publisher,
		PageCount:  b.PageCount,
		ReadPage:   b.ReadPage,
		Finished:   b.Finished,
		Reading:    b.Reading,
		InsertedAt: model.Timestamp{Time: b.InsertedAt},
		UpdatedAt:  model.Timestamp{Time: b.UpdatedAt},
	}
}

func toBookSummary(b model.Book) BookSummary {
	return BookSummary{
		ID:        b.ID,
		Name:      b.Name,
		Publisher: b.Publisher,
	}
}

func NotFound(c *gin.Context) {
	writeError(c, http.StatusNotFound, KindRouteNotFound, msgRouteNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	writeError(c, http.StatusMethodNotAllowed, KindMethodNotAllowed,
		fmt.Sprintf(msgMethodNotAllowedTmpl, c.Request.Method))
}
