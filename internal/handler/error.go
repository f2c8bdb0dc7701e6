package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/middleware"
	"github.com/snnyvrz/bookshelf-api/internal/validation"
)

// Error kinds, recorded on the request for the access log.
const (
	KindMissingName              = "MissingName"
	KindReadPageExceedsPageCount = "ReadPageExceedsPageCount"
	KindNotFound                 = "NotFound"
	KindInvalidPayload           = "InvalidPayload"
	KindInternalInsertFailure    = "InternalInsertFailure"
	KindInternalListFailure      = "InternalListFailure"
	KindInternalFetchFailure     = "InternalFetchFailure"
	KindInternalUpdateFailure    = "InternalUpdateFailure"
	KindInternalDeleteFailure    = "InternalDeleteFailure"
	KindRouteNotFound            = "RouteNotFound"
	KindMethodNotAllowed         = "MethodNotAllowed"
)

const (
	msgCreated              = "Book added successfully"
	msgCreateMissingName    = "Failed to add book. Please provide the book name"
	msgCreateReadPage       = "Failed to add book. readPage must not be greater than pageCount"
	msgCreateFailed         = "Failed to add book"
	msgBookNotFound         = "Book not found"
	msgFetchFailed          = "Failed to fetch book"
	msgListFailed           = "Failed to fetch books"
	msgUpdated              = "Book updated successfully"
	msgUpdateMissingName    = "Failed to update book. Please provide the book name"
	msgUpdateReadPage       = "Failed to update book. readPage must not be greater than pageCount"
	msgUpdateNotFound       = "Failed to update book. Id not found"
	msgUpdateFailed         = "Failed to update book"
	msgDeleted              = "Book deleted successfully"
	msgDeleteNotFound       = "Failed to delete book. Id not found"
	msgDeleteFailed         = "Failed to delete book"
	msgInvalidPayload       = "invalid request body"
	msgRouteNotFound        = "the requested resource could not be found"
	msgMethodNotAllowedTmpl = "the %s method is not supported for this resource"
)

func writeError(c *gin.Context, status int, kind, message string) {
	writeErrorResponse(c, status, kind, validation.ErrorResponse{
		Status:  validation.StatusFail,
		Message: message,
		Errors:  nil,
	})
}

func writeErrorResponse(c *gin.Context, status int, kind string, resp validation.ErrorResponse) {
	c.Set(middleware.ErrorKindKey, kind)
	c.AbortWithStatusJSON(status, resp)
}

// rejectPayload maps a binding failure onto the documented error kinds. A
// missing name is reported before an oversized readPage.
func rejectPayload(c *gin.Context, berr *validation.BindError, missingName, readPageTooLarge string) {
	switch {
	case berr.Has("name", "required"):
		writeError(c, http.StatusBadRequest, KindMissingName, missingName)
	case berr.Has("readPage", "ltefield"):
		writeError(c, http.StatusBadRequest, KindReadPageExceedsPageCount, readPageTooLarge)
	default:
		writeErrorResponse(c, http.StatusBadRequest, KindInvalidPayload, berr.Response(msgInvalidPayload))
	}
}
