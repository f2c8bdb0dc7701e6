package handler

import (
	"github.com/snnyvrz/bookshelf-api/internal/model"
)

// BookRequest is the create and update payload. Name is a pointer so an
// absent name can be told apart from an empty one.
type BookRequest struct {
	Name      *string `json:"name" binding:"required" example:"Clean Code"`
	Year      int     `json:"year" example:"2008"`
	Author    string  `json:"author" example:"Robert C. Martin"`
	Summary   string  `json:"summary"`
	Publisher string  `json:"publisher" example:"Prentice Hall"`
	PageCount int     `json:"pageCount" example:"464"`
	ReadPage  int     `json:"readPage" binding:"ltefield=PageCount" example:"120"`
	Reading   bool    `json:"reading"`
}

type Book struct {
	ID         string          `json:"id" example:"Qbax5Oy7L8WKf74l"`
	Name       string          `json:"name"`
	Year       int             `json:"year"`
	Author     string          `json:"author"`
	Summary    string          `json:"summary"`
	Publisher  string          `json:"publisher"`
	PageCount  int             `json:"pageCount"`
	ReadPage   int             `json:"readPage"`
	Finished   bool            `json:"finished"`
	Reading    bool            `json:"reading"`
	InsertedAt model.Timestamp `json:"insertedAt" swaggertype:"string" example:"2024-03-01T09:30:00.000Z"`
	UpdatedAt  model.Timestamp `json:"updatedAt" swaggertype:"string" example:"2024-03-01T09:30:00.000Z"`
}

type BookData struct {
	Book Book `json:"book"`
}

type BookResponse struct {
	Status string   `json:"status" example:"success"`
	Data   BookData `json:"data"`
}

type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

type BookList struct {
	Books []BookSummary `json:"books"`
}

type ListBooksResponse struct {
	Status string   `json:"status" example:"success"`
	Data   BookList `json:"data"`
}

type CreatedBook struct {
	BookID string `json:"bookId" example:"Qbax5Oy7L8WKf74l"`
}

type CreateBookResponse struct {
	Status  string      `json:"status" example:"success"`
	Message string      `json:"message"`
	Data    CreatedBook `json:"data"`
}

type MessageResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}
