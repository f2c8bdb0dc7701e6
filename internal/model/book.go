package model

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const BookIDLength = 16

type Book struct {
	// Seq is assigned by the database on insert and orders books by
	// insertion. The memory store keeps order by position and leaves it zero.
	Seq        uint64 `gorm:"primaryKey;autoIncrement"`
	ID         string `gorm:"type:varchar(16);not null;uniqueIndex"`
	Name       string `gorm:"not null;index"`
	Year       int
	Author     string
	Summary    string
	Publisher  string
	PageCount  int
	ReadPage   int
	Reading    bool `gorm:"index"`
	Finished   bool `gorm:"index"`
	InsertedAt time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
}

// NewBookID returns a random URL-safe id of BookIDLength characters.
func NewBookID() (string, error) {
	return gonanoid.New(BookIDLength)
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID, err = NewBookID()
	}
	return
}
