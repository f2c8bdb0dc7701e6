package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	book.Seq = 0
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateBookID, book.ID)
		}
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *GormBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("find book %s: %w", id, err)
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})

	if filter.Reading != nil {
		q = q.Where("reading = ?", *filter.Reading)
	}
	if filter.Finished != nil {
		q = q.Where("finished = ?", *filter.Finished)
	}
	if filter.Name != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Name)) + "%"
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}

	books := []model.Book{}
	if err := q.Order("seq ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"name":       book.Name,
			"year":       book.Year,
			"author":     book.Author,
			"summary":    book.Summary,
			"publisher":  book.Publisher,
			"page_count": book.PageCount,
			"read_page":  book.ReadPage,
			"reading":    book.Reading,
			"finished":   book.Finished,
			"updated_at": book.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("update book %s: %w", book.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete book %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (r *GormBookRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
