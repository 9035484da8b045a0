package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
)

var bookSortColumns = sortColumns{
	"id":         "id",
	"title":      "title",
	"author":     "author",
	"priceCents": "price_cents",
	"createdAt":  "created_at",
}

const bookColumns = `id, title, author, isbn, description, price_cents, genre_id, created_at, updated_at`

// PostgresBookStore implements store.BookStore.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a PostgresBookStore. It panics if db is nil.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

var _ store.BookStore = (*PostgresBookStore)(nil)

func scanBook(row interface{ Scan(...any) error }) (domain.Book, error) {
	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Description,
		&b.PriceCents, &b.GenreID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// Create implements store.BookStore.Create
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO books (title, author, isbn, description, price_cents, genre_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query,
		book.Title, book.Author, book.ISBN, book.Description, book.PriceCents, book.GenreID,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		log.Warn("failed to create book",
			slog.Int64("genre_id", book.GenreID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("book created", slog.Int64("book_id", book.ID))
	return nil
}

// GetByID implements store.BookStore.GetByID
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	b, err := scanBook(s.db.QueryRowContext(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBookNotFound
		}
		return nil, MapError(err)
	}
	return &b, nil
}

// GetByIDs implements store.BookStore.GetByIDs
func (s *PostgresBookStore) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Book, error) {
	books := make(map[int64]*domain.Book, len(ids))
	if len(ids) == 0 {
		return books, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE id IN (` + strings.Join(placeholders, ", ") + `)`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get books by id: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books[b.ID] = &b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

// List implements store.BookStore.List
func (s *PostgresBookStore) List(
	ctx context.Context,
	filter store.BookFilter,
	req pagination.Request,
) (pagination.Page[domain.Book], error) {
	where := ""
	var args []any
	if filter.GenreID != nil {
		where = ` WHERE genre_id = $1`
		args = append(args, *filter.GenreID)
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`+where, args...).Scan(&total); err != nil {
		return pagination.Page[domain.Book]{}, fmt.Errorf("count books: %w", MapError(err))
	}

	query := `SELECT ` + bookColumns + ` FROM books` + where + ` ` +
		bookSortColumns.orderBy(req.Sort, "title ASC", "id") + ` ` + limitOffset(len(args))
	rows, err := s.db.QueryContext(ctx, query, append(args, req.Size, req.Offset())...)
	if err != nil {
		return pagination.Page[domain.Book]{}, fmt.Errorf("list books: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var books []domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return pagination.Page[domain.Book]{}, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[domain.Book]{}, fmt.Errorf("iterate books: %w", err)
	}

	req.Sort = bookSortColumns.allowedSort(req.Sort)
	return pagination.New(books, req, total), nil
}

// Update implements store.BookStore.Update
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, description = $4, price_cents = $5, genre_id = $6,
		    updated_at = NOW()
		WHERE id = $7
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query,
		book.Title, book.Author, book.ISBN, book.Description, book.PriceCents, book.GenreID, book.ID,
	).Scan(&book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrBookNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to update book",
			slog.Int64("book_id", book.ID),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	return nil
}

// Delete implements store.BookStore.Delete
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to delete book",
			slog.Int64("book_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrBookNotFound)
}

// WithTx implements store.BookStore.WithTx
func (s *PostgresBookStore) WithTx(tx *sql.Tx) store.BookStore {
	return &PostgresBookStore{db: tx, logger: s.logger}
}
