package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool used by PGStorage.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PGStorage reads the catalog from PostgreSQL.
type PGStorage struct {
	db Querier
}

// NewPGStorage returns a PGStorage using db, usually a *pgxpool.Pool.
func NewPGStorage(db Querier) *PGStorage {
	return &PGStorage{db: db}
}

const (
	listBooksSQL    = `SELECT id, title, author, copies FROM books ORDER BY title, id`
	listStudentsSQL = `SELECT id, name, department, year FROM students ORDER BY name, id`

	listLibrariansSQL = `SELECT id, name, username, email, address, contact_no, join_date
		FROM librarians ORDER BY name, id`
)

func (s *PGStorage) ListBooks(ctx context.Context) ([]Book, error) {
	rows, err := s.db.Query(ctx, listBooksSQL)
	if err != nil {
		return nil, errors.Join(ErrListFailed, err)
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[Book])
	if err != nil {
		return nil, errors.Join(ErrListFailed, err)
	}
	return books, nil
}

func (s *PGStorage) ListStudents(ctx context.Context) ([]Student, error) {
	rows, err := s.db.Query(ctx, listStudentsSQL)
	if err != nil {
		return nil, errors.Join(ErrListFailed, err)
	}
	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[Student])
	if err != nil {
		return nil, errors.Join(ErrListFailed, err)
	}
	return students, nil
}

func (s *PGStorage) ListLibrarians(ctx context.Context) ([]Librarian, error) {
	rows, err := s.db.Query(ctx, listLibrariansSQL)
	if err != nil {
		return nil, errors.Join(ErrListFailed, err)
	}
	librarians, err := pgx.CollectRows(rows, pgx.RowToStructByName[Librarian])
	if err != nil {
		return nil, errors.Join(ErrListFailed, err)
	}
	return librarians, nil
}
