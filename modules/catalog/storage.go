package catalog

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// Storage loads catalog listings.
type Storage interface {
	ListBooks(ctx context.Context) ([]Book, error)
	ListStudents(ctx context.Context) ([]Student, error)
	ListLibrarians(ctx context.Context) ([]Librarian, error)
}

// MemoryStorage keeps the catalog in memory.
type MemoryStorage struct {
	mu         sync.RWMutex
	books      []Book
	students   []Student
	librarians []Librarian
}

// NewMemoryStorage returns a MemoryStorage holding copies of the given rows.
func NewMemoryStorage(books []Book, students []Student, librarians []Librarian) *MemoryStorage {
	return &MemoryStorage{
		books:      slices.Clone(books),
		students:   slices.Clone(students),
		librarians: slices.Clone(librarians),
	}
}

// NewSeededMemoryStorage returns a MemoryStorage holding the seed catalog.
func NewSeededMemoryStorage() *MemoryStorage {
	return NewMemoryStorage(SeedBooks(), SeedStudents(), SeedLibrarians())
}

// ListBooks returns the books ordered by title.
func (s *MemoryStorage) ListBooks(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := slices.Clone(s.books)
	s.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b Book) int { return strings.Compare(a.Title, b.Title) })
	return out, nil
}

// ListStudents returns the students ordered by name.
func (s *MemoryStorage) ListStudents(ctx context.Context) ([]Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := slices.Clone(s.students)
	s.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b Student) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// ListLibrarians returns the librarians ordered by name.
func (s *MemoryStorage) ListLibrarians(ctx context.Context) ([]Librarian, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := slices.Clone(s.librarians)
	s.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b Librarian) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// AddBook appends a book.
func (s *MemoryStorage) AddBook(b Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		b.ID = int64(len(s.books) + 1)
	}
	s.books = append(s.books, b)
}
