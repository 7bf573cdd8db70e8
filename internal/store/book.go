package store

import (
	"context"
	"sync"
	"time"

	"github.com/libreria/apiserver/types"
)

// BookStore holds the book catalog in process memory, in insertion order.
//
// IDs come from a strictly monotonic counter rather than the collection
// length, so an ID is never reassigned after its book is deleted.
type BookStore struct {
	mu     sync.Mutex
	books  []types.Book
	nextID int
}

func NewBookStore() *BookStore {
	return &BookStore{nextID: 1}
}

// List returns all books in insertion order.
func (s *BookStore) List(ctx context.Context) ([]types.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]types.Book, len(s.books))
	copy(books, s.books)
	return books, nil
}

func (s *BookStore) Get(ctx context.Context, id int) (types.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, book := range s.books {
		if book.ID == id {
			return book, nil
		}
	}
	return types.Book{}, ErrNotFound
}

// Create adds a book to the catalog. It fails with ErrConflict when a
// book with the same ISBN already exists.
func (s *BookStore) Create(ctx context.Context, book types.Book) (types.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.books {
		if existing.ISBN == book.ISBN {
			return types.Book{}, ErrConflict
		}
	}

	book.ID = s.nextID
	book.CreatedAt = time.Now()
	book.UpdatedAt = time.Time{}
	s.nextID++
	s.books = append(s.books, book)
	return book, nil
}

// Update replaces all mutable fields of the book with the given id and
// stamps UpdatedAt. It fails with ErrNotFound when the id is unknown and
// with ErrConflict when another book already holds the target ISBN.
func (s *BookStore) Update(ctx context.Context, id int, book types.Book) (types.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, existing := range s.books {
		if existing.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return types.Book{}, ErrNotFound
	}

	for _, existing := range s.books {
		if existing.ISBN == book.ISBN && existing.ID != id {
			return types.Book{}, ErrConflict
		}
	}

	current := s.books[index]
	current.Title = book.Title
	current.Author = book.Author
	current.ISBN = book.ISBN
	current.Price = book.Price
	current.Stock = book.Stock
	current.Genre = book.Genre
	current.PublishedYear = book.PublishedYear
	current.UpdatedAt = time.Now()
	s.books[index] = current
	return current, nil
}

// Delete removes the book with the given id permanently. Its id is
// never handed out again.
func (s *BookStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, book := range s.books {
		if book.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
