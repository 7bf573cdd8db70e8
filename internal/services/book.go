package services

import (
	"context"

	"github.com/libreria/apiserver/types"
)

// BookRepository defines the catalog-store operations for books.
type BookRepository interface {
	List(ctx context.Context) ([]types.Book, error)
	Get(ctx context.Context, id int) (types.Book, error)
	Create(ctx context.Context, book types.Book) (types.Book, error)
	Update(ctx context.Context, id int, book types.Book) (types.Book, error)
	Delete(ctx context.Context, id int) error
}

// BookService encapsulates catalog use-cases.
type BookService struct {
	repo BookRepository
}

func NewBookService(repo BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) List(ctx context.Context) ([]types.Book, error) {
	return s.repo.List(ctx)
}

func (s *BookService) Get(ctx context.Context, id int) (types.Book, error) {
	return s.repo.Get(ctx, id)
}

func (s *BookService) Create(ctx context.Context, book types.Book) (types.Book, error) {
	return s.repo.Create(ctx, book)
}

func (s *BookService) Update(ctx context.Context, id int, book types.Book) (types.Book, error) {
	return s.repo.Update(ctx, id, book)
}

func (s *BookService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
