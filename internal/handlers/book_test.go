package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/libreria/apiserver/internal/auth"
	"github.com/libreria/apiserver/internal/services"
	"github.com/libreria/apiserver/internal/store"
	"github.com/libreria/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookFixture struct {
	router *chi.Mux
	books  *store.BookStore
	token  string
}

func newBookFixture(t *testing.T) *bookFixture {
	t.Helper()

	books := store.NewBookStore()
	issuer := auth.NewIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(types.User{ID: 1, Username: "alice", Role: types.RoleUser})
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Route("/library/books", func(r chi.Router) {
		r.Use(RequireAuth(issuer))
		BookRouter(r, services.NewBookService(books), zap.NewNop())
	})

	return &bookFixture{router: router, books: books, token: token}
}

func (f *bookFixture) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func bookPayload(isbn string) map[string]any {
	return map[string]any{
		"title":         "T",
		"author":        "A",
		"isbn":          isbn,
		"price":         9.99,
		"stock":         3,
		"genre":         "G",
		"publishedYear": 2000,
	}
}

func TestBooks_RequireAuth(t *testing.T) {
	f := newBookFixture(t)

	seeded, err := f.books.Create(context.Background(), types.Book{
		Title: "T", Author: "A", ISBN: "978-1", Price: 1, Stock: 1, Genre: "G", PublishedYear: 2000,
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"invalid token", "not-a-token", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, route := range []struct {
				method string
				path   string
			}{
				{http.MethodGet, "/library/books"},
				{http.MethodGet, "/library/books/1"},
				{http.MethodPost, "/library/books"},
				{http.MethodPut, "/library/books/1"},
				{http.MethodDelete, "/library/books/1"},
			} {
				rec := f.do(t, route.method, route.path, tt.token, bookPayload("978-2"))
				assert.Equal(t, tt.status, rec.Code, "%s %s", route.method, route.path)
			}
		})
	}

	// Rejected requests never reached the store.
	books, err := f.books.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, seeded, books[0])
}

func TestBooks_CreateAndGet(t *testing.T) {
	f := newBookFixture(t)

	rec := f.do(t, http.MethodPost, "/library/books", f.token, bookPayload("123"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created types.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "T", created.Title)
	assert.Equal(t, "123", created.ISBN)
	assert.Equal(t, 9.99, created.Price)
	assert.False(t, created.CreatedAt.IsZero())

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/library/books/%d", created.ID), f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched types.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.ISBN, fetched.ISBN)
}

func TestBooks_Create_DuplicateISBN(t *testing.T) {
	f := newBookFixture(t)

	rec := f.do(t, http.MethodPost, "/library/books", f.token, bookPayload("123"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/library/books", f.token, bookPayload("123"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "isbn")
}

func TestBooks_Create_ValidationAggregates(t *testing.T) {
	f := newBookFixture(t)

	payload := bookPayload("123")
	payload["title"] = ""
	payload["price"] = -1
	payload["publishedYear"] = 500

	rec := f.do(t, http.MethodPost, "/library/books", f.token, payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 3)

	fields := make([]string, len(resp.Errors))
	for i, e := range resp.Errors {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{"title", "price", "publishedYear"}, fields)
}

func TestBooks_List(t *testing.T) {
	f := newBookFixture(t)

	for _, isbn := range []string{"1", "2"} {
		rec := f.do(t, http.MethodPost, "/library/books", f.token, bookPayload(isbn))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := f.do(t, http.MethodGet, "/library/books", f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var books []types.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	require.Len(t, books, 2)
	assert.Equal(t, "1", books[0].ISBN)
	assert.Equal(t, "2", books[1].ISBN)
}

func TestBooks_Update(t *testing.T) {
	f := newBookFixture(t)

	rec := f.do(t, http.MethodPost, "/library/books", f.token, bookPayload("123"))
	require.Equal(t, http.StatusCreated, rec.Code)

	payload := bookPayload("123")
	payload["title"] = "Updated"
	payload["stock"] = 7

	rec = f.do(t, http.MethodPut, "/library/books/1", f.token, payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated types.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, 7, updated.Stock)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestBooks_Update_Failures(t *testing.T) {
	f := newBookFixture(t)

	rec := f.do(t, http.MethodPost, "/library/books", f.token, bookPayload("123"))
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = f.do(t, http.MethodPost, "/library/books", f.token, bookPayload("456"))
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("unknown id", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/library/books/99", f.token, bookPayload("789"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("isbn held by another book", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/library/books/2", f.token, bookPayload("123"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBooks_Delete(t *testing.T) {
	f := newBookFixture(t)

	rec := f.do(t, http.MethodPost, "/library/books", f.token, bookPayload("123"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodDelete, "/library/books/1", f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")

	rec = f.do(t, http.MethodGet, "/library/books/1", f.token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodDelete, "/library/books/1", f.token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A new book never takes over the deleted id.
	rec = f.do(t, http.MethodDelete, "/library/books/abc", f.token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/library/books", f.token, bookPayload("456"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created types.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 2, created.ID)
}
