package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/libreria/apiserver/internal/services"
	"github.com/libreria/apiserver/internal/store"
	"github.com/libreria/apiserver/internal/validate"
	"github.com/libreria/apiserver/types"
	"go.uber.org/zap"
)

// BookHandler provides CRUD handlers for the catalog.
type BookHandler struct {
	bookService *services.BookService
	logger      *zap.Logger
}

// NewBookHandler constructs a handler with the provided service.
func NewBookHandler(bookService *services.BookService, logger *zap.Logger) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		logger:      logger,
	}
}

// BookRouter registers catalog routes on the given router. The caller
// mounts it behind the auth middleware; every route here is protected.
func BookRouter(r chi.Router, bookService *services.BookService, logger *zap.Logger) {
	handler := NewBookHandler(bookService, logger)

	r.Get("/", handler.ListBooks)
	r.Post("/", handler.CreateBook)
	r.Route("/{bookID}", func(r chi.Router) {
		r.Get("/", handler.GetBook)
		r.Put("/", handler.UpdateBook)
		r.Delete("/", handler.DeleteBook)
	})
}

func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list books")
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseBookID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	book, err := h.bookService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch book")
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	book, errs, err := parseBookPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	created, err := h.bookService.Create(r.Context(), book)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "a book with this isbn already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create book")
		return
	}

	h.logBookChange(r, "book created", created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseBookID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	book, errs, err := parseBookPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	updated, err := h.bookService.Update(r.Context(), id, book)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "book not found")
		case errors.Is(err, store.ErrConflict):
			writeError(w, http.StatusBadRequest, "a book with this isbn already exists")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update book")
		}
		return
	}

	h.logBookChange(r, "book updated", updated.ID)
	writeJSON(w, http.StatusOK, updated)
}

func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseBookID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.bookService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete book")
		return
	}

	h.logBookChange(r, "book deleted", id)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "book deleted successfully"})
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// BookUpsertRequest is the JSON payload for create and update.
type BookUpsertRequest struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	ISBN          string  `json:"isbn"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	Genre         string  `json:"genre"`
	PublishedYear int     `json:"publishedYear"`
}

func parseBookID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "bookID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid book id")
	}
	return id, nil
}

func parseBookPayload(r *http.Request) (types.Book, []validate.FieldError, error) {
	var req BookUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return types.Book{}, nil, err
	}

	book := types.Book{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Price:         req.Price,
		Stock:         req.Stock,
		Genre:         req.Genre,
		PublishedYear: req.PublishedYear,
	}
	return book, validate.Book(book), nil
}

func (h *BookHandler) logBookChange(r *http.Request, event string, bookID int) {
	fields := []zap.Field{zap.Int("book_id", bookID)}
	if claims, err := claimsFromContext(r.Context()); err == nil {
		fields = append(fields, zap.String("username", claims.Username))
	}
	h.logger.Info(event, fields...)
}
