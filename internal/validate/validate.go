// Package validate applies declarative per-field constraint checks to
// inbound mutation payloads. Every violated rule is collected, so one
// response carries the full list of field errors instead of stopping at
// the first failure.
package validate

import (
	"net/mail"
	"strings"
	"time"

	"github.com/libreria/apiserver/types"
)

// MinPublishedYear is the oldest publication year the catalog accepts.
const MinPublishedYear = 1000

// Credential length requirements for registration.
const (
	MinUsernameLen = 3
	MinPasswordLen = 6
)

// FieldError describes one violated rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type check struct {
	field   string
	ok      bool
	message string
}

func run(checks []check) []FieldError {
	var errs []FieldError
	for _, c := range checks {
		if !c.ok {
			errs = append(errs, FieldError{Field: c.field, Message: c.message})
		}
	}
	return errs
}

// Book checks every catalog field rule and returns all violations.
func Book(book types.Book) []FieldError {
	currentYear := time.Now().Year()
	return run([]check{
		{"title", strings.TrimSpace(book.Title) != "", "title is required"},
		{"author", strings.TrimSpace(book.Author) != "", "author is required"},
		{"isbn", strings.TrimSpace(book.ISBN) != "", "isbn is required"},
		{"price", book.Price >= 0, "price must be a positive number"},
		{"stock", book.Stock >= 0, "stock must be a positive integer"},
		{"genre", strings.TrimSpace(book.Genre) != "", "genre is required"},
		{"publishedYear", book.PublishedYear >= MinPublishedYear && book.PublishedYear <= currentYear, "published year is invalid"},
	})
}

// Registration checks the registration payload rules and returns all
// violations.
func Registration(username, password, email string) []FieldError {
	return run([]check{
		{"username", len(strings.TrimSpace(username)) >= MinUsernameLen, "username must be at least 3 characters"},
		{"password", len(password) >= MinPasswordLen, "password must be at least 6 characters"},
		{"email", validEmail(email), "email is invalid"},
	})
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
