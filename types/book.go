package types

import "time"

// Book represents a title in the bookstore catalog.
// JSON field names match the payloads the browser frontend exchanges
// with the API, so the book fields stay camelCase on the wire.
type Book struct {
	// ID is the unique identifier of the book. IDs are assigned from a
	// strictly monotonic counter and are never reused after deletion.
	ID int `json:"id"`

	// Title is the book's title.
	Title string `json:"title"`

	// Author is the book's author.
	Author string `json:"author"`

	// ISBN identifies the edition. No two books in the catalog may share
	// an ISBN at any point in time.
	ISBN string `json:"isbn"`

	// Price is the sale price. Must be >= 0.
	Price float64 `json:"price"`

	// Stock is the number of copies on hand. Must be >= 0.
	Stock int `json:"stock"`

	// Genre is the book's genre label.
	Genre string `json:"genre"`

	// PublishedYear is the year of publication, between 1000 and the
	// current calendar year.
	PublishedYear int `json:"publishedYear"`

	// CreatedAt is the timestamp at which the book was added.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the most recent update. Zero until
	// the book is first updated.
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
