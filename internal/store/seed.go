package store

import (
	"context"

	"github.com/libreria/apiserver/types"
)

// demoPasswordHash is the bcrypt hash of "password" (cost 10), used only
// for the demo accounts.
const demoPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// SeedDemoUsers loads the demo accounts shipped with the bookstore demo.
func SeedDemoUsers(ctx context.Context, s *UserStore) error {
	users := []types.User{
		{Username: "admin", Email: "admin@libreria.com", Role: types.RoleAdmin, PasswordHash: demoPasswordHash},
		{Username: "usuario", Email: "usuario@libreria.com", Role: types.RoleUser, PasswordHash: demoPasswordHash},
	}
	for _, user := range users {
		if _, err := s.Create(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoBooks loads the demo catalog shipped with the bookstore demo.
func SeedDemoBooks(ctx context.Context, s *BookStore) error {
	books := []types.Book{
		{
			Title:         "Don Quijote de la Mancha",
			Author:        "Miguel de Cervantes",
			ISBN:          "978-84-376-0494-7",
			Price:         25.99,
			Stock:         10,
			Genre:         "Novela",
			PublishedYear: 1605,
		},
		{
			Title:         "Cien años de soledad",
			Author:        "Gabriel García Márquez",
			ISBN:          "978-84-397-2077-7",
			Price:         22.50,
			Stock:         15,
			Genre:         "Realismo mágico",
			PublishedYear: 1967,
		},
		{
			Title:         "El Señor de los Anillos",
			Author:        "J.R.R. Tolkien",
			ISBN:          "978-84-450-7179-3",
			Price:         35.00,
			Stock:         8,
			Genre:         "Fantasía",
			PublishedYear: 1954,
		},
	}
	for _, book := range books {
		if _, err := s.Create(ctx, book); err != nil {
			return err
		}
	}
	return nil
}
