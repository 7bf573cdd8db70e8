package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/libreria/apiserver/types"
)

// UserStore holds user accounts in process memory. Data lives for the
// lifetime of the process and resets on restart.
//
// All methods take the lock: net/http serves requests on separate
// goroutines, so the store enforces a single-writer discipline itself.
type UserStore struct {
	mu     sync.Mutex
	users  []types.User
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// Create stores a new user. It fails with ErrConflict when the username
// or the email is already taken.
func (s *UserStore) Create(ctx context.Context, user types.User) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, user.Username) || strings.EqualFold(existing.Email, user.Email) {
			return types.User{}, ErrConflict
		}
	}

	now := time.Now()
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.nextID++
	s.users = append(s.users, user)
	return user, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return types.User{}, ErrNotFound
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return types.User{}, ErrNotFound
}
