package jsonstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/garagehub/vehicle-service/internal/core/domain"
)

type UserStore struct {
	baseStore
	users []*domain.User
}

func NewUserStore(dataDir string) (*UserStore, error) {
	s := &UserStore{baseStore: baseStore{path: filepath.Join(dataDir, "users.json")}}

	err := readJSON(s.path, &s.users)
	if os.IsNotExist(err) {
		s.users = []*domain.User{
			{ID: 1, Name: "Admin", Email: "admin@garage.com", Role: domain.Admin},
			{ID: 2, Name: "John Smith", Email: "john@email.com", Role: domain.AppUser},
		}
		if err := writeJSON(s.path, s.users); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *UserStore) Upsert(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == user.ID {
			s.users[i] = user
			return writeJSON(s.path, s.users)
		}
	}
	s.users = append(s.users, user)
	return writeJSON(s.path, s.users)
}
