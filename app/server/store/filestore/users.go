package filestore

import (
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
	"fmt"
)

func (s *Store) UserGetByUsername(_ context.Context, username string) (*types.AdminUser, error) {
	users, err := s.users.read()
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UserCreate(_ context.Context, user *types.AdminUser) error {
	return s.users.mutate(func(users []types.AdminUser) ([]types.AdminUser, bool, error) {
		for i := range users {
			if users[i].Username == user.Username {
				return nil, false, fmt.Errorf("username %q already exists", user.Username)
			}
		}

		user.ID = newID()
		return append(users, *user), true, nil
	})
}
