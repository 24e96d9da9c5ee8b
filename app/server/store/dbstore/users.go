package dbstore

import (
	"class-website/app/server/models"
	"class-website/app/server/types"
	"context"
	"fmt"
)

func (s *Store) UserGetByUsername(ctx context.Context, username string) (*types.AdminUser, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, dbErr(err, "find user")
	}

	return &types.AdminUser{
		ID:           formatID(user.ID),
		Username:     user.Username,
		PasswordHash: user.Password,
		Role:         user.Role,
	}, nil
}

func (s *Store) UserCreate(ctx context.Context, user *types.AdminUser) error {
	row := models.User{
		Username: user.Username,
		Password: user.PasswordHash,
		Role:     user.Role,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = formatID(row.ID)
	return nil
}
