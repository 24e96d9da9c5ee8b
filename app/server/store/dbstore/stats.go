package dbstore

import (
	"class-website/app/server/models"
	"class-website/app/server/types"
	"context"
	"fmt"
	"time"
)

func (s *Store) Stats(ctx context.Context) (*types.Stats, error) {
	stats := types.Stats{
		LastActivity: time.Now().UTC(),
	}

	db := s.db.WithContext(ctx)
	if err := db.Model(&models.GalleryItem{}).Count(&stats.Gallery).Error; err != nil {
		return nil, fmt.Errorf("failed to count gallery: %w", err)
	}
	if err := db.Model(&models.StructureMember{}).Count(&stats.Structure).Error; err != nil {
		return nil, fmt.Errorf("failed to count structure: %w", err)
	}
	if err := db.Model(&models.Confession{}).Count(&stats.Confessions).Error; err != nil {
		return nil, fmt.Errorf("failed to count confessions: %w", err)
	}

	return &stats, nil
}
