package dbstore

import (
	"class-website/app/server/models"
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
	"fmt"
	"time"
)

func confessionToType(row *models.Confession) types.Confession {
	return types.Confession{
		ID:        formatID(row.ID),
		Message:   row.Message,
		Timestamp: row.Timestamp,
	}
}

func (s *Store) ConfessionList(ctx context.Context) ([]types.Confession, error) {
	var rows []models.Confession
	if err := s.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list confessions: %w", err)
	}

	confessions := make([]types.Confession, 0, len(rows))
	for i := range rows {
		confessions = append(confessions, confessionToType(&rows[i]))
	}
	return confessions, nil
}

func (s *Store) ConfessionCreate(ctx context.Context, message string) (*types.Confession, error) {
	message, err := store.ConfessionMessage(message)
	if err != nil {
		return nil, err
	}

	row := models.Confession{
		Message:   message,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create confession: %w", err)
	}

	confession := confessionToType(&row)
	return &confession, nil
}

func (s *Store) ConfessionDelete(ctx context.Context, id string) error {
	rowID, err := parseID(id)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Unscoped().Delete(&models.Confession{}, rowID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete confession: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
