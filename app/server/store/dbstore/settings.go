package dbstore

import (
	"class-website/app/server/models"
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func settingsToType(row *models.Settings) *types.Settings {
	return &types.Settings{
		ID:              formatID(row.ID),
		SiteName:        row.SiteName,
		SiteTitle:       row.SiteTitle,
		SiteDescription: row.SiteDescription,
		WelcomeText:     row.WelcomeText,
		LastUpdated:     row.LastUpdated,
	}
}

// ensureSettings 保证单例存在，并发的首次读取依靠主键冲突只会插入一行
func ensureSettings(tx *gorm.DB) (*models.Settings, error) {
	defaults := types.DefaultSettings()
	row := models.Settings{
		Model:           gorm.Model{ID: models.SettingsID},
		SiteName:        defaults.SiteName,
		SiteTitle:       defaults.SiteTitle,
		SiteDescription: defaults.SiteDescription,
		WelcomeText:     defaults.WelcomeText,
		LastUpdated:     store.NextStamp(defaults.LastUpdated),
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}

	var current models.Settings
	if err := tx.First(&current, "id = ?", models.SettingsID).Error; err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &current, nil
}

func (s *Store) SettingsGet(ctx context.Context) (*types.Settings, error) {
	row, err := ensureSettings(s.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return settingsToType(row), nil
}

func (s *Store) SettingsPut(ctx context.Context, patch *types.SettingsPatch) (*types.Settings, error) {
	var result *types.Settings
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := ensureSettings(tx)
		if err != nil {
			return err
		}

		settings := settingsToType(row)
		patch.Apply(settings)

		row.SiteName = settings.SiteName
		row.SiteTitle = settings.SiteTitle
		row.SiteDescription = settings.SiteDescription
		row.WelcomeText = settings.WelcomeText
		row.LastUpdated = store.NextStamp(row.LastUpdated)
		if err := tx.Save(row).Error; err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		result = settingsToType(row)
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}
