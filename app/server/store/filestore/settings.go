package filestore

import (
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
)

// ensureSettings 在锁内调用，返回（可能新建的）单例和是否需要写回
func ensureSettings(records []types.Settings) ([]types.Settings, bool) {
	if len(records) > 0 {
		return records[:1], len(records) != 1
	}

	settings := types.DefaultSettings()
	settings.ID = newID()
	settings.LastUpdated = store.NextStamp(settings.LastUpdated)
	return []types.Settings{settings}, true
}

func (s *Store) SettingsGet(_ context.Context) (*types.Settings, error) {
	var settings types.Settings
	if err := s.settings.mutate(func(records []types.Settings) ([]types.Settings, bool, error) {
		records, changed := ensureSettings(records)
		settings = records[0]
		return records, changed, nil
	}); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (s *Store) SettingsPut(_ context.Context, patch *types.SettingsPatch) (*types.Settings, error) {
	var settings types.Settings
	if err := s.settings.mutate(func(records []types.Settings) ([]types.Settings, bool, error) {
		records, _ = ensureSettings(records)
		patch.Apply(&records[0])
		records[0].LastUpdated = store.NextStamp(records[0].LastUpdated)
		settings = records[0]
		return records, true, nil
	}); err != nil {
		return nil, err
	}

	return &settings, nil
}
