package filestore

import (
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
	"slices"
	"time"
)

func confessionID(confession *types.Confession) string { return confession.ID }

// ConfessionList 文件中按插入顺序保存，倒序后再按时间稳定排序
func (s *Store) ConfessionList(_ context.Context) ([]types.Confession, error) {
	confessions, err := s.confessions.read()
	if err != nil {
		return nil, err
	}

	slices.Reverse(confessions)
	slices.SortStableFunc(confessions, func(a, b types.Confession) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return confessions, nil
}

func (s *Store) ConfessionCreate(_ context.Context, message string) (*types.Confession, error) {
	message, err := store.ConfessionMessage(message)
	if err != nil {
		return nil, err
	}

	confession := types.Confession{
		ID:        newID(),
		Message:   message,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := s.confessions.mutate(func(records []types.Confession) ([]types.Confession, bool, error) {
		return append(records, confession), true, nil
	}); err != nil {
		return nil, err
	}

	return &confession, nil
}

func (s *Store) ConfessionDelete(_ context.Context, id string) error {
	return s.confessions.mutate(func(records []types.Confession) ([]types.Confession, bool, error) {
		i := indexOf(records, id, confessionID)
		if i < 0 {
			return nil, false, store.ErrNotFound
		}
		return append(records[:i], records[i+1:]...), true, nil
	})
}
