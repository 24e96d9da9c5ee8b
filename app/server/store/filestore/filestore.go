// Package filestore implements store.Store with one JSON file per collection.
package filestore

import (
	"class-website/app/server/store"
	"class-website/app/server/types"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"os"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	l *zap.Logger

	users       *collection[types.AdminUser]
	gallery     *collection[types.GalleryItem]
	structure   *collection[types.StructureMember]
	confessions *collection[types.Confession]
	settings    *collection[types.Settings]
}

func New(dir string, l *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	return &Store{
		l:           l,
		users:       newCollection[types.AdminUser](dir, "users.json"),
		gallery:     newCollection[types.GalleryItem](dir, "gallery.json"),
		structure:   newCollection[types.StructureMember](dir, "structure.json"),
		confessions: newCollection[types.Confession](dir, "confessions.json"),
		settings:    newCollection[types.Settings](dir, "settings.json"),
	}, nil
}

func (s *Store) Close() error {
	return nil
}

func newID() string {
	return uuid.NewString()
}

// indexOf 按 id 查找下标，未找到返回 -1
func indexOf[T any](records []T, id string, getID func(*T) string) int {
	for i := range records {
		if getID(&records[i]) == id {
			return i
		}
	}
	return -1
}
