package filestore

import (
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
	"go.uber.org/zap"
)

func galleryID(item *types.GalleryItem) string { return item.ID }

func (s *Store) GalleryList(_ context.Context) ([]types.GalleryItem, error) {
	return s.gallery.read()
}

func (s *Store) GalleryGet(_ context.Context, id string) (*types.GalleryItem, error) {
	items, err := s.gallery.read()
	if err != nil {
		return nil, err
	}

	i := indexOf(items, id, galleryID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	return &items[i], nil
}

func (s *Store) GalleryCreate(_ context.Context, items ...*types.GalleryItem) error {
	if err := store.ValidateGalleryBatch(items); err != nil {
		return err
	}

	return s.gallery.mutate(func(records []types.GalleryItem) ([]types.GalleryItem, bool, error) {
		for _, item := range items {
			for i := range records {
				if records[i].Filename == item.Filename {
					return nil, false, store.FilenameTaken(item.Filename)
				}
			}
		}

		// 一次写回，要么全部落盘，要么都不落盘
		ids := make([]string, len(items))
		for i, item := range items {
			record := *item
			record.ID = newID()
			ids[i] = record.ID
			records = append(records, record)
		}
		for i, item := range items {
			item.ID = ids[i]
		}
		return records, true, nil
	})
}

func (s *Store) GalleryUpdate(_ context.Context, id string, patch *types.GalleryPatch) (*types.GalleryItem, error) {
	var updated types.GalleryItem
	if err := s.gallery.mutate(func(records []types.GalleryItem) ([]types.GalleryItem, bool, error) {
		i := indexOf(records, id, galleryID)
		if i < 0 {
			return nil, false, store.ErrNotFound
		}

		patch.Apply(&records[i])
		updated = records[i]
		return records, true, nil
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *Store) GalleryDelete(_ context.Context, id string) (*types.GalleryItem, error) {
	var deleted types.GalleryItem
	if err := s.gallery.mutate(func(records []types.GalleryItem) ([]types.GalleryItem, bool, error) {
		i := indexOf(records, id, galleryID)
		if i < 0 {
			return nil, false, store.ErrNotFound
		}

		deleted = records[i]
		return append(records[:i], records[i+1:]...), true, nil
	}); err != nil {
		return nil, err
	}

	s.l.Debug("gallery item deleted", zap.String("id", id), zap.String("filename", deleted.Filename))
	return &deleted, nil
}
