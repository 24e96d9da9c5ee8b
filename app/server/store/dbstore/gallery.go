package dbstore

import (
	"class-website/app/server/models"
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func galleryToType(row *models.GalleryItem) types.GalleryItem {
	return types.GalleryItem{
		ID:           formatID(row.ID),
		Filename:     row.Filename,
		OriginalName: row.OriginalName,
		Title:        row.Title,
		Description:  row.Description,
		Featured:     row.Featured,
		UploadDate:   row.UploadDate,
		Size:         row.Size,
		Mimetype:     row.Mimetype,
	}
}

func (s *Store) GalleryList(ctx context.Context) ([]types.GalleryItem, error) {
	var rows []models.GalleryItem
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}

	items := make([]types.GalleryItem, 0, len(rows))
	for i := range rows {
		items = append(items, galleryToType(&rows[i]))
	}
	return items, nil
}

func (s *Store) GalleryGet(ctx context.Context, id string) (*types.GalleryItem, error) {
	rowID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var row models.GalleryItem
	if err := s.db.WithContext(ctx).First(&row, "id = ?", rowID).Error; err != nil {
		return nil, dbErr(err, "get gallery item")
	}

	item := galleryToType(&row)
	return &item, nil
}

func (s *Store) GalleryCreate(ctx context.Context, items ...*types.GalleryItem) error {
	if err := store.ValidateGalleryBatch(items); err != nil {
		return err
	}

	filenames := make([]string, 0, len(items))
	for _, item := range items {
		filenames = append(filenames, item.Filename)
	}

	rows := make([]*models.GalleryItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, &models.GalleryItem{
			Filename:     item.Filename,
			OriginalName: item.OriginalName,
			Title:        item.Title,
			Description:  item.Description,
			Featured:     item.Featured,
			UploadDate:   item.UploadDate,
			Size:         item.Size,
			Mimetype:     item.Mimetype,
		})
	}

	// 同一个事务里插入，避免出现部分记录
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 唯一索引兜底，这里先查一次以便返回可读的错误
		var taken models.GalleryItem
		if err := tx.Where("filename IN ?", filenames).Limit(1).Find(&taken).Error; err != nil {
			return err
		} else if taken.ID != 0 {
			return store.FilenameTaken(taken.Filename)
		}

		for _, row := range rows {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		if _, ok := store.IsValidation(err); ok {
			return err
		}
		return fmt.Errorf("failed to create gallery items: %w", err)
	}

	for i, row := range rows {
		items[i].ID = formatID(row.ID)
	}
	return nil
}

func (s *Store) GalleryUpdate(ctx context.Context, id string, patch *types.GalleryPatch) (*types.GalleryItem, error) {
	rowID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var row models.GalleryItem
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "id = ?", rowID).Error; err != nil {
			return err
		}

		if patch.Title != nil {
			row.Title = *patch.Title
		}
		if patch.Description != nil {
			row.Description = *patch.Description
		}
		if patch.Featured != nil {
			row.Featured = *patch.Featured
		}

		// Select 保证 false 和空字符串也会被写入
		return tx.Model(&row).Select("title", "description", "featured").Updates(&row).Error
	}); err != nil {
		return nil, dbErr(err, "update gallery item")
	}

	item := galleryToType(&row)
	return &item, nil
}

func (s *Store) GalleryDelete(ctx context.Context, id string) (*types.GalleryItem, error) {
	rowID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var row models.GalleryItem
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "id = ?", rowID).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&models.GalleryItem{}, rowID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}); err != nil {
		return nil, dbErr(err, "delete gallery item")
	}

	s.l.Debug("gallery item deleted", zap.Uint("id", rowID), zap.String("filename", row.Filename))

	item := galleryToType(&row)
	return &item, nil
}
