package dbstore

import (
	"class-website/app/server/models"
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
	"fmt"
	"gorm.io/gorm"
)

func structureToType(row *models.StructureMember) types.StructureMember {
	return types.StructureMember{
		ID:       formatID(row.ID),
		Position: row.Position,
		Name:     row.Name,
		Icon:     row.Icon,
		Level:    row.Level,
	}
}

func (s *Store) StructureList(ctx context.Context) ([]types.StructureMember, error) {
	var rows []models.StructureMember
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list structure: %w", err)
	}

	members := make([]types.StructureMember, 0, len(rows))
	for i := range rows {
		members = append(members, structureToType(&rows[i]))
	}
	return members, nil
}

func (s *Store) StructureCreate(ctx context.Context, member *types.StructureMember) error {
	if err := store.ValidateStructureMember(member); err != nil {
		return err
	}

	row := models.StructureMember{
		Position: member.Position,
		Name:     member.Name,
		Icon:     member.Icon,
		Level:    member.Level,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create structure member: %w", err)
	}

	member.ID = formatID(row.ID)
	return nil
}

func (s *Store) StructureUpdate(ctx context.Context, id string, patch *types.StructurePatch) (*types.StructureMember, error) {
	rowID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var member types.StructureMember
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.StructureMember
		if err := tx.First(&row, "id = ?", rowID).Error; err != nil {
			return err
		}

		member = structureToType(&row)
		patch.Apply(&member)
		if err := store.ValidateStructureMember(&member); err != nil {
			return err
		}

		row.Position = member.Position
		row.Name = member.Name
		row.Icon = member.Icon
		row.Level = member.Level
		return tx.Model(&row).Select("position", "name", "icon", "level").Updates(&row).Error
	}); err != nil {
		if _, ok := store.IsValidation(err); ok {
			return nil, err
		}
		return nil, dbErr(err, "update structure member")
	}

	return &member, nil
}

func (s *Store) StructureDelete(ctx context.Context, id string) error {
	rowID, err := parseID(id)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Unscoped().Delete(&models.StructureMember{}, rowID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete structure member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
