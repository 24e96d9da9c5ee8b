package filestore

import (
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
)

func structureID(member *types.StructureMember) string { return member.ID }

func (s *Store) StructureList(_ context.Context) ([]types.StructureMember, error) {
	return s.structure.read()
}

func (s *Store) StructureCreate(_ context.Context, member *types.StructureMember) error {
	if err := store.ValidateStructureMember(member); err != nil {
		return err
	}

	return s.structure.mutate(func(records []types.StructureMember) ([]types.StructureMember, bool, error) {
		member.ID = newID()
		return append(records, *member), true, nil
	})
}

func (s *Store) StructureUpdate(_ context.Context, id string, patch *types.StructurePatch) (*types.StructureMember, error) {
	var updated types.StructureMember
	if err := s.structure.mutate(func(records []types.StructureMember) ([]types.StructureMember, bool, error) {
		i := indexOf(records, id, structureID)
		if i < 0 {
			return nil, false, store.ErrNotFound
		}

		member := records[i]
		patch.Apply(&member)
		if err := store.ValidateStructureMember(&member); err != nil {
			return nil, false, err
		}

		records[i] = member
		updated = member
		return records, true, nil
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *Store) StructureDelete(_ context.Context, id string) error {
	return s.structure.mutate(func(records []types.StructureMember) ([]types.StructureMember, bool, error) {
		i := indexOf(records, id, structureID)
		if i < 0 {
			return nil, false, store.ErrNotFound
		}
		return append(records[:i], records[i+1:]...), true, nil
	})
}
