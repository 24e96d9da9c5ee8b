package filestore

import (
	"class-website/app/server/types"
	"context"
	"fmt"
	"time"
)

func (s *Store) Stats(_ context.Context) (*types.Stats, error) {
	gallery, err := s.gallery.read()
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery: %w", err)
	}
	structure, err := s.structure.read()
	if err != nil {
		return nil, fmt.Errorf("failed to read structure: %w", err)
	}
	confessions, err := s.confessions.read()
	if err != nil {
		return nil, fmt.Errorf("failed to read confessions: %w", err)
	}

	return &types.Stats{
		Gallery:      int64(len(gallery)),
		Structure:    int64(len(structure)),
		Confessions:  int64(len(confessions)),
		LastActivity: time.Now().UTC(),
	}, nil
}
