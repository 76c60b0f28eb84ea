package database

import (
	"context"
	"fmt"

	"github.com/playmixer/autoparts/internal/adapters/store/model"
)

func (s *Store) CreateVinRequest(ctx context.Context, req *model.VinRequest) error {
	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("failed create vin request: %w", err)
	}

	return nil
}

func (s *Store) ListVinRequests(ctx context.Context) ([]*model.VinRequest, error) {
	requests := []*model.VinRequest{}
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed get vin requests: %w", err)
	}

	return requests, nil
}
