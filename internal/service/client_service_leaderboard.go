package service

import (
	"context"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/models"
)

const (
	defaultLeaderboardLimit = 20
	maxLeaderboardLimit     = 100
)

type clientLeaderboardService struct {
	adapter adapter.UserInfoAdapter
}

func NewClientLeaderboardService(userInfoAdapter adapter.UserInfoAdapter) ClientLeaderboardService {
	return &clientLeaderboardService{adapter: userInfoAdapter}
}

// GetLeaderboard clamps limit to (0, 100]; a non-positive limit means 20.
func (s *clientLeaderboardService) GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	switch {
	case limit <= 0:
		limit = defaultLeaderboardLimit
	case limit > maxLeaderboardLimit:
		limit = maxLeaderboardLimit
	}

	entries, err := s.adapter.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return entries, nil
}
