package service

import (
	"context"
	"log"
	"strings"

	"github.com/limbo/dailydare/internal/repository"
	"github.com/limbo/dailydare/pkg/entity"
)

const (
	maxLeaderboardSize = 50
	maxNameQueryLen    = 64
)

type LeaderboardService struct {
	repo repository.ProfilesRepositoryI
}

func NewLeaderboardService(profilesRepo repository.ProfilesRepositoryI) *LeaderboardService {
	if profilesRepo == nil {
		log.Fatal("profiles repo is nil")
	}
	return &LeaderboardService{
		repo: profilesRepo,
	}
}

// Top lists best scorers. Limit outside 1..50 falls back to 50.
// A non-blank nameQuery narrows the board to matching names, ranked among themselves
func (ls *LeaderboardService) Top(ctx context.Context, limit int, nameQuery string) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 || limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}
	nameQuery = strings.TrimSpace(nameQuery)
	if r := []rune(nameQuery); len(r) > maxNameQueryLen {
		nameQuery = string(r[:maxNameQueryLen])
	}
	return ls.repo.Top(ctx, limit, nameQuery)
}
