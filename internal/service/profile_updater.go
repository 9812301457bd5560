package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/internal/metrics"
	"github.com/limbo/dailydare/internal/repository"
	"github.com/limbo/dailydare/pkg/entity"
)

const (
	DailyRerollTokens = 2
	maxUpdateAttempts = 5
)

// errNoChange returned from a mutation means the loaded profile is already in the wanted state
var errNoChange = errors.New("profile unchanged")

// mutation edits a private copy of the profile. It may run several times, once per attempt
type mutation func(p *entity.Profile) error

// profileUpdater runs read-modify-write cycles on profiles guarded by the version column
type profileUpdater struct {
	repo  repository.ProfilesRepositoryI
	clock Clock
}

// load returns the stored profile. Missing profile is created when create is set
func (pu *profileUpdater) load(ctx context.Context, uid uuid.UUID, create bool) (*entity.Profile, error) {
	profile, err := pu.repo.GetByUserID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, errorvalues.ErrProfileNotFound) || !create {
		return nil, err
	}
	profile = entity.NewProfile(uid, DailyRerollTokens, pu.clock.Now().UTC().Truncate(time.Microsecond))
	err = pu.repo.Create(ctx, profile)
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, errorvalues.ErrProfileExists):
		// Somebody created it in between
		return pu.repo.GetByUserID(ctx, uid)
	default:
		return nil, fmt.Errorf("creating profile: %w", err)
	}
}

// update applies fn and writes the result conditioned on the version it was read at.
// On conflict the whole cycle repeats with a fresh read. Returns the stored profile and whether it was written
func (pu *profileUpdater) update(ctx context.Context, op string, uid uuid.UUID, create bool, fn mutation) (*entity.Profile, bool, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		profile, err := pu.load(ctx, uid, create)
		if err != nil {
			return nil, false, err
		}
		next := profile.Clone()
		err = fn(next)
		if errors.Is(err, errNoChange) {
			return profile, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		err = pu.repo.Update(ctx, next)
		if err == nil {
			return next, true, nil
		}
		if !errors.Is(err, errorvalues.ErrVersionConflict) {
			return nil, false, fmt.Errorf("saving profile: %w", err)
		}
		metrics.VersionConflicts.WithLabelValues(op).Inc()
		slog.Debug("profile version conflict",
			slog.String("op", op),
			slog.String("uid", uid.String()),
			slog.Int("attempt", attempt),
		)
	}
	return nil, false, errorvalues.ErrTooManyConflicts
}
