package service_test

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/pkg/entity"
)

// memProfiles is an in-memory profile store with the same version check as postgres
type memProfiles struct {
	mu        sync.Mutex
	data      map[uuid.UUID]*entity.Profile
	writes    int
	conflicts int
	// Runs after every read, outside the lock
	afterGet func()
}

func newMemProfiles() *memProfiles {
	return &memProfiles{data: map[uuid.UUID]*entity.Profile{}}
}

func (m *memProfiles) Create(ctx context.Context, profile *entity.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[profile.UserID]; ok {
		return errorvalues.ErrProfileExists
	}
	profile.Version = 0
	m.data[profile.UserID] = profile.Clone()
	return nil
}

func (m *memProfiles) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	m.mu.Lock()
	stored, ok := m.data[uid]
	var p *entity.Profile
	if ok {
		p = stored.Clone()
	}
	hook := m.afterGet
	m.mu.Unlock()
	if hook != nil {
		hook()
	}
	if !ok {
		return nil, errorvalues.ErrProfileNotFound
	}
	return p, nil
}

func (m *memProfiles) Update(ctx context.Context, profile *entity.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.data[profile.UserID]
	if !ok || stored.Version != profile.Version {
		m.conflicts++
		return errorvalues.ErrVersionConflict
	}
	profile.Version++
	m.data[profile.UserID] = profile.Clone()
	m.writes++
	return nil
}

func (m *memProfiles) Top(ctx context.Context, limit int, _ string) ([]entity.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]entity.LeaderboardEntry, 0)
	for _, p := range m.data {
		if p.Score > 0 {
			entries = append(entries, entity.LeaderboardEntry{UserID: p.UserID, Score: p.Score, DaresCompleted: p.DaresCompletedCount})
		}
	}
	slices.SortFunc(entries, func(a, b entity.LeaderboardEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// get returns stored copy, panics on unknown user
func (m *memProfiles) get(uid uuid.UUID) *entity.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[uid].Clone()
}

// set edits stored profile bypassing versioning, as another process would have done earlier
func (m *memProfiles) set(uid uuid.UUID, fn func(p *entity.Profile)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.data[uid])
}

func (m *memProfiles) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

type memDares struct {
	mu    sync.Mutex
	dares []entity.Dare
}

func newMemDares(dares []entity.Dare) *memDares {
	m := &memDares{}
	m.ReplaceAll(context.Background(), dares)
	return m
}

func (m *memDares) ListByDifficulty(ctx context.Context, difficulty entity.Difficulty) ([]entity.Dare, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Dare, 0)
	for _, d := range m.dares {
		if d.Difficulty == difficulty {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDares) List(ctx context.Context) ([]entity.Dare, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.dares), nil
}

func (m *memDares) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.dares), nil
}

func (m *memDares) ReplaceAll(ctx context.Context, dares []entity.Dare) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dares = make([]entity.Dare, 0, len(dares))
	for _, d := range dares {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		m.dares = append(m.dares, d)
	}
	return nil
}

func (m *memDares) byTitle(title string) entity.Dare {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.dares {
		if d.Title == title {
			return d
		}
	}
	panic("no dare titled " + title)
}
