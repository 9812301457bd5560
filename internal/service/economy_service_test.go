package service_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/internal/repository/mocks"
	"github.com/limbo/dailydare/internal/service"
	"github.com/limbo/dailydare/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var morning = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type engine struct {
	es      *service.EconomyService
	store   *memProfiles
	catalog *memDares
	clock   *service.FakeClock
}

func newEngine(t *testing.T, seed uint64) *engine {
	t.Helper()
	e := &engine{
		store:   newMemProfiles(),
		catalog: newMemDares(service.InitialDares()),
		clock:   service.NewFakeClock(morning),
	}
	e.es = service.NewEconomyService(e.store, e.catalog,
		service.WithClock(e.clock),
		service.WithRand(rand.New(rand.NewPCG(seed, seed+1))),
	)
	return e
}

// assigned returns today's dare of given difficulty
func assigned(t *testing.T, dares []entity.AssignedDare, d entity.Difficulty) entity.AssignedDare {
	t.Helper()
	for _, a := range dares {
		if a.Difficulty == d {
			return a
		}
	}
	t.Fatalf("no %s dare assigned", d)
	return entity.AssignedDare{}
}

func TestAssignDailyDares(t *testing.T) {
	ctx := context.Background()

	t.Run("one dare per difficulty with fresh tokens", func(t *testing.T) {
		e := newEngine(t, 1)
		uid := uuid.New()
		dares, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		require.Len(t, dares, 3)
		for i, d := range entity.Difficulties {
			assert.Equal(t, d, dares[i].Difficulty)
			assert.Equal(t, entity.Day("2025-06-01"), dares[i].AssignedDate)
			assert.False(t, dares[i].Completed)
		}
		p := e.store.get(uid)
		assert.Equal(t, service.DailyRerollTokens, p.RerollTokens)
		assert.Equal(t, entity.Day("2025-06-01"), p.LastDareAssignment)
	})

	t.Run("same day call returns same dares without writing", func(t *testing.T) {
		e := newEngine(t, 2)
		uid := uuid.New()
		first, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		writes := e.store.writeCount()

		e.clock.Advance(10 * time.Hour)
		second, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, writes, e.store.writeCount())
	})

	t.Run("new day resets tokens and list", func(t *testing.T) {
		e := newEngine(t, 3)
		uid := uuid.New()
		first, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		_, err = e.es.RerollDare(ctx, uid, assigned(t, first, entity.DifficultyEasy).DareID)
		require.NoError(t, err)
		_, err = e.es.CompleteDare(ctx, uid, assigned(t, first, entity.DifficultyHard).DareID, 30, false)
		require.NoError(t, err)
		require.Equal(t, 1, e.store.get(uid).RerollTokens)

		e.clock.Advance(24 * time.Hour)
		second, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		require.Len(t, second, 3)
		for _, d := range second {
			assert.Equal(t, entity.Day("2025-06-02"), d.AssignedDate)
			assert.False(t, d.Completed)
		}
		p := e.store.get(uid)
		assert.Equal(t, service.DailyRerollTokens, p.RerollTokens)
		assert.Equal(t, 30, p.Score)
		assert.Equal(t, 1, p.DaresCompletedCount)
	})

	t.Run("day boundary follows caller zone", func(t *testing.T) {
		e := newEngine(t, 4)
		e.clock.Set(time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC))
		uid := uuid.New()
		_, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)

		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		dares, err := e.es.AssignDailyDares(service.WithLocation(ctx, tokyo), uid)
		require.NoError(t, err)
		assert.Equal(t, entity.Day("2025-06-02"), dares[0].AssignedDate)
	})

	t.Run("interests narrow the pick", func(t *testing.T) {
		for seed := range uint64(10) {
			e := newEngine(t, seed)
			uid := uuid.New()
			require.NoError(t, e.store.Create(ctx, entity.NewProfile(uid, 0, morning)))
			e.store.set(uid, func(p *entity.Profile) { p.Interests = []string{"Fitness"} })

			dares, err := e.es.AssignDailyDares(ctx, uid)
			require.NoError(t, err)
			assert.Equal(t, "5-Minute Plank Challenge", assigned(t, dares, entity.DifficultyEasy).Title)
			// No medium dare matches, any of them will do
			assert.Equal(t, entity.DifficultyMedium, assigned(t, dares, entity.DifficultyMedium).Difficulty)
		}
	})

	t.Run("empty tiers are skipped", func(t *testing.T) {
		e := newEngine(t, 5)
		require.NoError(t, e.catalog.ReplaceAll(ctx, service.InitialDares()[:3]))
		dares, err := e.es.AssignDailyDares(ctx, uuid.New())
		require.NoError(t, err)
		require.Len(t, dares, 1)
		assert.Equal(t, entity.DifficultyEasy, dares[0].Difficulty)
	})

	t.Run("empty catalog leaves profile unassigned", func(t *testing.T) {
		e := newEngine(t, 6)
		require.NoError(t, e.catalog.ReplaceAll(ctx, nil))
		uid := uuid.New()
		dares, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		assert.Empty(t, dares)
		writes := e.store.writeCount()

		_, err = e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, writes, e.store.writeCount())

		require.NoError(t, e.catalog.ReplaceAll(ctx, service.InitialDares()))
		dares, err = e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, dares, 3)
	})
}

func TestCompleteDare(t *testing.T) {
	ctx := context.Background()

	t.Run("awards points once", func(t *testing.T) {
		e := newEngine(t, 7)
		uid := uuid.New()
		dares, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		easy := assigned(t, dares, entity.DifficultyEasy)

		res, err := e.es.CompleteDare(ctx, uid, easy.DareID, easy.Points, false)
		require.NoError(t, err)
		assert.Equal(t, easy.Points, res.Score)
		assert.Equal(t, 1, res.DaresCompletedCount)
		assert.False(t, res.Bonus)

		_, err = e.es.CompleteDare(ctx, uid, easy.DareID, easy.Points, false)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyCompleted)
		p := e.store.get(uid)
		assert.Equal(t, easy.Points, p.Score)
		assert.Equal(t, 1, p.DaresCompletedCount)
		assert.True(t, p.DailyDares[p.DareIndex(easy.DareID)].Completed)
	})

	t.Run("bonus dares are not tracked", func(t *testing.T) {
		e := newEngine(t, 8)
		uid := uuid.New()
		_, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		before := e.store.get(uid)

		res, err := e.es.CompleteDare(ctx, uid, "ai_1717232400000", 75, false)
		require.NoError(t, err)
		assert.True(t, res.Bonus)
		_, err = e.es.CompleteDare(ctx, uid, "ai_1717232400000", 75, true)
		require.NoError(t, err)

		after := e.store.get(uid)
		assert.Equal(t, 150, after.Score)
		assert.Equal(t, 2, after.DaresCompletedCount)
		assert.Equal(t, before.DailyDares, after.DailyDares)
	})

	t.Run("distinct bonus dares accumulate", func(t *testing.T) {
		e := newEngine(t, 20)
		uid := uuid.New()
		_, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		before := e.store.get(uid)

		for i, id := range []string{"ai_1748768400000", "ai_1748768460000", "ai_1748768520000"} {
			res, err := e.es.CompleteDare(ctx, uid, id, 25, true)
			require.NoError(t, err)
			assert.True(t, res.Bonus)
			assert.Equal(t, 25*(i+1), res.Score)
			assert.Equal(t, i+1, res.DaresCompletedCount)
		}
		after := e.store.get(uid)
		assert.Equal(t, 75, after.Score)
		assert.Equal(t, 3, after.DaresCompletedCount)
		assert.Equal(t, before.DailyDares, after.DailyDares)
	})

	t.Run("rejections", func(t *testing.T) {
		e := newEngine(t, 9)
		uid := uuid.New()
		dares, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		easy := assigned(t, dares, entity.DifficultyEasy)

		_, err = e.es.CompleteDare(ctx, uid, uuid.NewString(), 5, false)
		assert.ErrorIs(t, err, errorvalues.ErrDareNotAssigned)
		_, err = e.es.CompleteDare(ctx, uid, easy.DareID, 0, false)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidPoints)
		_, err = e.es.CompleteDare(ctx, uid, easy.DareID, service.MaxAwardPoints+1, false)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidPoints)
		_, err = e.es.CompleteDare(ctx, uuid.New(), easy.DareID, 5, false)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)

		e.clock.Advance(24 * time.Hour)
		_, err = e.es.CompleteDare(ctx, uid, easy.DareID, 5, false)
		assert.ErrorIs(t, err, errorvalues.ErrDareNotAssigned)
		assert.Zero(t, e.store.get(uid).Score)
	})

	t.Run("concurrent completions both land", func(t *testing.T) {
		e := newEngine(t, 10)
		uid := uuid.New()
		dares, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		easy := assigned(t, dares, entity.DifficultyEasy)
		hard := assigned(t, dares, entity.DifficultyHard)

		// Both callers read the same version before either writes
		var reads atomic.Int32
		barrier := make(chan struct{})
		e.store.afterGet = func() {
			n := reads.Add(1)
			if n == 2 {
				close(barrier)
			}
			if n <= 2 {
				<-barrier
			}
		}

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, d := range []entity.AssignedDare{easy, hard} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = e.es.CompleteDare(ctx, uid, d.DareID, d.Points, false)
			}()
		}
		wg.Wait()
		require.NoError(t, errs[0])
		require.NoError(t, errs[1])

		p := e.store.get(uid)
		assert.Equal(t, easy.Points+hard.Points, p.Score)
		assert.Equal(t, 2, p.DaresCompletedCount)
		assert.True(t, p.DailyDares[p.DareIndex(easy.DareID)].Completed)
		assert.True(t, p.DailyDares[p.DareIndex(hard.DareID)].Completed)
		assert.Equal(t, 1, e.store.conflicts)
	})
}

func TestRerollDare(t *testing.T) {
	ctx := context.Background()

	t.Run("tokens first then points", func(t *testing.T) {
		e := newEngine(t, 11)
		uid := uuid.New()
		dares, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		e.store.set(uid, func(p *entity.Profile) { p.Score = 60 })
		current := assigned(t, dares, entity.DifficultyEasy).DareID

		for _, want := range []struct {
			payment service.PaymentKind
			tokens  int
			score   int
		}{
			{service.PaymentToken, 1, 60},
			{service.PaymentToken, 0, 60},
			{service.PaymentPoints, 0, 10},
		} {
			res, err := e.es.RerollDare(ctx, uid, current)
			require.NoError(t, err)
			assert.Equal(t, want.payment, res.Payment)
			assert.Equal(t, want.tokens, res.RerollTokens)
			assert.Equal(t, want.score, res.Score)
			assert.Equal(t, entity.DifficultyEasy, res.Dare.Difficulty)
			assert.NotEqual(t, current, res.Dare.DareID)
			assert.Contains(t, res.Message, res.Dare.Title)
			current = res.Dare.DareID
		}

		before := e.store.get(uid)
		_, err = e.es.RerollDare(ctx, uid, current)
		assert.ErrorIs(t, err, errorvalues.ErrInsufficientCurrency)
		assert.Equal(t, before, e.store.get(uid))
	})

	t.Run("never picks a dare already in the list", func(t *testing.T) {
		e := newEngine(t, 12)
		uid := uuid.New()
		dares, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		medium := assigned(t, dares, entity.DifficultyMedium)
		e.store.set(uid, func(p *entity.Profile) { p.RerollTokens = 10 })

		current := medium.DareID
		for range 5 {
			res, err := e.es.RerollDare(ctx, uid, current)
			require.NoError(t, err)
			assert.NotEqual(t, current, res.Dare.DareID)
			current = res.Dare.DareID
			p := e.store.get(uid)
			seen := map[string]bool{}
			for _, d := range p.DailyDares {
				assert.False(t, seen[d.DareID], "duplicate dare %s", d.DareID)
				seen[d.DareID] = true
			}
		}
	})

	t.Run("exhausted tier costs nothing", func(t *testing.T) {
		e := newEngine(t, 13)
		uid := uuid.New()
		dares, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		before := e.store.get(uid)

		_, err = e.es.RerollDare(ctx, uid, assigned(t, dares, entity.DifficultyHard).DareID)
		assert.ErrorIs(t, err, errorvalues.ErrCatalogExhausted)
		assert.Equal(t, before, e.store.get(uid))
	})

	t.Run("currency is checked before the dare", func(t *testing.T) {
		e := newEngine(t, 14)
		uid := uuid.New()
		_, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		e.store.set(uid, func(p *entity.Profile) { p.RerollTokens, p.Score = 0, 10 })

		_, err = e.es.RerollDare(ctx, uid, "missing")
		assert.ErrorIs(t, err, errorvalues.ErrInsufficientCurrency)

		e.store.set(uid, func(p *entity.Profile) { p.RerollTokens = 1 })
		_, err = e.es.RerollDare(ctx, uid, "missing")
		assert.ErrorIs(t, err, errorvalues.ErrDareNotAssigned)
		assert.Equal(t, 1, e.store.get(uid).RerollTokens)
	})

	t.Run("completed flag is dropped with the old dare", func(t *testing.T) {
		e := newEngine(t, 15)
		uid := uuid.New()
		dares, err := e.es.AssignDailyDares(ctx, uid)
		require.NoError(t, err)
		easy := assigned(t, dares, entity.DifficultyEasy)
		_, err = e.es.CompleteDare(ctx, uid, easy.DareID, easy.Points, false)
		require.NoError(t, err)

		res, err := e.es.RerollDare(ctx, uid, easy.DareID)
		require.NoError(t, err)
		assert.False(t, res.Dare.Completed)
		assert.Equal(t, easy.Points, res.Score)
	})

	t.Run("unknown profile", func(t *testing.T) {
		e := newEngine(t, 16)
		_, err := e.es.RerollDare(ctx, uuid.New(), "x")
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
}

func TestPurchaseRerollToken(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, 17)
	uid := uuid.New()
	_, err := e.es.Profile(ctx, uid)
	require.NoError(t, err)
	e.store.set(uid, func(p *entity.Profile) { p.Score, p.RerollTokens = 120, 0 })

	res, err := e.es.PurchaseRerollToken(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 70, res.Score)
	assert.Equal(t, 1, res.RerollTokens)

	res, err = e.es.PurchaseRerollToken(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Score)
	assert.Equal(t, 2, res.RerollTokens)

	_, err = e.es.PurchaseRerollToken(ctx, uid)
	assert.ErrorIs(t, err, errorvalues.ErrInsufficientCurrency)
	p := e.store.get(uid)
	assert.Equal(t, 20, p.Score)
	assert.Equal(t, 2, p.RerollTokens)

	_, err = e.es.PurchaseRerollToken(ctx, uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
}

func TestPurchaseRerollTokenPriceBoundary(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		Desc       string
		Score      int
		Error      error
		WantScore  int
		WantTokens int
	}{
		{Desc: "one point short", Score: service.TokenCost - 1, Error: errorvalues.ErrInsufficientCurrency, WantScore: service.TokenCost - 1, WantTokens: 0},
		{Desc: "exact price", Score: service.TokenCost, WantScore: 0, WantTokens: 1},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			e := newEngine(t, 19)
			uid := uuid.New()
			_, err := e.es.Profile(ctx, uid)
			require.NoError(t, err)
			e.store.set(uid, func(p *entity.Profile) { p.Score, p.RerollTokens = tc.Score, 0 })
			before := e.store.get(uid)
			writes := e.store.writeCount()

			res, err := e.es.PurchaseRerollToken(ctx, uid)
			after := e.store.get(uid)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Equal(t, before, after)
				assert.Equal(t, writes, e.store.writeCount())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.WantScore, res.Score)
			assert.Equal(t, tc.WantTokens, res.RerollTokens)
			assert.Equal(t, tc.WantScore, after.Score)
			assert.Equal(t, tc.WantTokens, after.RerollTokens)
		})
	}
}

func TestProfileCreatedOnDemand(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, 18)
	uid := uuid.New()
	p, err := e.es.Profile(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, uid, p.UserID)
	assert.Equal(t, service.DailyRerollTokens, p.RerollTokens)
	assert.Equal(t, entity.Unassigned, p.AssignmentState("2025-06-01"))

	again, err := e.es.Profile(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, p.CreatedAt, again.CreatedAt)
}

func TestEconomyRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	stored := func() *entity.Profile {
		p := entity.NewProfile(uid, 2, morning)
		p.Score = 100
		return p
	}
	tests := []struct {
		Desc         string
		Error        error
		MockPrepFunc func(profiles *mocks.MockProfilesRepositoryI)
	}{
		{
			Desc:  "gives up after repeated conflicts",
			Error: errorvalues.ErrTooManyConflicts,
			MockPrepFunc: func(profiles *mocks.MockProfilesRepositoryI) {
				profiles.EXPECT().GetByUserID(gomock.Any(), uid).DoAndReturn(func(context.Context, uuid.UUID) (*entity.Profile, error) {
					return stored(), nil
				}).Times(5)
				profiles.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errorvalues.ErrVersionConflict).Times(5)
			},
		},
		{
			Desc:  "storage failure is not retried",
			Error: errors.New("connection reset"),
			MockPrepFunc: func(profiles *mocks.MockProfilesRepositoryI) {
				profiles.EXPECT().GetByUserID(gomock.Any(), uid).Return(stored(), nil)
				profiles.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
		},
		{
			Desc:  "read failure",
			Error: errors.New("connection refused"),
			MockPrepFunc: func(profiles *mocks.MockProfilesRepositoryI) {
				profiles.EXPECT().GetByUserID(gomock.Any(), uid).Return(nil, errors.New("connection refused"))
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			profiles := mocks.NewMockProfilesRepositoryI(ctrl)
			dares := mocks.NewMockDaresRepositoryI(ctrl)
			tc.MockPrepFunc(profiles)
			es := service.NewEconomyService(profiles, dares, service.WithClock(service.NewFakeClock(morning)))

			_, err := es.PurchaseRerollToken(ctx, uid)
			require.Error(t, err)
			if errors.Is(tc.Error, errorvalues.ErrTooManyConflicts) {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.Contains(t, err.Error(), tc.Error.Error())
			}
		})
	}
}
