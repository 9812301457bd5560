package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/internal/metrics"
	"github.com/limbo/dailydare/internal/repository"
	"github.com/limbo/dailydare/pkg/entity"
)

const (
	RerollCost = 50
	TokenCost  = 50
	// Upper bound for points a single completion may award
	MaxAwardPoints = 1000
)

type PaymentKind string

const (
	PaymentToken  PaymentKind = "token"
	PaymentPoints PaymentKind = "points"
)

type EconomyService struct {
	updater *profileUpdater
	dares   repository.DaresRepositoryI
	clock   Clock
	loc     *time.Location

	mu  sync.Mutex
	rnd *rand.Rand
}

type EconomyOption func(*EconomyService)

func WithClock(c Clock) EconomyOption {
	return func(es *EconomyService) {
		es.clock = c
		es.updater.clock = c
	}
}

func WithRand(r *rand.Rand) EconomyOption {
	return func(es *EconomyService) {
		es.rnd = r
	}
}

// WithDefaultLocation sets zone used when context carries none
func WithDefaultLocation(loc *time.Location) EconomyOption {
	return func(es *EconomyService) {
		es.loc = loc
	}
}

func NewEconomyService(profilesRepo repository.ProfilesRepositoryI, daresRepo repository.DaresRepositoryI, opts ...EconomyOption) *EconomyService {
	if profilesRepo == nil {
		log.Fatal("profiles repo is nil")
	}
	if daresRepo == nil {
		log.Fatal("dares repo is nil")
	}
	es := &EconomyService{
		updater: &profileUpdater{repo: profilesRepo, clock: RealClock{}},
		dares:   daresRepo,
		clock:   RealClock{},
		loc:     time.UTC,
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EconomyService) Profile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	return es.updater.load(ctx, uid, true)
}

func (es *EconomyService) AssignDailyDares(ctx context.Context, uid uuid.UUID) ([]entity.AssignedDare, error) {
	day := today(ctx, es.clock, es.loc)
	profile, written, err := es.updater.update(ctx, "assign", uid, true, func(p *entity.Profile) error {
		if !p.AssignmentState(day).NeedsAssignment() {
			return errNoChange
		}
		dares, err := es.pickDaily(ctx, p.Interests, day)
		if err != nil {
			return err
		}
		// Empty catalog keeps the profile unassigned, tokens were already granted for today
		if len(dares) == 0 && len(p.DailyDares) == 0 && p.LastDareAssignment == day {
			return errNoChange
		}
		if p.LastDareAssignment != day {
			p.RerollTokens = DailyRerollTokens
		}
		p.DailyDares = dares
		p.LastDareAssignment = day
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assigning daily dares: %w", err)
	}
	if written {
		for _, d := range profile.DailyDares {
			metrics.DaresAssigned.WithLabelValues(string(d.Difficulty)).Inc()
		}
	}
	return profile.DailyDares, nil
}

// pickDaily selects one dare per difficulty, skipping tiers with nothing to offer
func (es *EconomyService) pickDaily(ctx context.Context, interests []string, day entity.Day) ([]entity.AssignedDare, error) {
	picked := make([]entity.AssignedDare, 0, len(entity.Difficulties))
	chosen := make(map[string]bool, len(entity.Difficulties))
	for _, difficulty := range entity.Difficulties {
		candidates, err := es.dares.ListByDifficulty(ctx, difficulty)
		if err != nil {
			return nil, fmt.Errorf("listing %s dares: %w", difficulty, err)
		}
		dare, ok := es.choose(candidates, interests, chosen)
		if !ok {
			slog.Warn("catalog exhausted", slog.String("difficulty", string(difficulty)))
			continue
		}
		chosen[dare.ID.String()] = true
		picked = append(picked, dare.Assign(day))
	}
	return picked, nil
}

// choose picks uniformly among candidates sharing a tag with interests,
// falling back to all remaining candidates. Excluded ids are never picked
func (es *EconomyService) choose(candidates []entity.Dare, interests []string, exclude map[string]bool) (entity.Dare, bool) {
	preferred := make([]entity.Dare, 0, len(candidates))
	remainder := make([]entity.Dare, 0, len(candidates))
	for _, c := range candidates {
		if exclude[c.ID.String()] {
			continue
		}
		if c.MatchesAny(interests) {
			preferred = append(preferred, c)
		} else {
			remainder = append(remainder, c)
		}
	}
	pool := preferred
	if len(pool) == 0 {
		pool = remainder
	}
	if len(pool) == 0 {
		return entity.Dare{}, false
	}
	return pool[es.intN(len(pool))], true
}

func (es *EconomyService) intN(n int) int {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.rnd.IntN(n)
}

type CompletionResult struct {
	DareID              string `json:"dareId"`
	Bonus               bool   `json:"bonus"`
	PointsAwarded       int    `json:"pointsAwarded"`
	Score               int    `json:"score"`
	DaresCompletedCount int    `json:"daresCompletedCount"`
}

func (es *EconomyService) CompleteDare(ctx context.Context, uid uuid.UUID, dareID string, points int, isBonus bool) (*CompletionResult, error) {
	if points <= 0 || points > MaxAwardPoints {
		es.reject("complete", errorvalues.ErrInvalidPoints)
		return nil, fmt.Errorf("%w: got %d, allowed 1..%d", errorvalues.ErrInvalidPoints, points, MaxAwardPoints)
	}
	bonus := isBonus || entity.IsBonusDareID(dareID)
	day := today(ctx, es.clock, es.loc)
	profile, _, err := es.updater.update(ctx, "complete", uid, false, func(p *entity.Profile) error {
		if !bonus {
			i := p.DareIndex(dareID)
			if i < 0 || p.AssignmentState(day) != entity.AssignedToday {
				return fmt.Errorf("%w: %s", errorvalues.ErrDareNotAssigned, dareID)
			}
			if p.DailyDares[i].Completed {
				return errorvalues.ErrAlreadyCompleted
			}
			p.DailyDares[i].Completed = true
		}
		p.Score += points
		p.DaresCompletedCount++
		return nil
	})
	if err != nil {
		es.reject("complete", err)
		return nil, fmt.Errorf("completing dare: %w", err)
	}
	kind := "regular"
	if bonus {
		kind = "bonus"
	}
	metrics.DaresCompleted.WithLabelValues(kind).Inc()
	metrics.PointsAwarded.Add(float64(points))
	return &CompletionResult{
		DareID:              dareID,
		Bonus:               bonus,
		PointsAwarded:       points,
		Score:               profile.Score,
		DaresCompletedCount: profile.DaresCompletedCount,
	}, nil
}

type RerollResult struct {
	Dare         entity.AssignedDare `json:"dare"`
	Payment      PaymentKind         `json:"payment"`
	RerollTokens int                 `json:"rerollTokens"`
	Score        int                 `json:"score"`
	Message      string              `json:"message"`
}

func (es *EconomyService) RerollDare(ctx context.Context, uid uuid.UUID, dareID string) (*RerollResult, error) {
	day := today(ctx, es.clock, es.loc)
	var (
		payment  PaymentKind
		position int
	)
	profile, _, err := es.updater.update(ctx, "reroll", uid, false, func(p *entity.Profile) error {
		switch {
		case p.RerollTokens > 0:
			payment = PaymentToken
		case p.Score >= RerollCost:
			payment = PaymentPoints
		default:
			return fmt.Errorf("%w: have %d points and %d tokens, reroll costs %d points",
				errorvalues.ErrInsufficientCurrency, p.Score, p.RerollTokens, RerollCost)
		}
		position = p.DareIndex(dareID)
		if position < 0 || p.AssignmentState(day) != entity.AssignedToday {
			return fmt.Errorf("%w: %s", errorvalues.ErrDareNotAssigned, dareID)
		}
		current := p.DailyDares[position]
		candidates, err := es.dares.ListByDifficulty(ctx, current.Difficulty)
		if err != nil {
			return fmt.Errorf("listing %s dares: %w", current.Difficulty, err)
		}
		exclude := make(map[string]bool, len(p.DailyDares))
		for _, d := range p.DailyDares {
			exclude[d.DareID] = true
		}
		next, ok := es.choose(candidates, p.Interests, exclude)
		if !ok {
			return fmt.Errorf("%w: %s", errorvalues.ErrCatalogExhausted, current.Difficulty)
		}
		p.DailyDares[position] = next.Assign(day)
		if payment == PaymentToken {
			p.RerollTokens--
		} else {
			p.Score -= RerollCost
		}
		return nil
	})
	if err != nil {
		es.reject("reroll", err)
		return nil, fmt.Errorf("rerolling dare: %w", err)
	}
	dare := profile.DailyDares[position]
	metrics.Rerolls.WithLabelValues(string(payment)).Inc()
	metrics.DaresAssigned.WithLabelValues(string(dare.Difficulty)).Inc()
	return &RerollResult{
		Dare:         dare,
		Payment:      payment,
		RerollTokens: profile.RerollTokens,
		Score:        profile.Score,
		Message:      fmt.Sprintf("Rerolled to: %s. %d free tokens remaining.", dare.Title, profile.RerollTokens),
	}, nil
}

type PurchaseResult struct {
	RerollTokens int    `json:"rerollTokens"`
	Score        int    `json:"score"`
	Message      string `json:"message"`
}

func (es *EconomyService) PurchaseRerollToken(ctx context.Context, uid uuid.UUID) (*PurchaseResult, error) {
	profile, _, err := es.updater.update(ctx, "purchase", uid, false, func(p *entity.Profile) error {
		if p.Score < TokenCost {
			return fmt.Errorf("%w: have %d, need %d", errorvalues.ErrInsufficientCurrency, p.Score, TokenCost)
		}
		p.Score -= TokenCost
		p.RerollTokens++
		return nil
	})
	if err != nil {
		es.reject("purchase", err)
		return nil, fmt.Errorf("purchasing reroll token: %w", err)
	}
	metrics.TokensPurchased.Inc()
	return &PurchaseResult{
		RerollTokens: profile.RerollTokens,
		Score:        profile.Score,
		Message:      fmt.Sprintf("Exchanged %d points for a reroll token. You have %d tokens.", TokenCost, profile.RerollTokens),
	}, nil
}

func (es *EconomyService) reject(op string, err error) {
	reasons := []struct {
		err    error
		reason string
	}{
		{errorvalues.ErrInsufficientCurrency, "insufficient_currency"},
		{errorvalues.ErrDareNotAssigned, "not_assigned"},
		{errorvalues.ErrAlreadyCompleted, "already_completed"},
		{errorvalues.ErrCatalogExhausted, "catalog_exhausted"},
		{errorvalues.ErrInvalidPoints, "invalid_points"},
		{errorvalues.ErrProfileNotFound, "profile_not_found"},
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			metrics.EconomyRejections.WithLabelValues(op, r.reason).Inc()
			return
		}
	}
}
