package service

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strconv"

	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/pkg/entity"
)

// Overtime dares pay more than the daily set but are never tracked in it
var bonusPoints = map[entity.Difficulty]int{
	entity.DifficultyEasy:   25,
	entity.DifficultyMedium: 50,
	entity.DifficultyHard:   75,
}

var bonusTags = []string{"AI Dare", "Overtime"}

type BonusDare struct {
	entity.AssignedDare
	Tags []string `json:"tags"`
}

type BonusService struct {
	economy *EconomyService
}

func NewBonusService(economy *EconomyService) *BonusService {
	if economy == nil {
		log.Fatal("economy service is nil")
	}
	return &BonusService{
		economy: economy,
	}
}

// Generate makes a one-off dare with a synthetic id. It's completed through CompleteDare with bonus flag
func (bs *BonusService) Generate(ctx context.Context, difficulty string) (*BonusDare, error) {
	d, ok := entity.ParseDifficulty(difficulty)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidDifficulty, difficulty)
	}
	es := bs.economy
	now := es.clock.Now()
	dare := BonusDare{
		AssignedDare: entity.AssignedDare{
			DareID:       entity.BonusDarePrefix + strconv.FormatInt(now.UnixMilli(), 10),
			Title:        "Overtime " + string(d) + " Dare",
			Description:  "Push past today's set with one more " + string(d) + " challenge of your own choosing.",
			Points:       bonusPoints[d],
			Difficulty:   d,
			AssignedDate: today(ctx, es.clock, es.loc),
		},
		Tags: slices.Clone(bonusTags),
	}
	candidates, err := es.dares.ListByDifficulty(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("listing %s dares: %w", d, err)
	}
	if template, ok := es.choose(candidates, nil, nil); ok {
		dare.Title = "Overtime: " + template.Title
		dare.Description = template.Description
	}
	return &dare, nil
}
