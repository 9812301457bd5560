package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dailydare/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	moment := time.Date(2025, 3, 9, 20, 30, 0, 0, time.UTC)
	assert.Equal(t, entity.Day("2025-03-09"), entity.DayOf(moment))
	assert.Equal(t, entity.Day("2025-03-10"), entity.DayOf(moment.In(loc)))
}

func TestParseDay(t *testing.T) {
	d, err := entity.ParseDay("2025-01-31")
	assert.NoError(t, err)
	assert.Equal(t, entity.Day("2025-01-31"), d)
	_, err = entity.ParseDay("31.01.2025")
	assert.Error(t, err)
}

func TestAssignmentState(t *testing.T) {
	today := entity.Day("2025-06-01")
	testCases := []struct {
		Desc    string
		Profile *entity.Profile
		State   entity.AssignmentState
	}{
		{
			Desc:    "fresh profile",
			Profile: entity.NewProfile(uuid.New(), 2, time.Now()),
			State:   entity.Unassigned,
		},
		{
			Desc: "assigned today",
			Profile: &entity.Profile{
				DailyDares:         []entity.AssignedDare{{DareID: "a", AssignedDate: today}},
				LastDareAssignment: today,
			},
			State: entity.AssignedToday,
		},
		{
			Desc: "assigned yesterday",
			Profile: &entity.Profile{
				DailyDares:         []entity.AssignedDare{{DareID: "a"}},
				LastDareAssignment: "2025-05-31",
			},
			State: entity.Stale,
		},
		{
			Desc: "date set but list emptied",
			Profile: &entity.Profile{
				LastDareAssignment: today,
			},
			State: entity.Unassigned,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			state := tc.Profile.AssignmentState(today)
			assert.Equal(t, tc.State, state)
			assert.Equal(t, tc.State != entity.AssignedToday, state.NeedsAssignment())
		})
	}
}

func TestDareAssignIsSnapshot(t *testing.T) {
	dare := entity.Dare{
		ID:         uuid.New(),
		Title:      "Eat a Veggie",
		Points:     5,
		Difficulty: entity.DifficultyEasy,
		Tags:       []string{"Health"},
	}
	assigned := dare.Assign("2025-06-01")
	dare.Title = "Edited"
	dare.Points = 100
	assert.Equal(t, "Eat a Veggie", assigned.Title)
	assert.Equal(t, 5, assigned.Points)
	assert.Equal(t, dare.ID.String(), assigned.DareID)
	assert.False(t, assigned.Completed)
}

func TestMatchesAny(t *testing.T) {
	dare := entity.Dare{Tags: []string{"Social", "Positive"}}
	assert.True(t, dare.MatchesAny([]string{"Fitness", "Social"}))
	assert.False(t, dare.MatchesAny([]string{"Fitness"}))
	assert.False(t, dare.MatchesAny(nil))
}

func TestProfileClone(t *testing.T) {
	p := &entity.Profile{
		Interests:  []string{"Health"},
		DailyDares: []entity.AssignedDare{{DareID: "a"}},
	}
	c := p.Clone()
	c.DailyDares[0].Completed = true
	c.Interests[0] = "Fitness"
	assert.False(t, p.DailyDares[0].Completed)
	assert.Equal(t, "Health", p.Interests[0])
	assert.Equal(t, 0, c.DareIndex("a"))
	assert.Equal(t, -1, c.DareIndex("b"))
}

func TestParseDifficulty(t *testing.T) {
	d, ok := entity.ParseDifficulty("medium")
	assert.True(t, ok)
	assert.Equal(t, entity.DifficultyMedium, d)
	_, ok = entity.ParseDifficulty("extreme")
	assert.False(t, ok)
	assert.True(t, entity.IsBonusDareID("ai_1700000000000"))
	assert.False(t, entity.IsBonusDareID(uuid.NewString()))
}
