package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties is the order in which daily dares are assigned.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

// Dare is a catalog template. Users never hold a Dare directly, they get an AssignedDare snapshot.
type Dare struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Points        int        `json:"points"`
	Difficulty    Difficulty `json:"difficulty"`
	Tags          []string   `json:"tags"`
	ProofRequired bool       `json:"proofRequired"`
}

// MatchesAny reports whether at least one of the dare's tags is among interests.
func (d *Dare) MatchesAny(interests []string) bool {
	for _, tag := range d.Tags {
		if slices.Contains(interests, tag) {
			return true
		}
	}
	return false
}

func (d *Dare) Assign(day Day) AssignedDare {
	return AssignedDare{
		DareID:       d.ID.String(),
		Title:        d.Title,
		Description:  d.Description,
		Points:       d.Points,
		Difficulty:   d.Difficulty,
		AssignedDate: day,
	}
}

const BonusDarePrefix = "ai_"

func IsBonusDareID(id string) bool {
	return strings.HasPrefix(id, BonusDarePrefix)
}

type AssignedDare struct {
	DareID       string     `json:"dareId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Points       int        `json:"points"`
	Difficulty   Difficulty `json:"difficulty"`
	AssignedDate Day        `json:"assignedDate"`
	Completed    bool       `json:"completed"`
}

type Profile struct {
	UserID              uuid.UUID      `json:"uid"`
	Score               int            `json:"score"`
	RerollTokens        int            `json:"rerollTokens"`
	DaresCompletedCount int            `json:"daresCompletedCount"`
	Interests           []string       `json:"interests"`
	DailyDares          []AssignedDare `json:"dailyDares"`
	LastDareAssignment  Day            `json:"lastDareAssignment,omitempty"`
	OnboardingComplete  bool           `json:"onboardingComplete"`
	CreatedAt           time.Time      `json:"createdAt"`
	Version             int64          `json:"-"`
}

func NewProfile(uid uuid.UUID, rerollTokens int, now time.Time) *Profile {
	return &Profile{
		UserID:       uid,
		RerollTokens: rerollTokens,
		Interests:    []string{},
		DailyDares:   []AssignedDare{},
		CreatedAt:    now,
	}
}

func (p *Profile) AssignmentState(today Day) AssignmentState {
	switch {
	case len(p.DailyDares) == 0:
		return Unassigned
	case p.LastDareAssignment == today:
		return AssignedToday
	default:
		return Stale
	}
}

// DareIndex returns position of the assigned dare with given id or -1.
func (p *Profile) DareIndex(dareID string) int {
	return slices.IndexFunc(p.DailyDares, func(d AssignedDare) bool {
		return d.DareID == dareID
	})
}

// Clone makes a deep copy, so mutations of the copy never leak into the original.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Interests = slices.Clone(p.Interests)
	c.DailyDares = slices.Clone(p.DailyDares)
	return &c
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type Post struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"uid"`
	UserDisplayName string     `json:"userDisplayName"`
	DareID          string     `json:"dareId"`
	DareTitle       string     `json:"dareTitle"`
	DareDifficulty  Difficulty `json:"dareDifficulty"`
	ImageURL        string     `json:"imageURL"`
	IsBonus         bool       `json:"isBonus"`
	Tags            []string   `json:"tags"`
	Location        *Location  `json:"location,omitempty"`
	PointsAwarded   int        `json:"pointsAwarded"`
	Likes           int        `json:"likes"`
	DoubleDares     int        `json:"doubleDares"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type LeaderboardEntry struct {
	Rank           int       `json:"rank"`
	UserID         uuid.UUID `json:"uid"`
	Name           string    `json:"name"`
	Score          int       `json:"score"`
	DaresCompleted int       `json:"daresCompleted"`
}
