package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/dailydare/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type InterestsRequest struct {
	Interests []string `validate:"required,min=1,max=10,dive,interest_tag"`
}

type ChangePasswordRequest struct {
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required,min=8,max=72,nefield=OldPassword"`
}

type CreatePostRequest struct {
	DareID   string           `validate:"required,max=64"`
	ImageURL string           `validate:"required,url,max=2048"`
	Tags     []string         `validate:"max=10,dive,interest_tag"`
	Location *entity.Location `validate:"omitempty"`
	// Bonus dares live outside the profile, so the post carries their details
	Bonus      bool
	DareTitle  string `validate:"max=200"`
	Difficulty string
	Points     int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database together with empty profile. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
	// Replaces personalization tags used when picking dares
	SetInterests(ctx context.Context, id uuid.UUID, req *InterestsRequest) (*entity.Profile, error)
	// Stores interests and marks onboarding as done
	CompleteOnboarding(ctx context.Context, id uuid.UUID, req *InterestsRequest) (*entity.Profile, error)
}

type EconomyServiceI interface {
	// Returns profile, creating a default one for new users
	Profile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Gives one dare per difficulty once a day. Repeated calls on the same day return the same dares
	AssignDailyDares(ctx context.Context, uid uuid.UUID) ([]entity.AssignedDare, error)
	// Awards points for an assigned dare once, or for any bonus dare
	CompleteDare(ctx context.Context, uid uuid.UUID, dareID string, points int, isBonus bool) (*CompletionResult, error)
	// Swaps assigned dare for another one of the same difficulty, paying with a token or points
	RerollDare(ctx context.Context, uid uuid.UUID, dareID string) (*RerollResult, error)
	// Exchanges points for one reroll token
	PurchaseRerollToken(ctx context.Context, uid uuid.UUID) (*PurchaseResult, error)
}

type CatalogServiceI interface {
	Reconcile(ctx context.Context) (bool, error)
	ListByDifficulty(ctx context.Context, difficulty string) ([]entity.Dare, error)
	List(ctx context.Context) ([]entity.Dare, error)
}

type BonusServiceI interface {
	Generate(ctx context.Context, difficulty string) (*BonusDare, error)
}

type SocialServiceI interface {
	CreatePost(ctx context.Context, uid uuid.UUID, req *CreatePostRequest) (*entity.Post, error)
	// Lists posts newest first. Pages start from 1
	Feed(ctx context.Context, page, limit int) ([]*entity.Post, error)
	Like(ctx context.Context, postID uuid.UUID) (int, error)
	DoubleDare(ctx context.Context, giver uuid.UUID, postID uuid.UUID) (int, error)
}

type LeaderboardServiceI interface {
	Top(ctx context.Context, limit int, nameQuery string) ([]entity.LeaderboardEntry, error)
}
