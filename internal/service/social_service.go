package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/internal/repository"
	"github.com/limbo/dailydare/pkg/entity"
)

const (
	DoubleDareCost  = 50
	defaultFeedSize = 20
	maxFeedSize     = 50
)

type SocialService struct {
	posts    repository.PostsRepositoryI
	profiles repository.ProfilesRepositoryI
	users    repository.UsersRepositoryI
	clock    Clock
	loc      *time.Location
}

func NewSocialService(posts repository.PostsRepositoryI, profiles repository.ProfilesRepositoryI, users repository.UsersRepositoryI, clock Clock, loc *time.Location) *SocialService {
	if posts == nil || profiles == nil || users == nil {
		log.Fatal("social service repos must not be nil")
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &SocialService{
		posts:    posts,
		profiles: profiles,
		users:    users,
		clock:    clock,
		loc:      loc,
	}
}

// CreatePost shares a completed dare. Regular dares must be completed in today's set,
// bonus dares carry their details in the request
func (ss *SocialService) CreatePost(ctx context.Context, uid uuid.UUID, req *CreatePostRequest) (*entity.Post, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := ss.users.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("looking up author: %w", err)
	}
	post := &entity.Post{
		UserID:          uid,
		UserDisplayName: user.Name,
		DareID:          req.DareID,
		ImageURL:        req.ImageURL,
		Tags:            req.Tags,
		Location:        req.Location,
		IsBonus:         req.Bonus || entity.IsBonusDareID(req.DareID),
	}
	if post.IsBonus {
		d, ok := entity.ParseDifficulty(req.Difficulty)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidDifficulty, req.Difficulty)
		}
		if req.DareTitle == "" || req.Points <= 0 || req.Points > MaxAwardPoints {
			return nil, fmt.Errorf("%w: bonus post needs title and points", errorvalues.ErrValidation)
		}
		post.DareTitle, post.DareDifficulty, post.PointsAwarded = req.DareTitle, d, req.Points
	} else {
		profile, err := ss.profiles.GetByUserID(ctx, uid)
		if err != nil {
			return nil, fmt.Errorf("loading profile: %w", err)
		}
		i := profile.DareIndex(req.DareID)
		if i < 0 || profile.AssignmentState(today(ctx, ss.clock, ss.loc)) != entity.AssignedToday {
			return nil, fmt.Errorf("%w: %s", errorvalues.ErrDareNotAssigned, req.DareID)
		}
		assigned := profile.DailyDares[i]
		if !assigned.Completed {
			return nil, errorvalues.ErrDareNotComplete
		}
		post.DareTitle, post.DareDifficulty, post.PointsAwarded = assigned.Title, assigned.Difficulty, assigned.Points
	}
	if err = ss.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("saving post: %w", err)
	}
	return post, nil
}

func (ss *SocialService) Feed(ctx context.Context, page, limit int) ([]*entity.Post, error) {
	if limit <= 0 {
		limit = defaultFeedSize
	}
	limit = min(limit, maxFeedSize)
	page = max(page, 1)
	return ss.posts.List(ctx, limit, (page-1)*limit)
}

func (ss *SocialService) Like(ctx context.Context, postID uuid.UUID) (int, error) {
	return ss.posts.Like(ctx, postID)
}

// DoubleDare spends giver's points to award the post. Returns giver's remaining score
func (ss *SocialService) DoubleDare(ctx context.Context, giver uuid.UUID, postID uuid.UUID) (int, error) {
	score, err := ss.posts.DoubleDare(ctx, giver, postID, DoubleDareCost)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInsufficientCurrency) {
			return 0, fmt.Errorf("double dare costs %d points: %w", DoubleDareCost, err)
		}
		return 0, err
	}
	return score, nil
}
