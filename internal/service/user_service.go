package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/internal/repository"
	"github.com/limbo/dailydare/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo     repository.UsersRepositoryI
	profiles *profileUpdater
}

func NewUserService(usersRepo repository.UsersRepositoryI, profilesRepo repository.ProfilesRepositoryI) *UserService {
	if usersRepo == nil || profilesRepo == nil {
		log.Fatal("user service repos must not be nil")
	}
	return &UserService{
		repo:     usersRepo,
		profiles: &profileUpdater{repo: profilesRepo, clock: RealClock{}},
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
	}
	profile := entity.NewProfile(uuid.Nil, DailyRerollTokens, us.profiles.clock.Now().UTC().Truncate(time.Microsecond))
	if err = us.repo.Create(ctx, user, profile); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, fmt.Errorf("user with such name already exists: %w", err)
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, fmt.Errorf("user with given name not found: %w", err)
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("login failed: %w", errorvalues.ErrWrongCredentials)
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, fmt.Errorf("user with given id not found: %w", err)
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, fmt.Errorf("user with given name not found: %w", err)
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return fmt.Errorf("changing password failed: %w", errorvalues.ErrWrongCredentials)
	}
	user.PasswordHash, err = Hash(req.NewPassword)
	if err != nil {
		return errors.New("hashing password error: " + err.Error())
	}
	if err = us.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("repository updating error: %w", err)
	}
	return nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return fmt.Errorf("deletion failed: %w", errorvalues.ErrWrongCredentials)
	}
	// Profile and posts go away with the user row
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return fmt.Errorf("user with given id not found: %w", err)
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func (us *UserService) SetInterests(ctx context.Context, id uuid.UUID, req *InterestsRequest) (*entity.Profile, error) {
	return us.updateInterests(ctx, "interests", id, req, false)
}

func (us *UserService) CompleteOnboarding(ctx context.Context, id uuid.UUID, req *InterestsRequest) (*entity.Profile, error) {
	return us.updateInterests(ctx, "onboarding", id, req, true)
}

func (us *UserService) updateInterests(ctx context.Context, op string, id uuid.UUID, req *InterestsRequest, onboard bool) (*entity.Profile, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	interests := dedupe(req.Interests)
	profile, _, err := us.profiles.update(ctx, op, id, true, func(p *entity.Profile) error {
		if slices.Equal(p.Interests, interests) && (!onboard || p.OnboardingComplete) {
			return errNoChange
		}
		p.Interests = interests
		if onboard {
			p.OnboardingComplete = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating interests: %w", err)
	}
	return profile, nil
}

func dedupe(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
