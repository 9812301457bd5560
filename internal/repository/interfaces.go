package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/dailydare/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user together with its starting profile. Both rows are written or neither
	Create(ctx context.Context, user *entity.User, profile *entity.Profile) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user with its profile and posts
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ProfilesRepositoryI interface {
	// Creates profile row for user. Fails with ErrProfileExists on second call
	Create(ctx context.Context, profile *entity.Profile) error
	// Returns profile with its current version
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Writes profile only if stored version equals profile.Version, then bumps the version.
	// Returns ErrVersionConflict when someone else wrote first
	Update(ctx context.Context, profile *entity.Profile) error
	// Lists users with positive score, best first
	Top(ctx context.Context, limit int, nameQuery string) ([]entity.LeaderboardEntry, error)
}

type DaresRepositoryI interface {
	// Lists catalog dares of given difficulty. Empty result is not an error
	ListByDifficulty(ctx context.Context, difficulty entity.Difficulty) ([]entity.Dare, error)
	// Lists whole catalog
	List(ctx context.Context) ([]entity.Dare, error)
	Count(ctx context.Context) (int, error)
	// Drops the catalog and inserts given dares in one transaction
	ReplaceAll(ctx context.Context, dares []entity.Dare) error
}

type PostsRepositoryI interface {
	// Creates post, filling its ID and CreatedAt
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	// Lists posts newest first
	List(ctx context.Context, limit, offset int) ([]*entity.Post, error)
	Like(ctx context.Context, id uuid.UUID) (int, error)
	// Takes cost points from giver and adds a double dare to the post atomically.
	// Returns giver's new score
	DoubleDare(ctx context.Context, giver uuid.UUID, postID uuid.UUID, cost int) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
