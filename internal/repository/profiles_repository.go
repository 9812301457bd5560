package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	mustPing(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	return insertProfile(ctx, pr.conn, profile)
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// insertProfile is shared with user registration, which runs it inside its own transaction
func insertProfile(ctx context.Context, conn execer, profile *entity.Profile) error {
	dailyDares, err := encodeDailyDares(profile.DailyDares)
	if err != nil {
		return err
	}
	_, err = conn.Exec(ctx, `INSERT INTO profiles (user_id, score, reroll_tokens, dares_completed_count, interests, daily_dares, last_dare_assignment, onboarding_complete, created_at, version) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0);`,
		profile.UserID,
		profile.Score,
		profile.RerollTokens,
		profile.DaresCompletedCount,
		nonNilStrings(profile.Interests),
		dailyDares,
		string(profile.LastDareAssignment),
		profile.OnboardingComplete,
		profile.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrProfileExists
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating profile db error: " + err.Error())
	}
	profile.Version = 0
	return nil
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	profile := entity.Profile{UserID: uid}
	var (
		dailyDares []byte
		lastDay    string
	)
	row := pr.conn.QueryRow(ctx, `SELECT score, reroll_tokens, dares_completed_count, interests, daily_dares, last_dare_assignment, onboarding_complete, created_at, version FROM profiles WHERE user_id = $1;`, uid)
	err := row.Scan(
		&profile.Score,
		&profile.RerollTokens,
		&profile.DaresCompletedCount,
		&profile.Interests,
		&dailyDares,
		&lastDay,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile error: " + err.Error())
	}
	profile.LastDareAssignment = entity.Day(lastDay)
	profile.Interests = nonNilStrings(profile.Interests)
	profile.DailyDares, err = decodeDailyDares(dailyDares)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (pr *ProfilesRepository) Update(ctx context.Context, profile *entity.Profile) error {
	dailyDares, err := encodeDailyDares(profile.DailyDares)
	if err != nil {
		return err
	}
	ct, err := pr.conn.Exec(ctx, `UPDATE profiles SET score = $1, reroll_tokens = $2, dares_completed_count = $3, interests = $4, daily_dares = $5, last_dare_assignment = $6, onboarding_complete = $7, version = version + 1 WHERE user_id = $8 AND version = $9;`,
		profile.Score,
		profile.RerollTokens,
		profile.DaresCompletedCount,
		nonNilStrings(profile.Interests),
		dailyDares,
		string(profile.LastDareAssignment),
		profile.OnboardingComplete,
		profile.UserID,
		profile.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// Check violation, e.g. negative score
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return errorvalues.ErrInsufficientCurrency
		}
		return errors.New("updating profile error: " + err.Error())
	}
	// Either the row is gone or its version moved on. A retry re-reads and tells which
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrVersionConflict
	}
	profile.Version++
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Top ranks scorers from 1. Non-empty nameQuery keeps only names containing it, case-insensitive,
// and ranks are counted among the matches
func (pr *ProfilesRepository) Top(ctx context.Context, limit int, nameQuery string) ([]entity.LeaderboardEntry, error) {
	rows, err := pr.conn.Query(ctx, `SELECT p.user_id, u.name, p.score, p.dares_completed_count FROM profiles p JOIN users u ON u.id = p.user_id WHERE p.score > 0 AND ($2::text = '' OR u.name ILIKE '%' || $2 || '%') ORDER BY p.score DESC, u.name ASC LIMIT $1;`, limit, likeEscaper.Replace(nameQuery))
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		e := entity.LeaderboardEntry{Rank: len(entries) + 1}
		if err = rows.Scan(&e.UserID, &e.Name, &e.Score, &e.DaresCompleted); err != nil {
			return nil, errors.New("unmarshalling leaderboard entry error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return entries, nil
}

func encodeDailyDares(dares []entity.AssignedDare) (string, error) {
	if dares == nil {
		dares = []entity.AssignedDare{}
	}
	data, err := sonic.Marshal(dares)
	if err != nil {
		return "", errors.New("encoding daily dares error: " + err.Error())
	}
	return string(data), nil
}

func decodeDailyDares(data []byte) ([]entity.AssignedDare, error) {
	dares := make([]entity.AssignedDare, 0, len(entity.Difficulties))
	if len(data) == 0 {
		return dares, nil
	}
	if err := sonic.Unmarshal(data, &dares); err != nil {
		return nil, errors.New("malformed daily dares: " + err.Error())
	}
	return dares, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
