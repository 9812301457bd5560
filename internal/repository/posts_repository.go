package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/pkg/entity"
)

type PostsRepository struct {
	conn PgConnection
}

func NewPostsRepoWithConn(conn PgConnection) *PostsRepository {
	mustPing(conn, "postsRepo")
	return &PostsRepository{
		conn: conn,
	}
}

func (pr *PostsRepository) Create(ctx context.Context, post *entity.Post) error {
	if post == nil {
		return errors.New("post is nil")
	}
	var (
		lat, lng *float64
		address  *string
	)
	if post.Location != nil {
		lat, lng, address = &post.Location.Lat, &post.Location.Lng, &post.Location.Address
	}
	row := pr.conn.QueryRow(ctx, `INSERT INTO posts (user_id, user_display_name, dare_id, dare_title, dare_difficulty, image_url, is_bonus, tags, lat, lng, address, points_awarded) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id, created_at;`,
		post.UserID,
		post.UserDisplayName,
		post.DareID,
		post.DareTitle,
		string(post.DareDifficulty),
		post.ImageURL,
		post.IsBonus,
		nonNilStrings(post.Tags),
		lat, lng, address,
		post.PointsAwarded,
	)
	if err := row.Scan(&post.ID, &post.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating post db error: " + err.Error())
	}
	return nil
}

const selectPost = `SELECT id, user_id, user_display_name, dare_id, dare_title, dare_difficulty, image_url, is_bonus, tags, lat, lng, address, points_awarded, likes, double_dares, created_at FROM posts`

func (pr *PostsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := scanPost(pr.conn.QueryRow(ctx, selectPost+` WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("getting post by id error: " + err.Error())
	}
	return post, nil
}

func (pr *PostsRepository) List(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	rows, err := pr.conn.Query(ctx, selectPost+` ORDER BY created_at DESC LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, errors.New("listing posts error: " + err.Error())
	}
	defer rows.Close()
	posts := make([]*entity.Post, 0, limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, errors.New("unmarshalling post error: " + err.Error())
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return posts, nil
}

func (pr *PostsRepository) Like(ctx context.Context, id uuid.UUID) (int, error) {
	var likes int
	err := pr.conn.QueryRow(ctx, `UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes;`, id).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrPostNotFound
		}
		return 0, errors.New("liking post error: " + err.Error())
	}
	return likes, nil
}

func (pr *PostsRepository) DoubleDare(ctx context.Context, giver uuid.UUID, postID uuid.UUID, cost int) (int, error) {
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning transaction error: " + err.Error())
	}
	score, err := doubleDareTx(ctx, tx, giver, postID, cost)
	if err != nil {
		tx.Rollback(ctx)
		return 0, err
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, errors.New("committing double dare error: " + err.Error())
	}
	return score, nil
}

func doubleDareTx(ctx context.Context, tx pgx.Tx, giver, postID uuid.UUID, cost int) (int, error) {
	var owner uuid.UUID
	err := tx.QueryRow(ctx, `SELECT user_id FROM posts WHERE id = $1 FOR UPDATE;`, postID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrPostNotFound
		}
		return 0, errors.New("locking post error: " + err.Error())
	}
	if owner == giver {
		return 0, errorvalues.ErrSelfDoubleDare
	}
	var score int
	err = tx.QueryRow(ctx, `SELECT score FROM profiles WHERE user_id = $1 FOR UPDATE;`, giver).Scan(&score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrProfileNotFound
		}
		return 0, errors.New("locking profile error: " + err.Error())
	}
	if score < cost {
		return 0, fmt.Errorf("%w: have %d, need %d", errorvalues.ErrInsufficientCurrency, score, cost)
	}
	_, err = tx.Exec(ctx, `UPDATE profiles SET score = score - $1, version = version + 1 WHERE user_id = $2;`, cost, giver)
	if err != nil {
		return 0, errors.New("charging double dare error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `UPDATE posts SET double_dares = double_dares + 1 WHERE id = $1;`, postID)
	if err != nil {
		return 0, errors.New("awarding double dare error: " + err.Error())
	}
	return score - cost, nil
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	var (
		p          entity.Post
		difficulty string
		lat, lng   *float64
		address    *string
	)
	err := row.Scan(&p.ID, &p.UserID, &p.UserDisplayName, &p.DareID, &p.DareTitle, &difficulty, &p.ImageURL,
		&p.IsBonus, &p.Tags, &lat, &lng, &address, &p.PointsAwarded, &p.Likes, &p.DoubleDares, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.DareDifficulty = entity.Difficulty(difficulty)
	if lat != nil && lng != nil {
		p.Location = &entity.Location{Lat: *lat, Lng: *lng}
		if address != nil {
			p.Location.Address = *address
		}
	}
	return &p, nil
}
