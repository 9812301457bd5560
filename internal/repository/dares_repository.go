package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/dailydare/pkg/entity"
)

type DaresRepository struct {
	conn PgConnection
}

func NewDaresRepoWithConn(conn PgConnection) *DaresRepository {
	mustPing(conn, "daresRepo")
	return &DaresRepository{
		conn: conn,
	}
}

func (dr *DaresRepository) ListByDifficulty(ctx context.Context, difficulty entity.Difficulty) ([]entity.Dare, error) {
	rows, err := dr.conn.Query(ctx, `SELECT id, title, description, points, difficulty, tags, proof_required FROM dares WHERE difficulty = $1 ORDER BY title;`, string(difficulty))
	if err != nil {
		return nil, errors.New("listing dares by difficulty error: " + err.Error())
	}
	return scanDares(rows)
}

func (dr *DaresRepository) List(ctx context.Context) ([]entity.Dare, error) {
	rows, err := dr.conn.Query(ctx, `SELECT id, title, description, points, difficulty, tags, proof_required FROM dares ORDER BY difficulty, title;`)
	if err != nil {
		return nil, errors.New("listing dares error: " + err.Error())
	}
	return scanDares(rows)
}

func (dr *DaresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := dr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM dares;`).Scan(&count); err != nil {
		return 0, errors.New("counting dares error: " + err.Error())
	}
	return count, nil
}

func (dr *DaresRepository) ReplaceAll(ctx context.Context, dares []entity.Dare) error {
	tx, err := dr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `DELETE FROM dares;`)
	if err != nil {
		tx.Rollback(ctx)
		return errors.New("clearing catalog error: " + err.Error())
	}
	for i := range dares {
		d := &dares[i]
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		_, err = tx.Exec(ctx, `INSERT INTO dares (id, title, description, points, difficulty, tags, proof_required) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			d.ID, d.Title, d.Description, d.Points, string(d.Difficulty), nonNilStrings(d.Tags), d.ProofRequired,
		)
		if err != nil {
			tx.Rollback(ctx)
			return errors.New("inserting dare " + d.Title + " error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing catalog error: " + err.Error())
	}
	return nil
}

func scanDares(rows pgx.Rows) ([]entity.Dare, error) {
	defer rows.Close()
	dares := make([]entity.Dare, 0)
	for rows.Next() {
		var (
			d          entity.Dare
			difficulty string
		)
		err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.Points, &difficulty, &d.Tags, &d.ProofRequired)
		if err != nil {
			return nil, errors.New("unmarshalling dare error: " + err.Error())
		}
		d.Difficulty = entity.Difficulty(difficulty)
		dares = append(dares, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return dares, nil
}
