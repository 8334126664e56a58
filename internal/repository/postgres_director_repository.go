package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
)

// PostgresDirectorRepository implements DirectorRepository using PostgreSQL
type PostgresDirectorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDirectorRepository creates a new PostgresDirectorRepository
func NewPostgresDirectorRepository(pool *pgxpool.Pool) *PostgresDirectorRepository {
	return &PostgresDirectorRepository{pool: pool}
}

// List returns all directors ordered by id
func (r *PostgresDirectorRepository) List(ctx context.Context) ([]*domain.Director, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, birth_year FROM directors ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	directors := make([]*domain.Director, 0)
	for rows.Next() {
		d := &domain.Director{}
		if err := rows.Scan(&d.ID, &d.Name, &d.BirthYear); err != nil {
			return nil, err
		}
		directors = append(directors, d)
	}
	return directors, rows.Err()
}

// GetByID retrieves a director by ID
func (r *PostgresDirectorRepository) GetByID(ctx context.Context, id int64) (*domain.Director, error) {
	d := &domain.Director{}
	err := r.pool.QueryRow(ctx, `SELECT id, name, birth_year FROM directors WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.BirthYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

// Create inserts a director
func (r *PostgresDirectorRepository) Create(ctx context.Context, director *domain.Director) error {
	query := `INSERT INTO directors (name, birth_year) VALUES ($1, $2) RETURNING id`
	return r.pool.QueryRow(ctx, query, director.Name, director.BirthYear).Scan(&director.ID)
}

// Update overwrites a director
func (r *PostgresDirectorRepository) Update(ctx context.Context, director *domain.Director) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE directors SET name = $1, birth_year = $2 WHERE id = $3`,
		director.Name, director.BirthYear, director.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDirectorNotFound
	}
	return nil
}

// Delete removes a director
func (r *PostgresDirectorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM directors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDirectorNotFound
	}
	return nil
}
