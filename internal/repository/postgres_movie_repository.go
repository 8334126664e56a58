package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
)

// PostgresMovieRepository implements MovieRepository using PostgreSQL
type PostgresMovieRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMovieRepository creates a new PostgresMovieRepository
func NewPostgresMovieRepository(pool *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{pool: pool}
}

// List returns all movies ordered by id
func (r *PostgresMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT id, title, director, year FROM movies ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]*domain.Movie, 0)
	for rows.Next() {
		m := &domain.Movie{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Director, &m.Year); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// GetByID retrieves a movie by ID
func (r *PostgresMovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `SELECT id, title, director, year FROM movies WHERE id = $1`

	m := &domain.Movie{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Title, &m.Director, &m.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Create inserts a movie
func (r *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, director, year) VALUES ($1, $2, $3) RETURNING id`
	return r.pool.QueryRow(ctx, query, movie.Title, movie.Director, movie.Year).Scan(&movie.ID)
}

// Update overwrites every field of a movie
func (r *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies SET title = $1, director = $2, year = $3 WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, movie.Title, movie.Director, movie.Year, movie.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// Delete removes a movie
func (r *PostgresMovieRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}
