package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "film",
		Password: "pw",
		Database: "film_db",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db.local port=5433 user=film password=pw dbname=film_db sslmode=require", cfg.DSN())
}

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Empty(t, cfg.Password)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.False(t, cfg.TraceQueryParameters)
}

func TestTracerOptions(t *testing.T) {
	cfg := DefaultPostgresConfig()
	cfg.EnableTracing = true
	assert.Empty(t, tracerOptions(cfg), "bind parameters must stay out of spans by default")

	cfg.TraceQueryParameters = true
	assert.Len(t, tracerOptions(cfg), 1)
}

func TestNewPostgres_Unreachable(t *testing.T) {
	cfg := &PostgresConfig{
		Host:           "127.0.0.1",
		Port:           1,
		User:           "postgres",
		Database:       "film_db",
		SSLMode:        "disable",
		MaxConns:       1,
		ConnectTimeout: 500 * time.Millisecond,
		MaxRetries:     0,
		RetryInterval:  10 * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := NewPostgres(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to postgres after 1 attempts")
}

func TestIsPermanentConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid password", &pgconn.PgError{Code: "28P01"}, true},
		{"wrapped auth failure", fmt.Errorf("failed to connect: %w", &pgconn.PgError{Code: "28000"}), true},
		{"unknown database", &pgconn.PgError{Code: "3D000"}, true},
		{"too many connections", &pgconn.PgError{Code: "53300"}, false},
		{"network", errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPermanentConnectError(tt.err))
		})
	}
}

func TestMigrate_WrapsError(t *testing.T) {
	orig := gooseUp
	defer func() { gooseUp = orig }()

	var gotFS fs.FS
	gooseUp = func(ctx context.Context, db *PostgresDB, migrations fs.FS) error {
		gotFS = migrations
		return errors.New("syntax error at or near")
	}

	migrations := fstest.MapFS{"00001_init.sql": &fstest.MapFile{Data: []byte("-- +goose Up")}}
	err := (&PostgresDB{}).Migrate(context.Background(), migrations)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migrations")
	assert.NotNil(t, gotFS)
}
