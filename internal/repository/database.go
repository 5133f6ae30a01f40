package repository

import (
	"context"
	"errors"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Global error declarations.
var (
	ErrStrategyNotFound = errors.New("strategy not found in datasource")
	ErrNoSamples        = errors.New("no equity samples found in datasource")
)

type strategyRow struct {
	ID      string
	Name    string
	Color   string
	Price   decimal.Decimal
	InfoURL string
}

type sampleRow struct {
	Day    string
	Equity decimal.Decimal
}

type strategiesRepository interface {
	GetStrategyByID(ctx context.Context, id string) (strategyRow, error)
	ListStrategies(ctx context.Context) ([]strategyRow, error)
}
type samplesRepository interface {
	GetSamples(ctx context.Context, strategyID string) ([]sampleRow, error)
}

// Database struct that holds the database connection and queries.
type Database struct {
	strategies strategiesRepository
	samples    samplesRepository
	conn       *pgxpool.Pool
}

// NewDatabase creates a new Database instance and verifies connectivity.
func NewDatabase(dbURL string) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return Database{}, fmt.Errorf("parse config: %w", err)
	}
	// Register shopspring decimal
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	conn, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return Database{}, err
	}
	// Ensure the connection is established.
	if err := conn.Ping(context.Background()); err != nil {
		return Database{}, err
	}

	queries := &pgQueries{conn: conn}
	return Database{
		strategies: queries,
		samples:    queries,
		conn:       conn}, nil
}

// Close releases the underlying connection pool.
func (db *Database) Close() {
	if db.conn != nil {
		db.conn.Close()
	}
}
