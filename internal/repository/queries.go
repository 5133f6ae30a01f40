package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgQueries runs the raw SQL against the pool. Equity values are stored
// as numeric and scanned into shopspring decimals.
type pgQueries struct {
	conn *pgxpool.Pool
}

const getStrategyByIDQuery = `
SELECT id, name, color, price, info_url
FROM strategies
WHERE id = $1`

func (q *pgQueries) GetStrategyByID(ctx context.Context, id string) (strategyRow, error) {
	var row strategyRow
	err := q.conn.QueryRow(ctx, getStrategyByIDQuery, id).
		Scan(&row.ID, &row.Name, &row.Color, &row.Price, &row.InfoURL)
	return row, err
}

const listStrategiesQuery = `
SELECT id, name, color, price, info_url
FROM strategies
ORDER BY name`

func (q *pgQueries) ListStrategies(ctx context.Context) ([]strategyRow, error) {
	rows, err := q.conn.Query(ctx, listStrategiesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []strategyRow
	for rows.Next() {
		var row strategyRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Color, &row.Price, &row.InfoURL); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

const getSamplesQuery = `
SELECT to_char(day, 'YYYY-MM-DD'), equity
FROM equity_samples
WHERE strategy_id = $1
ORDER BY day`

func (q *pgQueries) GetSamples(ctx context.Context, strategyID string) ([]sampleRow, error) {
	rows, err := q.conn.Query(ctx, getSamplesQuery, strategyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []sampleRow
	for rows.Next() {
		var row sampleRow
		if err := rows.Scan(&row.Day, &row.Equity); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
