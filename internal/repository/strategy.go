package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"blendfolio/types"
)

// GetStrategyByID retrieves a types.Strategy by its id, including its
// full equity series.
func (db *Database) GetStrategyByID(ctx context.Context, id string) (*types.Strategy, error) {
	row, err := db.strategies.GetStrategyByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("strategy %s %w", id, ErrStrategyNotFound)
		}
		return nil, err
	}
	series, err := db.GetSeries(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return convertStrategy(row, series), nil
}

// ListStrategies retrieves every stored strategy with its equity series.
func (db *Database) ListStrategies(ctx context.Context) ([]*types.Strategy, error) {
	rows, err := db.strategies.ListStrategies(ctx)
	if err != nil {
		return nil, err
	}
	strategies := make([]*types.Strategy, 0, len(rows))
	for _, row := range rows {
		series, err := db.GetSeries(ctx, row.ID)
		if err != nil {
			if errors.Is(err, ErrNoSamples) {
				continue
			}
			return nil, err
		}
		strategies = append(strategies, convertStrategy(row, series))
	}
	return strategies, nil
}

func convertStrategy(row strategyRow, series *types.TimeSeries) *types.Strategy {
	return &types.Strategy{
		ID:      row.ID,
		Name:    row.Name,
		Color:   row.Color,
		Series:  series,
		BuiltIn: true,
		Price:   row.Price,
		InfoURL: row.InfoURL,
	}
}
