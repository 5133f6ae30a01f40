package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"blendfolio/types"
)

// GetSeries retrieves a strategy's equity samples as a TimeSeries.
func (db *Database) GetSeries(ctx context.Context, strategyID string) (*types.TimeSeries, error) {
	samples, err := db.samples.GetSamples(ctx, strategyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSamples
		}
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return convertSamples(samples), nil
}

func convertSamples(sampleDAOs []sampleRow) *types.TimeSeries {
	values := make(map[types.Day]float64, len(sampleDAOs))
	for _, dao := range sampleDAOs {
		values[types.Day(dao.Day)] = dao.Equity.InexactFloat64()
	}
	return types.NewTimeSeries(values)
}
