package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type mockSamplesRepository struct {
	sqlError error
	samples  map[string][]sampleRow
}

func (m mockSamplesRepository) GetSamples(_ context.Context, strategyID string) ([]sampleRow, error) {
	if m.sqlError != nil {
		return nil, m.sqlError
	}
	return m.samples[strategyID], nil
}

func TestDatabase_GetSeries(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		sqlErr  error
		samples map[string][]sampleRow
		wantLen int
		wantErr error
	}{
		{"should throw ErrNoSamples for empty result", "alpha", nil, nil, 0, ErrNoSamples},
		{"should throw ErrNoSamples for ErrNoRows", "alpha", pgx.ErrNoRows, nil, 0, ErrNoSamples},
		{"should return series", "alpha", nil, map[string][]sampleRow{
			"alpha": {
				{Day: "2021-01-05", Equity: decimal.NewFromInt(101000)},
				{Day: "2021-01-04", Equity: decimal.NewFromInt(100000)},
			},
		}, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &Database{samples: mockSamplesRepository{sqlError: tt.sqlErr, samples: tt.samples}}
			got, err := db.GetSeries(context.Background(), tt.id)

			if err != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetSeries() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if got.Len() != tt.wantLen {
				t.Errorf("GetSeries() len = %d, want %d", got.Len(), tt.wantLen)
			}
			// samples arrive in db order but the series keeps dates sorted
			if first, _ := got.FirstDate(); first != "2021-01-04" {
				t.Errorf("FirstDate() = %s, want 2021-01-04", first)
			}
		})
	}
}
