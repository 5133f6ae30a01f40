package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"blendfolio/types"
)

// Entry describes one remote strategy source to keep in the store.
type Entry struct {
	ID      string
	Name    string
	Color   string
	URL     string
	Price   decimal.Decimal
	InfoURL string
}

// Source fetches one equity export. Satisfied by loader.Client.
type Source interface {
	FetchSeries(ctx context.Context, url string) (*types.TimeSeries, error)
}

// Refresher re-downloads catalog entries into a store. A failing entry
// is logged and skipped so one dead export does not wipe the catalog.
type Refresher struct {
	store        *Store
	source       Source
	entries      []Entry
	benchmarkURL string
}

func NewRefresher(store *Store, source Source, entries []Entry, benchmarkURL string) *Refresher {
	return &Refresher{store: store, source: source, entries: entries, benchmarkURL: benchmarkURL}
}

// Refresh fetches every entry plus the benchmark. Returns an error only
// when nothing could be loaded at all.
func (r *Refresher) Refresh(ctx context.Context) error {
	loaded := 0
	for _, entry := range r.entries {
		series, err := r.source.FetchSeries(ctx, entry.URL)
		if err != nil {
			log.Warn().Err(err).Str("strategy", entry.ID).Msg("refresh failed, keeping previous series")
			continue
		}
		if series.Len() == 0 {
			log.Warn().Str("strategy", entry.ID).Msg("export contained no usable samples")
			continue
		}
		r.store.Put(&types.Strategy{
			ID:      entry.ID,
			Name:    entry.Name,
			Color:   entry.Color,
			Series:  series,
			BuiltIn: true,
			Price:   entry.Price,
			InfoURL: entry.InfoURL,
		})
		loaded++
		log.Info().Str("strategy", entry.ID).Int("samples", series.Len()).Msg("refreshed strategy series")
	}

	if r.benchmarkURL != "" {
		series, err := r.source.FetchSeries(ctx, r.benchmarkURL)
		if err != nil {
			log.Warn().Err(err).Msg("benchmark refresh failed")
		} else if series.Len() > 0 {
			r.store.SetBenchmark(&types.Strategy{ID: "benchmark", Name: "Benchmark", Series: series})
			loaded++
		}
	}

	if loaded == 0 && len(r.entries) > 0 {
		return fmt.Errorf("refresh: no catalog entries could be loaded")
	}
	return nil
}
