package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"blendfolio/types"
)

// Client fetches strategy equity exports over HTTP. Exports are JSON
// arrays of {"Date": ..., "Equity": ...} rows.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// FetchSeries downloads one equity export and normalizes it into a
// TimeSeries. Rows with unparseable dates or values are dropped, never
// errored; only transport and decode failures surface.
func (c *Client) FetchSeries(ctx context.Context, url string) (*types.TimeSeries, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", url, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return SeriesFromRows(rows), nil
}

// SeriesFromRows builds a TimeSeries out of raw export rows, applying the
// date and number normalization rules. Equity values must be finite and
// non-negative; everything else is dropped.
func SeriesFromRows(rows []map[string]any) *types.TimeSeries {
	samples := make(map[types.Day]float64, len(rows))
	dropped := 0
	for _, row := range rows {
		d, ok := dateField(row["Date"])
		if !ok {
			dropped++
			continue
		}
		v, ok := equityField(row["Equity"])
		if !ok || v < 0 {
			dropped++
			continue
		}
		samples[d] = v
	}
	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Int("kept", len(samples)).Msg("dropped malformed equity rows")
	}
	return types.NewTimeSeries(samples)
}

func dateField(v any) (types.Day, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return NormalizeDate(s)
}

func equityField(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		return ParseNumber(x)
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}
