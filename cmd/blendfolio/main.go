package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"blendfolio/internal/catalog"
	"blendfolio/internal/config"
	"blendfolio/internal/engine"
	"blendfolio/internal/loader"
	"blendfolio/internal/repository"
	"blendfolio/internal/scheduler"
	"blendfolio/types"
)

const fetchTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	watch := flag.Bool("watch", false, "keep running and refresh the catalog on the configured schedule")
	flag.Parse()

	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := catalog.NewStore()
	refresher, err := fillStore(ctx, cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}

	result, err := runSimulation(cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	printStats(result)
	printCorrelations(store.Active(cfg.Portfolio.Allocations))
	printStress(result, cfg.Windows())

	if *watch {
		if refresher == nil {
			log.Fatal().Msg("-watch requires HTTP catalog sources")
		}
		runWatch(ctx, cfg, refresher)
	}
}

// fillStore loads the catalog from Postgres when a database is
// configured, otherwise downloads the configured exports. The returned
// refresher is nil in database mode.
func fillStore(ctx context.Context, cfg *config.Config, store *catalog.Store) (*catalog.Refresher, error) {
	if cfg.Database.URL != "" {
		db, err := repository.NewDatabase(cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		strategies, err := db.ListStrategies(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range strategies {
			store.Put(s)
		}
		log.Info().Int("strategies", store.Len()).Msg("catalog loaded from database")
		return nil, nil
	}

	entries := make([]catalog.Entry, 0, len(cfg.Catalog))
	for _, e := range cfg.Catalog {
		entries = append(entries, catalog.Entry{
			ID:      e.ID,
			Name:    e.Name,
			Color:   e.Color,
			URL:     e.URL,
			Price:   decimalFrom(e.Price),
			InfoURL: e.InfoURL,
		})
	}
	refresher := catalog.NewRefresher(store, loader.NewClient(fetchTimeout), entries, cfg.Benchmark.URL)
	if err := refresher.Refresh(ctx); err != nil {
		return nil, err
	}
	log.Info().Int("strategies", store.Len()).Msg("catalog loaded from HTTP exports")
	return refresher, nil
}

func runSimulation(cfg *config.Config, store *catalog.Store) (*types.SimulationResult, error) {
	var benchmark *types.TimeSeries
	if b := store.Benchmark(); b != nil {
		benchmark = b.Series
	}
	eng := engine.New(store.All(), benchmark, cfg.Portfolio.Allocations, cfg.Settings(), engine.WithProgress())
	return eng.Run()
}

func runWatch(ctx context.Context, cfg *config.Config, refresher *catalog.Refresher) {
	sched := scheduler.New(ctx, refresher)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatal().Err(err).Msg("register refresh schedule")
	}
	sched.Start()
	defer sched.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")
}

func printStats(res *types.SimulationResult) {
	fmt.Println("==== Portfolio ====")
	printStatBlock(res.Stats)
	if res.BenchmarkStats != nil {
		fmt.Println("==== Benchmark ====")
		printStatBlock(*res.BenchmarkStats)
	}
}

func printStatBlock(s types.PortfolioStats) {
	fmt.Printf("Final balance:  %.2f\n", s.FinalBalance)
	fmt.Printf("Total return:   %.2f%%\n", s.TotalReturn*100)
	fmt.Printf("CAGR:           %.2f%%\n", s.CAGR*100)
	fmt.Printf("Sharpe:         %.2f\n", s.Sharpe)
	fmt.Printf("Sortino:        %.2f\n", s.Sortino)
	fmt.Printf("Max drawdown:   %.2f%%\n", s.MaxDrawdown*100)
	fmt.Printf("Calmar:         %.2f\n", s.Calmar)
	fmt.Printf("Win rate:       %.2f%%\n", s.WinRate*100)
	fmt.Printf("Streaks:        %d up / %d down\n", s.MaxWinStreak, s.MaxLossStreak)

	years := make([]int, 0, len(s.AnnualReturns))
	for y := range s.AnnualReturns {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, y := range years {
		fmt.Printf("  %d: %+.2f%% (max dd %.2f%%)\n", y, s.AnnualReturns[y]*100, s.AnnualMaxDrawdowns[y]*100)
	}
	fmt.Println("-------")
}

func printCorrelations(active []*types.Strategy) {
	if len(active) < 2 {
		return
	}
	matrix, ids := engine.CorrelationMatrix(active)
	if matrix == nil {
		return
	}
	fmt.Println("==== Correlations ====")
	for i, a := range ids {
		for j, b := range ids {
			if j <= i {
				continue
			}
			r := matrix.At(i, j)
			if math.IsNaN(r) {
				fmt.Printf("%s / %s: n/a\n", a, b)
				continue
			}
			fmt.Printf("%s / %s: %+.2f\n", a, b, r)
		}
	}
	fmt.Println("-------")
}

func printStress(res *types.SimulationResult, windows []types.StressWindow) {
	reports := engine.AnalyzeStressWindows(res, windows)
	if len(reports) == 0 {
		return
	}
	fmt.Println("==== Stress windows ====")
	for _, r := range reports {
		fmt.Printf("%-14s %s .. %s  portfolio: %s  benchmark: %s\n",
			r.Window.Name, r.Window.Start, r.Window.End,
			formatDrawdown(r.Portfolio), formatDrawdown(r.Benchmark))
	}
	fmt.Println("-------")
}

func formatDrawdown(dd *float64) string {
	if dd == nil {
		return "n/a"
	}
	return fmt.Sprintf("-%.2f%%", *dd*100)
}

func decimalFrom(price float64) decimal.Decimal {
	if price <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(price)
}
