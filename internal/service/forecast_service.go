package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/supplylens/supplylens/internal/cache"
	"github.com/supplylens/supplylens/internal/forecast"
	"github.com/supplylens/supplylens/internal/leadtime"
	"github.com/supplylens/supplylens/internal/output"
	"github.com/supplylens/supplylens/internal/shape"
	"github.com/supplylens/supplylens/internal/warehouse"
)

// ForecastService runs the full pipeline: warehouse extraction, shaping,
// the simulation and derived calculators, output files, and the summary
// cache. The latest results are kept in memory for ref-level reads; nothing
// survives a restart.
type ForecastService struct {
	loader    *warehouse.Loader
	book      *leadtime.Book
	cache     cache.SummaryCache
	storage   output.ObjectStorage
	outputDir string

	mu   sync.RWMutex
	last *forecast.Results
}

// NewForecastService wires the pipeline. storage may be nil when publishing
// is disabled; a nil cache gets the noop implementation.
func NewForecastService(loader *warehouse.Loader, book *leadtime.Book, cacheImpl cache.SummaryCache, storage output.ObjectStorage, outputDir string) *ForecastService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopSummaryCache()
	}
	return &ForecastService{
		loader:    loader,
		book:      book,
		cache:     cacheImpl,
		storage:   storage,
		outputDir: outputDir,
	}
}

// Run executes one forecast run and returns its summary.
func (s *ForecastService) Run(ctx context.Context) (forecast.Summary, error) {
	now := time.Now().UTC()
	started := now

	snap, err := s.loader.LoadSnapshot(ctx)
	if err != nil {
		return forecast.Summary{}, fmt.Errorf("snapshot load failed: %w", err)
	}

	in := shape.NewShaper(s.book, now).Build(snap)
	results := forecast.NewCalculator(s.book, now).CalculateAll(in)

	finalPath, err := output.WriteFinalTable(s.outputDir, results, now)
	if err != nil {
		return forecast.Summary{}, fmt.Errorf("writing final table failed: %w", err)
	}
	missedPath, err := output.WriteSalesMissed(s.outputDir, results, now)
	if err != nil {
		return forecast.Summary{}, fmt.Errorf("writing sales missed table failed: %w", err)
	}

	if err := output.Publish(ctx, s.storage, finalPath, missedPath); err != nil {
		return forecast.Summary{}, fmt.Errorf("publishing output failed: %w", err)
	}

	s.mu.Lock()
	s.last = results
	s.mu.Unlock()

	if err := s.cache.SetSummary(ctx, results.Summary); err != nil {
		log.Warn().Err(err).Msg("forecast: cache set summary failed")
	}

	log.Info().
		Dur("elapsed", time.Since(started)).
		Int("entities", results.Summary.Entities).
		Msg("forecast run completed")

	return results.Summary, nil
}

// Summary returns the latest run summary, preferring the cache so restarts
// and multi-instance deployments stay consistent.
func (s *ForecastService) Summary(ctx context.Context) (forecast.Summary, bool, error) {
	if summary, ok, err := s.cache.GetSummary(ctx); err == nil && ok {
		return summary, true, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("forecast: cache get summary failed")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return forecast.Summary{}, false, nil
	}
	return s.last.Summary, true, nil
}

// RefDetail returns the latest output row and weekly shortfall series for
// one entity. ok is false when no run has completed or the ref is unknown.
func (s *ForecastService) RefDetail(ref string) (*forecast.Row, map[forecast.WeekLabel]float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return nil, nil, false
	}
	row, ok := s.last.Rows[ref]
	if !ok {
		return nil, nil, false
	}
	return row, s.last.Waterfall.Ledgers[ref].SalesMissed, true
}
