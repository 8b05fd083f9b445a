package warehouse

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Loader runs the independent extraction queries concurrently and collects
// them into one snapshot.
type Loader struct {
	db *DB
}

// NewLoader wraps the pool for snapshot extraction.
func NewLoader(db *DB) *Loader {
	return &Loader{db: db}
}

// LoadSnapshot extracts every source table of one forecast run. The queries
// run in parallel; any failure cancels the rest and aborts the load, since a
// partial snapshot would silently understate demand or supply.
func (l *Loader) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := l.db.selectAll(ctx, &snap.Demand, demandQuery); err != nil {
			return fmt.Errorf("failed to load demand plan: %w", err)
		}
		log.Info().Int("rows", len(snap.Demand)).Msg("demand plan loaded")
		return nil
	})
	g.Go(func() error {
		if err := l.db.selectAll(ctx, &snap.Inventory, inventoryQuery); err != nil {
			return fmt.Errorf("failed to load inventory snapshot: %w", err)
		}
		log.Info().Int("rows", len(snap.Inventory)).Msg("inventory snapshot loaded")
		return nil
	})
	g.Go(func() error {
		if err := l.db.selectAll(ctx, &snap.OpenPO, openPOQuery); err != nil {
			return fmt.Errorf("failed to load open PO lines: %w", err)
		}
		log.Info().Int("rows", len(snap.OpenPO)).Msg("open PO lines loaded")
		return nil
	})
	g.Go(func() error {
		if err := l.db.selectAll(ctx, &snap.Inbound, inboundQuery); err != nil {
			return fmt.Errorf("failed to load inbound shipments: %w", err)
		}
		log.Info().Int("rows", len(snap.Inbound)).Msg("inbound shipments loaded")
		return nil
	})
	g.Go(func() error {
		if err := l.db.selectAll(ctx, &snap.Prices, priceQuery); err != nil {
			return fmt.Errorf("failed to load price benchmarks: %w", err)
		}
		log.Info().Int("rows", len(snap.Prices)).Msg("price benchmarks loaded")
		return nil
	})
	g.Go(func() error {
		if err := l.db.selectAll(ctx, &snap.Master, masterQuery); err != nil {
			return fmt.Errorf("failed to load item master data: %w", err)
		}
		log.Info().Int("rows", len(snap.Master)).Msg("item master data loaded")
		return nil
	})
	g.Go(func() error {
		if err := l.db.selectAll(ctx, &snap.Vendors, vendorQuery); err != nil {
			return fmt.Errorf("failed to load vendor master data: %w", err)
		}
		log.Info().Int("rows", len(snap.Vendors)).Msg("vendor master data loaded")
		return nil
	})
	g.Go(func() error {
		if err := l.db.selectAll(ctx, &snap.Pipeline, pipelineQuery); err != nil {
			return fmt.Errorf("failed to load pipeline positions: %w", err)
		}
		log.Info().Int("rows", len(snap.Pipeline)).Msg("pipeline positions loaded")
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
