package forecast

import (
	"github.com/rs/zerolog/log"
)

// MaxHorizonWeeks caps the simulation at two years regardless of how many
// calendar weeks were generated.
const MaxHorizonWeeks = 104

// WaterfallInput carries the aligned weekly tables consumed by the
// simulation. All tables are read with zero defaults, so they do not need to
// be reindexed to the ref union beforehand.
type WaterfallInput struct {
	Calendar          []WeekLabel
	StartingInventory ScalarTable
	Demand            WeeklyTable
	Inbound           WeeklyTable
	SignedPO          WeeklyTable
	UnsignedPO        WeeklyTable
}

// Ledger is the simulated per-entity timeline: inventory levels, weekly
// shortfall, and the stockout markers derived in the same pass.
type Ledger struct {
	StartInventory map[WeekLabel]float64
	EndInventory   map[WeekLabel]float64
	SalesMissed    map[WeekLabel]float64

	// FirstStockout is the earliest week with a positive shortfall. It is
	// always populated after a run: when no shortfall was ever observed it
	// defaults to the last calendar week, with StockoutObserved false.
	FirstStockout    WeekLabel
	StockoutObserved bool

	// LastTransition is the latest week entering shortfall from a clean week
	// with demand above the single-unit noise threshold. Empty when no such
	// transition occurred.
	LastTransition WeekLabel
}

// FinalStockout is the stockout week all downstream revenue and days-on-hand
// math keys off: the last clean transition into shortfall when one exists,
// otherwise the first occurrence.
func (l *Ledger) FinalStockout() WeekLabel {
	if l.LastTransition != "" {
		return l.LastTransition
	}
	return l.FirstStockout
}

// WaterfallResult holds the simulated weeks and one ledger per entity.
type WaterfallResult struct {
	Weeks   []WeekLabel
	Ledgers map[string]*Ledger
}

// weekState is the accumulator carried across the per-entity fold.
type weekState struct {
	start      float64
	prevMissed float64
	first      WeekLabel
	firstSet   bool
	last       WeekLabel
}

// stepWeek computes one week of the waterfall from the carried state and that
// week's inputs, returning the next state plus the end-of-week level and
// shortfall. It is a pure function of its arguments.
//
// The supply formulas are deliberately asymmetric:
//   - the first week nets only inbound receipts against starting inventory;
//     open POs are not treated as same-week supply in the level formula;
//   - from the second week on, both signed and unsigned PO quantities count
//     toward the inventory level;
//   - unsigned POs never count as coverage in the shortfall formula, for any
//     week. A speculative commitment can keep the ledger level positive while
//     the week still registers missed sales.
func stepWeek(st weekState, week WeekLabel, idx int, demand, inbound, signed, unsigned float64) (weekState, float64, float64) {
	supply := st.start + inbound
	if idx > 0 {
		supply += signed + unsigned
	}

	end := supply - demand
	if end < 0 {
		end = 0
	}

	missed := demand - st.start - signed - inbound
	if missed < 0 {
		missed = 0
	}

	next := st
	if missed > 0 && !next.firstSet {
		next.first = week
		next.firstSet = true
	}
	if idx > 0 && st.prevMissed == 0 && missed > 0 && demand > 1 {
		next.last = week
	}

	next.start = end
	next.prevMissed = missed
	return next, end, missed
}

// RunWaterfall walks the calendar once per entity, left to right, carrying
// the running inventory state. O(entities x weeks), no backtracking; the
// stockout markers are updated inside the same iteration as the level and
// shortfall because the transition check needs the previous week's shortfall.
func RunWaterfall(in WaterfallInput) *WaterfallResult {
	result := &WaterfallResult{Ledgers: make(map[string]*Ledger)}

	if len(in.Calendar) == 0 {
		log.Error().Msg("waterfall: no calendar weeks generated, returning empty result")
		return result
	}

	weeks := in.Calendar
	if len(weeks) > MaxHorizonWeeks {
		weeks = weeks[:MaxHorizonWeeks]
	}
	result.Weeks = weeks
	lastWeek := weeks[len(weeks)-1]

	refs := UnionRefs(
		in.Demand.Refs(),
		in.StartingInventory.Refs(),
		in.SignedPO.Refs(),
		in.UnsignedPO.Refs(),
		in.Inbound.Refs(),
	)

	for _, ref := range refs {
		ledger := &Ledger{
			StartInventory: make(map[WeekLabel]float64, len(weeks)),
			EndInventory:   make(map[WeekLabel]float64, len(weeks)),
			SalesMissed:    make(map[WeekLabel]float64, len(weeks)),
		}

		st := weekState{start: in.StartingInventory.Get(ref)}
		for i, week := range weeks {
			ledger.StartInventory[week] = st.start

			var end, missed float64
			st, end, missed = stepWeek(st, week, i,
				in.Demand.Get(ref, week),
				in.Inbound.Get(ref, week),
				in.SignedPO.Get(ref, week),
				in.UnsignedPO.Get(ref, week),
			)

			ledger.EndInventory[week] = end
			ledger.SalesMissed[week] = missed
		}

		ledger.StockoutObserved = st.firstSet
		if st.firstSet {
			ledger.FirstStockout = st.first
		} else {
			// Never stocked out inside the horizon; downstream date math
			// treats that as "at horizon end".
			ledger.FirstStockout = lastWeek
		}
		ledger.LastTransition = st.last

		result.Ledgers[ref] = ledger
	}

	return result
}
