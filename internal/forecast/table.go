package forecast

import "sort"

// WeeklyTable maps entity ref -> week -> quantity. Absent refs and weeks
// read as zero, which is how missing input columns are defaulted throughout
// the engine.
type WeeklyTable map[string]map[WeekLabel]float64

// NewWeeklyTable returns an empty table.
func NewWeeklyTable() WeeklyTable {
	return make(WeeklyTable)
}

// Get returns the quantity for (ref, week), zero when absent.
func (t WeeklyTable) Get(ref string, week WeekLabel) float64 {
	return t[ref][week]
}

// Set stores the quantity for (ref, week).
func (t WeeklyTable) Set(ref string, week WeekLabel, qty float64) {
	row, ok := t[ref]
	if !ok {
		row = make(map[WeekLabel]float64)
		t[ref] = row
	}
	row[week] = qty
}

// Add accumulates qty into (ref, week).
func (t WeeklyTable) Add(ref string, week WeekLabel, qty float64) {
	row, ok := t[ref]
	if !ok {
		row = make(map[WeekLabel]float64)
		t[ref] = row
	}
	row[week] += qty
}

// Sum totals the quantities for ref over the given weeks.
func (t WeeklyTable) Sum(ref string, weeks []WeekLabel) float64 {
	row, ok := t[ref]
	if !ok {
		return 0
	}
	var total float64
	for _, w := range weeks {
		total += row[w]
	}
	return total
}

// Refs returns the entity keys present in the table, unsorted.
func (t WeeklyTable) Refs() []string {
	refs := make([]string, 0, len(t))
	for ref := range t {
		refs = append(refs, ref)
	}
	return refs
}

// ScalarTable maps entity ref -> single quantity (starting inventory, price).
type ScalarTable map[string]float64

// Get returns the value for ref, zero when absent.
func (t ScalarTable) Get(ref string) float64 {
	return t[ref]
}

// Refs returns the entity keys present in the table, unsorted.
func (t ScalarTable) Refs() []string {
	refs := make([]string, 0, len(t))
	for ref := range t {
		refs = append(refs, ref)
	}
	return refs
}

// UnionRefs collects the sorted union of refs across all given key sets.
// Every per-entity series in the simulation is aligned on this union, with
// refs absent from an individual table treated as zero-valued there.
func UnionRefs(refSets ...[]string) []string {
	seen := make(map[string]struct{})
	for _, set := range refSets {
		for _, ref := range set {
			seen[ref] = struct{}{}
		}
	}

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
