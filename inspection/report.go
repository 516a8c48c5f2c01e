package inspection

import "sort"

// Report holds per-feature drift values from one Evaluate call. It preserves
// the feature matrix's column order and is immutable once returned.
type Report struct {
	names  []string
	drifts []float64
	index  map[string]int
}

func newReport(names []string, drifts []float64) *Report {
	index := make(map[string]int, len(names))
	for j, name := range names {
		index[name] = j
	}
	return &Report{
		names:  append([]string(nil), names...),
		drifts: append([]float64(nil), drifts...),
		index:  index,
	}
}

// Len returns the number of features in the report.
func (r *Report) Len() int {
	return len(r.names)
}

// Names returns the feature names in original column order.
func (r *Report) Names() []string {
	return append([]string(nil), r.names...)
}

// Drift returns the drift recorded for a feature, and whether the feature is
// present in the report.
func (r *Report) Drift(name string) (float64, bool) {
	j, ok := r.index[name]
	if !ok {
		return 0, false
	}
	return r.drifts[j], true
}

// Drifts returns a copy of the full name-to-drift mapping.
func (r *Report) Drifts() map[string]float64 {
	out := make(map[string]float64, len(r.names))
	for j, name := range r.names {
		out[name] = r.drifts[j]
	}
	return out
}

// Select returns the names of all features whose drift strictly exceeds
// threshold, ordered by descending drift. Features with equal drift keep
// their original column order. Select is a pure function of the report: it
// never touches the model or the data, and calling it repeatedly yields the
// same result.
func (r *Report) Select(threshold float64) []string {
	picked := make([]int, 0, len(r.names))
	for j, d := range r.drifts {
		if d > threshold {
			picked = append(picked, j)
		}
	}

	sort.SliceStable(picked, func(a, b int) bool {
		return r.drifts[picked[a]] > r.drifts[picked[b]]
	})

	out := make([]string, len(picked))
	for i, j := range picked {
		out[i] = r.names[j]
	}
	return out
}
