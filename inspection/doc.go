// Package inspection provides model-agnostic tools for inspecting fitted
// predictive models on tabular data.
//
// The central routine is Evaluate, which computes permutation importance: for
// each feature column, the column's values are replaced by a random
// permutation of themselves, the model is re-scored on the perturbed data,
// and the change in score relative to the unperturbed baseline is recorded as
// that feature's drift. Drift is normalized so that a positive value always
// means "shuffling this feature made the model worse", regardless of whether
// the scoring metric is a higher-is-better quality score or a lower-is-better
// error.
//
// The model is consumed as an opaque, already-fitted predictor and is never
// retrained: Evaluate performs exactly one prediction call for the baseline
// plus one per feature. Shuffling is driven by an explicit seed, with each
// feature's permutation derived from the seed and the feature's column index,
// so a report is bit-identical across runs and identical between sequential
// and parallel execution.
package inspection
