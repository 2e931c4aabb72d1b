// Package analysis holds the table-level computations shared by every flat
// dataset swstats produces.
//
// Datasets expose themselves through the Frame interface: named text and
// numeric columns addressed by row index. On top of that the package offers
// grouping with per-group counts and means (AggregateBy), single-predictor
// ordinary least squares (FitLinearTrend), and display ordering (SortOrder).
//
// Numeric cells are Value instances, which keep "no value" distinct from any
// real number so missing measurements never leak into means or fits. The
// package also defines the error taxonomy used by the flatteners: malformed
// records, out-of-range values, and regressions that cannot be fit.
package analysis
