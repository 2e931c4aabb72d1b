// Package films flattens raw SWAPI film records into the typed analysis table
// used by every film report.
//
// Flatten validates each record at the boundary (required fields present,
// episode within the known trilogy breakpoints) and derives ship totals, the
// hyperdrive ratio, and the trilogy label. A single malformed record aborts the
// whole operation, so a successful Table always has exactly one row per input
// record in input order. Tables are immutable; SortedBy returns a reordered
// copy for display.
package films
