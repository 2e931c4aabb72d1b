// Package render formats analysis tables, aggregation groups, and trend fits
// for the terminal or for machine consumption.
//
// Tabular output supports a rounded box table, CSV, JSON, and YAML. The text
// charts (BarChart, Scatter) are plain strings styled with lipgloss when
// colour is enabled. Nothing in this package mutates its inputs.
package render
