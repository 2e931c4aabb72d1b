// Package main hosts the swstats CLI entrypoint and command graph.
//
// The Cobra command tree loads configuration lazily, retrieves raw records
// from the API or a local snapshot, flattens them into analysis tables, and
// hands the results to the render package. Subcommands stay thin: parsing,
// aggregation, and trend fitting live in the internal packages.
package main
