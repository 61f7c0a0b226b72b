// Package pipeline runs the dashboard data pipeline: fetch the dataset, load it, validate the required columns,
// project and coerce the date column, then filter to a selected location.
//
// A run is split in two so an interactive caller can reuse a validated dataset between selections:
//   - [Pipeline.Prepare] fetches, loads and validates, returning a [Dataset]
//   - [Dataset.Select] filters the dataset to one location and builds the chart series, preview and statistics
//
// [Pipeline.Run] does both. Every call returns an explicit [State]; nothing is held globally.
package pipeline
