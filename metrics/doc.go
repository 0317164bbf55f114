// Package metrics exports search observations to Prometheus.
//
// Recorder implements search.Recorder. Pass it to any engine with
// search.WithRecorder and every FindPath call is counted by outcome, and its
// expansions, duration and path length are observed per engine:
//
//	gridpath_searches_total{engine,outcome}   counter; outcome ∈ found, not_found, rejected, error
//	gridpath_search_expanded_nodes{engine}    histogram
//	gridpath_search_duration_seconds{engine}  histogram
//	gridpath_path_length{engine}              histogram, found paths only
//
// "rejected" covers precondition failures (no map, endpoint out of bounds or on
// an obstacle, bad options); "error" covers everything else, e.g. cancellation.
//
// Tracer is the OpenTelemetry counterpart: one "gridpath.FindPath" span per call,
// carrying the engine, outcome and expansion count, plus path length and cost on
// success. Fanout combines recorders, e.g. metrics.Fanout{rec, tracer}.
package metrics
