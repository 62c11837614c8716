// Package observability provides event logging, study-metrics calculation,
// and review alerting for patternbook. Events are persisted as structured
// JSON Lines (JSONL); metrics and alerts are derived on demand from the log.
package observability
