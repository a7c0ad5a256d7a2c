// Package insights computes the analytical views over the canonical
// activity dataset: the teacher leaderboard, per-teacher and per-grade
// drill-downs, and the overall dashboard summary. All functions are pure
// over the dataset snapshot and recompute on every call.
package insights
