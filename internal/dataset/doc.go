// Package dataset loads and normalizes the teacher activity workbook
// into the canonical in-memory dataset, and caches it keyed by the
// source file's modification time.
package dataset
