// Package engine joins reservations with the entities they reference and derives
// the summaries, statistics and buckets every role view renders.
//
// Every function is pure. Time-dependent results take an explicit reference time in
// epoch milliseconds; nothing here reads a clock.
package engine
