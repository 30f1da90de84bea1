// Package store persists admitted orders, their execution history and
// the delivery outbox in a single pebble database. It is the source of
// truth the engine restores from after a restart.
package store
